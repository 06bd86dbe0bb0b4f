package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/classmate/internal/catalog"
	"github.com/alexisbeaulieu97/classmate/pkg/cm"
	"github.com/alexisbeaulieu97/classmate/pkg/cm/factory"
	"github.com/alexisbeaulieu97/classmate/pkg/cm/html"
	"github.com/alexisbeaulieu97/classmate/pkg/cm/term"
)

type renderOptions struct {
	props     []string
	className string
	format    string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <catalog> <component>",
		Short: "Render a catalog component with the given props",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringArrayVarP(&opts.props, "prop", "p", nil, "Prop as key=value (repeatable)")
	cmd.Flags().StringVar(&opts.className, "class", "", "Incoming classes merged last")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "html", "Output format: html, class, term or json")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions, path, id string) error {
	lib, err := rootFlags.loadLibrary(cmd, "render", path)
	if err != nil {
		return err
	}

	c, ok := lib.Component(id)
	if !ok {
		return newCommandError("render", "looking up component "+id, fmt.Errorf("component %q not found", id), "Run 'classmate list "+path+"' to see available components.")
	}

	props, err := catalog.ParseProps(opts.props)
	if err != nil {
		return newCommandError("render", "parsing props", err, "Pass props as --prop key=value.")
	}
	if opts.className != "" {
		props[cm.ClassProp] = opts.className
	}

	renderOpts := lib.Options()
	out := cmd.OutOrStdout()

	switch opts.format {
	case "html":
		markup, err := html.String(html.NewRenderer(renderOpts...).Render(c, props))
		if err != nil {
			return newCommandError("render", "serialising markup", err, "Check that void elements have no children.")
		}
		fmt.Fprintln(out, markup)
	case "class":
		fmt.Fprintln(out, factory.Wrap(c, renderOpts...).Classes(props))
	case "term":
		fmt.Fprintln(out, term.NewRenderer(renderOpts...).Render(c, props))
	case "json":
		return renderJSON(cmd, c.Prepare(props, renderOpts...))
	default:
		return newCommandError("render", "selecting output format", fmt.Errorf("unknown format %q", opts.format), "Use one of html, class, term or json.")
	}
	return nil
}

type renderJSONPayload struct {
	Component string         `json:"component"`
	Tag       string         `json:"tag"`
	ClassName string         `json:"class"`
	Style     map[string]any `json:"style,omitempty"`
	Props     map[string]any `json:"props"`
	Children  any            `json:"children,omitempty"`
}

func renderJSON(cmd *cobra.Command, r cm.Rendered) error {
	payload := renderJSONPayload{
		Component: r.DisplayName,
		Tag:       r.Tag.String(),
		ClassName: r.ClassName,
		Style:     r.Style,
		Props:     r.Props,
		Children:  r.Children,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
