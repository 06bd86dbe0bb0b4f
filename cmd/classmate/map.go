package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/classmate/internal/catalog"
	"github.com/alexisbeaulieu97/classmate/pkg/cm/factory"
)

type mapOptions struct {
	elements []string
	props    []string
}

func newMapCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &mapOptions{}

	cmd := &cobra.Command{
		Use:   "map <catalog> <component>",
		Short: "Build one component per element from a component's classes and variants",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd, rootFlags, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringSliceVarP(&opts.elements, "elements", "e", nil, "Comma-separated element names")
	cmd.Flags().StringArrayVarP(&opts.props, "prop", "p", nil, "Prop as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("elements")

	return cmd
}

func runMap(cmd *cobra.Command, rootFlags *rootFlags, opts *mapOptions, path, id string) error {
	lib, err := rootFlags.loadLibrary(cmd, "map", path)
	if err != nil {
		return err
	}

	props, err := catalog.ParseProps(opts.props)
	if err != nil {
		return newCommandError("map", "parsing props", err, "Pass props as --prop key=value.")
	}

	variants, err := lib.VariantMap(id, opts.elements)
	if err != nil {
		return newCommandError("map", "building variant map for "+id, err, "List each element once and check the component id.")
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ELEMENT\tRENDERS\tCLASS")
	for _, el := range opts.elements {
		c, ok := variants[el]
		if !ok {
			fmt.Fprintf(writer, "%s\t-\t(skipped)\n", el)
			continue
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", el, c.Tag().String(), factory.Wrap(c, lib.Options()...).Classes(props))
	}
	return writer.Flush()
}
