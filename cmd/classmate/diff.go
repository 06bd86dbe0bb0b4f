package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/classmate/internal/catalog"
	"github.com/alexisbeaulieu97/classmate/pkg/cm/factory"
	"github.com/alexisbeaulieu97/classmate/pkg/diff"
)

type diffOptions struct {
	from []string
	to   []string
}

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <catalog> <component> [other-component]",
		Short: "Show how the final classes change between two prop sets or two components",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			other := args[1]
			if len(args) == 3 {
				other = args[2]
			}
			return runDiff(cmd, rootFlags, opts, args[0], args[1], other)
		},
	}

	cmd.Flags().StringArrayVar(&opts.from, "from", nil, "Prop for the left side as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&opts.to, "to", nil, "Prop for the right side as key=value (repeatable)")

	return cmd
}

func runDiff(cmd *cobra.Command, rootFlags *rootFlags, opts *diffOptions, path, left, right string) error {
	lib, err := rootFlags.loadLibrary(cmd, "diff", path)
	if err != nil {
		return err
	}

	before, err := diffSide(lib, left, opts.from)
	if err != nil {
		return err
	}
	after, err := diffSide(lib, right, opts.to)
	if err != nil {
		return err
	}

	out := diff.Classes(before, after, diffLabel(left, opts.from), diffLabel(right, opts.to))
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "No class changes.")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func diffSide(lib *catalog.Library, id string, pairs []string) (string, error) {
	c, ok := lib.Component(id)
	if !ok {
		return "", newCommandError("diff", "looking up component "+id, fmt.Errorf("component %q not found", id), "Run 'classmate list' to see available components.")
	}

	props, err := catalog.ParseProps(pairs)
	if err != nil {
		return "", newCommandError("diff", "parsing props", err, "Pass props as --from key=value or --to key=value.")
	}

	return factory.Wrap(c, lib.Options()...).Classes(props), nil
}

func diffLabel(id string, pairs []string) string {
	if len(pairs) == 0 {
		return id
	}
	return id + " " + strings.Join(pairs, " ")
}
