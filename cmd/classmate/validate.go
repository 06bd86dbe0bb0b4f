package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/classmate/internal/config"
)

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <catalog>",
		Short: "Check a catalog for schema and reference errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, rootFlags, args[0])
		},
	}
}

func runValidate(cmd *cobra.Command, rootFlags *rootFlags, path string) error {
	rootFlags.logger(cmd).WithFields(map[string]any{"catalog": path}).Debug("validating catalog")

	cat, err := config.ParseCatalog(path)
	if err != nil {
		return newCommandError("validate", "checking catalog "+path, err, "Fix the reported field and run validate again.")
	}

	mark := "[OK]"
	if supportsUnicode(cmd.OutOrStdout()) {
		mark = "✓"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s is valid (%d components)\n", mark, cat.Name, len(cat.Components))
	return nil
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
