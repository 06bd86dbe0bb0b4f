package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/classmate/internal/tui"
)

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <catalog>",
		Short: "Interactively preview catalog components in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return newCommandError("preview", "starting the previewer", errors.New("stdin is not a terminal"), "Run preview from an interactive shell, or use 'classmate render' in scripts.")
			}

			lib, err := rootFlags.loadLibrary(cmd, "preview", args[0])
			if err != nil {
				return err
			}

			if err := tui.Run(lib); err != nil {
				return newCommandError("preview", "running the previewer", err, "Check that your terminal supports full-screen applications.")
			}
			return nil
		},
	}
}
