package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/classmate/internal/catalog"
	"github.com/alexisbeaulieu97/classmate/internal/logger"
	"github.com/alexisbeaulieu97/classmate/pkg/cm"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "classmate",
		Short:         "classmate composes utility classes and inline styles for styled components",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging and runtime warnings")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newMapCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newFetchCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger writes to the command's stderr. Warnings from the runtime are only surfaced with
// --verbose.
func (f *rootFlags) logger(cmd *cobra.Command) *logger.Logger {
	level := "warn"
	if f.verbose {
		level = "debug"
	}

	w := cmd.ErrOrStderr()
	log, err := logger.New(logger.Options{Level: level, HumanReadable: logger.IsTerminal(w), Writer: w})
	if err != nil {
		return logger.Nop()
	}
	return log
}

func (f *rootFlags) reporter(log *logger.Logger) cm.Reporter {
	if !f.verbose {
		return cm.NopReporter
	}
	return log.Reporter()
}

func (f *rootFlags) loadLibrary(cmd *cobra.Command, operation, path string) (*catalog.Library, error) {
	log := f.logger(cmd).WithFields(map[string]any{"catalog": path})
	log.Debug("loading catalog")

	lib, err := catalog.Load(path, f.reporter(log))
	if err != nil {
		return nil, newCommandError(operation, "loading catalog "+path, err, "Run 'classmate validate "+path+"' for details.")
	}
	return lib, nil
}
