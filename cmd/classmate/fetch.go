package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/classmate/internal/catalog"
)

type fetchOptions struct {
	branch string
	depth  int
}

func newFetchCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch <url> <destination>",
		Short: "Clone a git repository of catalogs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, rootFlags, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.branch, "branch", "", "Branch to check out")
	cmd.Flags().IntVar(&opts.depth, "depth", 0, "Shallow clone depth (0 for full history)")

	return cmd
}

func runFetch(cmd *cobra.Command, rootFlags *rootFlags, opts *fetchOptions, url, dest string) error {
	log := rootFlags.logger(cmd).WithFields(map[string]any{"url": url, "destination": dest})
	log.Debug("fetching catalogs")

	result, err := catalog.Fetch(cmd.Context(), catalog.FetchOptions{
		URL:         url,
		Destination: dest,
		Branch:      opts.branch,
		Depth:       opts.depth,
	})
	if err != nil {
		return newCommandError("fetch", "cloning "+url, err, "Check the repository URL, branch and destination directory.")
	}

	out := cmd.OutOrStdout()
	if result.Cloned {
		fmt.Fprintf(out, "Cloned %s into %s\n", url, result.Destination)
	} else {
		fmt.Fprintf(out, "Using existing clone in %s\n", result.Destination)
	}
	if result.Head != "" {
		fmt.Fprintf(out, "HEAD: %s\n", result.Head)
	}
	if len(result.Catalogs) == 0 {
		fmt.Fprintln(out, "No catalogs found.")
		return nil
	}
	fmt.Fprintln(out, "Catalogs:")
	for _, c := range result.Catalogs {
		fmt.Fprintf(out, "  %s\n", c)
	}
	return nil
}
