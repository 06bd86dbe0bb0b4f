package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/classmate/internal/catalog"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list <catalog>",
		Short: "List the components of a catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions, path string) error {
	lib, err := rootFlags.loadLibrary(cmd, "list", path)
	if err != nil {
		return err
	}

	entries := listEntries(lib)
	if opts.jsonOutput {
		return renderListJSON(cmd, lib.Name, entries)
	}
	return renderListTable(cmd, entries)
}

type listEntry struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Tag         string   `json:"tag"`
	Extends     string   `json:"extends,omitempty"`
	VariantKeys []string `json:"variant_keys"`
	Description string   `json:"description,omitempty"`
}

func listEntries(lib *catalog.Library) []listEntry {
	ids := lib.IDs()
	entries := make([]listEntry, 0, len(ids))
	for _, id := range ids {
		c, _ := lib.Component(id)
		def, _ := lib.Definition(id)
		entries = append(entries, listEntry{
			ID:          id,
			DisplayName: c.DisplayName(),
			Tag:         c.Tag().String(),
			Extends:     def.Extends,
			VariantKeys: c.VariantKeys(),
			Description: def.Description,
		})
	}
	return entries
}

func renderListTable(cmd *cobra.Command, entries []listEntry) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tTAG\tEXTENDS\tVARIANTS\tDISPLAY NAME")
	for _, e := range entries {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			e.Tag,
			valueOrFallback(e.Extends, "-"),
			valueOrFallback(strings.Join(e.VariantKeys, ","), "-"),
			e.DisplayName,
		)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Catalog    string      `json:"catalog"`
	Count      int         `json:"count"`
	Components []listEntry `json:"components"`
}

func renderListJSON(cmd *cobra.Command, name string, entries []listEntry) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(listJSONPayload{Catalog: name, Count: len(entries), Components: entries})
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
