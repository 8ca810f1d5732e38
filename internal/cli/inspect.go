package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/JonMunkholm/catalog-export/internal/core"
	"github.com/spf13/cobra"
)

func newFieldsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the exportable field ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tKIND\tDESCRIPTION")
			for _, f := range a.service.Fields() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", f.ID, f.Kind, f.Description)
			}
			return tw.Flush()
		},
	}
}

func newProfilesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the export profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tFIELDS")
			for _, p := range a.service.Profiles() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, strings.Join(p.Fields, ","))
			}
			return tw.Flush()
		},
	}
}

func newFormatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the output formats with their enable flags and filenames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg := a.service.Defaults()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FORMAT\tENABLED\tFILENAME\tLABEL")
			for _, f := range core.Registered() {
				fmt.Fprintf(tw, "%s\t%t\t%s\t%s\n", f, cfg.FormatEnabled(f), cfg.Filename(f), f.Label())
			}
			return tw.Flush()
		},
	}
}

func newPreviewCommand(a *app) *cobra.Command {
	var (
		selection selectionFlags
		index     int
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show which products and fields an export would contain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, cfg, err := selection.apply(cmd, a.service)
			if err != nil {
				return err
			}
			p, err := a.service.Preview(criteria, cfg.SelectedFields, index)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			}

			fmt.Fprintf(out, "Matched: %d\n", p.Matched)
			if p.Matched == 0 {
				return nil
			}
			fmt.Fprintf(out, "Product: %s (%d of %d)\n", p.ProductID, p.Index+1, p.Matched)
			fmt.Fprintf(out, "Present: %s\n", strings.Join(p.Validation.Valid, ", "))
			if !p.Validation.AllValid() {
				fmt.Fprintf(out, "Missing: %s\n", strings.Join(p.Validation.Missing, ", "))
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, strings.Join(p.Fields, "\t"))
			for _, rec := range p.Samples {
				cells := make([]string, len(rec))
				for i, fv := range rec {
					cells[i] = core.StringifyForCSV(fv.Value)
				}
				fmt.Fprintln(tw, strings.Join(cells, "\t"))
			}
			return tw.Flush()
		},
	}

	selection.register(cmd)
	cmd.Flags().IntVar(&index, "index", 0, "Position of the inspected product among the matches")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the preview as JSON")
	return cmd
}
