package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JonMunkholm/catalog-export/internal/core"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	selection selectionFlags
	formats   []string
	outDir    string
	stdout    bool
	delimiter string
	noHeaders bool
}

func newExportCommand(a *app) *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write export files for the enabled (or requested) formats",
		Long: `Export filters the catalog once and writes every format concurrently.
Without --format the formats enabled in the configuration are written;
naming formats explicitly exports exactly those.`,
		Example: `  catalogexport export --out ./out
  catalogexport export --format csv --brand Clinique --fields Id,Price --stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, a, opts)
		},
	}

	opts.selection.register(cmd)
	fl := cmd.Flags()
	fl.StringSliceVar(&opts.formats, "format", nil, "Formats to write: json, csv, woocommerce, prestashop")
	fl.StringVarP(&opts.outDir, "out", "o", "", "Output directory (default from EXPORT_OUTPUT_DIR)")
	fl.BoolVar(&opts.stdout, "stdout", false, "Write a single format to standard output")
	fl.StringVar(&opts.delimiter, "delimiter", "", "Cell delimiter for delimited formats")
	fl.BoolVar(&opts.noHeaders, "no-headers", false, "Omit the header row of the generic CSV")
	return cmd
}

func runExport(cmd *cobra.Command, a *app, opts *exportOptions) error {
	criteria, cfg, err := opts.selection.apply(cmd, a.service)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("delimiter") {
		cfg.Delimiter = opts.delimiter
	}
	if opts.noHeaders {
		cfg.ShowHeaders = false
	}

	if len(opts.formats) > 0 {
		flags, err := requestedFormats(opts.formats)
		if err != nil {
			return err
		}
		cfg.Enabled = flags
	}

	if opts.stdout && len(core.EnabledFormats(cfg)) != 1 {
		return errors.New("--stdout needs exactly one format; use --format")
	}

	payloads, err := a.service.ExportEnabled(cmd.Context(), criteria, cfg)
	if err != nil {
		return err
	}

	if opts.stdout {
		_, err := cmd.OutOrStdout().Write(payloads[0].Data)
		return err
	}

	dir := opts.outDir
	if dir == "" {
		dir = a.cfg.Export.OutputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, p := range payloads {
		path := filepath.Join(dir, p.Filename)
		if err := os.WriteFile(path, p.Data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", p.Format, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s (%d products, %d bytes)\n", p.Format, path, p.Records, len(p.Data))
	}
	return nil
}

// requestedFormats turns --format values into enable flags.
func requestedFormats(names []string) (core.FormatFlags, error) {
	var flags core.FormatFlags
	for _, name := range names {
		f, err := core.ParseFormat(name)
		if err != nil {
			return flags, err
		}
		switch f {
		case core.FormatJSON:
			flags.JSON = true
		case core.FormatCSV:
			flags.CSV = true
		case core.FormatWooCommerce:
			flags.WooCommerce = true
		case core.FormatPrestaShop:
			flags.PrestaShop = true
		}
	}
	return flags, nil
}
