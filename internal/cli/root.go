// Package cli implements the catalogexport command line tool.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/JonMunkholm/catalog-export/internal/config"
	"github.com/JonMunkholm/catalog-export/internal/core"
	_ "github.com/JonMunkholm/catalog-export/internal/core/formats" // Register all serializers
	"github.com/JonMunkholm/catalog-export/internal/logging"
	"github.com/JonMunkholm/catalog-export/internal/source"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands.
// Tests set cfg and service directly, which skips environment loading.
type app struct {
	cfg     *config.Config
	service *core.Service
	close   func()
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "catalogexport",
		Short: "Export the product catalog to JSON, CSV, WooCommerce and PrestaShop files",
		Long: `catalogexport loads the configured product catalog, filters it, and writes
one file per output format. Settings come from the environment (or a .env
file); flags override them for a single run.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.close != nil {
				a.close()
			}
		},
	}

	root.AddCommand(newExportCommand(a))
	root.AddCommand(newPreviewCommand(a))
	root.AddCommand(newFieldsCommand(a))
	root.AddCommand(newProfilesCommand(a))
	root.AddCommand(newFormatsCommand(a))
	return root
}

// init loads configuration, connects the catalog source and takes the
// first snapshot.
func (a *app) init(ctx context.Context) error {
	if a.service != nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	var db core.DBTX
	if cfg.Catalog.Source == config.SourcePostgres {
		pool, err := source.OpenPool(ctx, cfg.Catalog)
		if err != nil {
			return err
		}
		a.close = pool.Close
		db = pool
	}

	src, err := source.New(cfg.Catalog, db)
	if err != nil {
		return err
	}

	svc := core.NewService(src, cfg.ServiceConfig())
	if _, err := svc.Refresh(ctx); err != nil {
		return fmt.Errorf("%s: %w", core.FormatUserError(err), err)
	}

	a.cfg = cfg
	a.service = svc
	return nil
}
