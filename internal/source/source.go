// Package source materializes catalog snapshots for the export service.
//
// Every source returns a fresh []core.Product on each Load; the service
// swaps the snapshot atomically, so sources never share state with exports.
package source

import (
	"fmt"

	"github.com/JonMunkholm/catalog-export/internal/config"
	"github.com/JonMunkholm/catalog-export/internal/core"
)

// New picks the catalog source named by cfg.Source.
// db is only used by the postgres source and may be nil otherwise.
func New(cfg config.CatalogConfig, db core.DBTX) (core.Source, error) {
	switch cfg.Source {
	case config.SourceFixture, "":
		return NewFixture(cfg.FixtureSize, cfg.ImageBaseURL), nil
	case config.SourceCSV:
		return NewCSV(cfg.File, cfg.Delimiter), nil
	case config.SourceExcel:
		return NewExcel(cfg.File, cfg.Sheet), nil
	case config.SourcePostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres source: no database connection")
		}
		return NewPostgres(db, cfg.Table), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}
