package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/JonMunkholm/catalog-export/internal/config"
	"github.com/JonMunkholm/catalog-export/internal/core"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultTable is the products table read when none is configured.
const DefaultTable = "products"

// productColumns lists the selected columns in scan order.
// List columns are text[]; NULL arrays scan to nil (absent).
var productColumns = []string{
	"id", "eans", "description", "set_content", "price", "pvr", "stock",
	"brand_id", "brand_name", "linea_id", "linea_name", "gender", "families",
	"iva", "kgs", "ancho", "alto", "fondo", "fecha", "contenido", "gama",
	"item_id", "properties", "tags", "complete_families", "novedad", "es_oferta",
	"fecha_final_oferta", "pais_fabricacion", "ingredientes", "nombre_color",
	"complete_description", "image", "subfamilies",
}

// Postgres loads the catalog from a products table.
type Postgres struct {
	db    core.DBTX
	query string
}

// NewPostgres creates a source reading table through db.
// table may be schema-qualified ("catalog.products").
func NewPostgres(db core.DBTX, table string) *Postgres {
	return &Postgres{db: db, query: SelectProductsQuery(table)}
}

func (p *Postgres) Name() string { return "postgres" }

// SelectProductsQuery builds the catalog query for table with the
// identifier quoted. Rows come back in id order.
func SelectProductsQuery(table string) string {
	if table == "" {
		table = DefaultTable
	}
	ident := pgx.Identifier(strings.Split(table, ".")).Sanitize()
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY id", strings.Join(productColumns, ", "), ident)
}

func (p *Postgres) Load(ctx context.Context) ([]core.Product, error) {
	rows, err := p.db.Query(ctx, p.query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}

	seen := make(map[string]struct{}, len(products))
	for i, prod := range products {
		if _, ok := seen[prod.Id]; ok {
			return nil, fmt.Errorf("%w: row %d: duplicate id %q", core.ErrInvalidCatalog, i+1, prod.Id)
		}
		seen[prod.Id] = struct{}{}
	}
	return products, nil
}

// scanProduct maps one row onto a Product. pgtype values and
// decimal.NullDecimal carry NULL as "absent".
func scanProduct(row pgx.CollectableRow) (core.Product, error) {
	var p core.Product
	err := row.Scan(
		&p.Id, &p.EANs, &p.Description, &p.SetContent, &p.Price, &p.PVR, &p.Stock,
		&p.BrandId, &p.BrandName, &p.LineaId, &p.LineaName, &p.Gender, &p.Families,
		&p.IVA, &p.Kgs, &p.Ancho, &p.Alto, &p.Fondo, &p.Fecha, &p.Contenido, &p.Gama,
		&p.ItemId, &p.Properties, &p.Tags, &p.CompleteFamilies, &p.Novedad, &p.EsOferta,
		&p.FechaFinalOferta, &p.PaisFabricacion, &p.Ingredientes, &p.NombreColor,
		&p.CompleteDescription, &p.Image, &p.Subfamilies,
	)
	return p, err
}

// OpenPool connects to the catalog database described by cfg and verifies
// the connection.
func OpenPool(ctx context.Context, cfg config.CatalogConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}
