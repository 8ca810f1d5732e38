// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"

	"github.com/JonMunkholm/catalog-export/internal/core"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Export   ExportConfig
	Filter   FilterConfig
	Limits   LimitsConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout bounds graceful shutdown, including in-flight exports (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// Catalog source kinds.
const (
	SourceFixture  = "fixture"
	SourceCSV      = "csv"
	SourceExcel    = "excel"
	SourcePostgres = "postgres"
)

// CatalogConfig selects and tunes the catalog source.
type CatalogConfig struct {
	// Source is one of fixture, csv, excel, postgres (default: fixture)
	Source string `env:"CATALOG_SOURCE" default:"fixture"`

	// File is the path read by the csv and excel sources
	File string `env:"CATALOG_FILE"`

	// Delimiter separates columns in a csv catalog (default: ,)
	Delimiter string `env:"CATALOG_CSV_DELIMITER" default:","`

	// Sheet is the worksheet read by the excel source (default: first sheet)
	Sheet string `env:"CATALOG_SHEET"`

	// FixtureSize is the number of generated products (default: 1000)
	FixtureSize int `env:"CATALOG_FIXTURE_SIZE" default:"1000"`

	// ImageBaseURL prefixes generated image URLs
	ImageBaseURL string `env:"CATALOG_IMAGE_BASE_URL" default:"https://notelseit.beauty/novaengel/product/images/"`

	// RefreshInterval is how often the catalog is reloaded; 0 disables (default: 5m)
	RefreshInterval time.Duration `env:"CATALOG_REFRESH_INTERVAL" default:"5m"`

	// DatabaseURL is the PostgreSQL connection string, required for the postgres source.
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	DatabaseURL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	// Table is the products table read by the postgres source (default: products)
	Table string `env:"CATALOG_TABLE" default:"products"`

	MaxConns        int           `env:"DB_MAX_CONNS" default:"10"`
	MinConns        int           `env:"DB_MIN_CONNS" default:"1"`
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

// ExportConfig holds the default export settings.
type ExportConfig struct {
	JSON        bool `env:"EXPORT_JSON" default:"true"`
	CSV         bool `env:"EXPORT_CSV" default:"true"`
	WooCommerce bool `env:"EXPORT_WOOCOMMERCE" default:"true"`
	PrestaShop  bool `env:"EXPORT_PRESTASHOP" default:"true"`

	JSONFilename        string `env:"EXPORT_JSON_FILENAME" default:"products_export.json"`
	CSVFilename         string `env:"EXPORT_CSV_FILENAME" default:"products_export.csv"`
	WooCommerceFilename string `env:"EXPORT_WOOCOMMERCE_FILENAME" default:"export_woocommerce.csv"`
	PrestaShopFilename  string `env:"EXPORT_PRESTASHOP_FILENAME" default:"export_prestashop.csv"`

	// Delimiter separates cells in delimited formats (default: ,)
	Delimiter string `env:"EXPORT_CSV_DELIMITER" default:","`

	// ShowHeaders controls the generic CSV header row (default: true)
	ShowHeaders bool `env:"EXPORT_CSV_HEADERS" default:"true"`

	// Fields is the default field selection, comma-separated
	Fields []string `env:"EXPORT_FIELDS" default:"Id,EANs,Description,Price,Stock,BrandName,Gender,Families,IVA,Image"`

	// OutputDir is where the CLI writes payloads (default: current directory)
	OutputDir string `env:"EXPORT_OUTPUT_DIR" default:"."`
}

// FilterConfig holds the default filter criteria.
type FilterConfig struct {
	Brands        []string `env:"FILTER_BRANDS"`
	Categories    []string `env:"FILTER_CATEGORIES"`
	Genders       []string `env:"FILTER_GENDERS"`
	Subcategories []string `env:"FILTER_SUBCATEGORIES"`
	MinStock      int      `env:"FILTER_MIN_STOCK" default:"0"`

	// Limit caps exported products; 0 or negative means unlimited (default: 500)
	Limit       int  `env:"FILTER_LIMIT" default:"500"`
	IgnoreLimit bool `env:"FILTER_IGNORE_LIMIT" default:"false"`
}

// LimitsConfig bounds export concurrency.
type LimitsConfig struct {
	// MaxConcurrentExports is the number of parallel exports (default: 4)
	MaxConcurrentExports int `env:"EXPORT_MAX_CONCURRENT" default:"4"`

	// MaxWaitTime is how long to wait for an export slot (default: 10s)
	MaxWaitTime time.Duration `env:"EXPORT_MAX_WAIT_TIME" default:"10s"`

	// HistorySize is the number of recent exports remembered (default: 6)
	HistorySize int `env:"EXPORT_HISTORY_SIZE" default:"6"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the default rate limit per IP (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`

	// ExportLimit is requests per minute for export endpoints (default: 20)
	ExportLimit int `env:"RATE_LIMIT_EXPORT" default:"20"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`

	// RequireAPIKey enables X-API-Key authentication on /api routes (default: false)
	RequireAPIKey bool `env:"REQUIRE_API_KEY" default:"false"`

	// APIKeys is a comma-separated list of accepted keys
	APIKeys []string `env:"API_KEYS"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// ExportDefaults converts the export section to the core configuration.
func (c *Config) ExportDefaults() core.ExportConfig {
	e := c.Export
	return core.ExportConfig{
		Enabled: core.FormatFlags{
			JSON:        e.JSON,
			CSV:         e.CSV,
			WooCommerce: e.WooCommerce,
			PrestaShop:  e.PrestaShop,
		},
		Filenames: core.FormatFilenames{
			JSON:        e.JSONFilename,
			CSV:         e.CSVFilename,
			WooCommerce: e.WooCommerceFilename,
			PrestaShop:  e.PrestaShopFilename,
		},
		Delimiter:      e.Delimiter,
		ShowHeaders:    e.ShowHeaders,
		SelectedFields: append([]string{}, e.Fields...),
	}
}

// FilterDefaults converts the filter section to core criteria.
func (c *Config) FilterDefaults() core.FilterCriteria {
	f := c.Filter
	return core.FilterCriteria{
		Brands:        f.Brands,
		Categories:    f.Categories,
		Genders:       f.Genders,
		Subcategories: f.Subcategories,
		MinStock:      f.MinStock,
		Limit:         f.Limit,
		IgnoreLimit:   f.IgnoreLimit,
	}
}

// ServiceConfig assembles the core service settings.
func (c *Config) ServiceConfig() core.ServiceConfig {
	return core.ServiceConfig{
		Export:               c.ExportDefaults(),
		Filter:               c.FilterDefaults(),
		MaxConcurrentExports: c.Limits.MaxConcurrentExports,
		ExportWait:           c.Limits.MaxWaitTime,
		HistorySize:          c.Limits.HistorySize,
	}
}
