// Package core provides the export pipeline for the product catalog.
// This package has no UI or transport dependencies and can be used by any frontend.
package core

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// FieldKind represents the value type of a canonical field.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldDecimal
	FieldInteger
	FieldBool
	FieldList
)

// String returns the lowercase kind name used in JSON responses.
func (k FieldKind) String() string {
	switch k {
	case FieldDecimal:
		return "decimal"
	case FieldInteger:
		return "integer"
	case FieldBool:
		return "bool"
	case FieldList:
		return "list"
	default:
		return "text"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k FieldKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// FieldDescriptor describes one exportable product attribute.
type FieldDescriptor struct {
	ID          string    `json:"id"`          // Matches a Product attribute name
	Label       string    `json:"label"`       // Display name
	Description string    `json:"description"` // Short explanation for the settings UI
	Kind        FieldKind `json:"kind"`
}

// ExportProfile is a named, ordered field selection.
// Field order determines column order for delimited formats.
type ExportProfile struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
	Preset bool     `json:"preset"`
}

// FilterCriteria restricts which products reach the serializers.
// Empty allow-lists mean no restriction.
type FilterCriteria struct {
	Brands        []string `json:"brands"`
	Categories    []string `json:"categories"`
	Genders       []string `json:"genders"`
	Subcategories []string `json:"subcategories"`
	MinStock      int      `json:"minStock"`
	Limit         int      `json:"limit"`
	IgnoreLimit   bool     `json:"ignoreLimit"`
}

// Unlimited reports whether the result cap is disabled.
// A zero or negative limit is treated as unlimited.
func (c FilterCriteria) Unlimited() bool {
	return c.IgnoreLimit || c.Limit <= 0
}

// ActiveFilters returns the number of allow-list entries in effect.
func (c FilterCriteria) ActiveFilters() int {
	return len(c.Brands) + len(c.Categories) + len(c.Genders) + len(c.Subcategories)
}

// FormatFlags carries one enable flag per output format.
type FormatFlags struct {
	JSON        bool `json:"json"`
	CSV         bool `json:"csv"`
	WooCommerce bool `json:"woocommerce"`
	PrestaShop  bool `json:"prestashop"`
}

// FormatFilenames carries one output filename per format.
// Empty names fall back to the format default.
type FormatFilenames struct {
	JSON        string `json:"json"`
	CSV         string `json:"csv"`
	WooCommerce string `json:"woocommerce"`
	PrestaShop  string `json:"prestashop"`
}

// ExportConfig is the immutable export configuration passed into each export.
type ExportConfig struct {
	Enabled        FormatFlags     `json:"enabled"`
	Filenames      FormatFilenames `json:"filenames"`
	Delimiter      string          `json:"delimiter"`
	ShowHeaders    bool            `json:"showHeaders"`
	SelectedFields []string        `json:"selectedFields"`
}

// DefaultDelimiter is used when an ExportConfig carries no delimiter.
const DefaultDelimiter = ","

// WithDefaults returns a copy with an empty delimiter replaced by DefaultDelimiter.
func (c ExportConfig) WithDefaults() ExportConfig {
	if c.Delimiter == "" {
		c.Delimiter = DefaultDelimiter
	}
	return c
}

// Payload is a serialized export ready for delivery.
type Payload struct {
	Format      Format
	Filename    string
	ContentType string
	Data        []byte
	Records     int // Number of products serialized
}

// ExportRecord describes a completed export for the recent-exports list.
type ExportRecord struct {
	ID        string    `json:"id"`
	Format    Format    `json:"format"`
	Filename  string    `json:"filename"`
	Records   int       `json:"records"`
	Bytes     int       `json:"bytes"`
	CreatedAt time.Time `json:"createdAt"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
}
