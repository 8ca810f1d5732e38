package core

import (
	"fmt"
	"strings"
)

// Format identifies an output dialect.
type Format string

const (
	FormatJSON        Format = "json"
	FormatCSV         Format = "csv"
	FormatWooCommerce Format = "woocommerce"
	FormatPrestaShop  Format = "prestashop"
)

// formatSpec is the static per-format accessor table entry.
type formatSpec struct {
	label           string
	defaultFilename string
	contentType     string
	projected       bool // Consumes projected records instead of raw products
	enabled         func(ExportConfig) bool
	filename        func(ExportConfig) string
}

// formatOrder is the canonical order used for listings and multi-format exports.
var formatOrder = []Format{FormatJSON, FormatCSV, FormatWooCommerce, FormatPrestaShop}

var formatSpecs = map[Format]formatSpec{
	FormatJSON: {
		label:           "JSON Catalog",
		defaultFilename: "products_export.json",
		contentType:     "application/json",
		projected:       true,
		enabled:         func(c ExportConfig) bool { return c.Enabled.JSON },
		filename:        func(c ExportConfig) string { return c.Filenames.JSON },
	},
	FormatCSV: {
		label:           "CSV Generic",
		defaultFilename: "products_export.csv",
		contentType:     "text/csv",
		projected:       true,
		enabled:         func(c ExportConfig) bool { return c.Enabled.CSV },
		filename:        func(c ExportConfig) string { return c.Filenames.CSV },
	},
	FormatWooCommerce: {
		label:           "WordPress / WooCommerce",
		defaultFilename: "export_woocommerce.csv",
		contentType:     "text/csv",
		enabled:         func(c ExportConfig) bool { return c.Enabled.WooCommerce },
		filename:        func(c ExportConfig) string { return c.Filenames.WooCommerce },
	},
	FormatPrestaShop: {
		label:           "PrestaShop",
		defaultFilename: "export_prestashop.csv",
		contentType:     "text/csv",
		enabled:         func(c ExportConfig) bool { return c.Enabled.PrestaShop },
		filename:        func(c ExportConfig) string { return c.Filenames.PrestaShop },
	},
}

// Formats returns all formats in canonical order.
func Formats() []Format {
	return append([]Format{}, formatOrder...)
}

// ParseFormat resolves a format id, accepting a few common aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "csv", "generic", "genericcsv":
		return FormatCSV, nil
	case "woocommerce", "woo":
		return FormatWooCommerce, nil
	case "prestashop", "presta":
		return FormatPrestaShop, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Label returns the display name of the format.
func (f Format) Label() string {
	return formatSpecs[f].label
}

// DefaultFilename returns the filename used when none is configured.
func (f Format) DefaultFilename() string {
	return formatSpecs[f].defaultFilename
}

// ContentType returns the MIME type of the payload.
func (f Format) ContentType() string {
	return formatSpecs[f].contentType
}

// Projected reports whether the format serializes projected records.
// Fixed-schema formats consume the filtered products directly.
func (f Format) Projected() bool {
	return formatSpecs[f].projected
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	_, ok := formatSpecs[f]
	return ok
}

// FormatEnabled reports whether c enables format f.
func (c ExportConfig) FormatEnabled(f Format) bool {
	spec, ok := formatSpecs[f]
	if !ok {
		return false
	}
	return spec.enabled(c)
}

// Filename returns the configured filename for f, falling back to the default.
func (c ExportConfig) Filename(f Format) string {
	spec, ok := formatSpecs[f]
	if !ok {
		return ""
	}
	if name := strings.TrimSpace(spec.filename(c)); name != "" {
		return name
	}
	return spec.defaultFilename
}

// EnabledFormats lists the formats cfg enables, in canonical order.
func EnabledFormats(cfg ExportConfig) []Format {
	var out []Format
	for _, f := range formatOrder {
		if cfg.FormatEnabled(f) {
			out = append(out, f)
		}
	}
	return out
}
