package formats

import (
	"strings"

	"github.com/JonMunkholm/catalog-export/internal/core"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// fixedColumn is one column of a fixed-schema layout.
type fixedColumn struct {
	header string
	value  func(core.Product) string
}

// writeFixed renders products with a predetermined column layout.
// The header row is always written; the field selection is never consulted.
func writeFixed(columns []fixedColumn, products []core.Product, delim string) []byte {
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.header
	}

	lines := make([]string, 0, len(products)+1)
	lines = append(lines, core.JoinCSVRow(headers, delim))

	cells := make([]string, len(columns))
	for _, p := range products {
		for i, c := range columns {
			cells[i] = c.value(p)
		}
		lines = append(lines, core.JoinCSVRow(cells, delim))
	}

	return []byte(strings.Join(lines, "\n"))
}

func text(t pgtype.Text) string {
	if !t.Valid {
		return core.NotAvailable
	}
	return t.String
}

func amount(d decimal.NullDecimal) string {
	if !d.Valid {
		return core.NotAvailable
	}
	return d.Decimal.String()
}

func quantity(p core.Product) string {
	v, ok := p.Attribute("Stock")
	if !ok {
		return core.NotAvailable
	}
	return core.StringifyForCSV(v)
}

// displayName is BrandName followed by Description.
func displayName(p core.Product) string {
	return text(p.BrandName) + " " + text(p.Description)
}
