package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// StringifyForCSV renders a projected value as CSV cell text.
//
//   - string (including NotAvailable): unchanged
//   - decimal.Decimal: canonical form without trailing zeros ("21", "0.05")
//   - integers: base 10
//   - bool: "true" / "false"
//   - []string: items joined by "," with no spaces
//   - nil: empty string
//
// Any other value falls back to fmt.Sprint.
func StringifyForCSV(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case decimal.Decimal:
		return val.String()
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case bool:
		return strconv.FormatBool(val)
	case []string:
		return strings.Join(val, ",")
	default:
		return fmt.Sprint(v)
	}
}

// QuoteCSV wraps s in double quotes, doubling any embedded double quote.
func QuoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// JoinCSVRow quotes every cell and joins them with delim.
// A zero-cell row is the empty string.
func JoinCSVRow(cells []string, delim string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = QuoteCSV(c)
	}
	return strings.Join(quoted, delim)
}
