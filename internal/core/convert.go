package core

// convert.go turns raw cell text from tabular catalog sources into the
// presence-typed attributes of Product.
//
// Supplier sheets are messy: currency symbols, European decimal commas,
// Excel formula prefixes, yes/no booleans. Every To* function returns an
// invalid (absent) value for empty or unparseable input, never an error, so a
// bad cell shows up in exports as NotAvailable instead of failing the load.

import (
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ListSeparator separates list items inside a single tabular cell.
const ListSeparator = "|"

// ToText converts a cell to pgtype.Text.
// Returns invalid if the cell is empty or only whitespace.
func ToText(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

// ToDecimal converts a cell to decimal.NullDecimal.
// Currency symbols are stripped. A lone comma is read as the decimal mark
// ("12,5"); when both separators appear the last one is the decimal mark.
func ToDecimal(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}

	for _, sym := range []string{"€", "$", "£"} {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")

	comma := strings.LastIndex(s, ",")
	dot := strings.LastIndex(s, ".")
	switch {
	case comma >= 0 && dot >= 0 && comma > dot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case comma >= 0 && dot >= 0:
		s = strings.ReplaceAll(s, ",", "")
	case comma >= 0 && strings.Count(s, ",") == 1:
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// ToInt4 converts a cell to pgtype.Int4.
// Decimal input is truncated ("12.0" -> 12). Out-of-range values are invalid.
func ToInt4(s string) pgtype.Int4 {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Int4{}
	}
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return pgtype.Int4{Int32: int32(n), Valid: true}
	}

	d := ToDecimal(s)
	if !d.Valid {
		return pgtype.Int4{}
	}
	n := d.Decimal.IntPart()
	if n != int64(int32(n)) {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(n), Valid: true}
}

// ToBool converts a cell to pgtype.Bool.
// Accepts true/false, yes/no, si/no, t/f, y/n, 1/0.
func ToBool(s string) pgtype.Bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y", "si", "sí", "1":
		return pgtype.Bool{Bool: true, Valid: true}
	case "false", "f", "no", "n", "0":
		return pgtype.Bool{Bool: false, Valid: true}
	default:
		return pgtype.Bool{}
	}
}

// SplitList splits a cell on ListSeparator, trimming items and dropping
// empty ones. An empty cell yields nil (absent).
func SplitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ListSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CleanCell removes common spreadsheet artifacts from a cell value: a byte
// order mark, surrounding whitespace and an Excel formula prefix (="...").
// Quote characters inside the value are data and are kept; the CSV reader
// has already removed the field quoting.
func CleanCell(s string) string {
	s = strings.TrimSpace(strings.TrimPrefix(s, "\ufeff"))

	switch {
	case len(s) >= 3 && strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\""):
		return s[2 : len(s)-1]
	case strings.HasPrefix(s, "="):
		return s[1:]
	}
	return s
}
