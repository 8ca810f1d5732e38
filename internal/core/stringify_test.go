package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestStringifyForCSV(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "Clinique", "Clinique"},
		{"sentinel", NotAvailable, "N/A"},
		{"decimal without trailing zeros", decimal.RequireFromString("21.00"), "21"},
		{"small decimal", decimal.RequireFromString("0.05"), "0.05"},
		{"int64", int64(1999), "1999"},
		{"int", 7, "7"},
		{"bool", false, "false"},
		{"list", []string{"Perfumes", "Female"}, "Perfumes,Female"},
		{"empty list", []string{}, ""},
		{"fallback", 1.5, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringifyForCSV(tt.in); got != tt.want {
				t.Errorf("StringifyForCSV(%#v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuoteCSV(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", `""`},
		{"plain", `"plain"`},
		{`He said "hi"`, `"He said ""hi"""`},
		{"a,b;c", `"a,b;c"`},
	}
	for _, tt := range tests {
		if got := QuoteCSV(tt.in); got != tt.want {
			t.Errorf("QuoteCSV(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestJoinCSVRow(t *testing.T) {
	if got := JoinCSVRow([]string{"a", `b"`}, ";"); got != `"a";"b"""` {
		t.Errorf("JoinCSVRow = %s", got)
	}
	if got := JoinCSVRow(nil, ","); got != "" {
		t.Errorf("JoinCSVRow(nil) = %q, want empty", got)
	}
}
