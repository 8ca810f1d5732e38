package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/JonMunkholm/catalog-export/internal/core"
	"github.com/JonMunkholm/catalog-export/internal/schema"
)

// CSV loads a delimited catalog file.
type CSV struct {
	path  string
	comma rune
}

// NewCSV creates a source reading path. An empty or multi-character
// delimiter falls back to ",".
func NewCSV(path, delimiter string) *CSV {
	comma := ','
	if utf8.RuneCountInString(delimiter) == 1 {
		comma, _ = utf8.DecodeRuneInString(delimiter)
	}
	return &CSV{path: path, comma: comma}
}

func (c *CSV) Name() string { return "csv" }

func (c *CSV) Load(ctx context.Context) ([]core.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = c.comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	products, err := schema.DecodeProducts(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.path, err)
	}
	return products, nil
}
