package source

import (
	"context"
	"fmt"
	"io"

	"github.com/JonMunkholm/catalog-export/internal/core"
	"github.com/JonMunkholm/catalog-export/internal/schema"
	"github.com/jszwec/csvutil"
	"github.com/xuri/excelize/v2"
)

// Excel loads a catalog from one worksheet of an .xlsx workbook.
type Excel struct {
	path  string
	sheet string
}

// NewExcel creates a source reading sheet from path.
// An empty sheet name selects the first worksheet.
func NewExcel(path, sheet string) *Excel {
	return &Excel{path: path, sheet: sheet}
}

func (e *Excel) Name() string { return "excel" }

func (e *Excel) Load(ctx context.Context) ([]core.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(e.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := e.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: %w: workbook has no sheets", e.path, core.ErrInvalidCatalog)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	products, err := schema.DecodeProducts(&rowsReader{rows: rows})
	if err != nil {
		return nil, fmt.Errorf("%s [%s]: %w", e.path, sheet, err)
	}
	return products, nil
}

// rowsReader feeds worksheet rows to the catalog decoder.
type rowsReader struct {
	rows [][]string
	next int
}

func (r *rowsReader) Read() ([]string, error) {
	if r.next >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.next]
	r.next++
	return row, nil
}

var _ csvutil.Reader = (*rowsReader)(nil)
