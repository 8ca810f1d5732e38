// Package schema defines the tabular layout of supplier catalog files.
//
// Spreadsheet and CSV catalogs share one row type. Columns are named after
// the canonical field ids; list columns hold items separated by "|".
package schema

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/catalog-export/internal/core"
	"github.com/jszwec/csvutil"
)

// SubfamiliesColumn carries the raw subfamily set used by the subcategory filter.
const SubfamiliesColumn = "Subfamilies"

// ColumnSpec describes one expected catalog column.
type ColumnSpec struct {
	Name     string
	Kind     core.FieldKind
	Required bool
}

// CatalogColumns defines the catalog columns in canonical order.
var CatalogColumns = buildCatalogColumns()

func buildCatalogColumns() []ColumnSpec {
	fields := core.Fields()
	cols := make([]ColumnSpec, 0, len(fields)+1)
	for _, f := range fields {
		cols = append(cols, ColumnSpec{Name: f.ID, Kind: f.Kind, Required: f.ID == "Id"})
	}
	return append(cols, ColumnSpec{Name: SubfamiliesColumn, Kind: core.FieldList})
}

// CatalogRow is one raw catalog line, before type conversion.
type CatalogRow struct {
	Id                  string `csv:"Id"`
	EANs                string `csv:"EANs,omitempty"`
	Description         string `csv:"Description,omitempty"`
	SetContent          string `csv:"SetContent,omitempty"`
	Price               string `csv:"Price,omitempty"`
	PVR                 string `csv:"PVR,omitempty"`
	Stock               string `csv:"Stock,omitempty"`
	BrandId             string `csv:"BrandId,omitempty"`
	BrandName           string `csv:"BrandName,omitempty"`
	LineaId             string `csv:"LineaId,omitempty"`
	LineaName           string `csv:"LineaName,omitempty"`
	Gender              string `csv:"Gender,omitempty"`
	Families            string `csv:"Families,omitempty"`
	IVA                 string `csv:"IVA,omitempty"`
	Kgs                 string `csv:"Kgs,omitempty"`
	Ancho               string `csv:"Ancho,omitempty"`
	Alto                string `csv:"Alto,omitempty"`
	Fondo               string `csv:"Fondo,omitempty"`
	Fecha               string `csv:"Fecha,omitempty"`
	Contenido           string `csv:"Contenido,omitempty"`
	Gama                string `csv:"Gama,omitempty"`
	ItemId              string `csv:"ItemId,omitempty"`
	Properties          string `csv:"Properties,omitempty"`
	Tags                string `csv:"Tags,omitempty"`
	CompleteFamilies    string `csv:"CompleteFamilies,omitempty"`
	Novedad             string `csv:"Novedad,omitempty"`
	EsOferta            string `csv:"EsOferta,omitempty"`
	FechaFinalOferta    string `csv:"FechaFinalOferta,omitempty"`
	PaisFabricacion     string `csv:"PaisFabricacion,omitempty"`
	Ingredientes        string `csv:"Ingredientes,omitempty"`
	NombreColor         string `csv:"NombreColor,omitempty"`
	CompleteDescription string `csv:"CompleteDescription,omitempty"`
	Image               string `csv:"Image,omitempty"`
	Subfamilies         string `csv:"Subfamilies,omitempty"`
}

// Validate checks the required columns.
func (r CatalogRow) Validate() error {
	if core.CleanCell(r.Id) == "" {
		return errors.New("required field Id is empty")
	}
	return nil
}

// ToProduct converts the raw cells. Empty or unparseable cells become absent attributes.
func (r CatalogRow) ToProduct() core.Product {
	c := core.CleanCell
	return core.Product{
		Id:                  c(r.Id),
		EANs:                core.SplitList(c(r.EANs)),
		Description:         core.ToText(c(r.Description)),
		SetContent:          core.ToText(c(r.SetContent)),
		Price:               core.ToDecimal(c(r.Price)),
		PVR:                 core.ToDecimal(c(r.PVR)),
		Stock:               core.ToInt4(c(r.Stock)),
		BrandId:             core.ToText(c(r.BrandId)),
		BrandName:           core.ToText(c(r.BrandName)),
		LineaId:             core.ToText(c(r.LineaId)),
		LineaName:           core.ToText(c(r.LineaName)),
		Gender:              core.ToText(c(r.Gender)),
		Families:            core.SplitList(c(r.Families)),
		IVA:                 core.ToDecimal(c(r.IVA)),
		Kgs:                 core.ToDecimal(c(r.Kgs)),
		Ancho:               core.ToDecimal(c(r.Ancho)),
		Alto:                core.ToDecimal(c(r.Alto)),
		Fondo:               core.ToDecimal(c(r.Fondo)),
		Fecha:               core.ToText(c(r.Fecha)),
		Contenido:           core.ToText(c(r.Contenido)),
		Gama:                core.ToText(c(r.Gama)),
		ItemId:              core.ToText(c(r.ItemId)),
		Properties:          core.SplitList(c(r.Properties)),
		Tags:                core.SplitList(c(r.Tags)),
		CompleteFamilies:    core.SplitList(c(r.CompleteFamilies)),
		Novedad:             core.ToBool(c(r.Novedad)),
		EsOferta:            core.ToBool(c(r.EsOferta)),
		FechaFinalOferta:    core.ToText(c(r.FechaFinalOferta)),
		PaisFabricacion:     core.ToText(c(r.PaisFabricacion)),
		Ingredientes:        core.ToText(c(r.Ingredientes)),
		NombreColor:         core.ToText(c(r.NombreColor)),
		CompleteDescription: core.ToText(c(r.CompleteDescription)),
		Image:               core.ToText(c(r.Image)),
		Subfamilies:         core.SplitList(c(r.Subfamilies)),
	}
}

// NormalizeHeader maps header cells to canonical column names,
// case-insensitively. Unknown columns are kept as-is and later ignored;
// blank ones get a positional placeholder name.
func NormalizeHeader(header []string) []string {
	canonical := make(map[string]string, len(CatalogColumns))
	for _, col := range CatalogColumns {
		canonical[strings.ToLower(col.Name)] = col.Name
	}

	out := make([]string, len(header))
	for i, h := range header {
		h = core.CleanCell(h)
		if name, ok := canonical[strings.ToLower(h)]; ok {
			h = name
		} else if h == "" {
			h = fmt.Sprintf("_col%d", i+1)
		}
		out[i] = h
	}
	return out
}

// MissingRequired returns the required columns absent from a normalized header.
func MissingRequired(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	var missing []string
	for _, col := range CatalogColumns {
		if col.Required && !present[col.Name] {
			missing = append(missing, col.Name)
		}
	}
	return missing
}

// DecodeProducts reads a header row followed by data rows from r and
// converts them to products. Ids must be unique within the file. Rows are padded to the header width, so short
// spreadsheet rows are accepted. Blank lines are skipped.
func DecodeProducts(r csvutil.Reader) ([]core.Product, error) {
	raw, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", core.ErrInvalidCatalog)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	header := NormalizeHeader(raw)
	if missing := MissingRequired(header); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required column %s", core.ErrInvalidCatalog, strings.Join(missing, ", "))
	}

	pr := &paddedReader{r: r, width: len(header)}
	dec, err := csvutil.NewDecoder(pr, header...)
	if err != nil {
		return nil, fmt.Errorf("create decoder: %w", err)
	}

	var products []core.Product
	seen := make(map[string]int)
	for {
		var row CatalogRow
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decode line %d: %w", pr.line+1, err)
		}
		if err := row.Validate(); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", core.ErrInvalidCatalog, pr.line+1, err)
		}
		p, line := row.ToProduct(), pr.line+1
		if first, ok := seen[p.Id]; ok {
			return nil, fmt.Errorf("%w: line %d: duplicate Id %q (first on line %d)", core.ErrInvalidCatalog, line, p.Id, first)
		}
		seen[p.Id] = line
		products = append(products, p)
	}

	return products, nil
}

// paddedReader pads or truncates records to a fixed width and skips blank rows.
type paddedReader struct {
	r     csvutil.Reader
	width int
	line  int // 1-based data line of the last record returned
}

func (p *paddedReader) Read() ([]string, error) {
	for {
		rec, err := p.r.Read()
		if err != nil {
			return nil, err
		}
		p.line++
		if isBlank(rec) {
			continue
		}
		if len(rec) == p.width {
			return rec, nil
		}
		out := make([]string, p.width)
		copy(out, rec)
		return out, nil
	}
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
