package core

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Product is one catalog entry.
//
// Every exportable attribute except Id carries explicit presence: pgtype values
// and decimal.NullDecimal use their Valid flag, list attributes use a nil slice
// for "absent" (an empty non-nil slice is present and empty).
type Product struct {
	Id                  string
	EANs                []string
	Description         pgtype.Text
	SetContent          pgtype.Text
	Price               decimal.NullDecimal
	PVR                 decimal.NullDecimal
	Stock               pgtype.Int4
	BrandId             pgtype.Text
	BrandName           pgtype.Text
	LineaId             pgtype.Text
	LineaName           pgtype.Text
	Gender              pgtype.Text
	Families            []string
	IVA                 decimal.NullDecimal
	Kgs                 decimal.NullDecimal
	Ancho               decimal.NullDecimal
	Alto                decimal.NullDecimal
	Fondo               decimal.NullDecimal
	Fecha               pgtype.Text
	Contenido           pgtype.Text
	Gama                pgtype.Text
	ItemId              pgtype.Text
	Properties          []string
	Tags                []string
	CompleteFamilies    []string
	Novedad             pgtype.Bool
	EsOferta            pgtype.Bool
	FechaFinalOferta    pgtype.Text
	PaisFabricacion     pgtype.Text
	Ingredientes        pgtype.Text
	NombreColor         pgtype.Text
	CompleteDescription pgtype.Text
	Image               pgtype.Text

	// Subfamilies is the raw subfamily set used by the subcategory filter.
	// It is never exported and has no registry entry.
	Subfamilies []string
}

// Attribute returns the value of the canonical field id and whether the
// product defines it. Values are string, decimal.Decimal, int64, bool or
// []string. Unknown ids report false.
func (p Product) Attribute(id string) (any, bool) {
	switch id {
	case "Id":
		return p.Id, true
	case "EANs":
		return listValue(p.EANs)
	case "Description":
		return textValue(p.Description)
	case "SetContent":
		return textValue(p.SetContent)
	case "Price":
		return decimalValue(p.Price)
	case "PVR":
		return decimalValue(p.PVR)
	case "Stock":
		if !p.Stock.Valid {
			return nil, false
		}
		return int64(p.Stock.Int32), true
	case "BrandId":
		return textValue(p.BrandId)
	case "BrandName":
		return textValue(p.BrandName)
	case "LineaId":
		return textValue(p.LineaId)
	case "LineaName":
		return textValue(p.LineaName)
	case "Gender":
		return textValue(p.Gender)
	case "Families":
		return listValue(p.Families)
	case "IVA":
		return decimalValue(p.IVA)
	case "Kgs":
		return decimalValue(p.Kgs)
	case "Ancho":
		return decimalValue(p.Ancho)
	case "Alto":
		return decimalValue(p.Alto)
	case "Fondo":
		return decimalValue(p.Fondo)
	case "Fecha":
		return textValue(p.Fecha)
	case "Contenido":
		return textValue(p.Contenido)
	case "Gama":
		return textValue(p.Gama)
	case "ItemId":
		return textValue(p.ItemId)
	case "Properties":
		return listValue(p.Properties)
	case "Tags":
		return listValue(p.Tags)
	case "CompleteFamilies":
		return listValue(p.CompleteFamilies)
	case "Novedad":
		return boolValue(p.Novedad)
	case "EsOferta":
		return boolValue(p.EsOferta)
	case "FechaFinalOferta":
		return textValue(p.FechaFinalOferta)
	case "PaisFabricacion":
		return textValue(p.PaisFabricacion)
	case "Ingredientes":
		return textValue(p.Ingredientes)
	case "NombreColor":
		return textValue(p.NombreColor)
	case "CompleteDescription":
		return textValue(p.CompleteDescription)
	case "Image":
		return textValue(p.Image)
	}
	return nil, false
}

// StockLevel returns the stock quantity, counting an absent value as zero.
func (p Product) StockLevel() int {
	if !p.Stock.Valid {
		return 0
	}
	return int(p.Stock.Int32)
}

func textValue(t pgtype.Text) (any, bool) {
	if !t.Valid {
		return nil, false
	}
	return t.String, true
}

func decimalValue(d decimal.NullDecimal) (any, bool) {
	if !d.Valid {
		return nil, false
	}
	return d.Decimal, true
}

func boolValue(b pgtype.Bool) (any, bool) {
	if !b.Valid {
		return nil, false
	}
	return b.Bool, true
}

func listValue(l []string) (any, bool) {
	if l == nil {
		return nil, false
	}
	return l, true
}
