package core

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// NotAvailable is the sentinel emitted wherever a selected field is undefined.
// It is always a plain string, whatever the field kind.
const NotAvailable = "N/A"

// FieldValue is one entry of a projected record.
type FieldValue struct {
	Field string
	Value any
}

// Record is a product projected onto an ordered field selection.
// Entries appear in selection order; duplicates in the selection are kept.
type Record []FieldValue

// Get returns the value of the first entry named field.
func (r Record) Get(field string) (any, bool) {
	for _, fv := range r {
		if fv.Field == field {
			return fv.Value, true
		}
	}
	return nil, false
}

// Fields returns the field names in record order.
func (r Record) Fields() []string {
	out := make([]string, len(r))
	for i, fv := range r {
		out[i] = fv.Field
	}
	return out
}

// MarshalJSON encodes the record as a JSON object preserving field order.
// Decimals are written as JSON numbers.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fv := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fv.Field)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(jsonValue(fv.Value))
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// jsonValue converts projected values to their native JSON form.
func jsonValue(v any) any {
	switch val := v.(type) {
	case decimal.Decimal:
		return json.Number(val.String())
	case []string:
		if val == nil {
			return []string{}
		}
		return val
	default:
		return v
	}
}

// Project maps each product onto fields, in selection order.
// Absent attributes and unknown ids yield NotAvailable.
func Project(products []Product, fields []string) []Record {
	records := make([]Record, len(products))
	for i, p := range products {
		records[i] = ProjectProduct(p, fields)
	}
	return records
}

// ProjectProduct projects a single product.
func ProjectProduct(p Product, fields []string) Record {
	rec := make(Record, len(fields))
	for i, f := range fields {
		v, ok := p.Attribute(f)
		if !ok {
			v = NotAvailable
		}
		rec[i] = FieldValue{Field: f, Value: v}
	}
	return rec
}
