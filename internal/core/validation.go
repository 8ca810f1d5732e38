package core

// validation.go classifies a product's selected fields as present or absent.
//
// Validation is a diagnostic: it never fails and never blocks an export.
// Unknown ids are reported as missing, the same way the projector renders
// them as the NotAvailable sentinel.

// FieldValidation partitions a field selection for one product.
// Both lists keep selection order.
type FieldValidation struct {
	Valid   []string `json:"valid"`
	Missing []string `json:"missing"`
}

// AllValid reports whether every selected field is defined.
func (v FieldValidation) AllValid() bool {
	return len(v.Missing) == 0
}

// ValidateFields reports which of fields the product defines.
func ValidateFields(p Product, fields []string) FieldValidation {
	result := FieldValidation{
		Valid:   make([]string, 0, len(fields)),
		Missing: []string{},
	}

	for _, f := range fields {
		if _, ok := p.Attribute(f); ok {
			result.Valid = append(result.Valid, f)
		} else {
			result.Missing = append(result.Missing, f)
		}
	}

	return result
}
