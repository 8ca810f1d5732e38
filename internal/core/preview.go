package core

// PreviewSampleSize is the number of projected rows included in a preview.
const PreviewSampleSize = 10

// Preview shows what an export would contain before it is produced.
type Preview struct {
	Matched    int             `json:"matched"`    // Products passing the filter, after the limit
	Index      int             `json:"index"`      // Position of the inspected product
	ProductID  string          `json:"productId"`  // Id of the inspected product
	Validation FieldValidation `json:"validation"` // Field presence for the inspected product
	Record     Record          `json:"record"`     // Inspected product, projected
	Fields     []string        `json:"fields"`
	Samples    []Record        `json:"samples"` // First PreviewSampleSize projected rows
}

// BuildPreview filters the catalog and projects a sample onto fields.
// index selects the inspected product and is clamped to the matched range.
// An empty result yields a zero preview with Matched == 0.
func BuildPreview(catalog []Product, criteria FilterCriteria, fields []string, index int) Preview {
	filtered := FilterProducts(catalog, criteria)
	preview := Preview{
		Fields:  append([]string{}, fields...),
		Samples: []Record{},
	}
	if len(filtered) == 0 {
		preview.Validation = ValidateFields(Product{}, nil)
		return preview
	}

	if index < 0 {
		index = 0
	}
	if index >= len(filtered) {
		index = len(filtered) - 1
	}

	p := filtered[index]
	preview.Matched = len(filtered)
	preview.Index = index
	preview.ProductID = p.Id
	preview.Validation = ValidateFields(p, fields)
	preview.Record = ProjectProduct(p, fields)

	n := min(len(filtered), PreviewSampleSize)
	preview.Samples = Project(filtered[:n], fields)

	return preview
}
