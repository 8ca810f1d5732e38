package core

import "fmt"

// Export runs the pipeline for one format: filter, project when the format
// consumes records, serialize, and name the payload.
//
// Export performs no I/O and ignores the enable flags; delivery layers decide
// which formats to offer. The only error is an unknown or unregistered format.
func Export(catalog []Product, criteria FilterCriteria, cfg ExportConfig, format Format) (Payload, error) {
	if !format.Valid() {
		return Payload{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	serializer, ok := Get(format)
	if !ok {
		return Payload{}, fmt.Errorf("%w: no serializer registered for %q", ErrUnknownFormat, format)
	}

	cfg = cfg.WithDefaults()
	filtered := FilterProducts(catalog, criteria)

	in := SerializeInput{
		Fields:      cfg.SelectedFields,
		Delimiter:   cfg.Delimiter,
		ShowHeaders: cfg.ShowHeaders,
	}
	if format.Projected() {
		in.Records = Project(filtered, cfg.SelectedFields)
	} else {
		in.Products = filtered
	}

	data, err := serializer.Serialize(in)
	if err != nil {
		return Payload{}, fmt.Errorf("serialize %s: %w", format, err)
	}

	return Payload{
		Format:      format,
		Filename:    cfg.Filename(format),
		ContentType: format.ContentType(),
		Data:        data,
		Records:     len(filtered),
	}, nil
}
