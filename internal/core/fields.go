package core

import "fmt"

// canonicalFields lists the 33 exportable attributes in registry order.
var canonicalFields = []FieldDescriptor{
	{ID: "Id", Label: "Id", Description: "Unique product ID", Kind: FieldText},
	{ID: "EANs", Label: "EANs", Description: "EAN barcodes", Kind: FieldList},
	{ID: "Description", Label: "Description", Description: "Short name / description", Kind: FieldText},
	{ID: "SetContent", Label: "SetContent", Description: "Contents of the set", Kind: FieldText},
	{ID: "Price", Label: "Price", Description: "Purchase price", Kind: FieldDecimal},
	{ID: "PVR", Label: "PVR", Description: "Recommended retail price", Kind: FieldDecimal},
	{ID: "Stock", Label: "Stock", Description: "Total stock on hand", Kind: FieldInteger},
	{ID: "BrandId", Label: "BrandId", Description: "Brand ID", Kind: FieldText},
	{ID: "BrandName", Label: "BrandName", Description: "Brand name", Kind: FieldText},
	{ID: "LineaId", Label: "LineaId", Description: "Product line ID", Kind: FieldText},
	{ID: "LineaName", Label: "LineaName", Description: "Product line name", Kind: FieldText},
	{ID: "Gender", Label: "Gender", Description: "Target gender", Kind: FieldText},
	{ID: "Families", Label: "Families", Description: "Main categories", Kind: FieldList},
	{ID: "IVA", Label: "IVA", Description: "VAT rate (%)", Kind: FieldDecimal},
	{ID: "Kgs", Label: "Kgs", Description: "Weight in kg", Kind: FieldDecimal},
	{ID: "Ancho", Label: "Ancho", Description: "Width (mm)", Kind: FieldDecimal},
	{ID: "Alto", Label: "Alto", Description: "Height (mm)", Kind: FieldDecimal},
	{ID: "Fondo", Label: "Fondo", Description: "Depth (mm)", Kind: FieldDecimal},
	{ID: "Fecha", Label: "Fecha", Description: "Creation date", Kind: FieldText},
	{ID: "Contenido", Label: "Contenido", Description: "Capacity (ml/oz)", Kind: FieldText},
	{ID: "Gama", Label: "Gama", Description: "Product range", Kind: FieldText},
	{ID: "ItemId", Label: "ItemId", Description: "Internal item ID", Kind: FieldText},
	{ID: "Properties", Label: "Properties", Description: "Technical properties", Kind: FieldList},
	{ID: "Tags", Label: "Tags", Description: "Marketing tags", Kind: FieldList},
	{ID: "CompleteFamilies", Label: "CompleteFamilies", Description: "Full category tree", Kind: FieldList},
	{ID: "Novedad", Label: "Novedad", Description: "New arrival flag", Kind: FieldBool},
	{ID: "EsOferta", Label: "EsOferta", Description: "On offer flag", Kind: FieldBool},
	{ID: "FechaFinalOferta", Label: "FechaFinalOferta", Description: "Offer end date", Kind: FieldText},
	{ID: "PaisFabricacion", Label: "PaisFabricacion", Description: "Country of manufacture", Kind: FieldText},
	{ID: "Ingredientes", Label: "Ingredientes", Description: "INCI / ingredients", Kind: FieldText},
	{ID: "NombreColor", Label: "NombreColor", Description: "Color variant", Kind: FieldText},
	{ID: "CompleteDescription", Label: "CompleteDescription", Description: "Extended description", Kind: FieldText},
	{ID: "Image", Label: "Image", Description: "Mapped image URL", Kind: FieldText},
}

// fieldIndex maps field id to its position in canonicalFields.
var fieldIndex = buildFieldIndex(canonicalFields)

// buildFieldIndex panics on a duplicate id; the registry is fixed at compile time.
func buildFieldIndex(fields []FieldDescriptor) map[string]int {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, exists := idx[f.ID]; exists {
			panic(fmt.Sprintf("field already registered: %s", f.ID))
		}
		idx[f.ID] = i
	}
	return idx
}

// Fields returns all canonical field descriptors in registry order.
// The returned slice is a copy.
func Fields() []FieldDescriptor {
	out := make([]FieldDescriptor, len(canonicalFields))
	copy(out, canonicalFields)
	return out
}

// FieldIDs returns the canonical field ids in registry order.
func FieldIDs() []string {
	ids := make([]string, len(canonicalFields))
	for i, f := range canonicalFields {
		ids[i] = f.ID
	}
	return ids
}

// LookupField returns the descriptor for id.
func LookupField(id string) (FieldDescriptor, bool) {
	i, ok := fieldIndex[id]
	if !ok {
		return FieldDescriptor{}, false
	}
	return canonicalFields[i], true
}

// IsCanonicalField reports whether id names a registry field.
func IsCanonicalField(id string) bool {
	_, ok := fieldIndex[id]
	return ok
}

// FieldCount returns the number of canonical fields.
func FieldCount() int {
	return len(canonicalFields)
}

// UnknownFields returns the ids in fields that are not in the registry, in order.
// Unknown ids are never fatal; this is for diagnostics only.
func UnknownFields(fields []string) []string {
	var unknown []string
	for _, f := range fields {
		if !IsCanonicalField(f) {
			unknown = append(unknown, f)
		}
	}
	return unknown
}
