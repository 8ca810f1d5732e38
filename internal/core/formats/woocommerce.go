package formats

import "github.com/JonMunkholm/catalog-export/internal/core"

func init() {
	core.Register(wooSerializer{})
}

var wooColumns = []fixedColumn{
	{"SKU", func(p core.Product) string { return p.Id }},
	{"Name", displayName},
	{"Description", func(p core.Product) string {
		if p.CompleteDescription.Valid {
			return p.CompleteDescription.String
		}
		return text(p.Description)
	}},
	{"Price", func(p core.Product) string { return amount(p.Price) }},
	{"Stock", quantity},
	{"Images", func(p core.Product) string { return text(p.Image) }},
}

// wooSerializer writes the WooCommerce product import layout.
type wooSerializer struct{}

func (wooSerializer) Format() core.Format { return core.FormatWooCommerce }

func (wooSerializer) Serialize(in core.SerializeInput) ([]byte, error) {
	return writeFixed(wooColumns, in.Products, in.Delimiter), nil
}
