package formats

import "github.com/JonMunkholm/catalog-export/internal/core"

func init() {
	core.Register(prestaSerializer{})
}

var prestaColumns = []fixedColumn{
	{"ID", func(p core.Product) string { return p.Id }},
	{"Name", displayName},
	{"Reference", func(p core.Product) string {
		if p.ItemId.Valid {
			return p.ItemId.String
		}
		return p.Id
	}},
	{"Price", func(p core.Product) string { return amount(p.Price) }},
	{"Quantity", quantity},
	{"Image URL", func(p core.Product) string { return text(p.Image) }},
}

// prestaSerializer writes the PrestaShop product import layout.
type prestaSerializer struct{}

func (prestaSerializer) Format() core.Format { return core.FormatPrestaShop }

func (prestaSerializer) Serialize(in core.SerializeInput) ([]byte, error) {
	return writeFixed(prestaColumns, in.Products, in.Delimiter), nil
}
