package cli

import (
	"github.com/JonMunkholm/catalog-export/internal/core"
	"github.com/spf13/cobra"
)

// selectionFlags are the filter and field-selection flags shared by
// export and preview. Only flags set on the command line override the
// configured defaults.
type selectionFlags struct {
	brands        []string
	categories    []string
	genders       []string
	subcategories []string
	minStock      int
	limit         int
	ignoreLimit   bool
	fields        []string
	profile       string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringSliceVar(&f.brands, "brand", nil, "Only these brands (repeatable, comma-separated)")
	fl.StringSliceVar(&f.categories, "category", nil, "Only products in these families")
	fl.StringSliceVar(&f.genders, "gender", nil, "Only these genders")
	fl.StringSliceVar(&f.subcategories, "subcategory", nil, "Only products in these subfamilies")
	fl.IntVar(&f.minStock, "min-stock", 0, "Minimum stock on hand")
	fl.IntVar(&f.limit, "limit", 0, "Maximum number of products (0 = unlimited)")
	fl.BoolVar(&f.ignoreLimit, "ignore-limit", false, "Export every matching product")
	fl.StringSliceVarP(&f.fields, "fields", "f", nil, "Field ids for JSON and CSV, in column order")
	fl.StringVarP(&f.profile, "profile", "p", "", "Use the fields of a saved or preset profile")
}

// apply layers the flags the user set over the service defaults.
func (f *selectionFlags) apply(cmd *cobra.Command, svc *core.Service) (core.FilterCriteria, core.ExportConfig, error) {
	criteria, cfg := svc.Defaults()
	changed := cmd.Flags().Changed

	if changed("brand") {
		criteria.Brands = f.brands
	}
	if changed("category") {
		criteria.Categories = f.categories
	}
	if changed("gender") {
		criteria.Genders = f.genders
	}
	if changed("subcategory") {
		criteria.Subcategories = f.subcategories
	}
	if changed("min-stock") {
		criteria.MinStock = f.minStock
	}
	if changed("limit") {
		criteria.Limit = f.limit
	}
	if changed("ignore-limit") {
		criteria.IgnoreLimit = f.ignoreLimit
	}

	fields, err := svc.ResolveFields(f.profile, f.fields, cfg.SelectedFields)
	if err != nil {
		return criteria, cfg, err
	}
	cfg.SelectedFields = fields
	return criteria, cfg, nil
}
