package core

// filter.go reduces a catalog to the products matching a FilterCriteria.
//
// Predicates run in a fixed order and a product is rejected on the first
// failure: brand, gender, stock, category, subcategory. The result keeps the
// catalog order and is truncated to the first Limit products unless the
// criteria are unlimited. Filtering never fails; an empty result is valid.

// FilterProducts returns the products matching c, in catalog order.
// The input slice is never modified.
func FilterProducts(catalog []Product, c FilterCriteria) []Product {
	brands := toSet(c.Brands)
	genders := toSet(c.Genders)
	categories := toSet(c.Categories)
	subcategories := toSet(c.Subcategories)

	minStock := c.MinStock
	if minStock < 0 {
		minStock = 0
	}

	unlimited := c.Unlimited()

	result := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		if !unlimited && len(result) >= c.Limit {
			break
		}
		if !allowed(brands, p.BrandName.String, p.BrandName.Valid) {
			continue
		}
		if !allowed(genders, p.Gender.String, p.Gender.Valid) {
			continue
		}
		if p.StockLevel() < minStock {
			continue
		}
		if len(categories) > 0 && !intersects(p.Families, categories) {
			continue
		}
		if len(subcategories) > 0 && !intersects(p.Subfamilies, subcategories) {
			continue
		}
		result = append(result, p)
	}

	return result
}

// allowed passes when the allow-list is empty or contains the value.
// An absent value never matches a non-empty allow-list.
func allowed(set map[string]struct{}, value string, present bool) bool {
	if len(set) == 0 {
		return true
	}
	if !present {
		return false
	}
	_, ok := set[value]
	return ok
}

func intersects(values []string, set map[string]struct{}) bool {
	for _, v := range values {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
