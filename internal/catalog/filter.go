package catalog

// AllCategories is the sentinel that disables category filtering.
const AllCategories = "all"

// Filter returns the products in the given category holding at least one of
// the active tags. An empty tag set passes every product; the input order is
// preserved. The function is pure.
func Filter(store Store, category string, activeTags []string) []Product {
	out := make([]Product, 0, len(store.Products))
	for _, p := range store.Products {
		if category != AllCategories && p.Category != category {
			continue
		}
		if len(activeTags) > 0 && !hasAnyTag(p.Tags, activeTags) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func hasAnyTag(tags, active []string) bool {
	for _, t := range tags {
		for _, a := range active {
			if t == a {
				return true
			}
		}
	}
	return false
}
