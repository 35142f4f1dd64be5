package usecase

import "github.com/dermalens/backend/internal/domain"

// Hydrate joins model-proposed recommendation entries back onto full catalog
// records. An entry matches the first product whose variant ID equals the
// entry's product ID or, failing that, whose name equals the entry's product
// name. Unmatched entries are dropped silently: a model hallucinating a
// nonexistent product is an expected, non-fatal condition. Input order is
// preserved.
func Hydrate(entries []domain.RecommendationEntry, catalog []domain.Product) []domain.RecommendedProduct {
	var out []domain.RecommendedProduct
	for _, entry := range entries {
		product, ok := findProduct(entry, catalog)
		if !ok {
			continue
		}
		out = append(out, domain.RecommendedProduct{
			Product: product,
			Slot:    entry.Slot,
			Reason:  entry.Reason,
		})
	}
	return out
}

func findProduct(entry domain.RecommendationEntry, catalog []domain.Product) (domain.Product, bool) {
	if entry.ProductID != "" {
		for _, product := range catalog {
			if product.VariantID == entry.ProductID {
				return product, true
			}
		}
	}
	if entry.ProductName != "" {
		for _, product := range catalog {
			if product.Name == entry.ProductName {
				return product, true
			}
		}
	}
	return domain.Product{}, false
}
