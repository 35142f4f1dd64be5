package shopify

import (
	"fmt"
	"strconv"

	"github.com/dermalens/backend/internal/domain"
)

// placeholderImageURL is shown for products the store has no photo of
const placeholderImageURL = "https://placehold.co/400x400?text=No+Image"

// mapProduct normalizes one raw storefront node into a domain Product.
// Missing optional fields degrade to documented fallbacks and never error.
// Nodes without a title are unusable for matching and are skipped.
func mapProduct(node productNode, storeDomain string) (domain.Product, bool) {
	if node.Title == "" {
		return domain.Product{}, false
	}

	product := domain.Product{
		ID:          node.ID,
		Name:        node.Title,
		URL:         node.OnlineStoreURL,
		ImageURL:    placeholderImageURL,
		Price:       domain.PriceUnavailable,
		Description: node.Description,
		Tags:        node.Tags,
	}

	if product.URL == "" {
		product.URL = fmt.Sprintf("https://%s/products/%s", storeDomain, node.Handle)
	}

	if len(node.Images.Edges) > 0 && node.Images.Edges[0].Node.URL != "" {
		product.ImageURL = node.Images.Edges[0].Node.URL
	}

	if len(node.Variants.Edges) > 0 {
		variant := node.Variants.Edges[0].Node
		product.VariantID = variant.ID
		product.Price = formatPrice(variant.Price)
		if variant.CompareAtPrice != nil {
			if formatted := formatPrice(variant.CompareAtPrice); formatted != domain.PriceUnavailable {
				product.CompareAtPrice = formatted
			}
		}
	}

	return product, true
}

// formatPrice renders "{currency} {amount}" with two decimals, or the
// unavailable sentinel when the money node is absent or unparseable
func formatPrice(money *moneyNode) string {
	if money == nil || money.Amount == "" {
		return domain.PriceUnavailable
	}

	amount, err := strconv.ParseFloat(money.Amount, 64)
	if err != nil {
		return domain.PriceUnavailable
	}

	currency := money.CurrencyCode
	if currency == "" {
		currency = "USD"
	}

	return fmt.Sprintf("%s %.2f", currency, amount)
}
