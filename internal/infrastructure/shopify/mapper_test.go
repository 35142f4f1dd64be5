package shopify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermalens/backend/internal/domain"
)

func fullNode() productNode {
	var node productNode
	node.ID = "gid://shopify/Product/1"
	node.Title = "Hydrating Serum"
	node.Handle = "hydrating-serum"
	node.Description = "Lightweight daily serum"
	node.OnlineStoreURL = "https://glow.example.com/products/hydrating-serum"
	node.Tags = []string{"serum", "hydration"}
	node.Images.Edges = []imageEdge{{}}
	node.Images.Edges[0].Node.URL = "https://cdn.example.com/serum.jpg"
	node.Variants.Edges = []variantEdge{{
		Node: variantNode{
			ID:             "gid://shopify/ProductVariant/11",
			Price:          &moneyNode{Amount: "24.5", CurrencyCode: "EUR"},
			CompareAtPrice: &moneyNode{Amount: "30", CurrencyCode: "EUR"},
		},
	}}
	return node
}

func TestMapProduct_FullRecord(t *testing.T) {
	product, ok := mapProduct(fullNode(), "glow.myshopify.com")

	require.True(t, ok)
	assert.Equal(t, "Hydrating Serum", product.Name)
	assert.Equal(t, "https://glow.example.com/products/hydrating-serum", product.URL)
	assert.Equal(t, "https://cdn.example.com/serum.jpg", product.ImageURL)
	assert.Equal(t, "gid://shopify/ProductVariant/11", product.VariantID)
	assert.Equal(t, "EUR 24.50", product.Price)
	assert.Equal(t, "EUR 30.00", product.CompareAtPrice)
	assert.Equal(t, []string{"serum", "hydration"}, product.Tags)
}

func TestMapProduct_MissingOptionalFieldsFallBack(t *testing.T) {
	node := productNode{
		ID:     "gid://shopify/Product/2",
		Title:  "Mystery Balm",
		Handle: "mystery-balm",
	}

	product, ok := mapProduct(node, "glow.myshopify.com")

	require.True(t, ok)
	assert.Equal(t, placeholderImageURL, product.ImageURL)
	assert.Equal(t, domain.PriceUnavailable, product.Price)
	assert.Empty(t, product.CompareAtPrice)
	assert.Empty(t, product.VariantID)
	assert.Equal(t, "https://glow.myshopify.com/products/mystery-balm", product.URL,
		"URL falls back to one constructed from the store domain and handle")
}

func TestMapProduct_SkipsUntitledNodes(t *testing.T) {
	_, ok := mapProduct(productNode{ID: "gid://shopify/Product/3"}, "glow.myshopify.com")

	assert.False(t, ok)
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name  string
		money *moneyNode
		want  string
	}{
		{"two decimals", &moneyNode{Amount: "19.9", CurrencyCode: "USD"}, "USD 19.90"},
		{"integer amount", &moneyNode{Amount: "30", CurrencyCode: "GBP"}, "GBP 30.00"},
		{"missing currency defaults", &moneyNode{Amount: "5"}, "USD 5.00"},
		{"nil money", nil, domain.PriceUnavailable},
		{"empty amount", &moneyNode{CurrencyCode: "USD"}, domain.PriceUnavailable},
		{"unparseable amount", &moneyNode{Amount: "free", CurrencyCode: "USD"}, domain.PriceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatPrice(tt.money))
		})
	}
}
