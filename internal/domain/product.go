package domain

// PriceUnavailable is the sentinel shown when a product has no purchasable price
const PriceUnavailable = "N/A"

// Product represents a normalized storefront catalog record
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	URL            string   `json:"url"`
	ImageURL       string   `json:"imageUrl"`
	VariantID      string   `json:"variantId"`
	Price          string   `json:"price"` // "USD 12.34" or PriceUnavailable
	CompareAtPrice string   `json:"compareAtPrice,omitempty"`
	Description    string   `json:"description,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// RecommendationEntry is a model-proposed product reference awaiting hydration.
// The model may reference a product by variant ID, by name, or both.
type RecommendationEntry struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Slot        string `json:"slot"` // routine step, e.g. "cleanser", "am-moisturizer"
	Reason      string `json:"reason,omitempty"`
}

// RecommendedProduct is a hydrated recommendation: a full catalog record
// joined with the routine slot the model assigned to it
type RecommendedProduct struct {
	Product
	Slot   string `json:"slot"`
	Reason string `json:"reason,omitempty"`
}
