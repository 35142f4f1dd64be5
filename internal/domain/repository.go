package domain

import "context"

// ModelInvoker defines the interface for making generative model calls.
// Implementations own retry/failover; callers see one attempt.
type ModelInvoker interface {
	Invoke(ctx context.Context, req *GenerationRequest) (string, error)
}

// CatalogSource defines the interface for fetching the complete product
// catalog from the remote storefront. FetchAll drains pagination and returns
// either the full normalized catalog or an error, never a partial result.
type CatalogSource interface {
	FetchAll(ctx context.Context) ([]Product, error)
}

// CatalogProvider is the read contract of the catalog cache
type CatalogProvider interface {
	Catalog(ctx context.Context) ([]Product, error)
}
