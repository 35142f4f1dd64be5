package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/dermalens/backend/internal/domain"
)

// productsQuery pages through the storefront catalog. The cursor is the
// endCursor of the previous page; null on the first request.
const productsQuery = `
query Products($pageSize: Int!, $cursor: String) {
  products(first: $pageSize, after: $cursor) {
    pageInfo {
      hasNextPage
      endCursor
    }
    edges {
      node {
        id
        title
        handle
        description
        onlineStoreUrl
        tags
        images(first: 1) {
          edges {
            node {
              url
            }
          }
        }
        variants(first: 1) {
          edges {
            node {
              id
              price {
                amount
                currencyCode
              }
              compareAtPrice {
                amount
                currencyCode
              }
            }
          }
        }
      }
    }
  }
}`

// Client handles communication with the Shopify Storefront GraphQL API
type Client struct {
	httpClient  *http.Client
	endpoint    string
	token       string
	storeDomain string
	pageSize    int
	rateLimiter *rate.Limiter
}

// NewClient creates a new storefront API client. The endpoint is the full
// GraphQL URL (https://{store}/api/{version}/graphql.json).
func NewClient(endpoint, storeDomain, token string, pageSize int) *Client {
	// Storefront API leaky bucket: stay comfortably under 2 req/s
	limiter := rate.NewLimiter(rate.Limit(2), 4)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		endpoint:    endpoint,
		token:       token,
		storeDomain: storeDomain,
		pageSize:    pageSize,
		rateLimiter: limiter,
	}
}

// Endpoint builds the storefront GraphQL URL for a store domain and API version
func Endpoint(storeDomain, apiVersion string) string {
	return fmt.Sprintf("https://%s/api/%s/graphql.json", storeDomain, apiVersion)
}

// FetchAll drains the paginated product listing and returns the complete
// normalized catalog. Any error mid-pagination aborts the whole fetch:
// callers get the full catalog or nothing, never a partial one.
func (c *Client) FetchAll(ctx context.Context) ([]domain.Product, error) {
	var (
		products []domain.Product
		cursor   string
		page     int
	)

	for {
		page++
		resp, err := c.fetchPage(ctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}

		for _, edge := range resp.Products.Edges {
			if product, ok := mapProduct(edge.Node, c.storeDomain); ok {
				products = append(products, product)
			}
		}

		log.Printf("[SHOPIFY] fetched page %d (%d products so far, hasNextPage=%v)",
			page, len(products), resp.Products.PageInfo.HasNextPage)

		if !resp.Products.PageInfo.HasNextPage {
			return products, nil
		}
		cursor = resp.Products.PageInfo.EndCursor
	}
}

// fetchPage requests one page of products, after the given cursor when set
func (c *Client) fetchPage(ctx context.Context, cursor string) (*productsData, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	variables := map[string]interface{}{
		"pageSize": c.pageSize,
	}
	if cursor != "" {
		variables["cursor"] = cursor
	}

	payload, err := json.Marshal(graphQLRequest{
		Query:     productsQuery,
		Variables: variables,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrCatalogUnavailable, resp.StatusCode, string(body))
	}

	var parsed graphQLResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("%w: graphql error: %s", domain.ErrCatalogUnavailable, parsed.Errors[0].Message)
	}

	return &parsed.Data, nil
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphQLResponse struct {
	Data   productsData `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type productsData struct {
	Products struct {
		PageInfo struct {
			HasNextPage bool   `json:"hasNextPage"`
			EndCursor   string `json:"endCursor"`
		} `json:"pageInfo"`
		Edges []struct {
			Node productNode `json:"node"`
		} `json:"edges"`
	} `json:"products"`
}

// productNode is the raw storefront product shape before normalization
type productNode struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Handle         string   `json:"handle"`
	Description    string   `json:"description"`
	OnlineStoreURL string   `json:"onlineStoreUrl"`
	Tags           []string `json:"tags"`
	Images         struct {
		Edges []imageEdge `json:"edges"`
	} `json:"images"`
	Variants struct {
		Edges []variantEdge `json:"edges"`
	} `json:"variants"`
}

type imageEdge struct {
	Node struct {
		URL string `json:"url"`
	} `json:"node"`
}

type variantEdge struct {
	Node variantNode `json:"node"`
}

type variantNode struct {
	ID             string     `json:"id"`
	Price          *moneyNode `json:"price"`
	CompareAtPrice *moneyNode `json:"compareAtPrice"`
}

type moneyNode struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}
