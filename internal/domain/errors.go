package domain

import "errors"

var (
	// ErrNoCredentials is returned when the Gemini credential pool is empty.
	// This is a fatal startup condition: the process must not serve without
	// at least one configured API key.
	ErrNoCredentials = errors.New("no Gemini API keys configured")

	// ErrPoolExhausted is returned when every credential in the pool failed
	// with a retriable error
	ErrPoolExhausted = errors.New("all Gemini credentials exhausted")

	// ErrModelInvocation is returned for non-retriable model call failures
	ErrModelInvocation = errors.New("model invocation failed")

	// ErrMalformedModelOutput is returned when the model's output does not
	// parse as the requested JSON shape
	ErrMalformedModelOutput = errors.New("model output does not match requested shape")

	// ErrCatalogUnavailable is returned when the product catalog could not
	// be fetched, or holds no products usable for a recommendation
	ErrCatalogUnavailable = errors.New("product catalog unavailable")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
