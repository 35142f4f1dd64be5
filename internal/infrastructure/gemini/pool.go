package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/dermalens/backend/internal/domain"
)

const defaultAttemptTimeout = 60 * time.Second

// generator is one credential's view of the model: a single attempt with no
// retry of its own
type generator interface {
	generate(ctx context.Context, req *domain.GenerationRequest) (string, error)
	close() error
}

// handle binds one API key's client to a position in the failover order
type handle struct {
	label string
	gen   generator
}

// PoolConfig holds construction parameters for the credential pool
type PoolConfig struct {
	APIKeys        []string // ordered: first key is preferred, later keys are failover
	Model          string
	AttemptTimeout time.Duration
}

// Pool is an ordered set of Gemini credentials with failover invocation.
// It is immutable after construction: credentials are never reordered,
// disabled, or demoted, and every Invoke restarts from the first handle.
type Pool struct {
	handles        []*handle
	attemptTimeout time.Duration
}

// NewPool creates one Gemini client per API key, in failover order.
// An empty key list is a fatal configuration error.
func NewPool(ctx context.Context, cfg PoolConfig) (*Pool, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, domain.ErrNoCredentials
	}

	timeout := cfg.AttemptTimeout
	if timeout <= 0 {
		timeout = defaultAttemptTimeout
	}

	pool := &Pool{attemptTimeout: timeout}
	for i, key := range cfg.APIKeys {
		client, err := genai.NewClient(ctx, option.WithAPIKey(key))
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to create Gemini client for credential %d: %w", i+1, err)
		}
		pool.handles = append(pool.handles, &handle{
			label: fmt.Sprintf("credential-%d", i+1),
			gen:   &geminiGenerator{client: client, model: cfg.Model},
		})
	}

	return pool, nil
}

// Size returns the number of credentials in the pool
func (p *Pool) Size() int {
	return len(p.handles)
}

// Close releases all underlying clients
func (p *Pool) Close() error {
	var lastErr error
	for _, h := range p.handles {
		if err := h.gen.close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// geminiGenerator wraps one genai client bound to a single API key
type geminiGenerator struct {
	client *genai.Client
	model  string
}

func (g *geminiGenerator) generate(ctx context.Context, req *domain.GenerationRequest) (string, error) {
	model := g.client.GenerativeModel(g.model)
	if req.Schema != nil {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = toGenaiSchema(req.Schema)
	}

	resp, err := model.GenerateContent(ctx, toGenaiParts(req.Parts)...)
	if err != nil {
		return "", err
	}

	return extractText(resp)
}

func (g *geminiGenerator) close() error {
	return g.client.Close()
}

// extractText concatenates the text parts of the first candidate
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("model returned no candidates")
	}

	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	if out == "" {
		return "", fmt.Errorf("model returned no text content")
	}
	return out, nil
}
