package gemini

import (
	"context"
	"fmt"
	"log"

	"github.com/dermalens/backend/internal/domain"
)

// Invoke tries each credential in pool order until one succeeds.
//
// Attempts are strictly sequential: parallelizing would defeat the priority
// ordering and burn quota on lower-priority keys when the first would have
// succeeded. A retriable failure (invalid key, quota, transient 5xx) moves on
// to the next credential; any other failure is assumed to be a request-shape
// problem that no credential can fix and is surfaced immediately. Each
// attempt runs under its own timeout so a hung upstream call cannot block
// failover indefinitely.
func (p *Pool) Invoke(ctx context.Context, req *domain.GenerationRequest) (string, error) {
	var lastErr error

	for i, h := range p.handles {
		attemptCtx, cancel := context.WithTimeout(ctx, p.attemptTimeout)
		out, err := h.gen.generate(attemptCtx, req)
		cancel()

		if err == nil {
			if i > 0 {
				log.Printf("[GEMINI] %s succeeded after %d failed attempt(s)", h.label, i)
			}
			return out, nil
		}

		// Caller gave up; stop failing over on its behalf
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if !retriable(err) {
			return "", fmt.Errorf("%w: %v", domain.ErrModelInvocation, err)
		}

		log.Printf("[GEMINI] %s failed (retriable): %v", h.label, err)
		lastErr = err
	}

	return "", fmt.Errorf("%w: tried %d credential(s), last error: %v",
		domain.ErrPoolExhausted, len(p.handles), lastErr)
}
