package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

// retriableMarkers are matched case-insensitively against untyped error
// messages. They cover the three credential-substitutable failure classes:
// invalid key, quota exhaustion, and transient server errors.
var retriableMarkers = []string{
	"api key not valid",
	"api_key_invalid",
	"invalid api key",
	"quota",
	"resource_exhausted",
	"resource has been exhausted",
	"internal error",
	"internal server error",
	"500",
	"503",
	"overloaded",
	"unavailable",
}

// retriable reports whether a failed model call is worth retrying with a
// different credential. Typed upstream errors are classified by status code
// first; the message-text match is kept as a fallback because the SDK
// surfaces some failures (notably invalid keys on a 400) only in the message.
func retriable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		// Per-attempt timeout: treat a hung credential as transient
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusServiceUnavailable:
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range retriableMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
