package llm

import (
	"context"
	"errors"
	"net/http"
)

// Provider failure classes. Adapters wrap SDK errors with one of these so
// the retry loop upstream can distinguish transient from permanent failures.
var (
	ErrRateLimited    = errors.New("provider rate limited")
	ErrOverloaded     = errors.New("provider overloaded")
	ErrUnauthorized   = errors.New("provider rejected credentials")
	ErrInvalidRequest = errors.New("provider rejected request")
	ErrUnavailable    = errors.New("provider unavailable")
)

// classifyStatus maps an HTTP status to a failure sentinel, or nil for
// statuses that carry no classification.
func classifyStatus(status int) error {
	switch {
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return ErrInvalidRequest
	case status == 529: // anthropic overloaded
		return ErrOverloaded
	case status >= 500:
		return ErrUnavailable
	}
	return nil
}

// Retryable reports whether a classified error is worth retrying.
func Retryable(err error) bool {
	switch {
	case errors.Is(err, ErrRateLimited),
		errors.Is(err, ErrOverloaded),
		errors.Is(err, ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return true
	}
	return false
}
