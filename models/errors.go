package models

import (
	"errors"
	"fmt"
)

// ErrRateLimited marks a 429 from an upstream API. Scenarios treat it
// as a skip condition, never as an assertion failure, and never retry.
var ErrRateLimited = errors.New("rate limit exceeded")

// ErrMissingField marks a raw record that lacks a structurally required
// field. The caller decides whether to drop the record or abort the
// batch; adapters never substitute empty values silently.
var ErrMissingField = errors.New("required field missing")

// MissingField wraps ErrMissingField with the source and field name.
func MissingField(source, field string) error {
	return fmt.Errorf("%s: %w: %s", source, ErrMissingField, field)
}

// UpstreamError is a non-200, non-429 API response. The raw body is
// kept so the failure leaves inspectable evidence.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}
