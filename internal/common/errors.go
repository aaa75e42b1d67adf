// Package common defines shared constants and sentinel errors used across
// the agent terminal. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Capture validation errors.
	ErrMissingRefusalReason = errors.New("refusal reason is required when refusing")
	ErrUnknownDecision      = errors.New("unknown decision")
)
