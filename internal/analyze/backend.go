package analyze

import (
	"context"
	"fmt"
)

// Backend is a language-model provider. Generate sends a system instruction
// and a user instruction and returns the raw text response.
type Backend interface {
	Generate(ctx context.Context, system, user string) (string, error)
	Model() string
}

// BackendError reports a failed provider call. It never escapes the
// analyzer; Analyze folds it into the result.
type BackendError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s api status %d: %s", e.Provider, e.StatusCode, clip(e.Message, 200))
	}
	return fmt.Sprintf("%s api: %s", e.Provider, clip(e.Message, 200))
}

// Retryable reports whether the failure was transient (rate limit or server
// error). Informational only; processing is synchronous and does not retry.
func (e *BackendError) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
