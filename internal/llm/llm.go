package llm

import (
	"context"
	"errors"
)

// Client abstracts the external completion service used for structured
// extraction. Complete sends one system instruction plus the document text
// and returns the model's raw JSON output. One shot, no retry.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, system, user string) (string, error) {
	_ = ctx
	_ = system
	_ = user
	return "", ErrNotConfigured
}
