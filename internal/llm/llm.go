package llm

import (
	"context"
	"errors"
)

// Client abstracts LLM providers for qualitative resume critique.
type Client interface {
	Critique(ctx context.Context, resumeText string) (string, error)
}

// ErrNotConfigured is returned when no provider is wired.
var ErrNotConfigured = errors.New("LLM not configured")

// PlaceholderClient is the stand-in used when no provider is configured.
type PlaceholderClient struct{}

// Critique returns ErrNotConfigured.
func (PlaceholderClient) Critique(ctx context.Context, resumeText string) (string, error) {
	_ = ctx
	_ = resumeText
	return "", ErrNotConfigured
}
