package llm

import (
	"context"
	"errors"
	"fmt"
)

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string, params Params) (string, error)
}

// Params carries per-call sampling settings.
type Params struct {
	Temperature float32
	MaxTokens   int
	// JSONOutput asks the provider to constrain the reply to a JSON object.
	JSONOutput bool
}

// ErrNotConfigured is returned before any network call when no API key is set.
var ErrNotConfigured = errors.New("llm api key is not configured")

// UpstreamError describes a failed or malformed provider response.
type UpstreamError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := e.Detail
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("llm provider http %d: %s", e.StatusCode, msg)
	}
	return "llm provider: " + msg
}

func (e *UpstreamError) Unwrap() error { return e.Err }
