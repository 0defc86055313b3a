// Package llm provides the language-model client seam used by the layout
// describe feature. Callers always carry a deterministic fallback; a missing
// or failing client never fails a use case.
package llm

import "context"

// GenerationParams tunes a single generation call. Nil fields keep the
// provider's defaults.
type GenerationParams struct {
	Temperature *float32
	MaxTokens   *int
	TopP        *float32
	Stop        []string
}

// Client generates text for a prompt. Implementations treat the call as one
// opaque awaited operation: no internal timeout, cancellation only via ctx.
type Client interface {
	Generate(ctx context.Context, prompt string, params GenerationParams) (string, error)
}
