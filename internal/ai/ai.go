// Package ai wraps the external AI completion providers behind one contract
// and implements the per-article analysis call on top of it.
package ai

import "context"

// Completer is the single contract the pipeline has with an AI provider:
// one prompt pair in, one JSON-object response string out. Implementations
// must request JSON-structured output from the provider.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
