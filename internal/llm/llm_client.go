package llm

import "context"

// Client is the interface for the external generation service. All
// question authoring and answer scoring is delegated through it; the
// services layer owns the fallback policy when a call fails.
type Client interface {
	GenerateResponse(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
