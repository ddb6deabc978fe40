// Package llm provides the provider clients behind an agent's model pool:
// chat completions for deliberation and embeddings for semantic consensus.
// Each adapter wraps the narrow SDK surface it needs so tests can substitute
// mocks, and every response carries its computed cost so callers can charge
// budgets without re-deriving token math.
package llm

import (
	"context"

	"github.com/shopspring/decimal"
)

// Role is a chat message role.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of provider-agnostic chat input.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest is a provider-agnostic completion call.
type CompletionRequest struct {
	Model       string
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// CompletionResponse carries the model output plus usage and cost.
type CompletionResponse struct {
	Text         string
	Model        string
	InputTokens  int64
	OutputTokens int64
	Cost         decimal.Decimal
}

// Client is one provider's completion surface.
type Client interface {
	// Complete issues a single completion. Errors are classified with the
	// package sentinels so callers can decide on retry.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// Provider names the backing provider for logs.
	Provider() string
}

// EmbeddingClient produces embeddings and reports their cost. It satisfies
// the consensus engine's Embedder dependency.
type EmbeddingClient interface {
	Embed(ctx context.Context, texts []string) ([][]float64, decimal.Decimal, error)
}
