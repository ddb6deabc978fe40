package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

// Multiplexer routes completion calls to the provider owning the requested
// model. Model pools mix providers freely, so every call carries its model
// identifier and the multiplexer picks the backend by name.
type Multiplexer struct {
	anthropic Client
	openai    Client
	embedder  EmbeddingClient
	logger    *slog.Logger
}

func NewMultiplexer(anthropic, openai Client, embedder EmbeddingClient, logger *slog.Logger) *Multiplexer {
	return &Multiplexer{
		anthropic: anthropic,
		openai:    openai,
		embedder:  embedder,
		logger:    logger.With(slog.String("component", "llm")),
	}
}

// Complete dispatches to the provider owning req.Model.
func (m *Multiplexer) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	client, err := m.route(req.Model)
	if err != nil {
		return nil, err
	}
	return client.Complete(ctx, req)
}

// Embed delegates to the configured embedding backend.
func (m *Multiplexer) Embed(ctx context.Context, texts []string) ([][]float64, decimal.Decimal, error) {
	if m.embedder == nil {
		return nil, decimal.Zero, fmt.Errorf("no embedding backend configured")
	}
	return m.embedder.Embed(ctx, texts)
}

// Provider implements Client. The multiplexer is not itself a provider;
// logs show the routed backend per call.
func (m *Multiplexer) Provider() string { return "multiplexer" }

func (m *Multiplexer) route(model string) (Client, error) {
	switch {
	case strings.HasPrefix(model, "claude"):
		if m.anthropic == nil {
			return nil, fmt.Errorf("model %q requires anthropic, which is not configured", model)
		}
		return m.anthropic, nil
	case model != "":
		if m.openai == nil {
			return nil, fmt.Errorf("model %q requires openai, which is not configured", model)
		}
		return m.openai, nil
	default:
		return nil, fmt.Errorf("model is required")
	}
}
