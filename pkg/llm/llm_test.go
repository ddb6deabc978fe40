package llm

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingTableCost(t *testing.T) {
	table := PricingTable{
		"claude-sonnet-4-5": {
			InputPerMTok:  decimal.RequireFromString("3"),
			OutputPerMTok: decimal.RequireFromString("15"),
		},
		"claude": {
			InputPerMTok:  decimal.RequireFromString("1"),
			OutputPerMTok: decimal.RequireFromString("5"),
		},
	}

	// Exact model, 1M in + 1M out.
	cost := table.Cost("claude-sonnet-4-5", 1_000_000, 1_000_000)
	assert.True(t, cost.Equal(decimal.RequireFromString("18")), "got %s", cost)

	// Longest prefix wins over the catch-all.
	cost = table.Cost("claude-sonnet-4-5-20250929", 1_000_000, 0)
	assert.True(t, cost.Equal(decimal.RequireFromString("3")), "got %s", cost)

	// Catch-all for other claude models.
	cost = table.Cost("claude-haiku-3-5", 2_000_000, 0)
	assert.True(t, cost.Equal(decimal.RequireFromString("2")), "got %s", cost)

	// Unknown models cost zero.
	assert.True(t, table.Cost("mystery-model", 1_000_000, 1_000_000).IsZero())
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(ErrRateLimited))
	assert.True(t, Retryable(ErrOverloaded))
	assert.True(t, Retryable(ErrUnavailable))
	assert.True(t, Retryable(context.DeadlineExceeded))
	assert.False(t, Retryable(ErrUnauthorized))
	assert.False(t, Retryable(ErrInvalidRequest))
	assert.False(t, Retryable(errors.New("something else")))
}

func TestClassifyStatus(t *testing.T) {
	assert.ErrorIs(t, classifyStatus(429), ErrRateLimited)
	assert.ErrorIs(t, classifyStatus(401), ErrUnauthorized)
	assert.ErrorIs(t, classifyStatus(400), ErrInvalidRequest)
	assert.ErrorIs(t, classifyStatus(529), ErrOverloaded)
	assert.ErrorIs(t, classifyStatus(503), ErrUnavailable)
	assert.NoError(t, classifyStatus(200))
}

type fakeClient struct {
	provider string
	lastReq  CompletionRequest
}

func (f *fakeClient) Complete(_ context.Context, req CompletionRequest) (*CompletionResponse, error) {
	f.lastReq = req
	return &CompletionResponse{Text: "ok", Model: req.Model}, nil
}

func (f *fakeClient) Provider() string { return f.provider }

func TestMultiplexerRouting(t *testing.T) {
	ant := &fakeClient{provider: "anthropic"}
	oai := &fakeClient{provider: "openai"}
	m := NewMultiplexer(ant, oai, nil, slog.Default())

	_, err := m.Complete(context.Background(), CompletionRequest{
		Model:    "claude-sonnet-4-5",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-5", ant.lastReq.Model)

	_, err = m.Complete(context.Background(), CompletionRequest{
		Model:    "gpt-4.1",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1", oai.lastReq.Model)

	_, err = m.Complete(context.Background(), CompletionRequest{})
	assert.Error(t, err)
}

func TestMultiplexerMissingProvider(t *testing.T) {
	m := NewMultiplexer(nil, nil, nil, slog.Default())
	_, err := m.Complete(context.Background(), CompletionRequest{Model: "claude-opus-4"})
	assert.Error(t, err)
	_, _, err = m.Embed(context.Background(), []string{"a"})
	assert.Error(t, err)
}
