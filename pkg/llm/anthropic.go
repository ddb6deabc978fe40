package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/shopspring/decimal"
)

// anthropicMessages captures the subset of the Anthropic SDK used here; it
// is satisfied by *sdk.MessageService and by test mocks.
type anthropicMessages interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicClient implements Client over the Claude Messages API.
type AnthropicClient struct {
	messages anthropicMessages
	pricing  PricingTable
	logger   *slog.Logger
}

// NewAnthropicClient builds a client from an API key.
func NewAnthropicClient(apiKey string, pricing PricingTable, logger *slog.Logger) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic api key is required")
	}
	c := sdk.NewClient(option.WithAPIKey(apiKey))
	return newAnthropicClient(&c.Messages, pricing, logger), nil
}

func newAnthropicClient(messages anthropicMessages, pricing PricingTable, logger *slog.Logger) *AnthropicClient {
	return &AnthropicClient{
		messages: messages,
		pricing:  pricing,
		logger:   logger.With(slog.String("provider", "anthropic")),
	}
}

func (c *AnthropicClient) Provider() string { return "anthropic" }

func (c *AnthropicClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if req.Model == "" {
		return nil, errors.New("anthropic: model is required")
	}
	if len(req.Messages) == 0 {
		return nil, errors.New("anthropic: messages are required")
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(req.Temperature)
	}
	for _, m := range req.Messages {
		block := sdk.NewTextBlock(m.Content)
		switch m.Role {
		case RoleAssistant:
			params.Messages = append(params.Messages, sdk.NewAssistantMessage(block))
		default:
			params.Messages = append(params.Messages, sdk.NewUserMessage(block))
		}
	}

	msg, err := c.messages.New(ctx, params)
	if err != nil {
		return nil, classifyAnthropic(err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return &CompletionResponse{
		Text:         text.String(),
		Model:        req.Model,
		InputTokens:  msg.Usage.InputTokens,
		OutputTokens: msg.Usage.OutputTokens,
		Cost:         c.pricing.Cost(req.Model, msg.Usage.InputTokens, msg.Usage.OutputTokens),
	}, nil
}

// Embed is unsupported: Anthropic offers no embedding endpoint, so semantic
// consensus always routes through the OpenAI embedder.
func (c *AnthropicClient) Embed(context.Context, []string) ([][]float64, decimal.Decimal, error) {
	return nil, decimal.Zero, errors.New("anthropic: embeddings are not supported")
}

func classifyAnthropic(err error) error {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		if sentinel := classifyStatus(apiErr.StatusCode); sentinel != nil {
			return fmt.Errorf("%w: %w", sentinel, err)
		}
	}
	return fmt.Errorf("anthropic messages.new: %w", err)
}
