package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	oa "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/shopspring/decimal"
)

type openaiChat interface {
	New(ctx context.Context, body oa.ChatCompletionNewParams, opts ...option.RequestOption) (*oa.ChatCompletion, error)
}

type openaiEmbeddings interface {
	New(ctx context.Context, body oa.EmbeddingNewParams, opts ...option.RequestOption) (*oa.CreateEmbeddingResponse, error)
}

// OpenAIClient implements Client over Chat Completions and EmbeddingClient
// over the embeddings endpoint.
type OpenAIClient struct {
	chat       openaiChat
	embeddings openaiEmbeddings
	embedModel string
	pricing    PricingTable
	logger     *slog.Logger
}

// NewOpenAIClient builds a client from an API key. embedModel is the model
// used for consensus embeddings.
func NewOpenAIClient(apiKey, embedModel string, pricing PricingTable, logger *slog.Logger) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	c := oa.NewClient(option.WithAPIKey(apiKey))
	return newOpenAIClient(&c.Chat.Completions, &c.Embeddings, embedModel, pricing, logger), nil
}

func newOpenAIClient(chat openaiChat, embeddings openaiEmbeddings, embedModel string, pricing PricingTable, logger *slog.Logger) *OpenAIClient {
	return &OpenAIClient{
		chat:       chat,
		embeddings: embeddings,
		embedModel: embedModel,
		pricing:    pricing,
		logger:     logger.With(slog.String("provider", "openai")),
	}
}

func (c *OpenAIClient) Provider() string { return "openai" }

func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if req.Model == "" {
		return nil, errors.New("openai: model is required")
	}
	if len(req.Messages) == 0 {
		return nil, errors.New("openai: messages are required")
	}

	var messages []oa.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, oa.SystemMessage(req.System))
	}
	for _, m := range req.Messages {
		switch m.Role {
		case RoleAssistant:
			messages = append(messages, oa.AssistantMessage(m.Content))
		case RoleSystem:
			messages = append(messages, oa.SystemMessage(m.Content))
		default:
			messages = append(messages, oa.UserMessage(m.Content))
		}
	}

	params := oa.ChatCompletionNewParams{
		Model:    oa.ChatModel(req.Model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = oa.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = oa.Float(req.Temperature)
	}

	resp, err := c.chat.New(ctx, params)
	if err != nil {
		return nil, classifyOpenAI(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: empty choices for model %s", req.Model)
	}

	return &CompletionResponse{
		Text:         resp.Choices[0].Message.Content,
		Model:        req.Model,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		Cost:         c.pricing.Cost(req.Model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens),
	}, nil
}

// Embed returns one vector per input text plus the cost of the call.
func (c *OpenAIClient) Embed(ctx context.Context, texts []string) ([][]float64, decimal.Decimal, error) {
	if len(texts) == 0 {
		return nil, decimal.Zero, nil
	}
	resp, err := c.embeddings.New(ctx, oa.EmbeddingNewParams{
		Model: oa.EmbeddingModel(c.embedModel),
		Input: oa.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
	})
	if err != nil {
		return nil, decimal.Zero, classifyOpenAI(err)
	}
	if len(resp.Data) != len(texts) {
		return nil, decimal.Zero, fmt.Errorf("openai: got %d embeddings for %d inputs", len(resp.Data), len(texts))
	}

	out := make([][]float64, len(resp.Data))
	for i, d := range resp.Data {
		out[i] = d.Embedding
	}
	cost := c.pricing.Cost(c.embedModel, resp.Usage.PromptTokens, 0)
	return out, cost, nil
}

func classifyOpenAI(err error) error {
	var apiErr *oa.Error
	if errors.As(err, &apiErr) {
		if sentinel := classifyStatus(apiErr.StatusCode); sentinel != nil {
			return fmt.Errorf("%w: %w", sentinel, err)
		}
	}
	return fmt.Errorf("openai: %w", err)
}
