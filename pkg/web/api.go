package web

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// APIRequest is one call_api invocation after secret resolution.
type APIRequest struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    string
	Timeout time.Duration
}

// APIResponse carries the capped response.
type APIResponse struct {
	Status    int
	Headers   map[string]string
	Body      string
	Truncated bool
	Duration  time.Duration
}

// APIClient executes call_api requests.
type APIClient struct {
	client   *http.Client
	maxBytes int64
	logger   *slog.Logger
}

func NewAPIClient(defaultTimeout time.Duration, maxBytes int64, logger *slog.Logger) *APIClient {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &APIClient{
		client:   &http.Client{Timeout: defaultTimeout},
		maxBytes: maxBytes,
		logger:   logger.With(slog.String("component", "web")),
	}
}

// Do issues the request. Non-2xx statuses are returned in the response, not
// as errors: the agent decides what a 404 means.
func (c *APIClient) Do(ctx context.Context, req APIRequest) (*APIResponse, error) {
	if err := validateURL(req.URL); err != nil {
		return nil, err
	}
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling %s %s: %w", method, req.URL, err)
	}
	defer resp.Body.Close()

	respBody, truncated, err := readCapped(resp.Body, c.maxBytes)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	headers := make(map[string]string, len(resp.Header))
	for k := range resp.Header {
		headers[k] = resp.Header.Get(k)
	}

	c.logger.Debug("api call finished",
		slog.String("method", method),
		slog.String("url", req.URL),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	return &APIResponse{
		Status:    resp.StatusCode,
		Headers:   headers,
		Body:      string(respBody),
		Truncated: truncated,
		Duration:  time.Since(start),
	}, nil
}
