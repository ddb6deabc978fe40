package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var emptySchema = &jsonschema.Schema{Type: "object"}

// startTestServer runs an in-memory MCP server and returns a dialer that
// connects fresh sessions to it.
func startTestServer(t *testing.T, tools map[string]mcpsdk.ToolHandler) dialFunc {
	t.Helper()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "test-server", Version: "test"}, nil)
	for name, handler := range tools {
		server.AddTool(&mcpsdk.Tool{
			Name:        name,
			Description: "test tool: " + name,
			InputSchema: emptySchema,
		}, handler)
	}

	return func(ctx context.Context, _ TransportSpec) (*mcpsdk.ClientSession, error) {
		clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()
		go func() {
			_ = server.Run(context.Background(), serverTransport)
		}()
		client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "conclave-test", Version: "test"}, nil)
		return client.Connect(ctx, clientTransport, nil)
	}
}

func echoTool(_ context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	msg := "pong"
	var args map[string]any
	if err := json.Unmarshal(req.Params.Arguments, &args); err == nil {
		if m, ok := args["message"].(string); ok {
			msg = m
		}
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: msg}},
	}, nil
}

func testSpec() TransportSpec {
	return TransportSpec{Kind: KindStdio, Command: "unused"}
}

func TestOpenCallTerminate(t *testing.T) {
	dial := startTestServer(t, map[string]mcpsdk.ToolHandler{"echo": echoTool})
	s := newService(dial, slog.Default())
	t.Cleanup(s.Shutdown)

	connID, tools, err := s.Open(context.Background(), testSpec(), "agent-1")
	require.NoError(t, err)
	require.NotEmpty(t, connID)
	require.Len(t, tools, 1)
	assert.Equal(t, "echo", tools[0].Name)

	res, err := s.CallTool(context.Background(), connID, "echo", map[string]any{"message": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi", res.Text)
	assert.False(t, res.IsError)

	require.NoError(t, s.Terminate(connID))
	_, err = s.CallTool(context.Background(), connID, "echo", nil)
	assert.ErrorIs(t, err, ErrUnknownConnection)
}

func TestToolErrorFlag(t *testing.T) {
	dial := startTestServer(t, map[string]mcpsdk.ToolHandler{
		"broken": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{
				IsError: true,
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "boom"}},
			}, nil
		},
	})
	s := newService(dial, slog.Default())
	t.Cleanup(s.Shutdown)

	connID, _, err := s.Open(context.Background(), testSpec(), "agent-1")
	require.NoError(t, err)

	res, err := s.CallTool(context.Background(), connID, "broken", nil)
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "boom", res.Text)
}

func TestTerminateOwned(t *testing.T) {
	dial := startTestServer(t, map[string]mcpsdk.ToolHandler{"echo": echoTool})
	s := newService(dial, slog.Default())
	t.Cleanup(s.Shutdown)

	a, _, err := s.Open(context.Background(), testSpec(), "agent-a")
	require.NoError(t, err)
	b, _, err := s.Open(context.Background(), testSpec(), "agent-b")
	require.NoError(t, err)

	s.TerminateOwned("agent-a")

	_, err = s.Tools(a)
	assert.ErrorIs(t, err, ErrUnknownConnection)
	_, err = s.Tools(b)
	assert.NoError(t, err)
}

func TestSpecFromParams(t *testing.T) {
	spec, err := SpecFromParams(map[string]any{
		"command": "mcp-k8s",
		"args":    []any{"--context", "prod"},
	})
	require.NoError(t, err)
	assert.Equal(t, KindStdio, spec.Kind)
	assert.Equal(t, []string{"--context", "prod"}, spec.Args)

	spec, err = SpecFromParams(map[string]any{
		"url":     "https://mcp.example.com",
		"headers": map[string]any{"Authorization": "Bearer tok"},
	})
	require.NoError(t, err)
	assert.Equal(t, KindHTTP, spec.Kind)
	assert.Equal(t, "Bearer tok", spec.Headers["Authorization"])

	_, err = SpecFromParams(map[string]any{})
	assert.Error(t, err)

	_, err = SpecFromParams(map[string]any{"kind": "carrier-pigeon", "url": "x"})
	assert.Error(t, err)
}

func TestClassifyError(t *testing.T) {
	assert.Equal(t, NoRetry, ClassifyError(nil))
	assert.Equal(t, NoRetry, ClassifyError(context.Canceled))
	assert.Equal(t, RetryNewSession, ClassifyError(assertErr("connection refused")))
	assert.Equal(t, NoRetry, ClassifyError(assertErr("invalid params: missing field")))
	assert.Equal(t, NoRetry, ClassifyError(assertErr("some unknown failure")))
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
