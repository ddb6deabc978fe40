// Package mcp keeps the MCP connection table behind the call_mcp action.
// Connections open against an agent-supplied transport spec, get a
// connection_id, and stay live across consensus cycles until terminated, so
// a continuation can land on a different router instance than the one that
// opened the connection.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/conclave-run/conclave/pkg/version"
)

var (
	ErrUnknownConnection = errors.New("unknown connection_id")
	ErrToolFailed        = errors.New("tool reported an error")
)

// ToolResult is the flattened outcome of one tool call.
type ToolResult struct {
	Text    string
	IsError bool
}

type connection struct {
	id      string
	ownerID string
	spec    TransportSpec

	mu      sync.Mutex
	session *mcpsdk.ClientSession
	tools   []*mcpsdk.Tool
}

type dialFunc func(ctx context.Context, spec TransportSpec) (*mcpsdk.ClientSession, error)

// Service owns the connection table. Safe for concurrent use.
type Service struct {
	mu    sync.Mutex
	conns map[string]*connection

	dial   dialFunc
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return newService(dialSpec, logger)
}

func newService(dial dialFunc, logger *slog.Logger) *Service {
	return &Service{
		conns:  make(map[string]*connection),
		dial:   dial,
		logger: logger.With(slog.String("component", "mcp")),
	}
}

// Open connects to an MCP server and registers the connection. Returns the
// new connection_id and the server's tool list.
func (s *Service) Open(ctx context.Context, spec TransportSpec, ownerID string) (string, []*mcpsdk.Tool, error) {
	session, err := s.dial(ctx, spec)
	if err != nil {
		return "", nil, fmt.Errorf("connecting to mcp server: %w", err)
	}

	c := &connection{
		id:      uuid.NewString(),
		ownerID: ownerID,
		spec:    spec,
		session: session,
	}

	opCtx, cancel := context.WithTimeout(ctx, OperationTimeout)
	defer cancel()
	listed, err := session.ListTools(opCtx, nil)
	if err != nil {
		_ = session.Close()
		return "", nil, fmt.Errorf("listing tools: %w", err)
	}
	c.tools = listed.Tools

	s.mu.Lock()
	s.conns[c.id] = c
	s.mu.Unlock()

	s.logger.Info("mcp connection opened",
		slog.String("connection_id", c.id),
		slog.String("kind", string(spec.Kind)),
		slog.String("owner", ownerID),
		slog.Int("tools", len(c.tools)))
	return c.id, c.tools, nil
}

// Tools returns the cached tool list for a connection.
func (s *Service) Tools(connID string) ([]*mcpsdk.Tool, error) {
	c, ok := s.lookup(connID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownConnection, connID)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tools, nil
}

// CallTool executes one tool call. A transport failure gets a single retry
// after a jittered backoff, reconnecting first when the session looks dead.
func (s *Service) CallTool(ctx context.Context, connID, tool string, args map[string]any) (*ToolResult, error) {
	c, ok := s.lookup(connID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownConnection, connID)
	}

	res, err := s.callOnce(ctx, c, tool, args)
	if err == nil {
		return res, nil
	}

	action := ClassifyError(err)
	if action == NoRetry {
		return nil, err
	}

	s.logger.Info("mcp call failed, retrying",
		slog.String("connection_id", connID),
		slog.String("tool", tool),
		slog.Any("error", err))

	backoff := RetryBackoffMin + time.Duration(rand.Int64N(int64(RetryBackoffMax-RetryBackoffMin)))
	select {
	case <-time.After(backoff):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if action == RetryNewSession {
		if err := s.reconnect(ctx, c); err != nil {
			return nil, fmt.Errorf("reconnecting %s: %w", connID, err)
		}
	}

	res, err = s.callOnce(ctx, c, tool, args)
	if err != nil {
		return nil, fmt.Errorf("retry failed for %s.%s: %w", connID, tool, err)
	}
	return res, nil
}

// Terminate closes a connection and drops it from the table.
func (s *Service) Terminate(connID string) error {
	s.mu.Lock()
	c, ok := s.conns[connID]
	delete(s.conns, connID)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownConnection, connID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.session.Close(); err != nil {
		s.logger.Warn("closing mcp session",
			slog.String("connection_id", connID), slog.Any("error", err))
	}
	s.logger.Info("mcp connection terminated", slog.String("connection_id", connID))
	return nil
}

// TerminateOwned closes every connection owned by an agent. Called on
// dismissal so a dead agent leaves no live sessions behind.
func (s *Service) TerminateOwned(ownerID string) {
	s.mu.Lock()
	var ids []string
	for id, c := range s.conns {
		if c.ownerID == ownerID {
			ids = append(ids, id)
		}
	}
	s.mu.Unlock()

	for _, id := range ids {
		_ = s.Terminate(id)
	}
}

// Shutdown closes every connection.
func (s *Service) Shutdown() {
	s.mu.Lock()
	ids := make([]string, 0, len(s.conns))
	for id := range s.conns {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		_ = s.Terminate(id)
	}
}

func (s *Service) callOnce(ctx context.Context, c *connection, tool string, args map[string]any) (*ToolResult, error) {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()

	opCtx, cancel := context.WithTimeout(ctx, OperationTimeout)
	defer cancel()

	result, err := session.CallTool(opCtx, &mcpsdk.CallToolParams{Name: tool, Arguments: args})
	if err != nil {
		return nil, err
	}
	return flatten(result), nil
}

func (s *Service) reconnect(ctx context.Context, c *connection) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.session.Close()

	dialCtx, cancel := context.WithTimeout(ctx, ReconnectTimeout)
	defer cancel()
	session, err := s.dial(dialCtx, c.spec)
	if err != nil {
		return err
	}
	c.session = session
	s.logger.Info("mcp connection reestablished", slog.String("connection_id", c.id))
	return nil
}

func (s *Service) lookup(id string) (*connection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conns[id]
	return c, ok
}

// flatten joins a tool result's text content blocks.
func flatten(result *mcpsdk.CallToolResult) *ToolResult {
	var parts []string
	for _, content := range result.Content {
		if text, ok := content.(*mcpsdk.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	return &ToolResult{Text: strings.Join(parts, "\n"), IsError: result.IsError}
}

// dialSpec is the production dialer: build a transport and handshake.
func dialSpec(ctx context.Context, spec TransportSpec) (*mcpsdk.ClientSession, error) {
	transport, err := buildTransport(spec)
	if err != nil {
		return nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, ConnectTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.Commit(),
	}, nil)

	session, err := client.Connect(connectCtx, transport, nil)
	if err != nil {
		if closer, ok := transport.(io.Closer); ok {
			_ = closer.Close()
		}
		return nil, err
	}
	return session, nil
}
