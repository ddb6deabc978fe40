package router

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/conclave-run/conclave/pkg/fileops"
	"github.com/conclave-run/conclave/pkg/llm"
	"github.com/conclave-run/conclave/pkg/mcp"
	"github.com/conclave-run/conclave/pkg/models"
	"github.com/conclave-run/conclave/pkg/shell"
	"github.com/conclave-run/conclave/pkg/web"
)

// handleShell starts a command or continues a previous one, depending on
// which side of the command/check_id XOR is present.
func (r *Router) handleShell(ctx context.Context, inv Invocation, params map[string]any) (map[string]any, error) {
	if checkID := stringParam(params, "check_id"); checkID != "" {
		var (
			res *shell.Result
			err error
		)
		if boolParam(params, "terminate") {
			res, err = r.deps.Shell.Terminate(checkID)
		} else {
			res, err = r.deps.Shell.Check(checkID)
		}
		if err != nil {
			return nil, fmt.Errorf("shell continuation %s: %w", checkID, err)
		}
		return shellOutcome(res), nil
	}

	command, err := r.deps.Secrets.Resolve(stringParam(params, "command"))
	if err != nil {
		return nil, fmt.Errorf("resolving command secrets: %w", err)
	}

	opts := shell.Options{OwnerID: inv.AgentID}
	if dir := stringParam(params, "working_dir"); dir != "" {
		info, statErr := os.Stat(dir)
		if statErr != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidWorkingDir, dir)
		}
		opts.WorkingDir = dir
	}
	if secs, ok := numberParam(params, "timeout_seconds"); ok && secs > 0 {
		opts.Timeout = time.Duration(secs * float64(time.Second))
	}

	mode := shell.ModeSmart
	switch stringParam(params, "mode") {
	case "", string(shell.ModeSmart):
	case string(shell.ModeSync):
		mode = shell.ModeSync
	case string(shell.ModeAsync):
		mode = shell.ModeAsync
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidMode, stringParam(params, "mode"))
	}

	res, err := r.deps.Shell.Start(ctx, command, mode, opts)
	if err != nil {
		return nil, fmt.Errorf("starting command: %w", err)
	}
	return shellOutcome(res), nil
}

func shellOutcome(res *shell.Result) map[string]any {
	out := map[string]any{
		"check_id": res.CheckID,
		"status":   string(res.Status),
		"output":   res.Output,
	}
	if res.Status != shell.StatusRunning {
		out["exit_code"] = res.ExitCode
	}
	if res.Duration > 0 {
		out["duration_ms"] = res.Duration.Milliseconds()
	}
	return out
}

func (r *Router) handleFetchWeb(ctx context.Context, params map[string]any) (map[string]any, error) {
	var maxBytes int64
	if f, ok := numberParam(params, "max_bytes"); ok {
		maxBytes = int64(f)
	}
	page, err := r.deps.Fetcher.Fetch(ctx, stringParam(params, "url"), maxBytes)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"url":       page.URL,
		"status":    page.Status,
		"content":   page.Content,
		"truncated": page.Truncated,
	}, nil
}

// handleCallAPI substitutes secret placeholders in the URL, headers, and
// body just before the request goes out. Dispatch scrubs the response, so
// resolved values never reach the agent or the store.
func (r *Router) handleCallAPI(ctx context.Context, params map[string]any) (map[string]any, error) {
	resolvedURL, err := r.deps.Secrets.Resolve(stringParam(params, "url"))
	if err != nil {
		return nil, fmt.Errorf("resolving url secrets: %w", err)
	}
	body, err := r.deps.Secrets.Resolve(stringParam(params, "body"))
	if err != nil {
		return nil, fmt.Errorf("resolving body secrets: %w", err)
	}

	headers := make(map[string]string)
	if raw, ok := params["headers"].(map[string]any); ok {
		for k, v := range raw {
			s, _ := v.(string)
			resolved, resolveErr := r.deps.Secrets.Resolve(s)
			if resolveErr != nil {
				return nil, fmt.Errorf("resolving header %s: %w", k, resolveErr)
			}
			headers[k] = resolved
		}
	}

	req := web.APIRequest{
		URL:     resolvedURL,
		Method:  stringParam(params, "method"),
		Headers: headers,
		Body:    body,
	}
	if secs, ok := numberParam(params, "timeout_seconds"); ok && secs > 0 {
		req.Timeout = time.Duration(secs * float64(time.Second))
	}

	resp, err := r.deps.API.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	respHeaders := make(map[string]any, len(resp.Headers))
	for k, v := range resp.Headers {
		respHeaders[k] = v
	}
	return map[string]any{
		"status":      resp.Status,
		"headers":     respHeaders,
		"body":        resp.Body,
		"truncated":   resp.Truncated,
		"duration_ms": resp.Duration.Milliseconds(),
	}, nil
}

// handleCallMCP opens a connection (transport side of the XOR) or continues
// an existing one (connection_id side). Opening may carry a tool call in the
// same action.
func (r *Router) handleCallMCP(ctx context.Context, inv Invocation, params map[string]any) (map[string]any, error) {
	connID := stringParam(params, "connection_id")

	if connID == "" {
		transport, _ := params["transport"].(map[string]any)
		spec, err := mcp.SpecFromParams(transport)
		if err != nil {
			return nil, fmt.Errorf("bad transport: %w", err)
		}
		var tools []*mcpTool
		connID, tools, err = r.openMCP(ctx, spec, inv.AgentID)
		if err != nil {
			return nil, err
		}
		outcome := map[string]any{
			"connection_id": connID,
			"tools":         toolList(tools),
		}
		if tool := stringParam(params, "tool"); tool != "" {
			callOutcome, err := r.callMCPTool(ctx, connID, params)
			if err != nil {
				return outcome, err
			}
			for k, v := range callOutcome {
				outcome[k] = v
			}
		}
		return outcome, nil
	}

	if boolParam(params, "terminate") {
		if err := r.deps.MCP.Terminate(connID); err != nil {
			return nil, fmt.Errorf("terminating %s: %w", connID, err)
		}
		return map[string]any{
			"connection_id": connID,
			"status":        "terminated",
		}, nil
	}

	outcome, err := r.callMCPTool(ctx, connID, params)
	if err != nil {
		return nil, err
	}
	outcome["connection_id"] = connID
	return outcome, nil
}

type mcpTool struct {
	name        string
	description string
}

func (r *Router) openMCP(ctx context.Context, spec mcp.TransportSpec, ownerID string) (string, []*mcpTool, error) {
	connID, tools, err := r.deps.MCP.Open(ctx, spec, ownerID)
	if err != nil {
		return "", nil, fmt.Errorf("opening mcp connection: %w", err)
	}
	out := make([]*mcpTool, len(tools))
	for i, t := range tools {
		out[i] = &mcpTool{name: t.Name, description: t.Description}
	}
	return connID, out, nil
}

func toolList(tools []*mcpTool) []map[string]any {
	out := make([]map[string]any, len(tools))
	for i, t := range tools {
		out[i] = map[string]any{"name": t.name, "description": t.description}
	}
	return out
}

func (r *Router) callMCPTool(ctx context.Context, connID string, params map[string]any) (map[string]any, error) {
	tool := stringParam(params, "tool")
	if tool == "" {
		return nil, fmt.Errorf("%w: tool", ErrInvalidMode)
	}
	args, _ := params["arguments"].(map[string]any)
	res, err := r.deps.MCP.CallTool(ctx, connID, tool, args)
	if err != nil {
		return nil, fmt.Errorf("calling tool %s: %w", tool, err)
	}
	return map[string]any{
		"tool":     tool,
		"text":     res.Text,
		"is_error": res.IsError,
	}, nil
}

func (r *Router) handleFileRead(params map[string]any) (map[string]any, error) {
	var offset, limit int
	if f, ok := numberParam(params, "offset"); ok {
		offset = int(f)
	}
	if f, ok := numberParam(params, "limit"); ok {
		limit = int(f)
	}
	res, err := fileops.ReadFile(stringParam(params, "path"), offset, limit)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"content":     res.Content,
		"offset":      res.Offset,
		"lines":       res.Lines,
		"total_lines": res.TotalLines,
		"truncated":   res.Truncated,
	}, nil
}

// handleFileWrite decides write vs edit by the explicit mode when given,
// falling back to which XOR side is present.
func (r *Router) handleFileWrite(params map[string]any) (map[string]any, error) {
	path := stringParam(params, "path")
	mode := stringParam(params, "mode")
	if mode == "" {
		if _, hasContent := params["content"]; hasContent {
			mode = "write"
		} else {
			mode = "edit"
		}
	}

	switch mode {
	case "write":
		if _, hasContent := params["content"]; !hasContent {
			return nil, fmt.Errorf("%w: write mode requires content", ErrInvalidMode)
		}
		if err := fileops.WriteFile(path, stringParam(params, "content")); err != nil {
			return nil, err
		}
		return map[string]any{"path": path, "mode": "write"}, nil

	case "edit":
		count, err := fileops.EditFile(path,
			stringParam(params, "old_string"),
			stringParam(params, "new_string"),
			boolParam(params, "replace_all"))
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"path":         path,
			"mode":         "edit",
			"replacements": count,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}
}

// handleAnswerEngine asks the configured search-backed model and records
// the call's cost against the agent.
func (r *Router) handleAnswerEngine(ctx context.Context, inv Invocation, params map[string]any) (map[string]any, error) {
	query := stringParam(params, "query")
	resp, err := r.deps.LLM.Complete(ctx, llm.CompletionRequest{
		Model: r.cfg.AnswerModel,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: query},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("answer engine: %w", err)
	}

	if resp.Cost.GreaterThan(decimal.Zero) {
		cost := &models.CostRecord{
			ID:          uuid.New().String(),
			TaskID:      inv.TaskID,
			AgentID:     inv.AgentID,
			Kind:        models.CostKindLLM,
			Amount:      resp.Cost,
			Description: "answer_engine " + resp.Model,
			CreatedAt:   time.Now(),
		}
		if err := r.deps.Store.AddCost(ctx, cost); err != nil {
			r.logger.Warn("answer engine cost record failed", "error", err)
		}
	}

	return map[string]any{
		"answer": resp.Text,
		"model":  resp.Model,
	}, nil
}
