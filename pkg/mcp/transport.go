package mcp

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// TransportKind selects how a connection reaches its MCP server.
type TransportKind string

const (
	KindStdio TransportKind = "stdio"
	KindHTTP  TransportKind = "http"
	KindSSE   TransportKind = "sse"
)

// TransportSpec is the call_mcp transport parameter after validation:
// everything needed to open one connection.
type TransportSpec struct {
	Kind    TransportKind
	Command string
	Args    []string
	URL     string
	Headers map[string]string
	Timeout time.Duration
}

// SpecFromParams builds a TransportSpec from the validated transport map.
func SpecFromParams(m map[string]any) (TransportSpec, error) {
	spec := TransportSpec{}
	if kind, ok := m["kind"].(string); ok {
		spec.Kind = TransportKind(kind)
	}
	if cmd, ok := m["command"].(string); ok {
		spec.Command = cmd
	}
	switch args := m["args"].(type) {
	case []string:
		spec.Args = args
	case []any:
		for _, a := range args {
			if s, ok := a.(string); ok {
				spec.Args = append(spec.Args, s)
			}
		}
	}
	if u, ok := m["url"].(string); ok {
		spec.URL = u
	}
	if hdrs, ok := m["headers"].(map[string]any); ok {
		spec.Headers = make(map[string]string, len(hdrs))
		for k, v := range hdrs {
			if s, ok := v.(string); ok {
				spec.Headers[k] = s
			}
		}
	}

	// Infer the kind when omitted: a command means stdio, a url means http.
	if spec.Kind == "" {
		switch {
		case spec.Command != "":
			spec.Kind = KindStdio
		case spec.URL != "":
			spec.Kind = KindHTTP
		}
	}
	return spec, spec.validate()
}

func (s TransportSpec) validate() error {
	switch s.Kind {
	case KindStdio:
		if s.Command == "" {
			return fmt.Errorf("stdio transport requires command")
		}
	case KindHTTP, KindSSE:
		if s.URL == "" {
			return fmt.Errorf("%s transport requires url", s.Kind)
		}
	default:
		return fmt.Errorf("unsupported transport kind: %q", s.Kind)
	}
	return nil
}

// buildTransport creates an MCP SDK transport from a spec.
func buildTransport(spec TransportSpec) (mcpsdk.Transport, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	switch spec.Kind {
	case KindStdio:
		cmd := exec.Command(spec.Command, spec.Args...)
		cmd.Env = os.Environ()
		return &mcpsdk.CommandTransport{Command: cmd}, nil
	case KindSSE:
		return &mcpsdk.SSEClientTransport{
			Endpoint:   spec.URL,
			HTTPClient: buildHTTPClient(spec),
		}, nil
	default:
		return &mcpsdk.StreamableClientTransport{
			Endpoint:   spec.URL,
			HTTPClient: buildHTTPClient(spec),
		}, nil
	}
}

func buildHTTPClient(spec TransportSpec) *http.Client {
	client := &http.Client{}
	if len(spec.Headers) > 0 {
		client.Transport = &headerTransport{
			base:    http.DefaultTransport,
			headers: spec.Headers,
		}
	}
	if spec.Timeout > 0 {
		client.Timeout = spec.Timeout
	}
	return client
}

// headerTransport wraps an http.RoundTripper to add fixed headers, typically
// Authorization with an already-resolved secret.
type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	return t.base.RoundTrip(req)
}
