package router

import (
	"context"
	"errors"
	"net"
	"os"
	"strings"

	"github.com/conclave-run/conclave/pkg/actions"
	"github.com/conclave-run/conclave/pkg/budget"
	"github.com/conclave-run/conclave/pkg/llm"
	"github.com/conclave-run/conclave/pkg/mcp"
	"github.com/conclave-run/conclave/pkg/registry"
	"github.com/conclave-run/conclave/pkg/secrets"
	"github.com/conclave-run/conclave/pkg/shell"
	"github.com/conclave-run/conclave/pkg/web"
)

// Failure taxonomy surfaced to the agent. Reason strings match the error
// text so reasons survive wrapping and persistence unchanged.
var (
	ErrUnknownAction       = errors.New("unknown_action")
	ErrRequestTimeout      = errors.New("request_timeout")
	ErrConnectionRefused   = errors.New("connection_refused")
	ErrEndpointUnreachable = errors.New("endpoint_unreachable")
	ErrRequestFailed       = errors.New("request_failed")
	ErrResponseTooLarge    = errors.New("response_too_large")
	ErrInvalidWorkingDir   = errors.New("invalid_working_dir")
	ErrInvalidMode         = errors.New("invalid_mode")
	ErrRouterExit          = errors.New("router_exit")
	ErrNotParent           = errors.New("not_parent")
	ErrNotDirectChild      = errors.New("not_direct_child")
	ErrParentDismissing    = errors.New("parent_dismissing")
)

// reasonTable maps sentinel errors (this package's and collaborators') to
// the taxonomy codes the agent re-plans on.
var reasonTable = []struct {
	err    error
	reason string
}{
	{ErrUnknownAction, "unknown_action"},
	{ErrRequestTimeout, "request_timeout"},
	{ErrConnectionRefused, "connection_refused"},
	{ErrEndpointUnreachable, "endpoint_unreachable"},
	{ErrResponseTooLarge, "response_too_large"},
	{ErrInvalidWorkingDir, "invalid_working_dir"},
	{ErrInvalidMode, "invalid_mode"},
	{ErrRouterExit, "router_exit"},
	{ErrNotParent, "not_parent"},
	{ErrNotDirectChild, "not_direct_child"},
	{ErrParentDismissing, "parent_dismissing"},

	{actions.ErrXORViolation, "xor_violation"},
	{actions.ErrMissingParam, "missing_required_param"},
	{actions.ErrUnknownAction, "unknown_action"},
	{actions.ErrCapabilityDenied, "capability_denied"},

	{budget.ErrInsufficientBudget, "insufficient_budget"},
	{budget.ErrInsufficientParentBudget, "insufficient_parent_budget"},
	{budget.ErrBudgetRequired, "budget_required"},

	{llm.ErrUnauthorized, "authentication_failed"},
	{llm.ErrRateLimited, "rate_limit_exceeded"},
	{llm.ErrOverloaded, "service_unavailable"},
	{llm.ErrUnavailable, "service_unavailable"},
	{llm.ErrInvalidRequest, "request_failed"},

	{registry.ErrAgentNotFound, "agent_not_found"},
	{mcp.ErrUnknownConnection, "unknown_connection"},
	{shell.ErrUnknownCheckID, "unknown_check_id"},
	{secrets.ErrNotFound, "secret_not_found"},
	{web.ErrInvalidURL, "invalid_url"},

	{context.DeadlineExceeded, "request_timeout"},
}

// Reason reduces an error chain to its taxonomy code. Anything unmatched is
// a generic request_failed.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	// A failed batch carries its failed sub-action's code so the model sees
	// the underlying cause, not a generic batch error.
	var sub *errBatchSubFailed
	if errors.As(err, &sub) {
		return sub.reason
	}
	for _, entry := range reasonTable {
		if errors.Is(err, entry.err) {
			return entry.reason
		}
	}
	// Network errors arrive wrapped in *url.Error / *net.OpError, not as
	// sentinels.
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "request_timeout"
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if errors.Is(opErr.Err, os.ErrDeadlineExceeded) {
			return "request_timeout"
		}
		return "connection_refused"
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "endpoint_unreachable"
	}
	if strings.Contains(err.Error(), "connection refused") {
		return "connection_refused"
	}
	if strings.Contains(err.Error(), "no such host") {
		return "endpoint_unreachable"
	}
	return "request_failed"
}
