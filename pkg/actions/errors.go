package actions

import (
	"errors"
	"fmt"
)

// Validation failure categories. Validation errors are reported back to the
// agent as actionable feedback, never swallowed.
var (
	ErrUnknownAction    = errors.New("unknown action type")
	ErrMissingParam     = errors.New("missing required parameter")
	ErrUnknownParam     = errors.New("unknown parameter")
	ErrWrongType        = errors.New("wrong parameter type")
	ErrXORViolation     = errors.New("exactly one parameter group must be provided")
	ErrInvalidEnum      = errors.New("value not in enum")
	ErrNestedBatch      = errors.New("batch actions cannot contain batch actions")
	ErrCapabilityDenied = errors.New("action not permitted by capability groups")
)

// ValidationError carries the action type and parameter the failure refers
// to, so the feedback line the agent sees names the exact field.
type ValidationError struct {
	Action Type
	Param  string
	Err    error
	Detail string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("action %q", e.Action)
	if e.Param != "" {
		msg += fmt.Sprintf(" parameter %q", e.Param)
	}
	msg += ": " + e.Err.Error()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

func validationErr(action Type, param string, err error, detail string) error {
	return &ValidationError{Action: action, Param: param, Err: err, Detail: detail}
}
