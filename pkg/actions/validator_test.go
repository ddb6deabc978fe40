package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *Validator {
	return NewValidator(NewRegistry())
}

func TestValidateUnknownAction(t *testing.T) {
	v := newValidator()
	err := v.Validate(&Action{Type: "teleport", Params: map[string]any{}})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestValidateMissingRequired(t *testing.T) {
	v := newValidator()
	err := v.Validate(&Action{Type: TypeSpawnChild, Params: map[string]any{
		"role": "researcher",
	}})
	require.ErrorIs(t, err, ErrMissingParam)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "task_description", verr.Param)
}

func TestValidateUnknownParam(t *testing.T) {
	v := newValidator()
	err := v.Validate(&Action{Type: TypeSendMessage, Params: map[string]any{
		"content": "hi",
		"urgency": "high",
	}})
	assert.ErrorIs(t, err, ErrUnknownParam)
}

// Shell requires exactly one of command or check_id; supplying both is a
// hard validation failure rather than a silent preference.
func TestShellXOR(t *testing.T) {
	v := newValidator()

	err := v.Validate(&Action{Type: TypeShell, Params: map[string]any{
		"command":  "ls",
		"check_id": "abc",
	}})
	assert.ErrorIs(t, err, ErrXORViolation)

	err = v.Validate(&Action{Type: TypeShell, Params: map[string]any{
		"timeout_seconds": 5,
	}})
	assert.ErrorIs(t, err, ErrXORViolation)

	assert.NoError(t, v.Validate(&Action{Type: TypeShell, Params: map[string]any{
		"command": "ls",
	}}))
	assert.NoError(t, v.Validate(&Action{Type: TypeShell, Params: map[string]any{
		"check_id":  "abc",
		"terminate": true,
	}}))
}

func TestFileWriteXOR(t *testing.T) {
	v := newValidator()

	// Partial edit group counts as a violation.
	err := v.Validate(&Action{Type: TypeFileWrite, Params: map[string]any{
		"path":       "/tmp/a.txt",
		"old_string": "x",
	}})
	assert.ErrorIs(t, err, ErrXORViolation)

	assert.NoError(t, v.Validate(&Action{Type: TypeFileWrite, Params: map[string]any{
		"path":       "/tmp/a.txt",
		"old_string": "x",
		"new_string": "y",
	}}))
	assert.NoError(t, v.Validate(&Action{Type: TypeFileWrite, Params: map[string]any{
		"path":    "/tmp/a.txt",
		"content": "hello",
	}}))
}

func TestLenientCoercions(t *testing.T) {
	v := newValidator()

	a := &Action{Type: TypeShell, Params: map[string]any{
		"check_id":        "abc",
		"terminate":       "true",
		"timeout_seconds": "30",
	}}
	require.NoError(t, v.Validate(a))
	assert.Equal(t, true, a.Params["terminate"])
	assert.Equal(t, float64(30), a.Params["timeout_seconds"])

	// {} where an empty list was meant.
	a = &Action{Type: TypeLearnSkills, Params: map[string]any{
		"names": map[string]any{},
	}}
	require.NoError(t, v.Validate(a))
	assert.Equal(t, []string{}, a.Params["names"])

	// Bare string as one-element list.
	a = &Action{Type: TypeLearnSkills, Params: map[string]any{
		"names": "git-workflow",
	}}
	require.NoError(t, v.Validate(a))
	assert.Equal(t, []string{"git-workflow"}, a.Params["names"])
}

func TestEnumCanonicalized(t *testing.T) {
	v := newValidator()
	a := &Action{Type: TypeCallAPI, Params: map[string]any{
		"url":    "https://example.com",
		"method": "post",
	}}
	require.NoError(t, v.Validate(a))
	assert.Equal(t, "POST", a.Params["method"])

	a = &Action{Type: TypeCallAPI, Params: map[string]any{
		"url":    "https://example.com",
		"method": "YEET",
	}}
	assert.ErrorIs(t, v.Validate(a), ErrInvalidEnum)
}

func TestWaitParameter(t *testing.T) {
	v := newValidator()

	for _, val := range []any{true, false, 30, 0.5, "45"} {
		a := &Action{Type: TypeWait, Params: map[string]any{"wait": val}}
		assert.NoError(t, v.Validate(a), "wait=%v", val)
	}

	a := &Action{Type: TypeWait, Params: map[string]any{"wait": -1}}
	assert.ErrorIs(t, v.Validate(a), ErrWrongType)

	a = &Action{Type: TypeWait, Params: map[string]any{"wait": "soon"}}
	assert.ErrorIs(t, v.Validate(a), ErrWrongType)
}

// Validation normalizes in place and validating the result again is a no-op.
func TestValidateIdempotent(t *testing.T) {
	v := newValidator()
	a := &Action{Type: TypeShell, Params: map[string]any{
		"command":         "echo hi",
		"terminate":       "false",
		"timeout_seconds": "10",
		"secrets":         map[string]any{},
	}}
	require.NoError(t, v.Validate(a))

	first := map[string]any{}
	for k, val := range a.Params {
		first[k] = val
	}
	require.NoError(t, v.Validate(a))
	assert.Equal(t, first, a.Params)
}

func TestBatchValidation(t *testing.T) {
	v := newValidator()

	a := &Action{Type: TypeBatchSync, Params: map[string]any{
		"actions": []any{
			map[string]any{"action": "shell", "params": map[string]any{"command": "ls"}},
			map[string]any{"action": "orient", "params": map[string]any{"reflection": "done listing"}},
		},
	}}
	require.NoError(t, v.Validate(a))

	subs, ok := a.Params["actions"].([]Action)
	require.True(t, ok)
	require.Len(t, subs, 2)
	assert.Equal(t, TypeShell, subs[0].Type)

	// One bad sub-action fails the whole batch.
	a = &Action{Type: TypeBatchSync, Params: map[string]any{
		"actions": []any{
			map[string]any{"action": "shell", "params": map[string]any{"command": "ls"}},
			map[string]any{"action": "shell", "params": map[string]any{}},
		},
	}}
	assert.ErrorIs(t, v.Validate(a), ErrXORViolation)
}

func TestNestedBatchRejected(t *testing.T) {
	v := newValidator()
	a := &Action{Type: TypeBatchAsync, Params: map[string]any{
		"actions": []any{
			map[string]any{"action": "batch_sync", "params": map[string]any{
				"actions": []any{
					map[string]any{"action": "orient", "params": map[string]any{"reflection": "r"}},
				},
			}},
		},
	}}
	assert.ErrorIs(t, v.Validate(a), ErrNestedBatch)
}

func TestEmptyBatchRejected(t *testing.T) {
	v := newValidator()
	a := &Action{Type: TypeBatchSync, Params: map[string]any{"actions": []any{}}}
	assert.ErrorIs(t, v.Validate(a), ErrMissingParam)
}

func TestTodoItems(t *testing.T) {
	v := newValidator()
	a := &Action{Type: TypeTodo, Params: map[string]any{
		"items": []any{
			map[string]any{"content": "write tests", "state": "pending"},
			map[string]any{"content": "ship", "state": "todo"},
		},
	}}
	require.NoError(t, v.Validate(a))

	a = &Action{Type: TypeTodo, Params: map[string]any{
		"items": []any{
			map[string]any{"content": "x", "deadline": "tomorrow"},
		},
	}}
	assert.ErrorIs(t, v.Validate(a), ErrUnknownParam)
}

func TestRegistryCapabilities(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.Allowed(TypeSendMessage, []string{"core"}))
	assert.False(t, r.Allowed(TypeShell, []string{"core", "network"}))
	assert.True(t, r.Allowed(TypeShell, []string{"core", "system"}))
	assert.False(t, r.Allowed("nope", []string{"core"}))
}

func TestRegistryComplete(t *testing.T) {
	r := NewRegistry()
	assert.Len(t, r.All(), 21)
	for _, s := range r.All() {
		assert.Greater(t, s.Priority, 0, "schema %s has no priority", s.Type)
		assert.NotEmpty(t, s.Capability, "schema %s has no capability", s.Type)
		for _, p := range s.Params {
			assert.NotEmpty(t, p.Rule.Kind, "%s.%s has no consensus rule", s.Type, p.Name)
		}
	}
}
