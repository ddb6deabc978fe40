package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandle struct {
	agentID  string
	taskID   string
	parentID string
}

func (h *fakeHandle) AgentID() string  { return h.agentID }
func (h *fakeHandle) TaskID() string   { return h.taskID }
func (h *fakeHandle) ParentID() string { return h.parentID }

func TestRegisterGetUnregister(t *testing.T) {
	r := New()

	h := &fakeHandle{agentID: "ag-1", taskID: "t1"}
	r.Register(h)

	got, err := r.Get("ag-1")
	require.NoError(t, err)
	assert.Same(t, Handle(h), got)
	assert.Equal(t, 1, r.Len())

	r.Unregister("ag-1")
	_, err = r.Get("ag-1")
	assert.ErrorIs(t, err, ErrAgentNotFound)

	// Removing twice is fine.
	r.Unregister("ag-1")
}

func TestListByTask(t *testing.T) {
	r := New()
	r.Register(&fakeHandle{agentID: "root", taskID: "t1"})
	r.Register(&fakeHandle{agentID: "child", taskID: "t1", parentID: "root"})
	r.Register(&fakeHandle{agentID: "other", taskID: "t2"})

	assert.Len(t, r.ListByTask("t1"), 2)
	assert.Len(t, r.ListByTask("t2"), 1)
	assert.Empty(t, r.ListByTask("t3"))
}

func TestRegisterReplaces(t *testing.T) {
	r := New()
	r.Register(&fakeHandle{agentID: "ag-1", taskID: "t1"})
	replacement := &fakeHandle{agentID: "ag-1", taskID: "t1"}
	r.Register(replacement)

	got, err := r.Get("ag-1")
	require.NoError(t, err)
	assert.Same(t, Handle(replacement), got)
	assert.Equal(t, 1, r.Len())
}
