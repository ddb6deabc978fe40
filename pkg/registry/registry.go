// Package registry tracks the live agent actors of this process. It is the
// routing table for inter-agent messages: dispatchers resolve an agent ID
// to its mailbox handle here.
package registry

import (
	"errors"
	"sync"
)

// ErrAgentNotFound is returned when an agent ID has no live actor. The
// caller decides whether that is a routing failure (send_message) or an
// expected state (already-dismissed child).
var ErrAgentNotFound = errors.New("agent not found")

// Handle is the mailbox surface of a live actor. The registry stores
// handles, not actors, so it has no dependency on the actor package.
type Handle interface {
	// AgentID returns the actor's stable ID.
	AgentID() string
	// TaskID returns the owning task's ID.
	TaskID() string
	// ParentID returns the parent actor's ID, empty for a root.
	ParentID() string
}

// Registry is a concurrency-safe agent ID → handle map.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]Handle
}

func New() *Registry {
	return &Registry{agents: make(map[string]Handle)}
}

// Register adds a handle. Registering an already-present ID replaces the
// old handle; the lifecycle controller guarantees IDs are unique, so a
// replacement only happens on restore after a crash.
func (r *Registry) Register(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[h.AgentID()] = h
}

// Unregister removes an agent. Removing an absent ID is a no-op.
func (r *Registry) Unregister(agentID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.agents, agentID)
}

// UnregisterHandle removes the entry only while it still maps to h, so a
// stale actor's cleanup cannot evict a replacement registered under the
// same ID.
func (r *Registry) UnregisterHandle(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.agents[h.AgentID()] == h {
		delete(r.agents, h.AgentID())
	}
}

// Get resolves an agent ID to its live handle.
func (r *Registry) Get(agentID string) (Handle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.agents[agentID]
	if !ok {
		return nil, ErrAgentNotFound
	}
	return h, nil
}

// ListByTask returns the live handles belonging to one task.
func (r *Registry) ListByTask(taskID string) []Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Handle
	for _, h := range r.agents {
		if h.TaskID() == taskID {
			out = append(out, h)
		}
	}
	return out
}

// Len returns the number of live agents.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}
