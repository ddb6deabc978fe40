package models

import (
	"time"

	"github.com/conclave-run/conclave/pkg/budget"
)

// AgentStatus is the lifecycle status of an agent actor.
type AgentStatus string

// Agent status values.
const (
	AgentStatusStarting AgentStatus = "starting"
	AgentStatusRunning  AgentStatus = "running"
	AgentStatusIdle     AgentStatus = "idle"
	AgentStatusPausing  AgentStatus = "pausing"
	AgentStatusPaused   AgentStatus = "paused"
	AgentStatusStopped  AgentStatus = "stopped"
	AgentStatusFailed   AgentStatus = "failed"
)

// HistoryEntryType distinguishes the kinds of per-model history entries.
type HistoryEntryType string

// History entry types.
const (
	HistoryUser     HistoryEntryType = "user"
	HistoryAgent    HistoryEntryType = "agent"
	HistoryDecision HistoryEntryType = "decision"
)

// HistoryEntry is one turn in a model's conversation history. Histories are
// kept per model-pool slot because different models see different condensed
// histories after summarization.
type HistoryEntry struct {
	Type      HistoryEntryType `json:"type"`
	Content   string           `json:"content"`
	Timestamp time.Time        `json:"timestamp"`
}

// InjectedFields come from the owning task and are identical across the tree.
type InjectedFields struct {
	GlobalContext     string   `json:"global_context,omitempty"`
	GlobalConstraints []string `json:"global_constraints,omitempty"`
}

// ProvidedFields are set once at spawn time by the parent (or task create).
type ProvidedFields struct {
	TaskDescription       string `json:"task_description"`
	SuccessCriteria       string `json:"success_criteria,omitempty"`
	ImmediateContext      string `json:"immediate_context,omitempty"`
	ApproachGuidance      string `json:"approach_guidance,omitempty"`
	Role                  string `json:"role,omitempty"`
	CognitiveStyle        string `json:"cognitive_style,omitempty"`
	OutputStyle           string `json:"output_style,omitempty"`
	DelegationStrategy    string `json:"delegation_strategy,omitempty"`
	DownstreamConstraints string `json:"downstream_constraints,omitempty"`
}

// TransformedFields accumulate as the agent works.
type TransformedFields struct {
	Narrative        string   `json:"narrative,omitempty"`
	SiblingSummaries []string `json:"sibling_summaries,omitempty"`
}

// PromptFields is the three-zone prompt record.
type PromptFields struct {
	Injected    InjectedFields    `json:"injected"`
	Provided    ProvidedFields    `json:"provided"`
	Transformed TransformedFields `json:"transformed"`
}

// TodoState is the state of a single todo item.
type TodoState string

// Todo states.
const (
	TodoStateTodo    TodoState = "todo"
	TodoStatePending TodoState = "pending"
	TodoStateDone    TodoState = "done"
)

// Todo is one entry in an agent's todo list.
type Todo struct {
	Content string    `json:"content"`
	State   TodoState `json:"state"`
}

// Skill is an instructional capability an agent has loaded.
type Skill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Path        string `json:"path"`
	Content     string `json:"content,omitempty"`
	Permanent   bool   `json:"permanent"`
}

// AgentSnapshot is the full persisted state of one agent. The live actor is
// the only writer of its own snapshot.
type AgentSnapshot struct {
	AgentID          string                    `json:"agent_id"`
	TaskID           string                    `json:"task_id"`
	ParentID         string                    `json:"parent_id,omitempty"`
	ProfileName      string                    `json:"profile_name"`
	ModelPool        []string                  `json:"model_pool"`
	CapabilityGroups []string                  `json:"capability_groups"`
	Status           AgentStatus               `json:"status"`
	PromptFields     PromptFields              `json:"prompt_fields"`
	ModelHistories   map[string][]HistoryEntry `json:"model_histories,omitempty"`
	BudgetData       budget.Budget             `json:"budget_data"`
	ActiveSkills     []Skill                   `json:"active_skills,omitempty"`
	Todos            []Todo                    `json:"todos,omitempty"`
	Children         []string                  `json:"children,omitempty"`
	Dismissing       bool                      `json:"dismissing"`
	InsertedAt       time.Time                 `json:"inserted_at"`
}

// Clone returns a deep copy of the snapshot so callers can hand it across
// goroutine boundaries without aliasing actor-owned state.
func (s *AgentSnapshot) Clone() *AgentSnapshot {
	out := *s
	out.ModelPool = append([]string(nil), s.ModelPool...)
	out.CapabilityGroups = append([]string(nil), s.CapabilityGroups...)
	out.Children = append([]string(nil), s.Children...)
	out.Todos = append([]Todo(nil), s.Todos...)
	out.ActiveSkills = append([]Skill(nil), s.ActiveSkills...)
	out.PromptFields.Injected.GlobalConstraints = append([]string(nil), s.PromptFields.Injected.GlobalConstraints...)
	out.PromptFields.Transformed.SiblingSummaries = append([]string(nil), s.PromptFields.Transformed.SiblingSummaries...)
	if s.ModelHistories != nil {
		out.ModelHistories = make(map[string][]HistoryEntry, len(s.ModelHistories))
		for k, v := range s.ModelHistories {
			out.ModelHistories[k] = append([]HistoryEntry(nil), v...)
		}
	}
	return &out
}
