// Package actions defines the closed action registry: the fixed set of
// action types an agent may dispatch, their parameter schemas, per-parameter
// consensus rules, priorities, and the validator bridging untyped LLM output
// to typed parameters. The validator is the only module that crosses that
// boundary.
package actions

// Type identifies one action in the closed registry.
type Type string

// The closed action set.
const (
	TypeSpawnChild     Type = "spawn_child"
	TypeDismissChild   Type = "dismiss_child"
	TypeSendMessage    Type = "send_message"
	TypeWait           Type = "wait"
	TypeOrient         Type = "orient"
	TypeTodo           Type = "todo"
	TypeAdjustBudget   Type = "adjust_budget"
	TypeRecordCost     Type = "record_cost"
	TypeShell          Type = "shell"
	TypeFetchWeb       Type = "fetch_web"
	TypeCallAPI        Type = "call_api"
	TypeCallMCP        Type = "call_mcp"
	TypeFileRead       Type = "file_read"
	TypeFileWrite      Type = "file_write"
	TypeGenerateSecret Type = "generate_secret"
	TypeSearchSecrets  Type = "search_secrets"
	TypeAnswerEngine   Type = "answer_engine"
	TypeLearnSkills    Type = "learn_skills"
	TypeCreateSkill    Type = "create_skill"
	TypeBatchSync      Type = "batch_sync"
	TypeBatchAsync     Type = "batch_async"
)

// Capability is the tag gating which actions an agent may dispatch.
type Capability string

// Capability groups.
const (
	CapCore       Capability = "core"
	CapDelegation Capability = "delegation"
	CapSystem     Capability = "system"
	CapNetwork    Capability = "network"
	CapMCP        Capability = "mcp"
	CapSecrets    Capability = "secrets"
	CapSkills     Capability = "skills"
	CapBatch      Capability = "batch"
)

// Action is one typed, schema-validated operation. Params values are the
// tagged value tree produced by json decoding (nil, bool, float64, string,
// []any, map[string]any) until the validator normalizes them.
type Action struct {
	Type      Type           `json:"action"`
	Params    map[string]any `json:"params"`
	Reasoning string         `json:"reasoning,omitempty"`
}

// IsBatch reports whether the action type is a batch container.
func (t Type) IsBatch() bool {
	return t == TypeBatchSync || t == TypeBatchAsync
}
