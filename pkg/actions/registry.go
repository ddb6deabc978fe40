package actions

import "sync"

// Registry holds the closed action set. Constructed once at startup;
// read-only afterwards.
type Registry struct {
	schemas map[Type]*Schema
	mu      sync.RWMutex
}

// NewRegistry builds the registry with every supported action schema.
func NewRegistry() *Registry {
	r := &Registry{schemas: make(map[Type]*Schema)}
	for _, s := range builtinSchemas() {
		r.schemas[s.Type] = s
	}
	return r
}

// Get returns the schema for an action type.
func (r *Registry) Get(t Type) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[t]
	return s, ok
}

// All returns every schema (no ordering guarantee).
func (r *Registry) All() []*Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Schema, 0, len(r.schemas))
	for _, s := range r.schemas {
		out = append(out, s)
	}
	return out
}

// Allowed reports whether an agent holding the given capability groups may
// dispatch the action type.
func (r *Registry) Allowed(t Type, groups []string) bool {
	s, ok := r.Get(t)
	if !ok {
		return false
	}
	for _, g := range groups {
		if Capability(g) == s.Capability {
			return true
		}
	}
	return false
}

func builtinSchemas() []*Schema {
	promptField := func(name string) ParamSpec {
		return ParamSpec{Name: name, Type: TypeParamString, Rule: Semantic(0.80)}
	}

	return []*Schema{
		{
			Type:       TypeSpawnChild,
			Priority:   9,
			Capability: CapDelegation,
			When:       "Delegate a subtask to a new child agent.",
			How:        "Provide task_description (required) and optional prompt fields; budget is required when you run under a budget cap.",
			Params: []ParamSpec{
				{Name: "task_description", Type: TypeParamString, Required: true, Rule: Semantic(0.85)},
				promptField("success_criteria"),
				promptField("immediate_context"),
				promptField("approach_guidance"),
				promptField("role"),
				promptField("cognitive_style"),
				promptField("output_style"),
				promptField("delegation_strategy"),
				promptField("downstream_constraints"),
				{Name: "budget", Type: TypeParamNumber, Rule: Percentile(50)},
				{Name: "profile", Type: TypeParamString, Rule: MostFrequent()},
				{Name: "skills", Type: TypeParamStringList, Rule: Union()},
			},
		},
		{
			Type:       TypeDismissChild,
			Priority:   8,
			Capability: CapDelegation,
			When:       "Terminate a direct child agent and its subtree.",
			How:        "Provide the child_id of a direct child.",
			Params: []ParamSpec{
				{Name: "child_id", Type: TypeParamString, Required: true, Rule: Exact()},
			},
		},
		{
			Type:       TypeSendMessage,
			Priority:   3,
			Capability: CapCore,
			When:       "Report progress or results to your parent, a sibling, or the user.",
			How:        "Omit target_id to address the user (root agents) or your parent.",
			Params: []ParamSpec{
				{Name: "target_id", Type: TypeParamString, Rule: Exact()},
				{Name: "content", Type: TypeParamString, Required: true, Rule: Semantic(0.80)},
			},
		},
		{
			Type:         TypeWait,
			Priority:     1,
			Capability:   CapCore,
			RequiresWait: true,
			When:         "Pause until new information arrives or a timer expires.",
			How:          "wait: true waits for the next message; a number waits that many seconds.",
			Params: []ParamSpec{
				{Name: "wait", Type: TypeParamWait, Required: true, Rule: WaitParam()},
			},
		},
		{
			Type:       TypeOrient,
			Priority:   2,
			Capability: CapCore,
			When:       "Reflect on progress and update your working narrative.",
			How:        "Provide a reflection; optionally replace the narrative.",
			Params: []ParamSpec{
				{Name: "reflection", Type: TypeParamString, Required: true, Rule: Semantic(0.75)},
				{Name: "narrative_update", Type: TypeParamString, Rule: Semantic(0.75)},
			},
		},
		{
			Type:       TypeTodo,
			Priority:   2,
			Capability: CapCore,
			When:       "Replace your todo list.",
			How:        "items is the full new list; states are todo, pending, done.",
			Params: []ParamSpec{
				{Name: "items", Type: TypeParamMapList, Required: true, Rule: Union(),
					NestedKeys: []string{"content", "state"}},
			},
		},
		{
			Type:       TypeAdjustBudget,
			Priority:   7,
			Capability: CapDelegation,
			When:       "Change a direct child's budget allocation.",
			How:        "Increases require headroom in your own budget; decreases must not undercut the child's spend.",
			Params: []ParamSpec{
				{Name: "child_id", Type: TypeParamString, Required: true, Rule: Exact()},
				{Name: "new_allocation", Type: TypeParamNumber, Required: true, Rule: Percentile(50)},
			},
		},
		{
			Type:       TypeRecordCost,
			Priority:   4,
			Capability: CapCore,
			When:       "Record an out-of-band cost against your budget.",
			How:        "amount is in account currency units.",
			Params: []ParamSpec{
				{Name: "amount", Type: TypeParamNumber, Required: true, Rule: Percentile(50)},
				{Name: "description", Type: TypeParamString, Rule: MostFrequent()},
			},
		},
		{
			Type:       TypeShell,
			Priority:   10,
			Capability: CapSystem,
			When:       "Run a shell command, or check/terminate a previously started one.",
			How:        "Provide command to start, or check_id to continue; never both.",
			XORGroups:  [][]string{{"command"}, {"check_id"}},
			Params: []ParamSpec{
				{Name: "command", Type: TypeParamString, Rule: Exact()},
				{Name: "check_id", Type: TypeParamString, Rule: Exact()},
				{Name: "working_dir", Type: TypeParamString, Rule: MostFrequent()},
				{Name: "timeout_seconds", Type: TypeParamNumber, Rule: Percentile(50)},
				{Name: "mode", Type: TypeParamEnum, Enum: []string{"smart", "sync", "async"}, Rule: MostFrequent()},
				{Name: "terminate", Type: TypeParamBool, Rule: MostFrequent()},
				{Name: "secrets", Type: TypeParamStringList, Rule: Union()},
			},
		},
		{
			Type:       TypeFetchWeb,
			Priority:   5,
			Capability: CapNetwork,
			When:       "Fetch a web page as markdown.",
			How:        "Provide an absolute URL.",
			Params: []ParamSpec{
				{Name: "url", Type: TypeParamString, Required: true, Rule: Exact()},
				{Name: "max_bytes", Type: TypeParamNumber, Rule: Percentile(50)},
			},
		},
		{
			Type:       TypeCallAPI,
			Priority:   6,
			Capability: CapNetwork,
			When:       "Call an HTTP API.",
			How:        "Secret placeholders like {{secret:NAME}} are substituted at execution and scrubbed from results.",
			Params: []ParamSpec{
				{Name: "url", Type: TypeParamString, Required: true, Rule: Exact()},
				{Name: "method", Type: TypeParamEnum, Enum: []string{"GET", "POST", "PUT", "PATCH", "DELETE"}, Rule: MostFrequent()},
				{Name: "headers", Type: TypeParamMap, Rule: Structural()},
				{Name: "body", Type: TypeParamString, Rule: MostFrequent()},
				{Name: "secrets", Type: TypeParamStringList, Rule: Union()},
				{Name: "timeout_seconds", Type: TypeParamNumber, Rule: Percentile(50)},
			},
		},
		{
			Type:       TypeCallMCP,
			Priority:   6,
			Capability: CapMCP,
			When:       "Call a tool on an MCP server, or continue/terminate an open connection.",
			How:        "Provide transport to open a connection, or connection_id to reuse one; never both.",
			XORGroups:  [][]string{{"transport"}, {"connection_id"}},
			Params: []ParamSpec{
				{Name: "transport", Type: TypeParamNested, AllOptional: true, Rule: Structural(),
					NestedKeys: []string{"kind", "command", "args", "url", "headers"}},
				{Name: "connection_id", Type: TypeParamString, Rule: Exact()},
				{Name: "tool", Type: TypeParamString, Rule: Exact()},
				{Name: "arguments", Type: TypeParamMap, Rule: Structural()},
				{Name: "terminate", Type: TypeParamBool, Rule: MostFrequent()},
			},
		},
		{
			Type:       TypeFileRead,
			Priority:   5,
			Capability: CapSystem,
			When:       "Read a text file.",
			How:        "Absolute path required; binary files are rejected.",
			Params: []ParamSpec{
				{Name: "path", Type: TypeParamString, Required: true, Rule: Exact()},
				{Name: "offset", Type: TypeParamNumber, Rule: Percentile(50)},
				{Name: "limit", Type: TypeParamNumber, Rule: Percentile(50)},
			},
		},
		{
			Type:       TypeFileWrite,
			Priority:   7,
			Capability: CapSystem,
			When:       "Create a file or apply an exact-string edit.",
			How:        "mode write refuses existing files; mode edit replaces old_string with new_string.",
			XORGroups:  [][]string{{"content"}, {"old_string", "new_string"}},
			Params: []ParamSpec{
				{Name: "path", Type: TypeParamString, Required: true, Rule: Exact()},
				{Name: "mode", Type: TypeParamEnum, Enum: []string{"write", "edit"}, Rule: MostFrequent()},
				{Name: "content", Type: TypeParamString, Rule: MostFrequent()},
				{Name: "old_string", Type: TypeParamString, Rule: Exact()},
				{Name: "new_string", Type: TypeParamString, Rule: Exact()},
				{Name: "replace_all", Type: TypeParamBool, Rule: MostFrequent()},
			},
		},
		{
			Type:       TypeGenerateSecret,
			Priority:   4,
			Capability: CapSecrets,
			When:       "Generate and store a random secret.",
			How:        "The value is never returned; reference it by name.",
			Params: []ParamSpec{
				{Name: "name", Type: TypeParamString, Required: true, Rule: Exact()},
				{Name: "length", Type: TypeParamNumber, Rule: Percentile(50)},
			},
		},
		{
			Type:       TypeSearchSecrets,
			Priority:   2,
			Capability: CapSecrets,
			When:       "List stored secret names matching a query.",
			How:        "Values are never returned.",
			Params: []ParamSpec{
				{Name: "query", Type: TypeParamString, Required: true, Rule: MostFrequent()},
			},
		},
		{
			Type:       TypeAnswerEngine,
			Priority:   5,
			Capability: CapNetwork,
			When:       "Ask a search-backed answer engine a question.",
			How:        "Use for fresh facts the models are unlikely to know.",
			Params: []ParamSpec{
				{Name: "query", Type: TypeParamString, Required: true, Rule: Semantic(0.80)},
			},
		},
		{
			Type:       TypeLearnSkills,
			Priority:   3,
			Capability: CapSkills,
			When:       "Load named skills into your active set.",
			How:        "Skill names come from the skill library listing.",
			Params: []ParamSpec{
				{Name: "names", Type: TypeParamStringList, Required: true, Rule: Union()},
			},
		},
		{
			Type:       TypeCreateSkill,
			Priority:   3,
			Capability: CapSkills,
			When:       "Write a reusable skill into the library.",
			How:        "permanent skills survive the task; others are session-scoped.",
			Params: []ParamSpec{
				{Name: "name", Type: TypeParamString, Required: true, Rule: Exact()},
				{Name: "description", Type: TypeParamString, Required: true, Rule: Semantic(0.80)},
				{Name: "content", Type: TypeParamString, Required: true, Rule: MostFrequent()},
				{Name: "permanent", Type: TypeParamBool, Rule: MostFrequent()},
			},
		},
		{
			Type:       TypeBatchSync,
			Priority:   11,
			Capability: CapBatch,
			When:       "Run several actions in order, stopping at the first failure.",
			How:        "Batches may not contain batches.",
			Params: []ParamSpec{
				{Name: "actions", Type: TypeParamActions, Required: true, Rule: BatchSequence()},
			},
		},
		{
			Type:       TypeBatchAsync,
			Priority:   12,
			Capability: CapBatch,
			When:       "Run several actions in the background and get one completion notice.",
			How:        "Batches may not contain batches.",
			Params: []ParamSpec{
				{Name: "actions", Type: TypeParamActions, Required: true, Rule: BatchSequence()},
			},
		},
	}
}
