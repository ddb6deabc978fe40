package actions

// ParamType is the declared type of an action parameter.
type ParamType string

// Parameter types. TypeParamWait accepts a boolean or a non-negative number
// of seconds. TypeParamActions is the batch sub-action list.
const (
	TypeParamString     ParamType = "string"
	TypeParamBool       ParamType = "bool"
	TypeParamNumber     ParamType = "number"
	TypeParamStringList ParamType = "string_list"
	TypeParamMap        ParamType = "map"
	TypeParamNested     ParamType = "nested"
	TypeParamEnum       ParamType = "enum"
	TypeParamMapList    ParamType = "map_list"
	TypeParamActions    ParamType = "actions"
	TypeParamWait       ParamType = "wait"
)

// ParamSpec declares one parameter of an action schema.
type ParamSpec struct {
	Name     string
	Type     ParamType
	Required bool

	// Enum values (canonical identifiers) for TypeParamEnum.
	Enum []string

	// Nested map keys for TypeParamNested. AllOptional nested maps allow any
	// subset of the declared keys; strict ones require exactly the declared
	// required keys.
	NestedKeys  []string
	AllOptional bool

	// Consensus rule applied when merging candidate values.
	Rule Rule

	// Description drives the WHEN/HOW portion of prompt assembly.
	Description string
}

// Schema declares one action type: its parameters, XOR groups, consensus
// priority, and capability group.
type Schema struct {
	Type   Type
	Params []ParamSpec

	// XORGroups lists groups of parameter names of which exactly one group
	// must be present (e.g. shell: {command} xor {check_id}).
	XORGroups [][]string

	// Priority tiebreaks consensus when action types split evenly; the
	// minimum (most conservative) wins.
	Priority int

	// RequiresWait marks actions that must carry a wait parameter.
	RequiresWait bool

	Capability Capability

	// When and How feed the prompt builder's action documentation.
	When string
	How  string
}

// Param returns the spec for a named parameter, or nil.
func (s *Schema) Param(name string) *ParamSpec {
	for i := range s.Params {
		if s.Params[i].Name == name {
			return &s.Params[i]
		}
	}
	return nil
}

// RequiredParams returns the names of required parameters outside XOR groups.
func (s *Schema) RequiredParams() []string {
	var out []string
	for _, p := range s.Params {
		if p.Required && !s.inXORGroup(p.Name) {
			out = append(out, p.Name)
		}
	}
	return out
}

func (s *Schema) inXORGroup(name string) bool {
	for _, group := range s.XORGroups {
		for _, n := range group {
			if n == name {
				return true
			}
		}
	}
	return false
}
