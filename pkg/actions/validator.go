package actions

import "fmt"

// Validator bridges untyped LLM output to typed action parameters. It is the
// only place that crosses that boundary: everything downstream of a
// successful Validate may assume canonical parameter shapes.
//
// Validation is idempotent: validating an already-validated action succeeds
// and leaves its parameters unchanged.
type Validator struct {
	registry *Registry
}

// NewValidator returns a validator over the given registry.
func NewValidator(registry *Registry) *Validator {
	return &Validator{registry: registry}
}

// Validate checks one action against its schema and normalizes its
// parameters in place. Batch actions have every sub-action validated; a
// single invalid sub-action fails the whole batch.
func (v *Validator) Validate(a *Action) error {
	return v.validate(a, false)
}

func (v *Validator) validate(a *Action, inBatch bool) error {
	schema, ok := v.registry.Get(a.Type)
	if !ok {
		return validationErr(a.Type, "", ErrUnknownAction, "")
	}
	if inBatch && a.Type.IsBatch() {
		return validationErr(a.Type, "", ErrNestedBatch, "")
	}
	if a.Params == nil {
		a.Params = map[string]any{}
	}

	for name := range a.Params {
		if schema.Param(name) == nil {
			return validationErr(a.Type, name, ErrUnknownParam, "")
		}
	}

	for _, name := range schema.RequiredParams() {
		if _, present := a.Params[name]; !present {
			return validationErr(a.Type, name, ErrMissingParam, "")
		}
	}

	if err := v.checkXOR(a, schema); err != nil {
		return err
	}

	for name, raw := range a.Params {
		spec := schema.Param(name)
		normalized, err := v.normalize(a.Type, spec, raw, inBatch)
		if err != nil {
			return err
		}
		a.Params[name] = normalized
	}
	return nil
}

// checkXOR enforces that exactly one XOR group is fully present and no
// parameter from any other group appears.
func (v *Validator) checkXOR(a *Action, schema *Schema) error {
	if len(schema.XORGroups) == 0 {
		return nil
	}
	satisfied := 0
	partial := false
	for _, group := range schema.XORGroups {
		present := 0
		for _, name := range group {
			if _, ok := a.Params[name]; ok {
				present++
			}
		}
		switch {
		case present == len(group):
			satisfied++
		case present > 0:
			partial = true
		}
	}
	if satisfied != 1 || partial {
		var groups []string
		for _, g := range schema.XORGroups {
			groups = append(groups, fmt.Sprintf("%v", g))
		}
		return validationErr(a.Type, "", ErrXORViolation,
			fmt.Sprintf("provide exactly one of %v", groups))
	}
	return nil
}

func (v *Validator) normalize(action Type, spec *ParamSpec, raw any, inBatch bool) (any, error) {
	switch spec.Type {
	case TypeParamString:
		s, ok := coerceString(raw)
		if !ok {
			return nil, validationErr(action, spec.Name, ErrWrongType,
				"expected string, got "+typeName(raw))
		}
		return s, nil

	case TypeParamBool:
		b, ok := coerceBool(raw)
		if !ok {
			return nil, validationErr(action, spec.Name, ErrWrongType,
				"expected bool, got "+typeName(raw))
		}
		return b, nil

	case TypeParamNumber:
		f, ok := coerceNumber(raw)
		if !ok {
			return nil, validationErr(action, spec.Name, ErrWrongType,
				"expected number, got "+typeName(raw))
		}
		return f, nil

	case TypeParamStringList:
		list, ok := coerceStringList(raw)
		if !ok {
			return nil, validationErr(action, spec.Name, ErrWrongType,
				"expected list of strings, got "+typeName(raw))
		}
		return list, nil

	case TypeParamMap:
		m, ok := coerceMap(raw)
		if !ok {
			return nil, validationErr(action, spec.Name, ErrWrongType,
				"expected map, got "+typeName(raw))
		}
		return m, nil

	case TypeParamEnum:
		val, ok := coerceEnum(raw, spec.Enum)
		if !ok {
			return nil, validationErr(action, spec.Name, ErrInvalidEnum,
				fmt.Sprintf("allowed: %v", spec.Enum))
		}
		return val, nil

	case TypeParamNested:
		m, ok := coerceMap(raw)
		if !ok {
			return nil, validationErr(action, spec.Name, ErrWrongType,
				"expected map, got "+typeName(raw))
		}
		for key := range m {
			if !containsString(spec.NestedKeys, key) {
				return nil, validationErr(action, spec.Name, ErrUnknownParam,
					"unknown key "+key)
			}
		}
		if !spec.AllOptional {
			for _, key := range spec.NestedKeys {
				if _, present := m[key]; !present {
					return nil, validationErr(action, spec.Name, ErrMissingParam,
						"missing key "+key)
				}
			}
		}
		return m, nil

	case TypeParamMapList:
		items, ok := coerceMapList(raw)
		if !ok {
			return nil, validationErr(action, spec.Name, ErrWrongType,
				"expected list of maps, got "+typeName(raw))
		}
		for i, item := range items {
			for key := range item {
				if !containsString(spec.NestedKeys, key) {
					return nil, validationErr(action, spec.Name, ErrUnknownParam,
						fmt.Sprintf("item %d: unknown key %s", i, key))
				}
			}
		}
		return items, nil

	case TypeParamWait:
		w, ok := coerceWait(raw)
		if !ok {
			return nil, validationErr(action, spec.Name, ErrWrongType,
				"expected true, false, or a non-negative number of seconds")
		}
		return w, nil

	case TypeParamActions:
		return v.normalizeSubActions(action, spec, raw)

	default:
		return nil, validationErr(action, spec.Name, ErrWrongType,
			"unhandled parameter type "+string(spec.Type))
	}
}

func (v *Validator) normalizeSubActions(action Type, spec *ParamSpec, raw any) (any, error) {
	var subs []Action
	switch t := raw.(type) {
	case []Action:
		subs = t
	case []any:
		subs = make([]Action, 0, len(t))
		for i, e := range t {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, validationErr(action, spec.Name, ErrWrongType,
					fmt.Sprintf("item %d: expected action object, got %s", i, typeName(e)))
			}
			sub, err := actionFromMap(m)
			if err != nil {
				return nil, validationErr(action, spec.Name, ErrWrongType,
					fmt.Sprintf("item %d: %v", i, err))
			}
			subs = append(subs, sub)
		}
	default:
		return nil, validationErr(action, spec.Name, ErrWrongType,
			"expected list of actions, got "+typeName(raw))
	}

	if len(subs) == 0 {
		return nil, validationErr(action, spec.Name, ErrMissingParam, "empty action list")
	}
	for i := range subs {
		if err := v.validate(&subs[i], true); err != nil {
			return nil, fmt.Errorf("sub-action %d: %w", i, err)
		}
	}
	return subs, nil
}

func actionFromMap(m map[string]any) (Action, error) {
	name, ok := m["action"].(string)
	if !ok {
		return Action{}, fmt.Errorf("missing action field")
	}
	var params map[string]any
	if raw, present := m["params"]; present {
		params, ok = raw.(map[string]any)
		if !ok {
			return Action{}, fmt.Errorf("params must be a map")
		}
	}
	reasoning, _ := m["reasoning"].(string)
	return Action{Type: Type(name), Params: params, Reasoning: reasoning}, nil
}

func containsString(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
