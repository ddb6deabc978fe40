package consensus

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/conclave-run/conclave/pkg/actions"
)

func (e *Engine) mergeValues(ctx context.Context, schema *actions.Schema, spec *actions.ParamSpec, values []any, res *Result) (any, error) {
	if len(values) == 1 {
		return values[0], nil
	}

	switch spec.Rule.Kind {
	case actions.RuleExactMatch:
		return mergeExact(values)
	case actions.RuleSemanticSimilarity:
		return e.mergeSemantic(ctx, values, spec.Rule.Threshold, res)
	case actions.RuleModeSelection:
		return mergeMode(values), nil
	case actions.RuleUnionMerge:
		return mergeUnion(values), nil
	case actions.RuleStructuralMerge:
		return mergeStructural(values)
	case actions.RulePercentile:
		return mergePercentile(values, spec.Rule.P)
	case actions.RuleWaitParameter:
		return mergeWait(values)
	case actions.RuleBatchSequence:
		return e.mergeBatchSequence(ctx, values, res)
	default:
		return nil, fmt.Errorf("unknown consensus rule %q", spec.Rule.Kind)
	}
}

// mergeExact requires every value to be deeply equal.
func mergeExact(values []any) (any, error) {
	for _, v := range values[1:] {
		if !reflect.DeepEqual(values[0], v) {
			return nil, fmt.Errorf("%w: values differ under exact match", ErrNoConsensus)
		}
	}
	return values[0], nil
}

// mergeSemantic accepts string values whose embeddings all sit within the
// cosine threshold of the first value, returning the first. Identical
// strings short-circuit without an embedding call.
func (e *Engine) mergeSemantic(ctx context.Context, values []any, threshold float64, res *Result) (any, error) {
	texts := make([]string, len(values))
	identical := true
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: semantic rule over non-string value", ErrNoConsensus)
		}
		texts[i] = s
		if s != texts[0] {
			identical = false
		}
	}
	if identical {
		return texts[0], nil
	}
	if e.embedder == nil {
		return nil, fmt.Errorf("semantic merge requires an embedder")
	}

	vecs, cost, err := e.embedder.Embed(ctx, texts)
	res.EmbeddingCost = res.EmbeddingCost.Add(cost)
	if err != nil {
		return nil, fmt.Errorf("embedding candidates: %w", err)
	}
	if len(vecs) != len(texts) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(vecs), len(texts))
	}

	for i := 1; i < len(vecs); i++ {
		sim := cosine(vecs[0], vecs[i])
		if sim < threshold {
			return nil, fmt.Errorf("%w: similarity %.3f below threshold %.2f",
				ErrNoConsensus, sim, threshold)
		}
	}
	return texts[0], nil
}

func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// mergeMode picks the most frequent value, first-encountered on ties.
func mergeMode(values []any) any {
	type bucket struct {
		value any
		count int
	}
	var buckets []bucket
	for _, v := range values {
		found := false
		for i := range buckets {
			if reflect.DeepEqual(buckets[i].value, v) {
				buckets[i].count++
				found = true
				break
			}
		}
		if !found {
			buckets = append(buckets, bucket{value: v, count: 1})
		}
	}
	best := buckets[0]
	for _, b := range buckets[1:] {
		if b.count > best.count {
			best = b
		}
	}
	return best.value
}

// mergeUnion flattens list values, deduplicating while preserving first-seen
// order.
func mergeUnion(values []any) any {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, v := range values {
		switch t := v.(type) {
		case []string:
			for _, s := range t {
				add(s)
			}
		case []any:
			for _, e := range t {
				if s, ok := e.(string); ok {
					add(s)
				}
			}
		case string:
			add(t)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// mergeStructural merges maps key-wise; on scalar conflicts the later value
// wins, nested maps merge recursively.
func mergeStructural(values []any) (any, error) {
	out := make(map[string]any)
	for _, v := range values {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: structural rule over non-map value", ErrNoConsensus)
		}
		structuralInto(out, m)
	}
	return out, nil
}

func structuralInto(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				structuralInto(existing, sub)
				continue
			}
			clone := make(map[string]any, len(sub))
			structuralInto(clone, sub)
			dst[k] = clone
			continue
		}
		dst[k] = v
	}
}

// mergePercentile linearly interpolates over the sorted numeric values. With
// no numeric values at all it falls back to mode selection.
func mergePercentile(values []any, p float64) (any, error) {
	nums := make([]float64, 0, len(values))
	for _, v := range values {
		if f, ok := asFloat(v); ok {
			nums = append(nums, f)
		}
	}
	if len(nums) == 0 {
		return mergeMode(values), nil
	}
	sort.Float64s(nums)
	return percentile(nums, p), nil
}

func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// mergeWait implements the mixed wait semantics: pure boolean votes decide
// by quorum, numeric votes take the median, and mixed votes convert the
// booleans into seconds (false is 0, true is the longest requested wait, at
// least 30) before taking the median.
func mergeWait(values []any) (any, error) {
	var nums []float64
	trues, falses := 0, 0
	for _, v := range values {
		if f, ok := asFloat(v); ok {
			if f < 0 {
				return nil, fmt.Errorf("%w: negative wait duration", ErrNoConsensus)
			}
			nums = append(nums, f)
			continue
		}
		if b, ok := v.(bool); ok {
			if b {
				trues++
			} else {
				falses++
			}
			continue
		}
		return nil, fmt.Errorf("%w: wait value is neither bool nor number", ErrNoConsensus)
	}

	if len(nums) == 0 {
		switch {
		case trues == 0:
			return false, nil
		case falses == 0:
			return true, nil
		case trues+falses >= 3:
			// In a quorum of three or more, any vote to wait wins.
			return true, nil
		default:
			return nil, fmt.Errorf("%w: wait votes split", ErrNoConsensus)
		}
	}

	if trues > 0 || falses > 0 {
		longest := nums[0]
		for _, n := range nums[1:] {
			if n > longest {
				longest = n
			}
		}
		if longest < 30 {
			longest = 30
		}
		for i := 0; i < trues; i++ {
			nums = append(nums, longest)
		}
		for i := 0; i < falses; i++ {
			nums = append(nums, 0)
		}
	}

	sort.Float64s(nums)
	return median(nums), nil
}

// median returns the integer median: an even-count midpoint is rounded to
// the nearest whole second.
func median(sorted []float64) float64 {
	n := len(sorted)
	m := sorted[n/2]
	if n%2 == 0 {
		m = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return math.Round(m)
}

// mergeBatchSequence merges equal-length action sequences element-wise: the
// action types must line up position by position, and each position's
// parameters merge under that action's own rules.
func (e *Engine) mergeBatchSequence(ctx context.Context, values []any, res *Result) (any, error) {
	seqs := make([][]actions.Action, 0, len(values))
	for _, v := range values {
		seq, ok := v.([]actions.Action)
		if !ok {
			return nil, fmt.Errorf("%w: batch rule over non-action-list value", ErrNoConsensus)
		}
		seqs = append(seqs, seq)
	}
	for _, s := range seqs[1:] {
		if len(s) != len(seqs[0]) {
			return nil, fmt.Errorf("%w: batch lengths differ (%d vs %d)",
				ErrNoConsensus, len(seqs[0]), len(s))
		}
	}

	out := make([]actions.Action, len(seqs[0]))
	for i := range seqs[0] {
		group := make([]actions.Action, 0, len(seqs))
		for _, s := range seqs {
			if s[i].Type != seqs[0][i].Type {
				return nil, fmt.Errorf("%w: batch position %d has mixed action types",
					ErrNoConsensus, i)
			}
			group = append(group, s[i])
		}
		schema, ok := e.registry.Get(group[0].Type)
		if !ok {
			return nil, fmt.Errorf("no schema for batch sub-action %q", group[0].Type)
		}
		merged, err := e.mergeParams(ctx, schema, group, res)
		if err != nil {
			return nil, fmt.Errorf("batch position %d: %w", i, err)
		}
		out[i] = actions.Action{Type: group[0].Type, Params: merged, Reasoning: group[0].Reasoning}
	}
	return out, nil
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}
