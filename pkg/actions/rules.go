package actions

// RuleKind selects the consensus rule applied to one parameter.
type RuleKind string

// Consensus rule kinds. The consensus engine dispatches on these tags.
const (
	RuleExactMatch         RuleKind = "exact_match"
	RuleSemanticSimilarity RuleKind = "semantic_similarity"
	RuleModeSelection      RuleKind = "mode_selection"
	RuleUnionMerge         RuleKind = "union_merge"
	RuleStructuralMerge    RuleKind = "structural_merge"
	RulePercentile         RuleKind = "percentile"
	RuleBatchSequence      RuleKind = "batch_sequence_merge"
	RuleWaitParameter      RuleKind = "wait_parameter"
)

// Rule is the consensus rule descriptor attached to a parameter spec.
type Rule struct {
	Kind      RuleKind
	Threshold float64 // semantic_similarity cosine threshold
	P         float64 // percentile in [0,100]
}

// Exact requires all candidate values to be equal.
func Exact() Rule { return Rule{Kind: RuleExactMatch} }

// Semantic accepts values whose embeddings are within threshold cosine
// similarity of the first candidate.
func Semantic(threshold float64) Rule {
	return Rule{Kind: RuleSemanticSimilarity, Threshold: threshold}
}

// MostFrequent picks the most frequent value, first-encountered on ties.
func MostFrequent() Rule { return Rule{Kind: RuleModeSelection} }

// Union flattens lists and deduplicates preserving first-seen order.
func Union() Rule { return Rule{Kind: RuleUnionMerge} }

// Structural merges maps recursively, later values winning scalar conflicts.
func Structural() Rule { return Rule{Kind: RuleStructuralMerge} }

// Percentile interpolates linearly over sorted numeric values.
func Percentile(p float64) Rule { return Rule{Kind: RulePercentile, P: p} }

// BatchSequence merges equal-length action sequences element-wise.
func BatchSequence() Rule { return Rule{Kind: RuleBatchSequence} }

// WaitParam applies the mixed bool/number wait semantics.
func WaitParam() Rule { return Rule{Kind: RuleWaitParameter} }
