// Package budget implements the parent→child budget escrow: pure value
// semantics over allocated/committed amounts, with spend queried from the
// cost ledger by the caller. All operations return new values; nothing here
// mutates shared state.
package budget

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Mode determines how an agent's budget is interpreted.
type Mode string

// Budget modes. ModeNA means "no cap": every validation passes and lock /
// release are no-ops.
const (
	ModeNA        Mode = "na"
	ModeRoot      Mode = "root"
	ModeAllocated Mode = "allocated"
)

// Escrow errors.
var (
	ErrInsufficientBudget       = errors.New("insufficient_budget")
	ErrInsufficientParentBudget = errors.New("insufficient_parent_budget")
	ErrBudgetRequired           = errors.New("budget_required")
	ErrNegativeAmount           = errors.New("negative_amount")
)

// Budget is the escrow record carried by each agent.
// Invariant: committed ≤ allocated − spent for allocated-mode agents at all
// observable points.
type Budget struct {
	Mode      Mode            `json:"mode"`
	Allocated decimal.Decimal `json:"allocated"`
	Committed decimal.Decimal `json:"committed"`
}

// Unlimited returns a budget with no cap.
func Unlimited() Budget {
	return Budget{Mode: ModeNA}
}

// Root returns a root-mode budget with the given cap.
func Root(allocated decimal.Decimal) Budget {
	return Budget{Mode: ModeRoot, Allocated: allocated}
}

// Allocated returns a child budget funded with the given amount.
func Allocated(amount decimal.Decimal) Budget {
	return Budget{Mode: ModeAllocated, Allocated: amount}
}

// Capped reports whether the budget enforces a cap.
func (b Budget) Capped() bool {
	return b.Mode == ModeRoot || b.Mode == ModeAllocated
}

// Available returns allocated − spent − committed, the headroom for new
// locks. Meaningless for ModeNA.
func (b Budget) Available(spent decimal.Decimal) decimal.Decimal {
	return b.Allocated.Sub(spent).Sub(b.Committed)
}

// ValidateAllocation reports whether amount can be locked given current
// spend. Always ok for uncapped budgets.
func ValidateAllocation(b Budget, spent, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if !b.Capped() {
		return nil
	}
	if spent.Add(b.Committed).Add(amount).GreaterThan(b.Allocated) {
		return ErrInsufficientBudget
	}
	return nil
}

// LockAllocation commits amount against the budget. No-op for uncapped
// budgets so that lock/release stay symmetric regardless of mode.
func LockAllocation(b Budget, spent, amount decimal.Decimal) (Budget, error) {
	if err := ValidateAllocation(b, spent, amount); err != nil {
		return b, err
	}
	if !b.Capped() {
		return b, nil
	}
	b.Committed = b.Committed.Add(amount)
	return b, nil
}

// ReleaseAllocation returns the escrow held for a dismissed child: committed
// decreases by the child's full allocation, and the unspent remainder
// (max(0, childAllocated − childSpent)) is reported so the caller can record
// an absorbed cost entry.
func ReleaseAllocation(b Budget, childAllocated, childSpent decimal.Decimal) (Budget, decimal.Decimal) {
	unspent := childAllocated.Sub(childSpent)
	if unspent.IsNegative() {
		unspent = decimal.Zero
	}
	if !b.Capped() {
		return b, unspent
	}
	b.Committed = b.Committed.Sub(childAllocated)
	if b.Committed.IsNegative() {
		// Release without a matching lock; clamp rather than go negative.
		b.Committed = decimal.Zero
	}
	return b, unspent
}

// AdjustChildAllocation applies the delta between a child's current and new
// allocation to the parent's committed amount in one step. Increases require
// available room (unless uncapped); decreases always succeed.
func AdjustChildAllocation(parent Budget, currentChild, newChild, parentSpent decimal.Decimal) (Budget, error) {
	if newChild.IsNegative() {
		return parent, ErrNegativeAmount
	}
	delta := newChild.Sub(currentChild)
	if !parent.Capped() {
		return parent, nil
	}
	if delta.IsPositive() && delta.GreaterThan(parent.Available(parentSpent)) {
		return parent, ErrInsufficientParentBudget
	}
	parent.Committed = parent.Committed.Add(delta)
	if parent.Committed.IsNegative() {
		parent.Committed = decimal.Zero
	}
	return parent, nil
}

// ValidateShrink checks that lowering a child's allocation to newAllocated
// does not invalidate what the child has already spent or committed to its
// own grandchildren.
func ValidateShrink(child Budget, childSpent, newAllocated decimal.Decimal) error {
	if newAllocated.LessThan(childSpent.Add(child.Committed)) {
		return ErrInsufficientBudget
	}
	return nil
}
