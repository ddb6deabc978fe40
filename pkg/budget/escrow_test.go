package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestValidateAllocation(t *testing.T) {
	tests := []struct {
		name    string
		budget  Budget
		spent   string
		amount  string
		wantErr error
	}{
		{"na mode always ok", Unlimited(), "999", "999", nil},
		{"fits exactly", Budget{Mode: ModeAllocated, Allocated: dec("100"), Committed: dec("30")}, "20", "50", nil},
		{"exceeds by one", Budget{Mode: ModeAllocated, Allocated: dec("100"), Committed: dec("30")}, "20", "51", ErrInsufficientBudget},
		{"root mode enforces cap", Budget{Mode: ModeRoot, Allocated: dec("10")}, "0", "11", ErrInsufficientBudget},
		{"negative amount", Unlimited(), "0", "-1", ErrNegativeAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAllocation(tt.budget, dec(tt.spent), dec(tt.amount))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Escrow symmetry: any valid lock/release pair leaves committed unchanged.
func TestLockReleaseSymmetry(t *testing.T) {
	cases := []struct {
		allocated, committed, spent, amount string
	}{
		{"100", "0", "0", "40"},
		{"100", "50", "10", "40"},
		{"7.25", "1.50", "2.00", "3.75"},
		{"0.01", "0", "0", "0.01"},
	}
	for _, c := range cases {
		b := Budget{Mode: ModeAllocated, Allocated: dec(c.allocated), Committed: dec(c.committed)}
		locked, err := LockAllocation(b, dec(c.spent), dec(c.amount))
		require.NoError(t, err)

		released, _ := ReleaseAllocation(locked, dec(c.amount), decimal.Zero)
		assert.True(t, released.Committed.Equal(b.Committed),
			"committed changed across lock/release: %s != %s", released.Committed, b.Committed)
	}
}

func TestLockReleaseSymmetryUncapped(t *testing.T) {
	b := Unlimited()
	locked, err := LockAllocation(b, decimal.Zero, dec("100"))
	require.NoError(t, err)
	released, _ := ReleaseAllocation(locked, dec("100"), dec("30"))
	assert.True(t, released.Committed.Equal(b.Committed))
}

func TestReleaseReportsUnspent(t *testing.T) {
	b := Budget{Mode: ModeAllocated, Allocated: dec("100"), Committed: dec("40")}

	_, unspent := ReleaseAllocation(b, dec("40"), dec("25"))
	assert.True(t, unspent.Equal(dec("15")))

	// Overspent child: unspent clamps at zero.
	_, unspent = ReleaseAllocation(b, dec("40"), dec("55"))
	assert.True(t, unspent.IsZero())
}

// S4 from the scenario list: decrease child 40 → 25 with parent
// {allocated: 100, committed: 50}, parent spent 20.
func TestAdjustChildAllocationDecrease(t *testing.T) {
	parent := Budget{Mode: ModeAllocated, Allocated: dec("100"), Committed: dec("50")}

	got, err := AdjustChildAllocation(parent, dec("40"), dec("25"), dec("20"))
	require.NoError(t, err)
	assert.True(t, got.Allocated.Equal(dec("100")))
	assert.True(t, got.Committed.Equal(dec("35")))
}

func TestAdjustChildAllocationIncrease(t *testing.T) {
	parent := Budget{Mode: ModeAllocated, Allocated: dec("100"), Committed: dec("50")}

	// Available = 100 - 20 - 50 = 30; delta of 30 fits exactly.
	got, err := AdjustChildAllocation(parent, dec("40"), dec("70"), dec("20"))
	require.NoError(t, err)
	assert.True(t, got.Committed.Equal(dec("80")))

	// Delta of 31 does not.
	_, err = AdjustChildAllocation(parent, dec("40"), dec("71"), dec("20"))
	assert.ErrorIs(t, err, ErrInsufficientParentBudget)
}

// Adjust delta invariant: the change in committed equals new − current.
func TestAdjustDeltaInvariant(t *testing.T) {
	parent := Budget{Mode: ModeAllocated, Allocated: dec("1000"), Committed: dec("200")}
	spent := dec("100")
	pairs := [][2]string{{"50", "80"}, {"80", "10"}, {"10", "10"}, {"0", "700"}}

	for _, p := range pairs {
		got, err := AdjustChildAllocation(parent, dec(p[0]), dec(p[1]), spent)
		require.NoError(t, err)
		delta := got.Committed.Sub(parent.Committed)
		assert.True(t, delta.Equal(dec(p[1]).Sub(dec(p[0]))),
			"delta %s != %s-%s", delta, p[1], p[0])
		parent = got
	}
}

// No sequence of operations may drive committed above allocated − spent.
func TestInvariantPreserved(t *testing.T) {
	b := Budget{Mode: ModeAllocated, Allocated: dec("100")}
	spent := dec("10")

	var err error
	b, err = LockAllocation(b, spent, dec("60"))
	require.NoError(t, err)
	_, err = LockAllocation(b, spent, dec("40"))
	assert.ErrorIs(t, err, ErrInsufficientBudget)

	b, _ = ReleaseAllocation(b, dec("60"), dec("60"))
	b, err = LockAllocation(b, spent, dec("90"))
	require.NoError(t, err)
	assert.False(t, b.Committed.GreaterThan(b.Allocated.Sub(spent)))
}

func TestReleaseClampsNegativeCommitted(t *testing.T) {
	b := Budget{Mode: ModeAllocated, Allocated: dec("100"), Committed: dec("10")}
	got, _ := ReleaseAllocation(b, dec("25"), decimal.Zero)
	assert.True(t, got.Committed.IsZero())
}

func TestValidateShrink(t *testing.T) {
	child := Budget{Mode: ModeAllocated, Allocated: dec("50"), Committed: dec("10")}

	assert.NoError(t, ValidateShrink(child, dec("15"), dec("25")))
	assert.ErrorIs(t, ValidateShrink(child, dec("15"), dec("24")), ErrInsufficientBudget)
}
