package llm

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Pricing is the per-million-token rate card for one model.
type Pricing struct {
	InputPerMTok  decimal.Decimal
	OutputPerMTok decimal.Decimal
}

// PricingTable maps model identifiers (or identifier prefixes) to rates.
// Longest matching prefix wins, so "claude-sonnet-4-5" can override a bare
// "claude-" catch-all.
type PricingTable map[string]Pricing

var million = decimal.NewFromInt(1_000_000)

// Cost computes the charge for one call. Unknown models cost zero; the
// ledger still records the call so the gap is visible.
func (t PricingTable) Cost(model string, inputTokens, outputTokens int64) decimal.Decimal {
	p, ok := t.lookup(model)
	if !ok {
		return decimal.Zero
	}
	in := p.InputPerMTok.Mul(decimal.NewFromInt(inputTokens)).Div(million)
	out := p.OutputPerMTok.Mul(decimal.NewFromInt(outputTokens)).Div(million)
	return in.Add(out)
}

func (t PricingTable) lookup(model string) (Pricing, bool) {
	if p, ok := t[model]; ok {
		return p, true
	}
	var (
		best    string
		bestVal Pricing
		found   bool
	)
	for prefix, p := range t {
		if strings.HasPrefix(model, prefix) && len(prefix) > len(best) {
			best, bestVal, found = prefix, p, true
		}
	}
	return bestVal, found
}
