package agent

import (
	"github.com/shopspring/decimal"

	"github.com/conclave-run/conclave/pkg/budget"
	"github.com/conclave-run/conclave/pkg/models"
	"github.com/conclave-run/conclave/pkg/router"
)

type msgKind int

const (
	msgUserMessage msgKind = iota
	msgAgentMessage
	msgTrigger
	msgContinue
	msgActionResult
	msgBatchSubResult
	msgChildSpawned
	msgChildDismissed
	msgSpawnFailed
	msgSetBudget
	msgCommitBudget
	msgReleaseBudget
	msgSetDismissing
	msgWaitExpired
	msgStop
	msgGetState
)

// message is one mailbox entry. Which fields are meaningful depends on kind;
// the zero value of the rest is ignored.
type message struct {
	kind    msgKind
	from    string
	content string

	result    router.ActionResult
	subResult router.BatchSubResult

	childID string
	reason  string

	budget budget.Budget
	amount decimal.Decimal
	// release bookkeeping for a dismissed child
	childAllocated decimal.Decimal
	childSpent     decimal.Decimal

	// terminal status a stop request carries (stopped or paused)
	finalStatus models.AgentStatus

	reply chan *models.AgentSnapshot
}
