package agent

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/conclave-run/conclave/pkg/actions"
	"github.com/conclave-run/conclave/pkg/llm"
	"github.com/conclave-run/conclave/pkg/models"
)

// buildSystemPrompt renders the three prompt zones plus the live working
// state (todos, children, skills, budget) and the action catalog the agent's
// capability groups unlock.
func (a *Actor) buildSystemPrompt(spent decimal.Decimal) string {
	var b strings.Builder
	f := a.state.PromptFields

	b.WriteString("You are an autonomous agent in a cooperating tree of agents.\n")
	if f.Provided.Role != "" {
		b.WriteString("Role: " + f.Provided.Role + "\n")
	}
	if f.Provided.CognitiveStyle != "" {
		b.WriteString("Cognitive style: " + f.Provided.CognitiveStyle + "\n")
	}

	section(&b, "Task", f.Provided.TaskDescription)
	section(&b, "Success criteria", f.Provided.SuccessCriteria)
	section(&b, "Context", f.Provided.ImmediateContext)
	section(&b, "Approach guidance", f.Provided.ApproachGuidance)
	section(&b, "Output style", f.Provided.OutputStyle)
	section(&b, "Delegation strategy", f.Provided.DelegationStrategy)
	section(&b, "Constraints for your children", f.Provided.DownstreamConstraints)
	section(&b, "Global context", f.Injected.GlobalContext)

	if len(f.Injected.GlobalConstraints) > 0 {
		b.WriteString("\n## Global constraints\n")
		for _, c := range f.Injected.GlobalConstraints {
			b.WriteString("- " + c + "\n")
		}
	}
	section(&b, "Working narrative", f.Transformed.Narrative)
	if len(f.Transformed.SiblingSummaries) > 0 {
		b.WriteString("\n## Sibling agents\n")
		for _, s := range f.Transformed.SiblingSummaries {
			b.WriteString("- " + s + "\n")
		}
	}

	if len(a.state.Todos) > 0 {
		b.WriteString("\n## Your todo list\n")
		for _, t := range a.state.Todos {
			b.WriteString(fmt.Sprintf("- [%s] %s\n", t.State, t.Content))
		}
	}
	if len(a.state.Children) > 0 {
		b.WriteString("\n## Your live children\n")
		for _, c := range a.state.Children {
			b.WriteString("- " + c + "\n")
		}
	}
	for _, s := range a.state.ActiveSkills {
		b.WriteString("\n## Skill: " + s.Name + "\n" + s.Content + "\n")
	}

	a.writeBudget(&b, spent)
	a.writeActionCatalog(&b)

	b.WriteString("\nReply with exactly one JSON object and nothing else:\n")
	b.WriteString(`{"action": "<action name>", "params": {...}, "reasoning": "<one sentence>"}` + "\n")
	return b.String()
}

func (a *Actor) writeBudget(b *strings.Builder, spent decimal.Decimal) {
	bd := a.state.BudgetData
	if !bd.Capped() {
		return
	}
	b.WriteString("\n## Budget\n")
	fmt.Fprintf(b, "Allocated: $%s, spent: $%s, reserved for children: $%s, available: $%s.\n",
		bd.Allocated.StringFixed(2), spent.StringFixed(2),
		bd.Committed.StringFixed(2), bd.Available(spent).StringFixed(2))
	b.WriteString("Stay within your allocation; spawning children requires an explicit budget.\n")
}

func (a *Actor) writeActionCatalog(b *strings.Builder) {
	schemas := a.deps.Actions.All()
	sort.Slice(schemas, func(i, j int) bool { return schemas[i].Type < schemas[j].Type })

	b.WriteString("\n## Available actions\n")
	for _, s := range schemas {
		if !a.deps.Actions.Allowed(s.Type, a.state.CapabilityGroups) {
			continue
		}
		fmt.Fprintf(b, "### %s\nWhen: %s\nHow: %s\nParams: %s\n", s.Type, s.When, s.How, paramList(s))
	}
}

func paramList(s *actions.Schema) string {
	parts := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		part := p.Name + " (" + string(p.Type)
		if p.Required {
			part += ", required"
		}
		part += ")"
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

func section(b *strings.Builder, title, content string) {
	if content == "" {
		return
	}
	b.WriteString("\n## " + title + "\n" + content + "\n")
}

// historyMessages converts one model's history into chat turns. Decisions
// read as assistant turns: they are what the agent, collectively, said.
func historyMessages(history []models.HistoryEntry) []llm.Message {
	out := make([]llm.Message, 0, len(history)+1)
	for _, e := range history {
		switch e.Type {
		case models.HistoryAgent:
			out = append(out, llm.Message{Role: llm.RoleAssistant, Content: e.Content})
		case models.HistoryDecision:
			out = append(out, llm.Message{Role: llm.RoleAssistant, Content: "[decided] " + e.Content})
		default:
			out = append(out, llm.Message{Role: llm.RoleUser, Content: e.Content})
		}
	}
	if len(out) == 0 || out[len(out)-1].Role != llm.RoleUser {
		out = append(out, llm.Message{Role: llm.RoleUser, Content: "Choose your next action."})
	}
	return out
}
