// Code generated by ent, DO NOT EDIT.

package actionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conclave-run/conclave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldTaskID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldAgentID, v))
}

// ActionType applies equality check predicate on the "action_type" field. It's identical to ActionTypeEQ.
func ActionType(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldActionType, v))
}

// ParentActionID applies equality check predicate on the "parent_action_id" field. It's identical to ParentActionIDEQ.
func ParentActionID(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldParentActionID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldContainsFold(FieldTaskID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldContainsFold(FieldAgentID, v))
}

// ActionTypeEQ applies the EQ predicate on the "action_type" field.
func ActionTypeEQ(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldActionType, v))
}

// ActionTypeNEQ applies the NEQ predicate on the "action_type" field.
func ActionTypeNEQ(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNEQ(FieldActionType, v))
}

// ActionTypeIn applies the In predicate on the "action_type" field.
func ActionTypeIn(vs ...string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldIn(FieldActionType, vs...))
}

// ActionTypeNotIn applies the NotIn predicate on the "action_type" field.
func ActionTypeNotIn(vs ...string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNotIn(FieldActionType, vs...))
}

// ActionTypeGT applies the GT predicate on the "action_type" field.
func ActionTypeGT(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldGT(FieldActionType, v))
}

// ActionTypeGTE applies the GTE predicate on the "action_type" field.
func ActionTypeGTE(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldGTE(FieldActionType, v))
}

// ActionTypeLT applies the LT predicate on the "action_type" field.
func ActionTypeLT(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldLT(FieldActionType, v))
}

// ActionTypeLTE applies the LTE predicate on the "action_type" field.
func ActionTypeLTE(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldLTE(FieldActionType, v))
}

// ActionTypeContains applies the Contains predicate on the "action_type" field.
func ActionTypeContains(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldContains(FieldActionType, v))
}

// ActionTypeHasPrefix applies the HasPrefix predicate on the "action_type" field.
func ActionTypeHasPrefix(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldHasPrefix(FieldActionType, v))
}

// ActionTypeHasSuffix applies the HasSuffix predicate on the "action_type" field.
func ActionTypeHasSuffix(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldHasSuffix(FieldActionType, v))
}

// ActionTypeEqualFold applies the EqualFold predicate on the "action_type" field.
func ActionTypeEqualFold(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEqualFold(FieldActionType, v))
}

// ActionTypeContainsFold applies the ContainsFold predicate on the "action_type" field.
func ActionTypeContainsFold(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldContainsFold(FieldActionType, v))
}

// ParamsIsNil applies the IsNil predicate on the "params" field.
func ParamsIsNil() predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldIsNull(FieldParams))
}

// ParamsNotNil applies the NotNil predicate on the "params" field.
func ParamsNotNil() predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNotNull(FieldParams))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNotNull(FieldResult))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// ParentActionIDEQ applies the EQ predicate on the "parent_action_id" field.
func ParentActionIDEQ(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldParentActionID, v))
}

// ParentActionIDNEQ applies the NEQ predicate on the "parent_action_id" field.
func ParentActionIDNEQ(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNEQ(FieldParentActionID, v))
}

// ParentActionIDIn applies the In predicate on the "parent_action_id" field.
func ParentActionIDIn(vs ...string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldIn(FieldParentActionID, vs...))
}

// ParentActionIDNotIn applies the NotIn predicate on the "parent_action_id" field.
func ParentActionIDNotIn(vs ...string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNotIn(FieldParentActionID, vs...))
}

// ParentActionIDGT applies the GT predicate on the "parent_action_id" field.
func ParentActionIDGT(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldGT(FieldParentActionID, v))
}

// ParentActionIDGTE applies the GTE predicate on the "parent_action_id" field.
func ParentActionIDGTE(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldGTE(FieldParentActionID, v))
}

// ParentActionIDLT applies the LT predicate on the "parent_action_id" field.
func ParentActionIDLT(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldLT(FieldParentActionID, v))
}

// ParentActionIDLTE applies the LTE predicate on the "parent_action_id" field.
func ParentActionIDLTE(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldLTE(FieldParentActionID, v))
}

// ParentActionIDContains applies the Contains predicate on the "parent_action_id" field.
func ParentActionIDContains(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldContains(FieldParentActionID, v))
}

// ParentActionIDHasPrefix applies the HasPrefix predicate on the "parent_action_id" field.
func ParentActionIDHasPrefix(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldHasPrefix(FieldParentActionID, v))
}

// ParentActionIDHasSuffix applies the HasSuffix predicate on the "parent_action_id" field.
func ParentActionIDHasSuffix(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldHasSuffix(FieldParentActionID, v))
}

// ParentActionIDIsNil applies the IsNil predicate on the "parent_action_id" field.
func ParentActionIDIsNil() predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldIsNull(FieldParentActionID))
}

// ParentActionIDNotNil applies the NotNil predicate on the "parent_action_id" field.
func ParentActionIDNotNil() predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNotNull(FieldParentActionID))
}

// ParentActionIDEqualFold applies the EqualFold predicate on the "parent_action_id" field.
func ParentActionIDEqualFold(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEqualFold(FieldParentActionID, v))
}

// ParentActionIDContainsFold applies the ContainsFold predicate on the "parent_action_id" field.
func ParentActionIDContainsFold(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldContainsFold(FieldParentActionID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ActionRecord {
	return predicate.ActionRecord(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.ActionRecord {
	return predicate.ActionRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.ActionRecord {
	return predicate.ActionRecord(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActionRecord) predicate.ActionRecord {
	return predicate.ActionRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActionRecord) predicate.ActionRecord {
	return predicate.ActionRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActionRecord) predicate.ActionRecord {
	return predicate.ActionRecord(sql.NotPredicates(p))
}
