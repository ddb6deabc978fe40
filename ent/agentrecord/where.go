// Code generated by ent, DO NOT EDIT.

package agentrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conclave-run/conclave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldTaskID, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldParentID, v))
}

// ProfileName applies equality check predicate on the "profile_name" field. It's identical to ProfileNameEQ.
func ProfileName(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldProfileName, v))
}

// Dismissing applies equality check predicate on the "dismissing" field. It's identical to DismissingEQ.
func Dismissing(v bool) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldDismissing, v))
}

// InsertedAt applies equality check predicate on the "inserted_at" field. It's identical to InsertedAtEQ.
func InsertedAt(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldInsertedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldTaskID, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldParentID))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldParentID, v))
}

// ProfileNameEQ applies the EQ predicate on the "profile_name" field.
func ProfileNameEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldProfileName, v))
}

// ProfileNameNEQ applies the NEQ predicate on the "profile_name" field.
func ProfileNameNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldProfileName, v))
}

// ProfileNameIn applies the In predicate on the "profile_name" field.
func ProfileNameIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldProfileName, vs...))
}

// ProfileNameNotIn applies the NotIn predicate on the "profile_name" field.
func ProfileNameNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldProfileName, vs...))
}

// ProfileNameGT applies the GT predicate on the "profile_name" field.
func ProfileNameGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldProfileName, v))
}

// ProfileNameGTE applies the GTE predicate on the "profile_name" field.
func ProfileNameGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldProfileName, v))
}

// ProfileNameLT applies the LT predicate on the "profile_name" field.
func ProfileNameLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldProfileName, v))
}

// ProfileNameLTE applies the LTE predicate on the "profile_name" field.
func ProfileNameLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldProfileName, v))
}

// ProfileNameContains applies the Contains predicate on the "profile_name" field.
func ProfileNameContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldProfileName, v))
}

// ProfileNameHasPrefix applies the HasPrefix predicate on the "profile_name" field.
func ProfileNameHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldProfileName, v))
}

// ProfileNameHasSuffix applies the HasSuffix predicate on the "profile_name" field.
func ProfileNameHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldProfileName, v))
}

// ProfileNameEqualFold applies the EqualFold predicate on the "profile_name" field.
func ProfileNameEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldProfileName, v))
}

// ProfileNameContainsFold applies the ContainsFold predicate on the "profile_name" field.
func ProfileNameContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldProfileName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// ModelHistoriesIsNil applies the IsNil predicate on the "model_histories" field.
func ModelHistoriesIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldModelHistories))
}

// ModelHistoriesNotNil applies the NotNil predicate on the "model_histories" field.
func ModelHistoriesNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldModelHistories))
}

// BudgetDataIsNil applies the IsNil predicate on the "budget_data" field.
func BudgetDataIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldBudgetData))
}

// BudgetDataNotNil applies the NotNil predicate on the "budget_data" field.
func BudgetDataNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldBudgetData))
}

// ActiveSkillsIsNil applies the IsNil predicate on the "active_skills" field.
func ActiveSkillsIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldActiveSkills))
}

// ActiveSkillsNotNil applies the NotNil predicate on the "active_skills" field.
func ActiveSkillsNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldActiveSkills))
}

// TodosIsNil applies the IsNil predicate on the "todos" field.
func TodosIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldTodos))
}

// TodosNotNil applies the NotNil predicate on the "todos" field.
func TodosNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldTodos))
}

// ChildrenIsNil applies the IsNil predicate on the "children" field.
func ChildrenIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldChildren))
}

// ChildrenNotNil applies the NotNil predicate on the "children" field.
func ChildrenNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldChildren))
}

// DismissingEQ applies the EQ predicate on the "dismissing" field.
func DismissingEQ(v bool) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldDismissing, v))
}

// DismissingNEQ applies the NEQ predicate on the "dismissing" field.
func DismissingNEQ(v bool) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldDismissing, v))
}

// InsertedAtEQ applies the EQ predicate on the "inserted_at" field.
func InsertedAtEQ(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldInsertedAt, v))
}

// InsertedAtNEQ applies the NEQ predicate on the "inserted_at" field.
func InsertedAtNEQ(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldInsertedAt, v))
}

// InsertedAtIn applies the In predicate on the "inserted_at" field.
func InsertedAtIn(vs ...time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldInsertedAt, vs...))
}

// InsertedAtNotIn applies the NotIn predicate on the "inserted_at" field.
func InsertedAtNotIn(vs ...time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldInsertedAt, vs...))
}

// InsertedAtGT applies the GT predicate on the "inserted_at" field.
func InsertedAtGT(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldInsertedAt, v))
}

// InsertedAtGTE applies the GTE predicate on the "inserted_at" field.
func InsertedAtGTE(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldInsertedAt, v))
}

// InsertedAtLT applies the LT predicate on the "inserted_at" field.
func InsertedAtLT(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldInsertedAt, v))
}

// InsertedAtLTE applies the LTE predicate on the "inserted_at" field.
func InsertedAtLTE(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldInsertedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.AgentRecord {
	return predicate.AgentRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.AgentRecord {
	return predicate.AgentRecord(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentRecord) predicate.AgentRecord {
	return predicate.AgentRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentRecord) predicate.AgentRecord {
	return predicate.AgentRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentRecord) predicate.AgentRecord {
	return predicate.AgentRecord(sql.NotPredicates(p))
}
