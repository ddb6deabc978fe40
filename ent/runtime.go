// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/conclave-run/conclave/ent/actionrecord"
	"github.com/conclave-run/conclave/ent/agentrecord"
	"github.com/conclave-run/conclave/ent/costrecord"
	"github.com/conclave-run/conclave/ent/event"
	"github.com/conclave-run/conclave/ent/logentry"
	"github.com/conclave-run/conclave/ent/schema"
	"github.com/conclave-run/conclave/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	actionrecordFields := schema.ActionRecord{}.Fields()
	_ = actionrecordFields
	// actionrecordDescStartedAt is the schema descriptor for started_at field.
	actionrecordDescStartedAt := actionrecordFields[8].Descriptor()
	// actionrecord.DefaultStartedAt holds the default value on creation for the started_at field.
	actionrecord.DefaultStartedAt = actionrecordDescStartedAt.Default.(func() time.Time)
	agentrecordFields := schema.AgentRecord{}.Fields()
	_ = agentrecordFields
	// agentrecordDescDismissing is the schema descriptor for dismissing field.
	agentrecordDescDismissing := agentrecordFields[13].Descriptor()
	// agentrecord.DefaultDismissing holds the default value on creation for the dismissing field.
	agentrecord.DefaultDismissing = agentrecordDescDismissing.Default.(bool)
	// agentrecordDescInsertedAt is the schema descriptor for inserted_at field.
	agentrecordDescInsertedAt := agentrecordFields[14].Descriptor()
	// agentrecord.DefaultInsertedAt holds the default value on creation for the inserted_at field.
	agentrecord.DefaultInsertedAt = agentrecordDescInsertedAt.Default.(func() time.Time)
	// agentrecordDescUpdatedAt is the schema descriptor for updated_at field.
	agentrecordDescUpdatedAt := agentrecordFields[15].Descriptor()
	// agentrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentrecord.DefaultUpdatedAt = agentrecordDescUpdatedAt.Default.(func() time.Time)
	// agentrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentrecord.UpdateDefaultUpdatedAt = agentrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	costrecordFields := schema.CostRecord{}.Fields()
	_ = costrecordFields
	// costrecordDescCreatedAt is the schema descriptor for created_at field.
	costrecordDescCreatedAt := costrecordFields[6].Descriptor()
	// costrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	costrecord.DefaultCreatedAt = costrecordDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	logentryFields := schema.LogEntry{}.Fields()
	_ = logentryFields
	// logentryDescLevel is the schema descriptor for level field.
	logentryDescLevel := logentryFields[3].Descriptor()
	// logentry.DefaultLevel holds the default value on creation for the level field.
	logentry.DefaultLevel = logentryDescLevel.Default.(string)
	// logentryDescCreatedAt is the schema descriptor for created_at field.
	logentryDescCreatedAt := logentryFields[6].Descriptor()
	// logentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	logentry.DefaultCreatedAt = logentryDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[8].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
}
