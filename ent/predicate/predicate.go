// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActionRecord is the predicate function for actionrecord builders.
type ActionRecord func(*sql.Selector)

// AgentRecord is the predicate function for agentrecord builders.
type AgentRecord func(*sql.Selector)

// CostRecord is the predicate function for costrecord builders.
type CostRecord func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// LogEntry is the predicate function for logentry builders.
type LogEntry func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
