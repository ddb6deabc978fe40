// Package models defines the domain types shared between the agent actors,
// the lifecycle controller, and the persistence layer.
package models

import "time"

// TaskStatus is the lifecycle status of a task.
type TaskStatus string

// Task status values.
const (
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusPausing   TaskStatus = "pausing"
	TaskStatusPaused    TaskStatus = "paused"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
)

// Task is a user-submitted goal plus the profile and global context the
// root agent (and its descendants) run under.
type Task struct {
	ID                 string     `json:"id"`
	Prompt             string     `json:"prompt"`
	Status             TaskStatus `json:"status"`
	GlobalContext      string     `json:"global_context,omitempty"`
	InitialConstraints []string   `json:"initial_constraints,omitempty"`
	ProfileName        string     `json:"profile_name"`
	Result             string     `json:"result,omitempty"`
	ErrorMessage       string     `json:"error_message,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}
