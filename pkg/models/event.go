package models

import "time"

// Event is one persisted bus event. Persisted events are replayable: a
// subscriber that connects late asks for everything after the last ID it
// saw. Transient events (shell ticks, wait timers) never become Events.
type Event struct {
	ID        int64          `json:"id"`
	TaskID    string         `json:"task_id"`
	Topic     string         `json:"topic"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

// LogEntry is one append-only structured log row. User-visible task
// messages are log entries with level "message" and an empty agent id.
type LogEntry struct {
	ID        int64          `json:"id"`
	TaskID    string         `json:"task_id"`
	AgentID   string         `json:"agent_id,omitempty"`
	Level     string         `json:"level"`
	Content   string         `json:"content"`
	Fields    map[string]any `json:"fields,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
