package events

// Payload "type" values for persisted events.
const (
	TypeTaskMessage    = "task.message"
	TypeTaskStatus     = "task.status"
	TypeAgentLog       = "agent.log"
	TypeAgentSpawned   = "agent.spawned"
	TypeAgentDismissed = "agent.dismissed"
)

// Payload "type" values for transient events.
const (
	TypeShellFinished = "shell.finished"
	TypeWaitExpired   = "wait.expired"
)

// TaskMessagesTopic carries the user-visible messages of one task,
// including the final result.
func TaskMessagesTopic(taskID string) string {
	return "tasks:" + taskID + ":messages"
}

// TaskStatusTopic carries task status transitions.
func TaskStatusTopic(taskID string) string {
	return "tasks:" + taskID + ":status"
}

// AgentLogsTopic carries one agent's structured activity log.
func AgentLogsTopic(agentID string) string {
	return "agents:" + agentID + ":logs"
}

// AgentTreeTopic carries spawn and dismiss notifications for one agent's
// children.
func AgentTreeTopic(agentID string) string {
	return "agents:" + agentID + ":tree"
}

// ShellEventsTopic carries transient background-command completion ticks
// addressed to one agent.
func ShellEventsTopic(agentID string) string {
	return "agents:" + agentID + ":shell"
}

// WaitEventsTopic carries transient wait-timer expiries addressed to one
// agent.
func WaitEventsTopic(agentID string) string {
	return "agents:" + agentID + ":wait"
}
