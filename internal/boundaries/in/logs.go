package in

import "context"

// LogService defines the contract for operator-facing logging and log access.
type LogService interface {
	// Log prints message on the operator console, flagged as an error when it
	// reads like one, and records it in the structured log.
	Log(ctx context.Context, message string) error

	// GetProcessLogs returns the last N lines of the dockside log file.
	GetProcessLogs(ctx context.Context, lines int) ([]string, error)

	// FollowProcessLogs returns a channel that streams dockside log lines.
	// The channel is closed when the context is canceled.
	FollowProcessLogs(ctx context.Context, initialLines int) (<-chan string, error)
}
