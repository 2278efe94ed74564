package domain

// DefaultProgressTopic is the channel name the desktop front end listens on.
const DefaultProgressTopic = "docker_progress"

// ProgressUpdate is one step of acquisition progress as shown to the user.
// Percentage is within [0, 100]. Consumers must tolerate repeated or
// slightly regressing values.
type ProgressUpdate struct {
	Message    string  `json:"message"`
	Percentage float64 `json:"percentage"`
}

// Acquisition progress milestones outside the pull band.
const (
	ProgressChecking      = 0.0
	ProgressCheckingStale = 10.0
	ProgressRemovingStale = 20.0
	ProgressPullStart     = 30.0
	ProgressPullEnd       = 80.0
	ProgressReusing       = 50.0
	ProgressCreating      = 85.0
	ProgressStarting      = 95.0
	ProgressReady         = 100.0
)

// Acquisition progress messages.
const (
	MsgCheckingExisting = "Checking existing containers..."
	MsgStartingExisting = "Starting existing container..."
	MsgCheckingStale    = "Checking for old containers to remove..."
	MsgRemovingStale    = "Removing old container..."
	MsgPulling          = "Pulling Docker image..."
	MsgCreating         = "Creating container..."
	MsgStarting         = "Starting container..."
	MsgReady            = "Container ready"
)
