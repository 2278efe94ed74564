package domain

// Pull status strings reported by the engine when a layer finishes.
const (
	PullStatusDownloadComplete = "Download complete"
	PullStatusPullComplete     = "Pull complete"
)

// ByteProgress is the byte-level progress of a single layer.
type ByteProgress struct {
	Current int64
	Total   int64
}

// PullEvent is one message of an image pull stream. Every field is optional;
// events are consumed in arrival order and never stored.
type PullEvent struct {
	LayerID  string
	Progress *ByteProgress
	Status   string
}

// LayerDone reports whether the event announces the end of a layer.
func (e PullEvent) LayerDone() bool {
	return e.Status == PullStatusDownloadComplete || e.Status == PullStatusPullComplete
}
