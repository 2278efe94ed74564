package acquire

import (
	"fmt"

	"github.com/dockside/dockside/internal/domain"
)

// PullProgressAggregator folds per-layer pull events into a single percentage
// within [domain.ProgressPullStart, domain.ProgressPullEnd].
//
// The total layer count is unknown up front, so the percentage can move back
// when a new layer shows up. Every completion status counts, so a layer that
// reports both "Download complete" and "Pull complete" counts twice and the
// percentage saturates at the top of the band early. A fresh aggregator is
// used for every pull.
type PullProgressAggregator struct {
	seen            map[string]struct{}
	layersSeen      uint32
	layersCompleted uint32
}

// NewPullProgressAggregator creates an empty aggregator.
func NewPullProgressAggregator() *PullProgressAggregator {
	return &PullProgressAggregator{seen: make(map[string]struct{})}
}

// Observe folds ev into the running state and returns the update to emit.
// ok is false when the event carries no byte counts or no layer was seen yet.
func (a *PullProgressAggregator) Observe(ev domain.PullEvent) (update domain.ProgressUpdate, ok bool) {
	if ev.LayerID != "" {
		if _, dup := a.seen[ev.LayerID]; !dup {
			a.seen[ev.LayerID] = struct{}{}
			a.layersSeen++
		}
	}

	if ev.Progress != nil && ev.Progress.Total > 0 && a.layersSeen > 0 {
		update = domain.ProgressUpdate{
			Message:    fmt.Sprintf("Pulling: %d of %d", ev.Progress.Current, ev.Progress.Total),
			Percentage: a.percentage(ev.Progress),
		}
		ok = true
	}

	// Completion is counted after the byte progress of the same event.
	if ev.LayerDone() {
		a.layersCompleted++
	}

	return update, ok
}

// LayersSeen returns the number of distinct layers observed so far.
func (a *PullProgressAggregator) LayersSeen() uint32 { return a.layersSeen }

// LayersCompleted returns the number of completion statuses received.
func (a *PullProgressAggregator) LayersCompleted() uint32 { return a.layersCompleted }

func (a *PullProgressAggregator) percentage(p *domain.ByteProgress) float64 {
	const band = domain.ProgressPullEnd - domain.ProgressPullStart

	seen := float64(a.layersSeen)
	slice := float64(p.Current) / float64(p.Total) * band / seen
	pct := domain.ProgressPullStart + float64(a.layersCompleted)/seen*band + slice

	return max(domain.ProgressPullStart, min(domain.ProgressPullEnd, pct))
}
