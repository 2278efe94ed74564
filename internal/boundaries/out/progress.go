package out

import (
	"context"

	"github.com/dockside/dockside/internal/domain"
)

// ProgressSink accepts ordered progress updates for an observer outside the core.
// Emit must not block on delivery. An error means the update was not accepted
// and aborts the current acquisition.
type ProgressSink interface {
	Emit(ctx context.Context, update domain.ProgressUpdate) error
}

// ProgressSinkFunc adapts a function to ProgressSink.
type ProgressSinkFunc func(ctx context.Context, update domain.ProgressUpdate) error

// Emit calls f.
func (f ProgressSinkFunc) Emit(ctx context.Context, update domain.ProgressUpdate) error {
	return f(ctx, update)
}

// DiscardProgress accepts and drops every update.
var DiscardProgress ProgressSink = ProgressSinkFunc(func(context.Context, domain.ProgressUpdate) error { return nil })

// TopicSink is a ProgressSink bound to a named topic. Sinks reporting the same
// topic reach the same observers.
type TopicSink interface {
	ProgressSink
	Topic() string
}

// TopicOf returns the topic of sink, or "" when sink is not a TopicSink.
func TopicOf(sink ProgressSink) string {
	if ts, ok := sink.(TopicSink); ok {
		return ts.Topic()
	}
	return ""
}
