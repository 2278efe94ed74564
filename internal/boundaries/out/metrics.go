package out

import (
	"context"
	"time"
)

// AcquisitionRecorder records acquisition outcomes for observability.
type AcquisitionRecorder interface {
	// RecordAcquisition records one finished acquisition. path is how the
	// container was obtained (reused, restarted, created) and outcome is
	// "ok" or the error kind.
	RecordAcquisition(ctx context.Context, path, outcome string, elapsed time.Duration)

	// RecordJoin records a caller that attached to an acquisition already in flight.
	RecordJoin(ctx context.Context)
}
