package domain

import "errors"

// Domain errors represent business-level errors that can occur in the system.
// Use cases wrap them together with the underlying cause, so callers can test
// the failure kind with errors.Is and still read the engine's reason.
var (
	// Engine errors
	ErrEngineUnreachable     = errors.New("container engine unreachable")
	ErrEngineOperationFailed = errors.New("container engine operation failed")

	// Acquisition errors
	ErrInvalidImageReference  = errors.New("invalid image reference")
	ErrPullFailed             = errors.New("failed to pull image")
	ErrCreateFailed           = errors.New("failed to create container")
	ErrStartFailed            = errors.New("failed to start container")
	ErrProgressDeliveryFailed = errors.New("failed to deliver progress update")

	// File errors
	ErrFileNotFound = errors.New("file not found in container")
)

// ErrorKind is the transport name of a domain error.
type ErrorKind string

const (
	KindEngineUnreachable      ErrorKind = "EngineUnreachable"
	KindEngineOperationFailed  ErrorKind = "EngineOperationFailed"
	KindInvalidImageReference  ErrorKind = "InvalidImageReference"
	KindPullFailed             ErrorKind = "PullFailed"
	KindCreateFailed           ErrorKind = "CreateFailed"
	KindStartFailed            ErrorKind = "StartFailed"
	KindProgressDeliveryFailed ErrorKind = "ProgressDeliveryFailed"
	KindFileNotFound           ErrorKind = "FileNotFound"
	KindUnknown                ErrorKind = "Unknown"
)

var errorKinds = []struct {
	err  error
	kind ErrorKind
}{
	// ProgressDeliveryFailed first: a sink failure can wrap an engine error
	// message but is never caused by the engine.
	{ErrProgressDeliveryFailed, KindProgressDeliveryFailed},
	{ErrInvalidImageReference, KindInvalidImageReference},
	{ErrPullFailed, KindPullFailed},
	{ErrCreateFailed, KindCreateFailed},
	{ErrStartFailed, KindStartFailed},
	{ErrEngineUnreachable, KindEngineUnreachable},
	{ErrEngineOperationFailed, KindEngineOperationFailed},
	{ErrFileNotFound, KindFileNotFound},
}

// KindOf returns the kind of the first domain error found in err's chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}
