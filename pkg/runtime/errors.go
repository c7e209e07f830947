package runtime

import "fmt"

// DaemonErrorKind classifies a failed daemon call at the transport level.
type DaemonErrorKind int

const (
	// KindUnknown marks failures the transport could not classify.
	KindUnknown DaemonErrorKind = iota

	// KindConnectionRefused means the control socket did not accept the
	// connection. Carries no HTTP status.
	KindConnectionRefused

	// KindHTTPStatus means the daemon answered with a non-success HTTP
	// status; StatusCode holds it.
	KindHTTPStatus
)

// DaemonError is the structured failure a Daemon implementation returns.
// It carries enough shape for a single exhaustive classification by the
// caller instead of ad hoc field probing.
type DaemonError struct {
	Kind       DaemonErrorKind
	StatusCode int
	Err        error
}

func (e *DaemonError) Error() string {
	switch e.Kind {
	case KindConnectionRefused:
		return fmt.Sprintf("daemon connection refused: %v", e.Err)
	case KindHTTPStatus:
		return fmt.Sprintf("daemon returned HTTP %d: %v", e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("daemon call failed: %v", e.Err)
	}
}

func (e *DaemonError) Unwrap() error { return e.Err }
