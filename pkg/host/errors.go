package host

import "errors"

// Host errors.
var (
	// ErrNotInitialized is returned by table operations while the init count is zero.
	ErrNotInitialized = errors.New("driver host not initialized")

	// ErrNotFound is returned when releasing an identity with no table entry.
	ErrNotFound = errors.New("driver not loaded")

	// ErrActivationFailed wraps the platform error of a failed activation.
	ErrActivationFailed = errors.New("driver activation failed")

	// ErrHandleReleased is returned when a handle is released twice.
	ErrHandleReleased = errors.New("handle already released")

	// ErrNilActivator is returned by New without an activator.
	ErrNilActivator = errors.New("activator is required")
)

// Result describes what a successful table operation did.
type Result uint8

const (
	// ResultNone is returned alongside errors.
	ResultNone Result = iota
	// ResultCreated means a new driver object was activated.
	ResultCreated
	// ResultAlreadyShared means an existing driver object was shared.
	ResultAlreadyShared
	// ResultErased means the last reference was dropped and the driver destroyed.
	ResultErased
	// ResultStillShared means other references keep the driver alive.
	ResultStillShared
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case ResultNone:
		return "NONE"
	case ResultCreated:
		return "CREATED"
	case ResultAlreadyShared:
		return "ALREADY_SHARED"
	case ResultErased:
		return "ERASED"
	case ResultStillShared:
		return "STILL_SHARED"
	default:
		return "UNKNOWN"
	}
}
