package log

import (
	"time"
)

// Event represents a discovery or lifecycle event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the host instance that emitted the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// DriverID is the driver's class identifier in registry form.
	DriverID string `cbor:"5,keyasint,omitempty"`

	// DriverName is the driver's display name, when known.
	DriverName string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Scan      *ScanEvent      `cbor:"10,keyasint,omitempty"` // Scanner layer
	Lifecycle *LifecycleEvent `cbor:"11,keyasint,omitempty"` // Table layer
	Guard     *GuardEvent     `cbor:"12,keyasint,omitempty"` // Guard layer
	Error     *ErrorEventData `cbor:"13,keyasint,omitempty"` // Errors at any layer
}

// Layer indicates which component captured the event.
type Layer uint8

const (
	// LayerScanner is the registry scanner.
	LayerScanner Layer = 0
	// LayerTable is the driver instance table.
	LayerTable Layer = 1
	// LayerGuard is the subsystem init/shutdown guard.
	LayerGuard Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerScanner:
		return "SCANNER"
	case LayerTable:
		return "TABLE"
	case LayerGuard:
		return "GUARD"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryScan indicates a registry entry was examined.
	CategoryScan Category = 0
	// CategoryLifecycle indicates a driver instance changed.
	CategoryLifecycle Category = 1
	// CategoryGuard indicates the init count changed.
	CategoryGuard Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryScan:
		return "SCAN"
	case CategoryLifecycle:
		return "LIFECYCLE"
	case CategoryGuard:
		return "GUARD"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ScanEvent captures the outcome of reading one registry entry.
type ScanEvent struct {
	// KeyName is the registry sub-key name of the entry.
	KeyName string `cbor:"1,keyasint"`

	// Accepted is true when the entry produced a descriptor.
	Accepted bool `cbor:"2,keyasint"`

	// Path is the resolved driver module path (accepted entries only).
	Path string `cbor:"3,keyasint,omitempty"`

	// Reason explains why the entry was skipped.
	Reason string `cbor:"4,keyasint,omitempty"`
}

// LifecycleEvent captures a change to a driver instance table entry.
type LifecycleEvent struct {
	// Op is the table operation performed.
	Op Operation `cbor:"1,keyasint"`

	// Result is the operation outcome (e.g. CREATED, ALREADY_SHARED, ERASED).
	Result string `cbor:"2,keyasint"`

	// RefCount is the logical reference count after the operation.
	RefCount uint32 `cbor:"3,keyasint"`
}

// Operation identifies a table operation.
type Operation uint8

const (
	// OpAcquire indicates an acquire call.
	OpAcquire Operation = 0
	// OpQuery indicates a query call.
	OpQuery Operation = 1
	// OpRelease indicates a logical release.
	OpRelease Operation = 2
	// OpTeardown indicates a forced release during shutdown.
	OpTeardown Operation = 3
	// OpHandleRelease indicates a query handle dropped its platform reference.
	OpHandleRelease Operation = 4
)

// String returns the operation name.
func (o Operation) String() string {
	switch o {
	case OpAcquire:
		return "ACQUIRE"
	case OpQuery:
		return "QUERY"
	case OpRelease:
		return "RELEASE"
	case OpTeardown:
		return "TEARDOWN"
	case OpHandleRelease:
		return "HANDLE_RELEASE"
	default:
		return "UNKNOWN"
	}
}

// GuardEvent captures an initialize or shutdown call.
type GuardEvent struct {
	// Op is the guard operation.
	Op GuardOp `cbor:"1,keyasint"`

	// Count is the init count after the call.
	Count int32 `cbor:"2,keyasint"`

	// Transition is true when the call initialized or tore down the runtime.
	Transition bool `cbor:"3,keyasint,omitempty"`

	// Released is the number of drivers forcibly released by teardown.
	Released int `cbor:"4,keyasint,omitempty"`
}

// GuardOp identifies a guard operation.
type GuardOp uint8

const (
	// GuardInitialize indicates an initialize call.
	GuardInitialize GuardOp = 0
	// GuardShutdown indicates a shutdown call.
	GuardShutdown GuardOp = 1
)

// String returns the guard operation name.
func (g GuardOp) String() string {
	switch g {
	case GuardInitialize:
		return "INITIALIZE"
	case GuardShutdown:
		return "SHUTDOWN"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Code is the error code (if applicable).
	Code *int `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"4,keyasint,omitempty"`
}
