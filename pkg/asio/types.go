package asio

// Bool is the driver-side boolean (a C long).
type Bool int32

// Driver-side boolean values.
const (
	False Bool = 0
	True  Bool = 1
)

// BoolOf converts a Go bool.
func BoolOf(b bool) Bool {
	if b {
		return True
	}
	return False
}

// SampleType identifies the sample format of a channel.
type SampleType int32

// Sample types.
const (
	Int16MSB   SampleType = 0
	Int24MSB   SampleType = 1
	Int32MSB   SampleType = 2
	Float32MSB SampleType = 3
	Float64MSB SampleType = 4

	Int32MSB16 SampleType = 8
	Int32MSB18 SampleType = 9
	Int32MSB20 SampleType = 10
	Int32MSB24 SampleType = 11

	Int16LSB   SampleType = 16
	Int24LSB   SampleType = 17
	Int32LSB   SampleType = 18
	Float32LSB SampleType = 19
	Float64LSB SampleType = 20

	Int32LSB16 SampleType = 24
	Int32LSB18 SampleType = 25
	Int32LSB20 SampleType = 26
	Int32LSB24 SampleType = 27

	DSDInt8LSB1 SampleType = 32
	DSDInt8MSB1 SampleType = 33
	DSDInt8NER8 SampleType = 40
)

var sampleTypeNames = map[SampleType]string{
	Int16MSB:    "Int16MSB",
	Int24MSB:    "Int24MSB",
	Int32MSB:    "Int32MSB",
	Float32MSB:  "Float32MSB",
	Float64MSB:  "Float64MSB",
	Int32MSB16:  "Int32MSB16",
	Int32MSB18:  "Int32MSB18",
	Int32MSB20:  "Int32MSB20",
	Int32MSB24:  "Int32MSB24",
	Int16LSB:    "Int16LSB",
	Int24LSB:    "Int24LSB",
	Int32LSB:    "Int32LSB",
	Float32LSB:  "Float32LSB",
	Float64LSB:  "Float64LSB",
	Int32LSB16:  "Int32LSB16",
	Int32LSB18:  "Int32LSB18",
	Int32LSB20:  "Int32LSB20",
	Int32LSB24:  "Int32LSB24",
	DSDInt8LSB1: "DSDInt8LSB1",
	DSDInt8MSB1: "DSDInt8MSB1",
	DSDInt8NER8: "DSDInt8NER8",
}

// String returns the sample type name.
func (s SampleType) String() string {
	if name, ok := sampleTypeNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// FutureSelector selects an optional driver extension for Driver.Future.
type FutureSelector int32

// Future selectors.
const (
	EnableTimeCodeRead  FutureSelector = 1
	DisableTimeCodeRead FutureSelector = 2
	SetInputMonitor     FutureSelector = 3
	Transport           FutureSelector = 4
	SetInputGain        FutureSelector = 5
	GetInputMeter       FutureSelector = 6
	SetOutputGain       FutureSelector = 7
	GetOutputMeter      FutureSelector = 8
	CanInputMonitor     FutureSelector = 9
	CanTimeInfo         FutureSelector = 10
	CanTimeCode         FutureSelector = 11
	CanTransport        FutureSelector = 12
	CanInputGain        FutureSelector = 13
	CanInputMeter       FutureSelector = 14
	CanOutputGain       FutureSelector = 15
	CanOutputMeter      FutureSelector = 16
	OptionalOne         FutureSelector = 17

	SetIoFormat   FutureSelector = 0x23111961
	GetIoFormat   FutureSelector = 0x23111983
	CanDoIoFormat FutureSelector = 0x23112004

	CanReportOverload        FutureSelector = 0x24042012
	GetInternalBufferSamples FutureSelector = 0x25042012
)

// BufferSize describes the buffer sizes a driver accepts, in samples.
// Granularity -1 means sizes must be powers of two.
type BufferSize struct {
	Min         int
	Max         int
	Preferred   int
	Granularity int
}

// Accepts reports whether size is within bounds and on the size grid.
func (b BufferSize) Accepts(size int) bool {
	if size < b.Min || size > b.Max {
		return false
	}
	switch {
	case size == b.Preferred:
		return true
	case b.Granularity == -1:
		return size > 0 && size&(size-1) == 0
	case b.Granularity == 0:
		return size == b.Min || size == b.Max
	default:
		return (size-b.Min)%b.Granularity == 0
	}
}

// ClockSource describes one clock source of a driver.
type ClockSource struct {
	Index             int
	AssociatedChannel int
	AssociatedGroup   int
	Current           bool
	Name              string
}

// ChannelInfo describes one input or output channel.
type ChannelInfo struct {
	Channel int
	Input   bool
	Active  bool
	Group   int
	Type    SampleType
	Name    string
}

// BufferInfo requests a double buffer for one channel. The driver fills in
// Buffers on a successful CreateBuffers call.
type BufferInfo struct {
	Input   bool
	Channel int
	Buffers [2]uintptr
}

// Callbacks holds the host callback entry points handed to CreateBuffers.
// Each field is a C-callable function pointer; the driver keeps a reference
// to the structure until DisposeBuffers.
type Callbacks struct {
	BufferSwitch         uintptr
	SampleRateDidChange  uintptr
	Message              uintptr
	BufferSwitchTimeInfo uintptr
}

// MaxClockSources bounds the clock source query.
const MaxClockSources = 32
