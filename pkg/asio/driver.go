package asio

// Driver is the control interface of a loaded ASIO driver.
//
// Implementations are not required to be safe for concurrent use; ASIO
// drivers expect calls from the thread that initialized them.
type Driver interface {
	// Init hands the host's system handle to the driver.
	// It returns false if the driver could not initialize its hardware.
	Init(sysHandle uintptr) bool

	Name() string
	Version() int32
	// ErrorMessage returns the driver's description of its last failure.
	ErrorMessage() string

	Start() error
	Stop() error

	Channels() (inputs, outputs int, err error)
	Latencies() (input, output int, err error)
	BufferSize() (BufferSize, error)

	CanSampleRate(rate float64) error
	SampleRate() (float64, error)
	SetSampleRate(rate float64) error

	ClockSources() ([]ClockSource, error)
	SetClockSource(index int) error

	SamplePosition() (samples, timestamp int64, err error)
	ChannelInfo(channel int, input bool) (ChannelInfo, error)

	CreateBuffers(infos []BufferInfo, bufferSize int, callbacks *Callbacks) error
	DisposeBuffers() error

	ControlPanel() error
	Future(selector FutureSelector, opt uintptr) error
	OutputReady() error
}
