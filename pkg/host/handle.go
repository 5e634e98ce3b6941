package host

import (
	"sync/atomic"

	"github.com/sbaudio/asio-go/pkg/activation"
	"github.com/sbaudio/asio-go/pkg/asio"
	"github.com/sbaudio/asio-go/pkg/clsid"
	"github.com/sbaudio/asio-go/pkg/log"
)

// Handle is a caller's share of a driver.
//
// A handle from Acquire owns one logical reference and Release returns it to
// the Host. A handle from Query owns one platform reference and Release drops
// that reference on the driver object. Either way Release takes effect once.
// Handles never expose the raw reference counting of the driver object.
type Handle struct {
	host        *Host
	id          clsid.ID
	entry       *entry
	driver      activation.Object
	platformRef bool
	released    atomic.Bool
}

func newHandle(h *Host, e *entry, platformRef bool) *Handle {
	return &Handle{host: h, id: e.id, entry: e, driver: e.driver, platformRef: platformRef}
}

// ID returns the driver's class identifier.
func (h *Handle) ID() clsid.ID { return h.id }

// Same reports whether both handles share one driver object.
func (h *Handle) Same(other *Handle) bool {
	return h != nil && other != nil && h.driver == other.driver
}

// Release gives up the reference the handle owns. A logical reference is
// only returned to the entry the handle was issued for: once that entry has
// been erased or torn down, Release reports ErrNotFound or ErrNotInitialized
// and leaves any newer instance alone.
func (h *Handle) Release() error {
	if !h.released.CompareAndSwap(false, true) {
		return ErrHandleReleased
	}
	if !h.platformRef {
		_, err := h.host.release(h.id, h.entry)
		return err
	}
	n := h.driver.Release()
	h.host.emitLifecycle(log.OpHandleRelease, h.id, "", n)
	return nil
}

// Init initializes the driver for the given window handle.
func (h *Handle) Init(sysHandle uintptr) bool { return h.driver.Init(sysHandle) }

// Name returns the driver name.
func (h *Handle) Name() string { return h.driver.Name() }

// Version returns the driver version.
func (h *Handle) Version() int32 { return h.driver.Version() }

// ErrorMessage returns the driver's last error text.
func (h *Handle) ErrorMessage() string { return h.driver.ErrorMessage() }

// Start starts streaming.
func (h *Handle) Start() error { return h.driver.Start() }

// Stop stops streaming.
func (h *Handle) Stop() error { return h.driver.Stop() }

// Channels returns the input and output channel counts.
func (h *Handle) Channels() (inputs, outputs int, err error) { return h.driver.Channels() }

// Latencies returns the input and output latency in samples.
func (h *Handle) Latencies() (input, output int, err error) { return h.driver.Latencies() }

// BufferSize returns the accepted buffer sizes.
func (h *Handle) BufferSize() (asio.BufferSize, error) { return h.driver.BufferSize() }

// CanSampleRate checks whether the driver supports rate.
func (h *Handle) CanSampleRate(rate float64) error { return h.driver.CanSampleRate(rate) }

// SampleRate returns the current sample rate.
func (h *Handle) SampleRate() (float64, error) { return h.driver.SampleRate() }

// SetSampleRate changes the sample rate.
func (h *Handle) SetSampleRate(rate float64) error { return h.driver.SetSampleRate(rate) }

// ClockSources lists the clock sources.
func (h *Handle) ClockSources() ([]asio.ClockSource, error) { return h.driver.ClockSources() }

// SetClockSource selects a clock source.
func (h *Handle) SetClockSource(index int) error { return h.driver.SetClockSource(index) }

// SamplePosition returns the sample position and its system time in nanoseconds.
func (h *Handle) SamplePosition() (samples, timestamp int64, err error) {
	return h.driver.SamplePosition()
}

// ChannelInfo describes one channel.
func (h *Handle) ChannelInfo(channel int, input bool) (asio.ChannelInfo, error) {
	return h.driver.ChannelInfo(channel, input)
}

// CreateBuffers allocates the double buffers for infos.
func (h *Handle) CreateBuffers(infos []asio.BufferInfo, bufferSize int, callbacks *asio.Callbacks) error {
	return h.driver.CreateBuffers(infos, bufferSize, callbacks)
}

// DisposeBuffers frees the buffers allocated by CreateBuffers.
func (h *Handle) DisposeBuffers() error { return h.driver.DisposeBuffers() }

// ControlPanel opens the driver's settings dialog.
func (h *Handle) ControlPanel() error { return h.driver.ControlPanel() }

// Future issues an extension request.
func (h *Handle) Future(selector asio.FutureSelector, opt uintptr) error {
	return h.driver.Future(selector, opt)
}

// OutputReady signals that output buffers are filled.
func (h *Handle) OutputReady() error { return h.driver.OutputReady() }

var _ asio.Driver = (*Handle)(nil)
