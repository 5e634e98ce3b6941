package activation

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/sbaudio/asio-go/pkg/asio"
	"github.com/sbaudio/asio-go/pkg/clsid"
)

// DriverSpec describes a simulated driver.
type DriverSpec struct {
	Name    string
	Version int32

	Inputs  int
	Outputs int

	InputLatency  int
	OutputLatency int

	BufferSize asio.BufferSize

	// SampleRate is the rate the driver starts at.
	SampleRate float64
	// SampleRates lists the supported rates. Empty means only SampleRate.
	SampleRates []float64

	ClockSources []string

	// ActivationDelay makes Activate block, to widen race windows in tests.
	ActivationDelay time.Duration
	// FailActivation makes Activate fail with ErrActivationRefused.
	FailActivation bool
	// FailInit makes Init return false.
	FailInit bool
	// StartError is returned by Start when non-zero.
	StartError asio.Error
	// StopError is returned by Stop when non-zero.
	StopError asio.Error
}

func (s DriverSpec) supportsRate(rate float64) bool {
	if len(s.SampleRates) == 0 {
		return rate == s.SampleRate
	}
	return slices.Contains(s.SampleRates, rate)
}

// SimulatedActivator creates SimulatedDriver objects from registered specs.
// It is safe for concurrent use.
type SimulatedActivator struct {
	mu          sync.Mutex
	specs       map[clsid.ID]DriverSpec
	initCount   int
	activations map[clsid.ID]int
	objects     []*SimulatedDriver
}

// NewSimulatedActivator creates an activator with no registered drivers.
func NewSimulatedActivator() *SimulatedActivator {
	return &SimulatedActivator{
		specs:       make(map[clsid.ID]DriverSpec),
		activations: make(map[clsid.ID]int),
	}
}

// Register makes spec activatable under id, replacing any previous spec.
func (a *SimulatedActivator) Register(id clsid.ID, spec DriverSpec) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.specs[id] = spec
}

// Initialize increments the runtime init count.
func (a *SimulatedActivator) Initialize() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.initCount++
	return nil
}

// Uninitialize decrements the runtime init count.
func (a *SimulatedActivator) Uninitialize() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.initCount > 0 {
		a.initCount--
	}
}

// InitCount returns the runtime init count.
func (a *SimulatedActivator) InitCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.initCount
}

// Activate creates a new driver object for id with one platform reference.
func (a *SimulatedActivator) Activate(id clsid.ID) (Object, error) {
	a.mu.Lock()
	if a.initCount == 0 {
		a.mu.Unlock()
		return nil, ErrNotInitialized
	}
	spec, ok := a.specs[id]
	a.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, id)
	}
	if spec.ActivationDelay > 0 {
		time.Sleep(spec.ActivationDelay)
	}
	if spec.FailActivation {
		return nil, fmt.Errorf("%w: %s", ErrActivationRefused, id)
	}

	d := newSimulatedDriver(id, spec)

	a.mu.Lock()
	a.activations[id]++
	a.objects = append(a.objects, d)
	a.mu.Unlock()

	return d, nil
}

// Activations returns how many objects were created for id.
func (a *SimulatedActivator) Activations(id clsid.ID) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.activations[id]
}

// Objects returns every object created so far, in creation order.
func (a *SimulatedActivator) Objects() []*SimulatedDriver {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.objects)
}

// Live returns the number of created objects whose platform reference count
// has not reached zero.
func (a *SimulatedActivator) Live() int {
	a.mu.Lock()
	objects := slices.Clone(a.objects)
	a.mu.Unlock()

	var n int
	for _, o := range objects {
		if o.RefCount() > 0 {
			n++
		}
	}
	return n
}

var _ Activator = (*SimulatedActivator)(nil)

// SimulatedDriver is an in-process ASIO driver.
type SimulatedDriver struct {
	id   clsid.ID
	spec DriverSpec

	mu          sync.Mutex
	refs        uint32
	initialized bool
	started     bool
	rate        float64
	clock       int
	position    int64
	buffers     []asio.BufferInfo
	bufferSize  int
	startCalls  int
	stopCalls   int
}

func newSimulatedDriver(id clsid.ID, spec DriverSpec) *SimulatedDriver {
	return &SimulatedDriver{
		id:   id,
		spec: spec,
		refs: 1,
		rate: spec.SampleRate,
	}
}

// ID returns the class identifier the driver was activated for.
func (d *SimulatedDriver) ID() clsid.ID { return d.id }

// AddRef increments the platform reference count.
func (d *SimulatedDriver) AddRef() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.refs++
	return d.refs
}

// Release decrements the platform reference count. Releasing an object that
// is already destroyed is a no-op that returns zero.
func (d *SimulatedDriver) Release() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.refs == 0 {
		return 0
	}
	d.refs--
	if d.refs == 0 {
		d.started = false
		d.buffers = nil
	}
	return d.refs
}

// RefCount returns the platform reference count.
func (d *SimulatedDriver) RefCount() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.refs
}

// Started reports whether the driver is running.
func (d *SimulatedDriver) Started() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.started
}

// StartCalls returns how many times Start was called.
func (d *SimulatedDriver) StartCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.startCalls
}

// StopCalls returns how many times Stop was called.
func (d *SimulatedDriver) StopCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopCalls
}

// Init initializes the simulated hardware.
func (d *SimulatedDriver) Init(uintptr) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.spec.FailInit {
		return false
	}
	d.initialized = true
	return true
}

// Name returns the driver name.
func (d *SimulatedDriver) Name() string { return d.spec.Name }

// Version returns the driver version.
func (d *SimulatedDriver) Version() int32 { return d.spec.Version }

// ErrorMessage describes why Init or Start failed.
func (d *SimulatedDriver) ErrorMessage() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch {
	case d.spec.FailInit:
		return "simulated hardware not present"
	case !d.initialized:
		return "driver not initialized"
	case d.spec.StartError != asio.OK:
		return d.spec.StartError.String()
	default:
		return ""
	}
}

// Start starts streaming. The driver must be initialized.
func (d *SimulatedDriver) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.startCalls++
	if !d.initialized {
		return asio.NotPresent
	}
	if d.spec.StartError != asio.OK {
		return d.spec.StartError
	}
	d.started = true
	return nil
}

// Stop stops streaming. Stopping a stopped driver succeeds.
func (d *SimulatedDriver) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopCalls++
	d.started = false
	if d.spec.StopError != asio.OK {
		return d.spec.StopError
	}
	return nil
}

// Channels returns the channel counts.
func (d *SimulatedDriver) Channels() (int, int, error) {
	if err := d.requireInit(); err != nil {
		return 0, 0, err
	}
	return d.spec.Inputs, d.spec.Outputs, nil
}

// Latencies returns the input and output latency in samples.
func (d *SimulatedDriver) Latencies() (int, int, error) {
	if err := d.requireInit(); err != nil {
		return 0, 0, err
	}
	return d.spec.InputLatency, d.spec.OutputLatency, nil
}

// BufferSize returns the accepted buffer sizes.
func (d *SimulatedDriver) BufferSize() (asio.BufferSize, error) {
	if err := d.requireInit(); err != nil {
		return asio.BufferSize{}, err
	}
	return d.spec.BufferSize, nil
}

// CanSampleRate reports NoClock for unsupported rates.
func (d *SimulatedDriver) CanSampleRate(rate float64) error {
	if !d.spec.supportsRate(rate) {
		return asio.NoClock
	}
	return nil
}

// SampleRate returns the current rate.
func (d *SimulatedDriver) SampleRate() (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.rate == 0 {
		return 0, asio.NoClock
	}
	return d.rate, nil
}

// SetSampleRate changes the rate. Rate zero selects the external clock and
// is accepted without changing the rate.
func (d *SimulatedDriver) SetSampleRate(rate float64) error {
	if rate == 0 {
		return nil
	}
	if !d.spec.supportsRate(rate) {
		return asio.NoClock
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rate = rate
	return nil
}

// ClockSources lists the configured clock sources.
func (d *SimulatedDriver) ClockSources() ([]asio.ClockSource, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	names := d.spec.ClockSources
	if len(names) == 0 {
		names = []string{"Internal"}
	}
	out := make([]asio.ClockSource, 0, len(names))
	for i, name := range names {
		out = append(out, asio.ClockSource{
			Index:             i,
			AssociatedChannel: -1,
			AssociatedGroup:   -1,
			Current:           i == d.clock,
			Name:              name,
		})
	}
	return out, nil
}

// SetClockSource selects a clock source by index.
func (d *SimulatedDriver) SetClockSource(index int) error {
	n := len(d.spec.ClockSources)
	if n == 0 {
		n = 1
	}
	if index < 0 || index >= n {
		return asio.InvalidParameter
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clock = index
	return nil
}

// SamplePosition advances by one buffer per call while running.
func (d *SimulatedDriver) SamplePosition() (int64, int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.started {
		return 0, 0, asio.SPNotAdvancing
	}
	step := d.bufferSize
	if step == 0 {
		step = d.spec.BufferSize.Preferred
	}
	d.position += int64(step)
	return d.position, time.Now().UnixNano(), nil
}

// ChannelInfo describes one channel.
func (d *SimulatedDriver) ChannelInfo(channel int, input bool) (asio.ChannelInfo, error) {
	limit, prefix := d.spec.Outputs, "Out"
	if input {
		limit, prefix = d.spec.Inputs, "In"
	}
	if channel < 0 || channel >= limit {
		return asio.ChannelInfo{}, asio.InvalidParameter
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	active := false
	for _, b := range d.buffers {
		if b.Input == input && b.Channel == channel {
			active = true
			break
		}
	}
	return asio.ChannelInfo{
		Channel: channel,
		Input:   input,
		Active:  active,
		Group:   0,
		Type:    asio.Int32LSB,
		Name:    fmt.Sprintf("%s %d", prefix, channel+1),
	}, nil
}

// CreateBuffers allocates double buffers for the requested channels.
func (d *SimulatedDriver) CreateBuffers(infos []asio.BufferInfo, bufferSize int, callbacks *asio.Callbacks) error {
	if callbacks == nil || len(infos) == 0 {
		return asio.InvalidParameter
	}
	if !d.spec.BufferSize.Accepts(bufferSize) {
		return asio.InvalidMode
	}
	for _, info := range infos {
		limit := d.spec.Outputs
		if info.Input {
			limit = d.spec.Inputs
		}
		if info.Channel < 0 || info.Channel >= limit {
			return asio.InvalidParameter
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.buffers != nil {
		return asio.InvalidMode
	}
	// Fake non-zero addresses; the simulation never touches audio memory.
	for i := range infos {
		base := uintptr(0x1000 * (i + 1))
		infos[i].Buffers = [2]uintptr{base, base + 0x800}
	}
	d.buffers = slices.Clone(infos)
	d.bufferSize = bufferSize
	return nil
}

// DisposeBuffers releases buffers created by CreateBuffers.
func (d *SimulatedDriver) DisposeBuffers() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.buffers == nil {
		return asio.InvalidMode
	}
	d.buffers = nil
	d.bufferSize = 0
	return nil
}

// ControlPanel has no panel to show.
func (d *SimulatedDriver) ControlPanel() error { return nil }

// Future supports the time info and overload detection queries.
func (d *SimulatedDriver) Future(selector asio.FutureSelector, _ uintptr) error {
	switch selector {
	case asio.CanTimeInfo, asio.CanReportOverload:
		return nil
	default:
		return asio.NotPresent
	}
}

// OutputReady is not supported.
func (d *SimulatedDriver) OutputReady() error { return asio.NotPresent }

func (d *SimulatedDriver) requireInit() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		return asio.NotPresent
	}
	return nil
}

var _ Object = (*SimulatedDriver)(nil)
