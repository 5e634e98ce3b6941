package activation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbaudio/asio-go/pkg/asio"
	"github.com/sbaudio/asio-go/pkg/clsid"
)

var testID = clsid.MustParse("{835F8B5B-F75E-4C70-9A8B-7D0E4D1A6C01}")

func testSpec() DriverSpec {
	return DriverSpec{
		Name:          "Test Interface",
		Version:       3,
		Inputs:        2,
		Outputs:       4,
		InputLatency:  64,
		OutputLatency: 96,
		BufferSize:    asio.BufferSize{Min: 64, Max: 1024, Preferred: 256, Granularity: -1},
		SampleRate:    48000,
		SampleRates:   []float64{44100, 48000, 96000},
		ClockSources:  []string{"Internal", "S/PDIF"},
	}
}

func newInitialized(t *testing.T) *SimulatedActivator {
	t.Helper()
	a := NewSimulatedActivator()
	a.Register(testID, testSpec())
	require.NoError(t, a.Initialize())
	return a
}

func TestSimulatedActivatorRequiresInitialize(t *testing.T) {
	a := NewSimulatedActivator()
	a.Register(testID, testSpec())

	_, err := a.Activate(testID)
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}

	require.NoError(t, a.Initialize())
	a.Uninitialize()
	a.Uninitialize() // extra uninitialize stays at zero
	assert.Equal(t, 0, a.InitCount())
}

func TestSimulatedActivatorUnknownClass(t *testing.T) {
	a := newInitialized(t)

	_, err := a.Activate(clsid.MustParse("{00000000-0000-0000-0000-000000000001}"))
	if !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
}

func TestSimulatedActivatorRefused(t *testing.T) {
	a := NewSimulatedActivator()
	spec := testSpec()
	spec.FailActivation = true
	a.Register(testID, spec)
	require.NoError(t, a.Initialize())

	_, err := a.Activate(testID)
	assert.ErrorIs(t, err, ErrActivationRefused)
	assert.Equal(t, 0, a.Activations(testID))
}

func TestSimulatedActivatorTracksObjects(t *testing.T) {
	a := newInitialized(t)

	o1, err := a.Activate(testID)
	require.NoError(t, err)
	o2, err := a.Activate(testID)
	require.NoError(t, err)

	assert.Equal(t, 2, a.Activations(testID))
	assert.Len(t, a.Objects(), 2)
	assert.Equal(t, 2, a.Live())

	o1.Release()
	assert.Equal(t, 1, a.Live())
	o2.Release()
	assert.Equal(t, 0, a.Live())
}

func TestSimulatedDriverRefCount(t *testing.T) {
	a := newInitialized(t)
	o, err := a.Activate(testID)
	require.NoError(t, err)
	d := o.(*SimulatedDriver)

	assert.Equal(t, uint32(1), d.RefCount())
	assert.Equal(t, uint32(2), d.AddRef())
	assert.Equal(t, uint32(1), d.Release())
	assert.Equal(t, uint32(0), d.Release())
	assert.Equal(t, uint32(0), d.Release(), "release past zero is a no-op")
	assert.Equal(t, testID, d.ID())
}

func TestSimulatedDriverStartRequiresInit(t *testing.T) {
	a := newInitialized(t)
	o, err := a.Activate(testID)
	require.NoError(t, err)

	assert.ErrorIs(t, o.Start(), asio.NotPresent)
	assert.Equal(t, "driver not initialized", o.ErrorMessage())

	require.True(t, o.Init(0))
	require.NoError(t, o.Start())

	d := o.(*SimulatedDriver)
	assert.True(t, d.Started())
	assert.Equal(t, 2, d.StartCalls())

	require.NoError(t, o.Stop())
	require.NoError(t, o.Stop())
	assert.False(t, d.Started())
	assert.Equal(t, 2, d.StopCalls())
}

func TestSimulatedDriverFailures(t *testing.T) {
	a := NewSimulatedActivator()
	spec := testSpec()
	spec.FailInit = true
	spec.StopError = asio.HWMalfunction
	a.Register(testID, spec)
	require.NoError(t, a.Initialize())

	o, err := a.Activate(testID)
	require.NoError(t, err)

	assert.False(t, o.Init(0))
	assert.Equal(t, "simulated hardware not present", o.ErrorMessage())
	assert.ErrorIs(t, o.Stop(), asio.HWMalfunction)
}

func TestSimulatedDriverQueries(t *testing.T) {
	a := newInitialized(t)
	o, err := a.Activate(testID)
	require.NoError(t, err)

	_, _, err = o.Channels()
	assert.ErrorIs(t, err, asio.NotPresent)

	require.True(t, o.Init(0))

	in, out, err := o.Channels()
	require.NoError(t, err)
	assert.Equal(t, 2, in)
	assert.Equal(t, 4, out)

	inLat, outLat, err := o.Latencies()
	require.NoError(t, err)
	assert.Equal(t, 64, inLat)
	assert.Equal(t, 96, outLat)

	bs, err := o.BufferSize()
	require.NoError(t, err)
	assert.Equal(t, 256, bs.Preferred)

	assert.Equal(t, "Test Interface", o.Name())
	assert.Equal(t, int32(3), o.Version())

	info, err := o.ChannelInfo(1, true)
	require.NoError(t, err)
	assert.Equal(t, "In 2", info.Name)
	assert.Equal(t, asio.Int32LSB, info.Type)

	_, err = o.ChannelInfo(4, false)
	assert.ErrorIs(t, err, asio.InvalidParameter)

	assert.NoError(t, o.Future(asio.CanTimeInfo, 0))
	assert.ErrorIs(t, o.OutputReady(), asio.NotPresent)
}

func TestSimulatedDriverSampleRate(t *testing.T) {
	a := newInitialized(t)
	o, err := a.Activate(testID)
	require.NoError(t, err)

	assert.NoError(t, o.CanSampleRate(96000))
	assert.ErrorIs(t, o.CanSampleRate(22050), asio.NoClock)

	require.NoError(t, o.SetSampleRate(44100))
	rate, err := o.SampleRate()
	require.NoError(t, err)
	assert.Equal(t, 44100.0, rate)

	// Zero selects the external clock and keeps the current rate.
	require.NoError(t, o.SetSampleRate(0))
	rate, err = o.SampleRate()
	require.NoError(t, err)
	assert.Equal(t, 44100.0, rate)
}

func TestSimulatedDriverClockSources(t *testing.T) {
	a := newInitialized(t)
	o, err := a.Activate(testID)
	require.NoError(t, err)

	require.NoError(t, o.SetClockSource(1))
	sources, err := o.ClockSources()
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.False(t, sources[0].Current)
	assert.True(t, sources[1].Current)
	assert.Equal(t, "S/PDIF", sources[1].Name)

	assert.ErrorIs(t, o.SetClockSource(2), asio.InvalidParameter)
}

func TestSimulatedDriverBuffers(t *testing.T) {
	a := newInitialized(t)
	o, err := a.Activate(testID)
	require.NoError(t, err)
	require.True(t, o.Init(0))

	infos := []asio.BufferInfo{{Input: true, Channel: 0}, {Channel: 3}}
	cb := &asio.Callbacks{}

	assert.ErrorIs(t, o.CreateBuffers(infos, 256, nil), asio.InvalidParameter)
	assert.ErrorIs(t, o.CreateBuffers(infos, 32, cb), asio.InvalidMode)
	assert.ErrorIs(t, o.CreateBuffers([]asio.BufferInfo{{Channel: 9}}, 256, cb), asio.InvalidParameter)

	require.NoError(t, o.CreateBuffers(infos, 256, cb))
	assert.NotZero(t, infos[0].Buffers[0])
	assert.NotZero(t, infos[1].Buffers[1])
	assert.ErrorIs(t, o.CreateBuffers(infos, 256, cb), asio.InvalidMode, "buffers already exist")

	info, err := o.ChannelInfo(3, false)
	require.NoError(t, err)
	assert.True(t, info.Active)

	require.NoError(t, o.Start())
	p1, _, err := o.SamplePosition()
	require.NoError(t, err)
	p2, _, err := o.SamplePosition()
	require.NoError(t, err)
	assert.Equal(t, int64(256), p2-p1)

	require.NoError(t, o.Stop())
	_, _, err = o.SamplePosition()
	assert.ErrorIs(t, err, asio.SPNotAdvancing)

	require.NoError(t, o.DisposeBuffers())
	assert.ErrorIs(t, o.DisposeBuffers(), asio.InvalidMode)
}
