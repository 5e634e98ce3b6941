package interactive

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbaudio/asio-go/pkg/activation"
	"github.com/sbaudio/asio-go/pkg/clsid"
	"github.com/sbaudio/asio-go/pkg/host"
	"github.com/sbaudio/asio-go/pkg/registry"
)

var (
	studioID   = clsid.MustParse("{8E9A2B41-3C5D-4F60-9A1B-2C3D4E5F6071}")
	loopbackID = clsid.MustParse("{C3A1F0E2-9B84-4D6E-8F17-2A3B4C5D6E7F}")
)

func newTestShell(t *testing.T) (*Shell, *activation.SimulatedActivator) {
	t.Helper()

	act := activation.NewSimulatedActivator()
	act.Register(studioID, activation.DriverSpec{
		Name:        "Studio Interface USB",
		Inputs:      8,
		Outputs:     8,
		SampleRate:  48000,
		SampleRates: []float64{44100, 48000},
	})
	act.Register(loopbackID, activation.DriverSpec{Name: "Loopback", SampleRate: 48000})

	cfg := host.DefaultConfig()
	cfg.Logger = nil
	h, err := host.New(act, cfg)
	require.NoError(t, err)
	require.NoError(t, h.Initialize())
	t.Cleanup(func() { h.Shutdown() })

	drivers := []registry.Descriptor{
		{ID: studioID, Name: "Studio Interface USB", KeyName: "Studio Interface", Path: `C:\studio.dll`},
		{ID: loopbackID, Name: "Loopback", KeyName: "Loopback", Path: `C:\loopback.dll`},
	}
	return newShell(h, drivers, 0), act
}

// run executes the lines and returns the output of the last one.
func run(s *Shell, lines ...string) string {
	var out bytes.Buffer
	for _, line := range lines {
		out.Reset()
		s.exec(line, &out)
	}
	return out.String()
}

func TestAcquireAndRelease(t *testing.T) {
	s, act := newTestShell(t)

	assert.Equal(t, "Studio Interface USB: CREATED (refs 1)\n", run(s, "acquire Studio Interface"))
	assert.Equal(t, "Studio Interface USB: ALREADY_SHARED (refs 2)\n", run(s, "acquire"))
	assert.Equal(t, "Studio Interface USB: released (refs 1)\n", run(s, "release"))
	assert.Equal(t, "Studio Interface USB: unloaded\n", run(s, "release"))
	assert.Equal(t, 0, act.Live())

	assert.Contains(t, run(s, "release"), host.ErrNotFound.Error())
}

func TestQueryReleasesPlatformReference(t *testing.T) {
	s, act := newTestShell(t)

	assert.Equal(t, "Loopback: queried (refs 1)\n", run(s, "query loopback"))
	obj := act.Objects()[0]
	assert.Equal(t, uint32(2), obj.RefCount())

	run(s, "release")
	assert.Equal(t, uint32(1), obj.RefCount())
	assert.True(t, s.host.Loaded(loopbackID), "the table reference stays until released by identity")

	assert.Equal(t, "Loopback: ERASED\n", run(s, "release"))
	assert.Equal(t, 0, act.Live())
}

func TestStartStop(t *testing.T) {
	s, act := newTestShell(t)

	out := run(s, "start Studio Interface")
	assert.Contains(t, out, "not loaded")

	run(s, "acquire", "init")
	assert.Equal(t, "Studio Interface USB: no error\n", run(s, "start"))
	assert.True(t, act.Objects()[0].Started())

	assert.Equal(t, "Studio Interface USB: no error\n", run(s, "stop"))
	assert.False(t, act.Objects()[0].Started())

	refs, _ := s.host.RefCount(studioID)
	assert.Equal(t, uint32(1), refs, "control commands must not leak references")
}

func TestRate(t *testing.T) {
	s, _ := newTestShell(t)

	run(s, "use Studio Interface", "acquire")
	assert.Equal(t, "Studio Interface USB: 48000 Hz\n", run(s, "rate"))
	assert.Equal(t, "Studio Interface USB: 44100 Hz\n", run(s, "rate 44100"))
	assert.Contains(t, run(s, "rate 192000"), "no clock")
	assert.Contains(t, run(s, "rate fast"), "invalid sample rate")
}

func TestNoCurrentDriver(t *testing.T) {
	s, _ := newTestShell(t)

	assert.Contains(t, run(s, "acquire"), "no driver selected")
	assert.Contains(t, run(s, "use Nope"), registry.ErrNoMatch.Error())
}

func TestListAndTable(t *testing.T) {
	s, _ := newTestShell(t)

	assert.Equal(t, "No drivers loaded.\n", run(s, "table"))

	run(s, "acquire loopback", "acquire")
	out := run(s, "list")
	assert.Contains(t, out, "  Studio Interface USB")
	assert.Contains(t, out, "* Loopback")
	assert.Contains(t, out, "[loaded, 2 refs]")

	assert.Equal(t, "  Loopback                         refs 2\n", run(s, "table"))
}

func TestQuitAndUnknown(t *testing.T) {
	s, _ := newTestShell(t)

	var out bytes.Buffer
	assert.False(t, s.exec("", &out))
	assert.False(t, s.exec("dance", &out))
	assert.Contains(t, out.String(), "Unknown command: dance")
	assert.True(t, s.exec("quit", &out))
}

func TestReleaseAllDropsHeldHandles(t *testing.T) {
	s, act := newTestShell(t)

	run(s, "acquire Studio Interface", "query", "query loopback")
	require.Equal(t, 2, act.Live())

	require.NoError(t, s.releaseAll())
	assert.Equal(t, 1, s.host.Len())
	assert.Equal(t, 1, act.Live(), "the lazily created loopback entry keeps its table reference")

	assert.Equal(t, "Loopback: ERASED\n", run(s, "release loopback"))
	assert.Equal(t, 0, act.Live())
}
