package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbaudio/asio-go/pkg/clsid"
	"github.com/sbaudio/asio-go/pkg/log"
	"github.com/sbaudio/asio-go/pkg/registry"
)

const fixturePath = "testdata/host.yaml"

var studioID = clsid.MustParse("{8E9A2B41-3C5D-4F60-9A1B-2C3D4E5F6071}")

func newTestApp(t *testing.T, opts options) *app {
	t.Helper()
	if opts.Fixture == "" {
		opts.Fixture = fixturePath
	}
	a, err := newApp(opts, io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestProbe(t *testing.T) {
	a := newTestApp(t, options{})

	var out bytes.Buffer
	require.NoError(t, runProbe(a, &out))

	assert.Equal(t, `Studio Interface USB: no error
Field Recorder: init failed: simulated hardware not present
Loopback: hardware malfunction
Studio Interface USB: stop: no error
Released 3 drivers.
`, out.String())

	assert.False(t, a.host.Initialized())
	assert.Equal(t, 0, a.host.Len())
	assert.Equal(t, 0, a.simulated.Live(), "every driver object must be released")
	assert.Equal(t, 0, a.simulated.InitCount())
}

func TestInfo(t *testing.T) {
	a := newTestApp(t, options{})

	var out bytes.Buffer
	require.NoError(t, runInfo(a, "studio interface", &out))

	s := out.String()
	assert.Contains(t, s, "Driver:    Studio Interface USB (version 2)\n")
	assert.Contains(t, s, "Channels:  8 in / 8 out\n")
	assert.Contains(t, s, "Buffer:    min 32, max 2048, preferred 256, granularity -1\n")
	assert.Contains(t, s, "Rate:      48000 Hz\n")
	assert.Contains(t, s, "  * 0 Internal\n")
	assert.Contains(t, s, "Feature:   time code: not present\n")

	assert.False(t, a.host.Initialized())
	assert.Equal(t, 0, a.simulated.Live())
}

func TestInfoInitFailure(t *testing.T) {
	a := newTestApp(t, options{})

	err := runInfo(a, "Field Recorder", io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init failed")
	assert.Equal(t, 0, a.simulated.Live())
}

func TestInfoUnknownDriver(t *testing.T) {
	a := newTestApp(t, options{})

	err := runInfo(a, "Nope", io.Discard)
	assert.True(t, errors.Is(err, registry.ErrNoMatch))
	assert.False(t, a.host.Initialized())
}

func TestListTracksState(t *testing.T) {
	state := filepath.Join(t.TempDir(), "state.json")
	a := newTestApp(t, options{StateFile: state})

	var out bytes.Buffer
	require.NoError(t, runList(a, &out))
	assert.Contains(t, out.String(), "Studio Interface USB")
	assert.Contains(t, out.String(), "+ new driver: Loopback\n")

	out.Reset()
	require.NoError(t, runList(a, &out))
	assert.NotContains(t, out.String(), "new driver")

	saved, err := a.state.Load()
	require.NoError(t, err)
	assert.Len(t, saved.Devices, 3)
}

func TestSelectDriverRemembersChoice(t *testing.T) {
	a := newTestApp(t, options{StateFile: filepath.Join(t.TempDir(), "state.json")})

	descs, _, err := a.scan()
	require.NoError(t, err)

	d, err := a.selectDriver(descs, "Studio Interface")
	require.NoError(t, err)
	assert.Equal(t, studioID, d.ID)

	d, err = a.selectDriver(descs, "")
	require.NoError(t, err)
	assert.Equal(t, studioID, d.ID)
}

func TestSelectDriverNeedsName(t *testing.T) {
	a := newTestApp(t, options{})

	descs, _, err := a.scan()
	require.NoError(t, err)

	_, err = a.selectDriver(descs, "")
	assert.True(t, errors.Is(err, registry.ErrNoMatch))
}

func TestEventLogWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "host.alog")
	a := newTestApp(t, options{EventLog: path})

	require.NoError(t, runProbe(a, io.Discard))
	require.NoError(t, a.Close())

	r, err := log.NewFilteredReader(path, log.Filter{DriverID: studioID.String()})
	require.NoError(t, err)
	defer r.Close()

	var ops []log.Operation
	for {
		e, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		assert.Equal(t, a.host.SessionID(), e.SessionID)
		if e.Lifecycle != nil {
			ops = append(ops, e.Lifecycle.Op)
		}
	}
	assert.Contains(t, ops, log.OpAcquire)
	assert.Contains(t, ops, log.OpTeardown)
}

func TestConfigFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "asio-host.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("driver: Loopback\nlog_level: debug\nfixture: "+fixturePath+"\n"), 0o644))

	cfg, err := loadConfig(options{ConfigFile: cfgPath, LogLevel: "warn"})
	require.NoError(t, err)
	assert.Equal(t, "Loopback", cfg.Driver)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, fixturePath, cfg.Fixture)

	_, err = loadConfig(options{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestUnknownCommand(t *testing.T) {
	a := newTestApp(t, options{})
	assert.Error(t, run(a, "dance", nil, io.Discard))
}
