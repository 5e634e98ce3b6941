package host

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sbaudio/asio-go/pkg/activation"
	"github.com/sbaudio/asio-go/pkg/activation/mocks"
	"github.com/sbaudio/asio-go/pkg/asio"
	"github.com/sbaudio/asio-go/pkg/clsid"
	"github.com/sbaudio/asio-go/pkg/log"
)

var (
	driverA = clsid.MustParse("{8E9A2B41-3C5D-4F60-9A1B-2C3D4E5F6071}")
	driverB = clsid.MustParse("{1F2E3D4C-5B6A-4978-8695-A4B3C2D1E0F9}")
)

func testSpec(name string) activation.DriverSpec {
	return activation.DriverSpec{
		Name:       name,
		Inputs:     2,
		Outputs:    2,
		BufferSize: asio.BufferSize{Min: 64, Max: 1024, Preferred: 256, Granularity: -1},
		SampleRate: 48000,
	}
}

// newTestHost returns an initialized host over a simulated activator with
// driverA and driverB registered.
func newTestHost(t *testing.T) (*Host, *activation.SimulatedActivator, *log.Recorder) {
	t.Helper()

	act := activation.NewSimulatedActivator()
	act.Register(driverA, testSpec("Driver A"))
	act.Register(driverB, testSpec("Driver B"))

	rec := log.NewRecorder()
	h, err := New(act, Config{EventLogger: rec, SessionID: "test-session"})
	require.NoError(t, err)
	require.NoError(t, h.Initialize())
	return h, act, rec
}

func simulated(t *testing.T, act *activation.SimulatedActivator, id clsid.ID) *activation.SimulatedDriver {
	t.Helper()
	for _, o := range act.Objects() {
		if o.ID() == id {
			return o
		}
	}
	t.Fatalf("no object activated for %s", id)
	return nil
}

func TestNewRequiresActivator(t *testing.T) {
	if _, err := New(nil, DefaultConfig()); !errors.Is(err, ErrNilActivator) {
		t.Fatalf("expected ErrNilActivator, got %v", err)
	}
}

func TestNewGeneratesSessionID(t *testing.T) {
	h, err := New(activation.NewSimulatedActivator(), DefaultConfig())
	require.NoError(t, err)
	_, err = uuid.Parse(h.SessionID())
	assert.NoError(t, err)
}

func TestAcquireReleaseNetZero(t *testing.T) {
	act := activation.NewSimulatedActivator()
	ids := make([]clsid.ID, 8)
	for i := range ids {
		ids[i] = clsid.FromUUID(uuid.New())
		act.Register(ids[i], testSpec("Generated"))
	}
	h, err := New(act, Config{})
	require.NoError(t, err)
	require.NoError(t, h.Initialize())

	for _, id := range ids {
		_, res, err := h.Acquire(id)
		require.NoError(t, err)
		assert.Equal(t, ResultCreated, res)

		res, err = h.Release(id)
		require.NoError(t, err)
		assert.Equal(t, ResultErased, res)
		assert.False(t, h.Loaded(id), "entry for %s survived net-zero lifecycle", id)
	}
	assert.Zero(t, h.Len())
	assert.Zero(t, act.Live())
}

func TestAcquireTwiceSharesDriver(t *testing.T) {
	h, act, _ := newTestHost(t)

	first, res, err := h.Acquire(driverA)
	require.NoError(t, err)
	assert.Equal(t, ResultCreated, res)

	second, res, err := h.Acquire(driverA)
	require.NoError(t, err)
	assert.Equal(t, ResultAlreadyShared, res)

	assert.True(t, first.Same(second))
	assert.Equal(t, 1, act.Activations(driverA))

	refs, ok := h.RefCount(driverA)
	require.True(t, ok)
	assert.Equal(t, uint32(2), refs)
}

func TestReleaseNeverAcquired(t *testing.T) {
	h, _, _ := newTestHost(t)
	_, _, err := h.Acquire(driverB)
	require.NoError(t, err)

	res, err := h.Release(driverA)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, ResultNone, res)
	assert.Equal(t, 1, h.Len())
	assert.True(t, h.Loaded(driverB))
}

func TestReleaseStillShared(t *testing.T) {
	h, act, _ := newTestHost(t)

	_, _, err := h.Acquire(driverA)
	require.NoError(t, err)
	_, _, err = h.Acquire(driverA)
	require.NoError(t, err)

	res, err := h.Release(driverA)
	require.NoError(t, err)
	assert.Equal(t, ResultStillShared, res)

	d := simulated(t, act, driverA)
	assert.Zero(t, d.StopCalls())
	assert.Equal(t, uint32(1), d.RefCount())

	res, err = h.Release(driverA)
	require.NoError(t, err)
	assert.Equal(t, ResultErased, res)
	assert.Equal(t, 1, d.StopCalls())
	assert.Zero(t, d.RefCount())
}

func TestConcurrentAcquireRelease(t *testing.T) {
	const n = 64

	act := activation.NewSimulatedActivator()
	spec := testSpec("Slow")
	spec.ActivationDelay = 5 * time.Millisecond
	act.Register(driverA, spec)

	h, err := New(act, Config{LockStripes: 4})
	require.NoError(t, err)
	require.NoError(t, h.Initialize())

	// Hold one reference so the entry survives the whole run.
	_, _, err = h.Acquire(driverA)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 2*n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := h.Acquire(driverA); err != nil {
				errs <- err
				return
			}
			if _, err := h.Release(driverA); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent lifecycle: %v", err)
	}

	refs, ok := h.RefCount(driverA)
	require.True(t, ok)
	assert.Equal(t, uint32(1), refs)

	res, err := h.Release(driverA)
	require.NoError(t, err)
	assert.Equal(t, ResultErased, res)

	assert.Equal(t, 1, act.Activations(driverA))
	d := simulated(t, act, driverA)
	assert.Equal(t, 1, d.StopCalls(), "stop must run exactly once")
	assert.False(t, h.Loaded(driverA))
}

func TestConcurrentAcquireThenReleaseAll(t *testing.T) {
	const n = 32

	h, act, _ := newTestHost(t)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := h.Acquire(driverA)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	erased := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := h.Release(driverA)
			assert.NoError(t, err)
			if res == ResultErased {
				erased <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(erased)

	assert.Len(t, erased, 1)
	assert.False(t, h.Loaded(driverA))
	assert.Equal(t, 1, simulated(t, act, driverA).StopCalls())
}

func TestConcurrentQueryCreatesOneEntry(t *testing.T) {
	const n = 16

	act := activation.NewSimulatedActivator()
	spec := testSpec("Slow")
	spec.ActivationDelay = 20 * time.Millisecond
	act.Register(driverA, spec)

	h, err := New(act, Config{})
	require.NoError(t, err)
	require.NoError(t, h.Initialize())

	handles := make([]*Handle, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			hd, err := h.Query(driverA)
			assert.NoError(t, err)
			handles[i] = hd
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, act.Activations(driverA))
	assert.Equal(t, 1, h.Len())
	for _, hd := range handles[1:] {
		assert.True(t, handles[0].Same(hd))
	}

	refs, _ := h.RefCount(driverA)
	assert.Equal(t, uint32(1), refs, "only the lazy acquire takes a logical reference")
	assert.Equal(t, uint32(1+n), simulated(t, act, driverA).RefCount())
}

func TestQueryHoldsExtraPlatformReference(t *testing.T) {
	h, act, rec := newTestHost(t)

	hd, err := h.Query(driverA)
	require.NoError(t, err)
	d := simulated(t, act, driverA)
	assert.Equal(t, uint32(2), d.RefCount())

	// The logical release destroys the entry but the query reference keeps
	// the object alive.
	res, err := h.Release(driverA)
	require.NoError(t, err)
	assert.Equal(t, ResultErased, res)
	assert.Equal(t, uint32(1), d.RefCount())
	assert.Equal(t, 1, act.Live())

	require.NoError(t, hd.Release())
	assert.Zero(t, d.RefCount())
	assert.Zero(t, act.Live())
	assert.ErrorIs(t, hd.Release(), ErrHandleReleased)

	ops := rec.Matching(log.Filter{Category: ptr(log.CategoryLifecycle)})
	require.Len(t, ops, 3)
	assert.Equal(t, log.OpQuery, ops[0].Lifecycle.Op)
	assert.Equal(t, log.OpRelease, ops[1].Lifecycle.Op)
	assert.Equal(t, log.OpHandleRelease, ops[2].Lifecycle.Op)
}

func TestQueryExistingEntry(t *testing.T) {
	h, act, _ := newTestHost(t)

	acq, _, err := h.Acquire(driverA)
	require.NoError(t, err)
	q, err := h.Query(driverA)
	require.NoError(t, err)

	assert.True(t, acq.Same(q))
	assert.Equal(t, 1, act.Activations(driverA))
	refs, _ := h.RefCount(driverA)
	assert.Equal(t, uint32(1), refs)

	require.NoError(t, q.Release())
	require.NoError(t, acq.Release())
	assert.False(t, h.Loaded(driverA))
	assert.Zero(t, act.Live())
}

func TestOperationsRequireInitialize(t *testing.T) {
	act := mocks.NewMockActivator(t)
	h, err := New(act, Config{})
	require.NoError(t, err)

	_, res, err := h.Acquire(driverA)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Equal(t, ResultNone, res)

	_, err = h.Query(driverA)
	assert.ErrorIs(t, err, ErrNotInitialized)

	res, err = h.Release(driverA)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Equal(t, ResultNone, res)

	assert.Zero(t, h.Len())
	act.AssertNotCalled(t, "Activate", mock.Anything)
}

func TestOperationsAfterShutdown(t *testing.T) {
	h, _, _ := newTestHost(t)
	_, _, err := h.Acquire(driverA)
	require.NoError(t, err)
	require.NoError(t, h.Shutdown())

	_, _, err = h.Acquire(driverA)
	assert.ErrorIs(t, err, ErrNotInitialized)
	_, err = h.Release(driverA)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Zero(t, h.Len())
}

func TestActivationFailureLeavesTableUnchanged(t *testing.T) {
	cause := errors.New("class not registered")

	act := mocks.NewMockActivator(t)
	act.EXPECT().Initialize().Return(nil).Once()
	act.EXPECT().Activate(driverA).Return(nil, cause).Twice()

	rec := log.NewRecorder()
	h, err := New(act, Config{EventLogger: rec})
	require.NoError(t, err)
	require.NoError(t, h.Initialize())

	_, res, err := h.Acquire(driverA)
	assert.ErrorIs(t, err, ErrActivationFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ResultNone, res)

	_, err = h.Query(driverA)
	assert.ErrorIs(t, err, ErrActivationFailed)

	assert.False(t, h.Loaded(driverA))
	assert.Zero(t, h.Len())

	errorsLogged := rec.Matching(log.Filter{Category: ptr(log.CategoryError)})
	require.Len(t, errorsLogged, 2)
	assert.Equal(t, "ACQUIRE", errorsLogged[0].Error.Context)
	assert.Equal(t, driverA.String(), errorsLogged[0].DriverID)
}

func TestReleaseStopsThenReleases(t *testing.T) {
	obj := mocks.NewMockObject(t)
	stop := obj.EXPECT().Stop().Return(asio.HWMalfunction).Once()
	obj.EXPECT().Release().Return(uint32(0)).Once().NotBefore(stop)

	act := mocks.NewMockActivator(t)
	act.EXPECT().Initialize().Return(nil).Once()
	act.EXPECT().Activate(driverA).Return(obj, nil).Once()

	rec := log.NewRecorder()
	h, err := New(act, Config{EventLogger: rec})
	require.NoError(t, err)
	require.NoError(t, h.Initialize())

	_, _, err = h.Acquire(driverA)
	require.NoError(t, err)

	res, err := h.Release(driverA)
	require.NoError(t, err, "stop failures do not fail the release")
	assert.Equal(t, ResultErased, res)
	assert.False(t, h.Loaded(driverA))

	errs := rec.Matching(log.Filter{Category: ptr(log.CategoryError)})
	require.Len(t, errs, 1)
	require.NotNil(t, errs[0].Error.Code)
	assert.Equal(t, int(asio.HWMalfunction), *errs[0].Error.Code)
}

func TestEntriesSorted(t *testing.T) {
	h, _, _ := newTestHost(t)

	for _, id := range []clsid.ID{driverA, driverB, driverA} {
		_, _, err := h.Acquire(id)
		require.NoError(t, err)
	}

	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, driverB, entries[0].ID)
	assert.Equal(t, uint32(1), entries[0].RefCount)
	assert.Equal(t, driverA, entries[1].ID)
	assert.Equal(t, uint32(2), entries[1].RefCount)

	_, ok := h.RefCount(clsid.Nil)
	assert.False(t, ok)
}

func TestLifecycleEvents(t *testing.T) {
	h, _, rec := newTestHost(t)

	_, _, err := h.Acquire(driverA)
	require.NoError(t, err)
	_, _, err = h.Acquire(driverA)
	require.NoError(t, err)
	_, err = h.Release(driverA)
	require.NoError(t, err)
	_, err = h.Release(driverA)
	require.NoError(t, err)

	events := rec.Matching(log.Filter{Layer: ptr(log.LayerTable)})
	require.Len(t, events, 4)

	want := []struct {
		op     log.Operation
		result string
		refs   uint32
	}{
		{log.OpAcquire, "CREATED", 1},
		{log.OpAcquire, "ALREADY_SHARED", 2},
		{log.OpRelease, "STILL_SHARED", 1},
		{log.OpRelease, "ERASED", 0},
	}
	for i, w := range want {
		got := events[i]
		assert.Equal(t, "test-session", got.SessionID)
		assert.Equal(t, driverA.String(), got.DriverID)
		assert.Equal(t, w.op, got.Lifecycle.Op, "event %d", i)
		assert.Equal(t, w.result, got.Lifecycle.Result, "event %d", i)
		assert.Equal(t, w.refs, got.Lifecycle.RefCount, "event %d", i)
	}
}

func TestResultString(t *testing.T) {
	tests := map[Result]string{
		ResultNone:          "NONE",
		ResultCreated:       "CREATED",
		ResultAlreadyShared: "ALREADY_SHARED",
		ResultErased:        "ERASED",
		ResultStillShared:   "STILL_SHARED",
		Result(42):          "UNKNOWN",
	}
	for r, want := range tests {
		if got := r.String(); got != want {
			t.Errorf("Result(%d).String() = %q, want %q", r, got, want)
		}
	}
}

func ptr[T any](v T) *T { return &v }
