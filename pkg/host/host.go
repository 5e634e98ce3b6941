package host

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/sbaudio/asio-go/pkg/activation"
	"github.com/sbaudio/asio-go/pkg/clsid"
	"github.com/sbaudio/asio-go/pkg/log"
)

// Host owns the driver instance table and the runtime init count.
//
// Lock order: lifecycle, gate, stripe, mu. Table operations hold gate shared
// for their whole duration; the runtime transitions hold it exclusively, so
// no operation observes a half-initialized or half-torn-down runtime.
type Host struct {
	activator activation.Activator
	config    Config

	initCount atomic.Int32

	// lifecycle serializes Initialize and Shutdown.
	lifecycle sync.Mutex

	// gate is the teardown gate.
	gate sync.RWMutex

	stripes []sync.Mutex

	mu    sync.Mutex
	table map[clsid.ID]*entry
}

// entry is one shared driver object.
type entry struct {
	id     clsid.ID
	driver activation.Object
	refs   atomic.Uint32
}

// EntryInfo describes a table entry.
type EntryInfo struct {
	ID       clsid.ID
	RefCount uint32
}

// New creates a host over activator. The host starts uninitialized.
func New(activator activation.Activator, config Config) (*Host, error) {
	if activator == nil {
		return nil, ErrNilActivator
	}
	if config.LockStripes <= 0 {
		config.LockStripes = DefaultLockStripes
	}
	if config.SessionID == "" {
		config.SessionID = uuid.NewString()
	}
	if config.EventLogger == nil {
		config.EventLogger = log.NoopLogger{}
	}

	return &Host{
		activator: activator,
		config:    config,
		stripes:   make([]sync.Mutex, config.LockStripes),
		table:     make(map[clsid.ID]*entry),
	}, nil
}

// SessionID returns the identifier stamped on this host's events.
func (h *Host) SessionID() string {
	return h.config.SessionID
}

func (h *Host) stripe(id clsid.ID) *sync.Mutex {
	return &h.stripes[id.Hash()%uint64(len(h.stripes))]
}

func (h *Host) lookup(id clsid.ID) *entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.table[id]
}

// Acquire returns a handle to the shared driver for id, activating it when
// no entry exists. The handle owns one logical reference that only
// Handle.Release gives back.
func (h *Host) Acquire(id clsid.ID) (*Handle, Result, error) {
	h.gate.RLock()
	defer h.gate.RUnlock()

	if h.initCount.Load() == 0 {
		return nil, ResultNone, ErrNotInitialized
	}

	mu := h.stripe(id)
	mu.Lock()
	defer mu.Unlock()

	e, result, err := h.acquireLocked(id)
	if err != nil {
		h.emitFailure(log.OpAcquire, id, err)
		return nil, ResultNone, err
	}
	h.emitLifecycle(log.OpAcquire, id, result.String(), e.refs.Load())
	return newHandle(h, e, false), result, nil
}

// acquireLocked takes a logical reference. Callers hold the stripe for id.
func (h *Host) acquireLocked(id clsid.ID) (*entry, Result, error) {
	if e := h.lookup(id); e != nil {
		e.refs.Add(1)
		return e, ResultAlreadyShared, nil
	}

	obj, err := h.activator.Activate(id)
	if err != nil {
		return nil, ResultNone, fmt.Errorf("%w: %s: %w", ErrActivationFailed, id, err)
	}

	e := &entry{id: id, driver: obj}
	e.refs.Store(1)

	h.mu.Lock()
	h.table[id] = e
	h.mu.Unlock()

	h.debugLog("driver activated", "id", id)
	return e, ResultCreated, nil
}

// Query returns a handle to the shared driver for id, acquiring it first when
// no entry exists. Unlike Acquire, the handle owns a platform reference of
// its own, taken on top of the table's; Handle.Release drops exactly that
// reference. A lazily created entry still needs its own Host.Release.
func (h *Host) Query(id clsid.ID) (*Handle, error) {
	h.gate.RLock()
	defer h.gate.RUnlock()

	if h.initCount.Load() == 0 {
		return nil, ErrNotInitialized
	}

	mu := h.stripe(id)
	mu.Lock()
	defer mu.Unlock()

	e := h.lookup(id)
	if e == nil {
		var err error
		if e, _, err = h.acquireLocked(id); err != nil {
			h.emitFailure(log.OpQuery, id, err)
			return nil, err
		}
	}
	e.driver.AddRef()

	h.emitLifecycle(log.OpQuery, id, "", e.refs.Load())
	return newHandle(h, e, true), nil
}

// Release drops one logical reference to id. The last release stops the
// driver, drops the table's platform reference and erases the entry.
//
// Release is for references that have no handle of their own, such as the
// one a lazily created Query entry holds. A handle from Acquire must be given
// back with Handle.Release.
func (h *Host) Release(id clsid.ID) (Result, error) {
	return h.release(id, nil)
}

// release drops a logical reference. A non-nil owner must still be the
// table's entry for id; a handle issued for an erased entry gets ErrNotFound
// instead of releasing a newer instance.
func (h *Host) release(id clsid.ID, owner *entry) (Result, error) {
	h.gate.RLock()
	defer h.gate.RUnlock()

	if h.initCount.Load() == 0 {
		return ResultNone, ErrNotInitialized
	}

	mu := h.stripe(id)
	mu.Lock()
	defer mu.Unlock()

	e := h.lookup(id)
	if e == nil || (owner != nil && e != owner) {
		h.emitFailure(log.OpRelease, id, ErrNotFound)
		return ResultNone, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if n := e.refs.Add(^uint32(0)); n > 0 {
		h.emitLifecycle(log.OpRelease, id, ResultStillShared.String(), n)
		return ResultStillShared, nil
	}

	if err := e.driver.Stop(); err != nil {
		h.warnLog("driver stop failed", "id", id, "error", err)
		h.emitError(log.LayerTable, id, err, "stop on release")
	}
	e.driver.Release()

	h.mu.Lock()
	delete(h.table, id)
	h.mu.Unlock()

	h.debugLog("driver released", "id", id)
	h.emitLifecycle(log.OpRelease, id, ResultErased.String(), 0)
	return ResultErased, nil
}

// Loaded reports whether id has a table entry.
func (h *Host) Loaded(id clsid.ID) bool {
	return h.lookup(id) != nil
}

// RefCount returns the logical reference count of id.
func (h *Host) RefCount(id clsid.ID) (uint32, bool) {
	e := h.lookup(id)
	if e == nil {
		return 0, false
	}
	return e.refs.Load(), true
}

// Len returns the number of table entries.
func (h *Host) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.table)
}

// Entries returns a snapshot of the table ordered by identity.
func (h *Host) Entries() []EntryInfo {
	h.mu.Lock()
	out := make([]EntryInfo, 0, len(h.table))
	for id, e := range h.table {
		out = append(out, EntryInfo{ID: id, RefCount: e.refs.Load()})
	}
	h.mu.Unlock()

	slices.SortFunc(out, func(a, b EntryInfo) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return out
}

func (h *Host) debugLog(msg string, args ...any) {
	if h.config.Logger != nil {
		h.config.Logger.Debug(msg, args...)
	}
}

func (h *Host) warnLog(msg string, args ...any) {
	if h.config.Logger != nil {
		h.config.Logger.Warn(msg, args...)
	}
}
