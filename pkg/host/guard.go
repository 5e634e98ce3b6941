package host

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"

	"github.com/sbaudio/asio-go/pkg/clsid"
	"github.com/sbaudio/asio-go/pkg/log"
)

// Initialize increments the init count. The first call brings up the
// interop runtime; if that fails the count stays at zero.
func (h *Host) Initialize() error {
	h.lifecycle.Lock()
	defer h.lifecycle.Unlock()

	if h.initCount.Load() > 0 {
		n := h.initCount.Add(1)
		h.emitGuard(log.GuardInitialize, n, false, 0)
		return nil
	}

	h.gate.Lock()
	defer h.gate.Unlock()

	if err := h.activator.Initialize(); err != nil {
		h.emitError(log.LayerGuard, clsid.Nil, err, "runtime initialize")
		return fmt.Errorf("initialize runtime: %w", err)
	}
	h.initCount.Store(1)

	h.debugLog("driver runtime initialized", "session", h.config.SessionID)
	h.emitGuard(log.GuardInitialize, 1, true, 0)
	return nil
}

// Shutdown decrements the init count. The call that reaches zero stops and
// releases every driver in the table regardless of outstanding references,
// clears the table and tears down the runtime. Driver failures during
// teardown are collected and returned once teardown has completed.
func (h *Host) Shutdown() error {
	h.lifecycle.Lock()
	defer h.lifecycle.Unlock()

	switch n := h.initCount.Load(); {
	case n == 0:
		return ErrNotInitialized
	case n > 1:
		n = h.initCount.Add(-1)
		h.emitGuard(log.GuardShutdown, n, false, 0)
		return nil
	}

	h.gate.Lock()
	defer h.gate.Unlock()

	h.initCount.Store(0)

	h.mu.Lock()
	entries := make([]*entry, 0, len(h.table))
	for _, e := range h.table {
		entries = append(entries, e)
	}
	clear(h.table)
	h.mu.Unlock()

	slices.SortFunc(entries, func(a, b *entry) int {
		return strings.Compare(a.id.String(), b.id.String())
	})

	var errs error
	for _, e := range entries {
		refs := e.refs.Swap(0)
		if refs != 1 {
			h.debugLog("tearing down shared driver", "id", e.id, "refs", refs)
		}
		if err := e.driver.Stop(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("stop %s: %w", e.id, err))
			h.emitError(log.LayerGuard, e.id, err, "stop on shutdown")
		}
		e.driver.Release()
		h.emitLifecycle(log.OpTeardown, e.id, ResultErased.String(), 0)
	}

	h.activator.Uninitialize()


	h.debugLog("driver runtime shut down", "released", len(entries))
	h.emitGuard(log.GuardShutdown, 0, true, len(entries))
	return errs
}

// Initialized reports whether the init count is above zero.
func (h *Host) Initialized() bool {
	return h.initCount.Load() > 0
}

// InitCount returns the init count.
func (h *Host) InitCount() int32 {
	return h.initCount.Load()
}
