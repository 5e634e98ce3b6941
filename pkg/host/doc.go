// Package host owns the driver instance table.
//
// A Host shares one activated driver object per class identifier between all
// callers. Acquire and Query create the object on first use; Release drops a
// logical reference and destroys the object when the last one goes away.
//
// The Host also carries the init/shutdown guard for the interop runtime.
// Initialize and Shutdown calls nest: the runtime comes up on the first
// Initialize and goes down on the matching Shutdown, which force-releases
// every driver still in the table.
//
//	h, _ := host.New(activator, host.DefaultConfig())
//	if err := h.Initialize(); err != nil { ... }
//	defer h.Shutdown()
//
//	drv, _, err := h.Acquire(desc.ID)
//	...
//	h.Release(desc.ID)
package host
