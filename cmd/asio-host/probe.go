package main

import (
	"fmt"
	"io"

	"github.com/sbaudio/asio-go/pkg/asio"
	"github.com/sbaudio/asio-go/pkg/registry"
)

// runProbe loads and starts every installed driver, then stops them and
// leaves the final teardown to Shutdown.
func runProbe(a *app, w io.Writer) error {
	descs, _, err := a.scan()
	if err != nil {
		return err
	}
	if len(descs) == 0 {
		fmt.Fprintln(w, "No ASIO drivers installed.")
		return nil
	}

	if err := a.host.Initialize(); err != nil {
		return err
	}

	started := make([]registry.Descriptor, 0, len(descs))
	for _, d := range descs {
		if a.start(w, d) {
			started = append(started, d)
		}
	}

	for _, d := range started {
		h, err := a.host.Query(d.ID)
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", d.Name, err)
			continue
		}
		fmt.Fprintf(w, "%s: stop: %s\n", d.Name, asio.ErrorString(h.Stop()))
		if err := h.Release(); err != nil {
			a.logger.Warn("release query handle", "driver", d.Name, "error", err)
		}
	}

	loaded := a.host.Len()
	if err := a.host.Shutdown(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Released %d drivers.\n", loaded)
	return nil
}

// start acquires d, keeps the table reference for Shutdown and starts the
// driver through a query handle.
func (a *app) start(w io.Writer, d registry.Descriptor) bool {
	if _, _, err := a.host.Acquire(d.ID); err != nil {
		fmt.Fprintf(w, "%s: %v\n", d.Name, err)
		return false
	}

	h, err := a.host.Query(d.ID)
	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", d.Name, err)
		return false
	}
	defer func() {
		if err := h.Release(); err != nil {
			a.logger.Warn("release query handle", "driver", d.Name, "error", err)
		}
	}()

	if !h.Init(sysHandle()) {
		fmt.Fprintf(w, "%s: init failed: %s\n", d.Name, h.ErrorMessage())
		return false
	}

	if a.cfg.SampleRate != 0 {
		if err := h.SetSampleRate(a.cfg.SampleRate); err != nil {
			fmt.Fprintf(w, "%s: sample rate %g: %s\n", d.Name, a.cfg.SampleRate, asio.ErrorString(err))
		}
	}
	if a.cfg.BufferSize != 0 {
		if bs, err := h.BufferSize(); err == nil && !bs.Accepts(a.cfg.BufferSize) {
			fmt.Fprintf(w, "%s: buffer size %d not supported (min %d, max %d)\n",
				d.Name, a.cfg.BufferSize, bs.Min, bs.Max)
		}
	}

	err = h.Start()
	fmt.Fprintf(w, "%s: %s\n", d.Name, asio.ErrorString(err))
	return err == nil
}
