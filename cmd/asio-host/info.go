package main

import (
	"fmt"
	"io"

	"go.uber.org/multierr"

	"github.com/sbaudio/asio-go/pkg/asio"
	"github.com/sbaudio/asio-go/pkg/host"
	"github.com/sbaudio/asio-go/pkg/registry"
)

func runInfo(a *app, query string, w io.Writer) (err error) {
	descs, _, err := a.scan()
	if err != nil {
		return err
	}
	desc, err := a.selectDriver(descs, query)
	if err != nil {
		return err
	}

	if err := a.host.Initialize(); err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, a.host.Shutdown()) }()

	h, _, err := a.host.Acquire(desc.ID)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, h.Release()) }()

	if !h.Init(sysHandle()) {
		return fmt.Errorf("%s: init failed: %s", desc.Name, h.ErrorMessage())
	}
	if a.cfg.SampleRate != 0 {
		if err := h.SetSampleRate(a.cfg.SampleRate); err != nil {
			return fmt.Errorf("%s: set sample rate %g: %w", desc.Name, a.cfg.SampleRate, err)
		}
	}
	return printInfo(w, desc, h)
}

var features = []struct {
	name     string
	selector asio.FutureSelector
}{
	{"time info", asio.CanTimeInfo},
	{"time code", asio.CanTimeCode},
	{"overload report", asio.CanReportOverload},
}

func printInfo(w io.Writer, desc registry.Descriptor, h *host.Handle) error {
	fmt.Fprintf(w, "Driver:    %s (version %d)\n", h.Name(), h.Version())
	fmt.Fprintf(w, "Class:     %s\n", desc.ID)
	fmt.Fprintf(w, "Module:    %s\n", desc.Path)

	in, out, err := h.Channels()
	if err != nil {
		return fmt.Errorf("channels: %w", err)
	}
	fmt.Fprintf(w, "Channels:  %d in / %d out\n", in, out)

	if inLat, outLat, err := h.Latencies(); err == nil {
		fmt.Fprintf(w, "Latency:   %d in / %d out samples\n", inLat, outLat)
	}

	if bs, err := h.BufferSize(); err == nil {
		fmt.Fprintf(w, "Buffer:    min %d, max %d, preferred %d, granularity %d\n",
			bs.Min, bs.Max, bs.Preferred, bs.Granularity)
	}

	if rate, err := h.SampleRate(); err == nil {
		fmt.Fprintf(w, "Rate:      %g Hz\n", rate)
	}

	sources, err := h.ClockSources()
	if err == nil && len(sources) > 0 {
		fmt.Fprintln(w, "Clocks:")
		for _, c := range sources {
			mark := " "
			if c.Current {
				mark = "*"
			}
			fmt.Fprintf(w, "  %s %d %s\n", mark, c.Index, c.Name)
		}
	}

	for _, f := range features {
		fmt.Fprintf(w, "Feature:   %s: %s\n", f.name, asio.ErrorString(h.Future(f.selector, 0)))
	}
	return nil
}
