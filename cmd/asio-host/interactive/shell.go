// Package interactive provides the interactive command-line interface
// for asio-host.
package interactive

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/multierr"

	"github.com/sbaudio/asio-go/pkg/asio"
	"github.com/sbaudio/asio-go/pkg/clsid"
	"github.com/sbaudio/asio-go/pkg/host"
	"github.com/sbaudio/asio-go/pkg/registry"
)

var errNoDriver = errors.New("no driver selected (use 'use <driver>')")

// Shell is an interactive session over one host.
type Shell struct {
	host      *host.Host
	drivers   []registry.Descriptor
	sysHandle uintptr
	rl        *readline.Instance

	current registry.Descriptor

	// held are the handles taken by acquire and query, most recent last.
	held map[clsid.ID][]*host.Handle
}

// New creates a shell reading from the terminal. The host must already be
// initialized.
func New(h *host.Host, drivers []registry.Descriptor, sysHandle uintptr) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "asio> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := newShell(h, drivers, sysHandle)
	s.rl = rl
	return s, nil
}

func newShell(h *host.Host, drivers []registry.Descriptor, sysHandle uintptr) *Shell {
	s := &Shell{
		host:      h,
		drivers:   drivers,
		sysHandle: sysHandle,
		held:      make(map[clsid.ID][]*host.Handle),
	}
	if len(drivers) == 1 {
		s.current = drivers[0]
	}
	return s
}

// Run reads commands until quit or end of input, then releases every handle
// the session still holds.
func (s *Shell) Run() error {
	defer s.rl.Close()
	defer s.releaseAll()

	out := s.rl.Stdout()
	s.printHelp(out)

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(out, "Exiting...")
			return nil
		}
		if s.exec(line, out) {
			return nil
		}
	}
}

// exec runs one command line and reports whether the session should end.
func (s *Shell) exec(line string, w io.Writer) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	rest := strings.Join(parts[1:], " ")

	var err error
	switch cmd {
	case "help", "?":
		s.printHelp(w)
	case "list", "ls":
		s.cmdList(w)
	case "use":
		err = s.cmdUse(rest, w)
	case "acquire", "a":
		err = s.cmdAcquire(rest, w)
	case "query":
		err = s.cmdQuery(rest, w)
	case "release", "r":
		err = s.cmdRelease(rest, w)
	case "init":
		err = s.cmdInit(rest, w)
	case "start":
		err = s.cmdStart(rest, w)
	case "stop":
		err = s.cmdStop(rest, w)
	case "rate":
		err = s.cmdRate(rest, w)
	case "table", "t":
		s.cmdTable(w)
	case "quit", "exit", "q":
		fmt.Fprintln(w, "Exiting...")
		return true
	default:
		fmt.Fprintf(w, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return false
}

func (s *Shell) printHelp(w io.Writer) {
	fmt.Fprintln(w, `
ASIO Host Commands:
  Drivers:
    list               - List installed drivers
    use <driver>       - Select the current driver

  Driver table:
    acquire [driver]   - Load the driver or share the loaded instance
    query [driver]     - Take an extra reference, loading on demand
    release [driver]   - Drop the most recent reference
    table              - Show loaded drivers and reference counts

  Driver control:
    init [driver]      - Initialize the hardware
    start [driver]     - Start streaming
    stop [driver]      - Stop streaming
    rate [hz]          - Show or set the sample rate of the current driver

  General:
    help               - Show this help
    quit               - Exit

  Drivers are named by description, registry key or class identifier.`)
}

// resolve finds the driver named by query, or the current one when query is
// empty. A named driver becomes the current one.
func (s *Shell) resolve(query string) (registry.Descriptor, error) {
	if query == "" {
		if !s.current.Valid() {
			return registry.Descriptor{}, errNoDriver
		}
		return s.current, nil
	}
	d, err := registry.Find(s.drivers, query)
	if err != nil {
		return d, err
	}
	s.current = d
	return d, nil
}

func (s *Shell) cmdList(w io.Writer) {
	if len(s.drivers) == 0 {
		fmt.Fprintln(w, "No ASIO drivers installed.")
		return
	}
	for _, d := range s.drivers {
		mark := " "
		if d.ID == s.current.ID {
			mark = "*"
		}
		loaded := ""
		if refs, ok := s.host.RefCount(d.ID); ok {
			loaded = fmt.Sprintf(" [loaded, %d refs]", refs)
		}
		fmt.Fprintf(w, "%s %-32s %s%s\n", mark, d.Name, d.ID, loaded)
	}
}

func (s *Shell) cmdUse(query string, w io.Writer) error {
	if query == "" {
		return errors.New("usage: use <driver>")
	}
	d, err := s.resolve(query)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Using %s\n", d.Name)
	return nil
}

func (s *Shell) cmdAcquire(query string, w io.Writer) error {
	d, err := s.resolve(query)
	if err != nil {
		return err
	}
	h, result, err := s.host.Acquire(d.ID)
	if err != nil {
		return err
	}
	s.held[d.ID] = append(s.held[d.ID], h)
	refs, _ := s.host.RefCount(d.ID)
	fmt.Fprintf(w, "%s: %s (refs %d)\n", d.Name, result, refs)
	return nil
}

func (s *Shell) cmdQuery(query string, w io.Writer) error {
	d, err := s.resolve(query)
	if err != nil {
		return err
	}
	h, err := s.host.Query(d.ID)
	if err != nil {
		return err
	}
	s.held[d.ID] = append(s.held[d.ID], h)
	refs, _ := s.host.RefCount(d.ID)
	fmt.Fprintf(w, "%s: queried (refs %d)\n", d.Name, refs)
	return nil
}

func (s *Shell) cmdRelease(query string, w io.Writer) error {
	d, err := s.resolve(query)
	if err != nil {
		return err
	}

	stack := s.held[d.ID]
	if len(stack) == 0 {
		result, err := s.host.Release(d.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", d.Name, result)
		return nil
	}

	h := stack[len(stack)-1]
	s.held[d.ID] = stack[:len(stack)-1]
	if err := h.Release(); err != nil {
		return err
	}
	if refs, ok := s.host.RefCount(d.ID); ok {
		fmt.Fprintf(w, "%s: released (refs %d)\n", d.Name, refs)
	} else {
		fmt.Fprintf(w, "%s: unloaded\n", d.Name)
	}
	return nil
}

// withDriver runs fn on a query handle for the named driver and releases it
// afterwards.
func (s *Shell) withDriver(query string, fn func(registry.Descriptor, *host.Handle) error) error {
	d, err := s.resolve(query)
	if err != nil {
		return err
	}
	if !s.host.Loaded(d.ID) {
		return fmt.Errorf("%s is not loaded (use 'acquire')", d.Name)
	}
	h, err := s.host.Query(d.ID)
	if err != nil {
		return err
	}
	defer h.Release()
	return fn(d, h)
}

func (s *Shell) cmdInit(query string, w io.Writer) error {
	return s.withDriver(query, func(d registry.Descriptor, h *host.Handle) error {
		if !h.Init(s.sysHandle) {
			return fmt.Errorf("%s: init failed: %s", d.Name, h.ErrorMessage())
		}
		fmt.Fprintf(w, "%s: initialized\n", d.Name)
		return nil
	})
}

func (s *Shell) cmdStart(query string, w io.Writer) error {
	return s.withDriver(query, func(d registry.Descriptor, h *host.Handle) error {
		fmt.Fprintf(w, "%s: %s\n", d.Name, asio.ErrorString(h.Start()))
		return nil
	})
}

func (s *Shell) cmdStop(query string, w io.Writer) error {
	return s.withDriver(query, func(d registry.Descriptor, h *host.Handle) error {
		fmt.Fprintf(w, "%s: %s\n", d.Name, asio.ErrorString(h.Stop()))
		return nil
	})
}

func (s *Shell) cmdRate(arg string, w io.Writer) error {
	var rate float64
	if arg != "" {
		var err error
		if rate, err = strconv.ParseFloat(arg, 64); err != nil || rate <= 0 {
			return fmt.Errorf("invalid sample rate: %s", arg)
		}
	}
	return s.withDriver("", func(d registry.Descriptor, h *host.Handle) error {
		if rate != 0 {
			if err := h.SetSampleRate(rate); err != nil {
				return fmt.Errorf("%s: %g Hz: %s", d.Name, rate, asio.ErrorString(err))
			}
		}
		current, err := h.SampleRate()
		if err != nil {
			return fmt.Errorf("%s: %s", d.Name, asio.ErrorString(err))
		}
		fmt.Fprintf(w, "%s: %g Hz\n", d.Name, current)
		return nil
	})
}

// releaseAll drops held handles newest first. Query handles own platform
// references that a host shutdown does not reclaim.
func (s *Shell) releaseAll() error {
	var err error
	for id, stack := range s.held {
		for i := len(stack) - 1; i >= 0; i-- {
			err = multierr.Append(err, stack[i].Release())
		}
		delete(s.held, id)
	}
	return err
}

func (s *Shell) cmdTable(w io.Writer) {
	entries := s.host.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(w, "No drivers loaded.")
		return
	}
	for _, e := range entries {
		name := e.ID.String()
		for _, d := range s.drivers {
			if d.ID == e.ID {
				name = d.Name
				break
			}
		}
		fmt.Fprintf(w, "  %-32s refs %d\n", name, e.RefCount)
	}
}
