// Command asio-host discovers installed ASIO drivers and exercises them
// through the shared driver host.
//
// Usage:
//
//	asio-host [global flags] <command> [args]
//
// Commands:
//
//	list     List installed drivers
//	info     Show the capabilities of one driver
//	probe    Load, initialize and start every installed driver
//	shell    Interactive driver session
//
// Examples:
//
//	# List drivers from a simulated environment
//	asio-host --fixture studio.yaml list
//
//	# Probe all drivers and record lifecycle events
//	asio-host --event-log ~/.asio-host/host.alog probe
//
//	# Show one driver
//	asio-host info "Studio Interface"
package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/sbaudio/asio-go/cmd/asio-host/interactive"
)

const usage = `asio-host - ASIO driver host

Usage:
  asio-host [global flags] <command> [args]

Commands:
  list     List installed drivers
  info     Show the capabilities of one driver
  probe    Load, initialize and start every installed driver
  shell    Interactive driver session

Global flags:
`

func main() {
	fs := flag.NewFlagSet("asio-host", flag.ExitOnError)
	fs.SetInterspersed(false)

	var opts options
	fs.StringVarP(&opts.ConfigFile, "config", "c", "", "Configuration file path")
	fs.StringVar(&opts.Fixture, "fixture", "", "Simulated environment fixture (replaces the system registry)")
	fs.StringVar(&opts.EventLog, "event-log", "", "Lifecycle event log path")
	fs.StringVar(&opts.StateFile, "state-file", "", "Host state file path")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(1)
	}
	cmd, args := fs.Arg(0), fs.Args()[1:]

	if cmd == "help" {
		fs.SetOutput(os.Stdout)
		fmt.Print(usage)
		fs.PrintDefaults()
		return
	}

	a, err := newApp(opts, os.Stderr)
	if err != nil {
		fail(err)
	}

	err = run(a, cmd, args, os.Stdout)
	if cerr := a.Close(); cerr != nil {
		err = multierr.Append(err, cerr)
	}
	if err != nil {
		fail(err)
	}
}

func run(a *app, cmd string, args []string, w io.Writer) error {
	switch cmd {
	case "list":
		return runList(a, w)
	case "info":
		return runInfo(a, argOrEmpty(args), w)
	case "probe":
		return runProbe(a, w)
	case "shell":
		return runShell(a)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func runShell(a *app) error {
	descs, _, err := a.scan()
	if err != nil {
		return err
	}
	if err := a.host.Initialize(); err != nil {
		return err
	}
	defer func() {
		if err := a.host.Shutdown(); err != nil {
			a.logger.Warn("shutdown", "error", err)
		}
	}()

	sh, err := interactive.New(a.host, descs, sysHandle())
	if err != nil {
		return err
	}
	return sh.Run()
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
