package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/multierr"

	"github.com/sbaudio/asio-go/pkg/activation"
	"github.com/sbaudio/asio-go/pkg/config"
	"github.com/sbaudio/asio-go/pkg/fixture"
	"github.com/sbaudio/asio-go/pkg/host"
	"github.com/sbaudio/asio-go/pkg/log"
	"github.com/sbaudio/asio-go/pkg/persistence"
	"github.com/sbaudio/asio-go/pkg/registry"
)

// options are the global command-line settings. Non-empty values override
// the configuration file.
type options struct {
	ConfigFile string
	Fixture    string
	EventLog   string
	StateFile  string
	LogLevel   string
}

// app is one composed asio-host run: a scanner and a host sharing one
// session, logger and event log.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	events  log.Logger
	scanner *registry.Scanner
	host    *host.Host
	state   *persistence.HostStateStore

	// simulated is set for fixture runs.
	simulated *activation.SimulatedActivator

	closers []io.Closer
}

func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			return cfg, err
		}
	}
	if opts.Fixture != "" {
		cfg.Fixture = opts.Fixture
	}
	if opts.EventLog != "" {
		cfg.EventLog = opts.EventLog
	}
	if opts.StateFile != "" {
		cfg.StateFile = opts.StateFile
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	return cfg, cfg.Validate()
}

func newApp(opts options, stderr io.Writer) (*app, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()})),
	}

	sinks := []log.Logger{log.NewSlogAdapter(a.logger)}
	if cfg.EventLog != "" {
		fl, err := log.NewFileLogger(cfg.EventLog)
		if err != nil {
			return nil, fmt.Errorf("open event log: %w", err)
		}
		sinks = append(sinks, fl)
		a.closers = append(a.closers, fl)
	}
	a.events = log.NewMultiLogger(sinks...)

	var (
		store     registry.Store
		activator activation.Activator
		fs        afero.Fs
	)
	if cfg.Fixture != "" {
		env, err := fixture.Load(cfg.Fixture)
		if err != nil {
			a.Close()
			return nil, err
		}
		store, activator, fs = env.Store, env.Activator, env.Fs
		a.simulated = env.Activator
		a.logger.Debug("using simulated drivers", "fixture", cfg.Fixture)
	} else {
		store, activator, fs = registry.NewWindowsStore(), activation.NewCOMActivator(), afero.NewOsFs()
	}

	session := uuid.NewString()
	a.scanner = registry.NewScanner(store, registry.ScannerConfig{
		Fs:          fs,
		Logger:      a.logger,
		EventLogger: a.events,
		SessionID:   session,
	})

	a.host, err = host.New(activator, host.Config{
		Logger:      a.logger,
		EventLogger: a.events,
		SessionID:   session,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	if cfg.StateFile != "" {
		a.state = persistence.NewHostStateStore(cfg.StateFile)
	}
	return a, nil
}

// Close releases the event log.
func (a *app) Close() error {
	var err error
	for _, c := range a.closers {
		err = multierr.Append(err, c.Close())
	}
	a.closers = nil
	return err
}

// scan enumerates drivers and records them in the state file when one is
// configured.
func (a *app) scan() ([]registry.Descriptor, persistence.ScanDiff, error) {
	descs, err := a.scanner.Enumerate()
	if err != nil || a.state == nil {
		return descs, persistence.ScanDiff{}, err
	}

	state, err := a.state.Load()
	if err != nil {
		return descs, persistence.ScanDiff{}, fmt.Errorf("load state: %w", err)
	}
	diff := state.Merge(descs, time.Now())
	if err := a.state.Save(state); err != nil {
		return descs, diff, fmt.Errorf("save state: %w", err)
	}
	return descs, diff, nil
}

// selectDriver resolves query, falling back to the configured driver and
// then to the last selected one.
func (a *app) selectDriver(descs []registry.Descriptor, query string) (registry.Descriptor, error) {
	if query == "" {
		query = a.cfg.Driver
	}
	if query == "" && a.state != nil {
		if state, err := a.state.Load(); err == nil && !state.Selected.IsZero() {
			query = state.Selected.String()
		}
	}
	if query == "" {
		if len(descs) == 1 {
			return descs[0], nil
		}
		return registry.Descriptor{}, fmt.Errorf("%w: no driver named and %d installed", registry.ErrNoMatch, len(descs))
	}

	desc, err := registry.Find(descs, query)
	if err != nil {
		return desc, err
	}
	a.remember(desc)
	return desc, nil
}

func (a *app) remember(desc registry.Descriptor) {
	if a.state == nil {
		return
	}
	state, err := a.state.Load()
	if err != nil {
		a.logger.Warn("could not load state", "error", err)
		return
	}
	state.Selected = desc.ID
	if err := a.state.Save(state); err != nil {
		a.logger.Warn("could not save state", "error", err)
	}
}
