// Package fixture builds a complete simulated driver environment from one
// YAML file: registry entries, driver module files and the drivers behind
// them. The asio-host command uses it for --fixture runs and tests use it to
// script driver behavior.
package fixture

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/sbaudio/asio-go/pkg/activation"
	"github.com/sbaudio/asio-go/pkg/asio"
	"github.com/sbaudio/asio-go/pkg/clsid"
	"github.com/sbaudio/asio-go/pkg/registry"
)

// Driver is one registry entry plus the simulated driver it activates.
type Driver struct {
	registry.FixtureEntry `yaml:",inline"`

	// Installed controls whether the module file exists.
	// Default: true when a path is set.
	Installed *bool `yaml:"installed,omitempty"`

	// Simulation describes the driver behavior. Entries without one can be
	// scanned but not activated.
	Simulation *Simulation `yaml:"driver,omitempty"`
}

// Simulation is the YAML form of activation.DriverSpec.
type Simulation struct {
	Name           string        `yaml:"name"`
	Version        int32         `yaml:"version"`
	Inputs         int           `yaml:"inputs"`
	Outputs        int           `yaml:"outputs"`
	InputLatency   int           `yaml:"input_latency"`
	OutputLatency  int           `yaml:"output_latency"`
	BufferMin      int           `yaml:"buffer_min"`
	BufferMax      int           `yaml:"buffer_max"`
	BufferPref     int           `yaml:"buffer_preferred"`
	BufferGran     int           `yaml:"buffer_granularity"`
	SampleRate     float64       `yaml:"sample_rate"`
	SampleRates    []float64     `yaml:"sample_rates"`
	ClockSources   []string      `yaml:"clock_sources"`
	ActivateDelay  time.Duration `yaml:"activation_delay"`
	FailActivation bool          `yaml:"fail_activation"`
	FailInit       bool          `yaml:"fail_init"`
	StartError     int32         `yaml:"start_error"`
	StopError      int32         `yaml:"stop_error"`
}

// Spec converts the simulation to a driver spec.
func (s Simulation) Spec() activation.DriverSpec {
	return activation.DriverSpec{
		Name:          s.Name,
		Version:       s.Version,
		Inputs:        s.Inputs,
		Outputs:       s.Outputs,
		InputLatency:  s.InputLatency,
		OutputLatency: s.OutputLatency,
		BufferSize: asio.BufferSize{
			Min:         s.BufferMin,
			Max:         s.BufferMax,
			Preferred:   s.BufferPref,
			Granularity: s.BufferGran,
		},
		SampleRate:      s.SampleRate,
		SampleRates:     s.SampleRates,
		ClockSources:    s.ClockSources,
		ActivationDelay: s.ActivateDelay,
		FailActivation:  s.FailActivation,
		FailInit:        s.FailInit,
		StartError:      asio.Error(s.StartError),
		StopError:       asio.Error(s.StopError),
	}
}

// File is the fixture document.
type File struct {
	Drivers []Driver `yaml:"drivers"`
}

// Environment is a loaded fixture.
type Environment struct {
	Store     *registry.MemoryStore
	Activator *activation.SimulatedActivator
	Fs        afero.Fs
}

// Build creates an environment from a decoded fixture.
func Build(f File) (*Environment, error) {
	env := &Environment{
		Store:     registry.NewMemoryStore(),
		Activator: activation.NewSimulatedActivator(),
		Fs:        afero.NewMemMapFs(),
	}

	entries := make([]registry.FixtureEntry, 0, len(f.Drivers))
	for i, d := range f.Drivers {
		entries = append(entries, d.FixtureEntry)

		installed := d.Path != ""
		if d.Installed != nil {
			installed = *d.Installed
		}
		if installed && d.Path != "" {
			if err := afero.WriteFile(env.Fs, d.Path, nil, 0o644); err != nil {
				return nil, fmt.Errorf("driver %d: create module: %w", i, err)
			}
		}

		if d.Simulation == nil {
			continue
		}
		id, err := clsid.Parse(d.CLSID)
		if err != nil {
			return nil, fmt.Errorf("driver %d (%s): %w", i, d.Key, err)
		}
		spec := d.Simulation.Spec()
		if spec.Name == "" {
			spec.Name = d.Description
		}
		env.Activator.Register(id, spec)
	}
	env.Store.Apply(registry.Fixture{Drivers: entries})

	return env, nil
}

// Decode reads a fixture document from r.
func Decode(r io.Reader) (*Environment, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return Build(f)
}

// Load reads a fixture file.
func Load(path string) (*Environment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
