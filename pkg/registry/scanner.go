package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/sbaudio/asio-go/pkg/clsid"
	"github.com/sbaudio/asio-go/pkg/log"
)

// ErrNoMatch is returned by Find when no descriptor matches the query.
var ErrNoMatch = errors.New("no matching driver")

// Descriptor is an installed driver that passed validation.
type Descriptor struct {
	// ID is the driver class identifier.
	ID clsid.ID

	// Path is the driver module path from the class loader table.
	Path string

	// Name is the Description value, or KeyName when the value is absent.
	Name string

	// KeyName is the sub-key name below SOFTWARE\ASIO.
	KeyName string
}

// Valid reports whether the descriptor names a loadable module.
func (d Descriptor) Valid() bool {
	return d.Path != ""
}

// ScannerConfig configures a Scanner.
type ScannerConfig struct {
	// Fs is used to probe that driver modules exist.
	// Default: the OS filesystem.
	Fs afero.Fs

	// Logger receives skip warnings. Nil disables operational logging.
	Logger *slog.Logger

	// EventLogger receives one scan event per registry entry.
	// Nil disables event logging.
	EventLogger log.Logger

	// SessionID is stamped on emitted events.
	SessionID string
}

// DefaultScannerConfig returns a configuration that reads the OS filesystem
// and logs through slog.Default.
func DefaultScannerConfig() ScannerConfig {
	return ScannerConfig{
		Fs:     afero.NewOsFs(),
		Logger: slog.Default(),
	}
}

// Scanner enumerates installed drivers from a Store.
// Enumerate holds no state between calls and may be called repeatedly.
type Scanner struct {
	store  Store
	config ScannerConfig
}

// NewScanner creates a scanner over store.
func NewScanner(store Store, config ScannerConfig) *Scanner {
	if config.Fs == nil {
		config.Fs = afero.NewOsFs()
	}
	return &Scanner{store: store, config: config}
}

// Enumerate returns a descriptor for every valid driver entry, in registry
// order. A missing driver list yields an empty result. The only error is a
// driver list that exists but cannot be enumerated.
func (s *Scanner) Enumerate() ([]Descriptor, error) {
	root, err := s.store.OpenKey(LocalMachine, DriversPath)
	if err != nil {
		s.debugLog("driver list unavailable", "path", DriversPath, "error", err)
		return []Descriptor{}, nil
	}
	defer root.Close()

	names, err := root.SubKeyNames()
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", DriversPath, err)
	}

	descs := make([]Descriptor, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		desc, reason := s.readEntry(root, name)
		if reason != "" {
			s.warn(name, reason)
			s.emit(name, desc, reason)
			continue
		}
		s.emit(name, desc, "")
		descs = append(descs, desc)
	}
	return descs, nil
}

// readEntry validates one driver sub-key. A non-empty reason means the entry
// was rejected.
func (s *Scanner) readEntry(root Key, name string) (Descriptor, string) {
	desc := Descriptor{KeyName: name}

	key, err := root.OpenSubKey(name)
	if err != nil {
		return desc, "cannot open key"
	}
	defer key.Close()

	raw, err := key.StringValue(ValueCLSID)
	if err != nil || strings.TrimSpace(raw) == "" {
		return desc, "missing CLSID value"
	}
	raw = strings.TrimSpace(raw)

	id, err := clsid.Parse(raw)
	if err != nil {
		return desc, "malformed CLSID value"
	}
	desc.ID = id

	path, err := s.loaderPath(raw)
	if err != nil {
		return desc, err.Error()
	}
	desc.Path = path

	if d, err := key.StringValue(ValueDescription); err == nil && d != "" {
		desc.Name = d
	} else {
		desc.Name = name
	}
	return desc, ""
}

// loaderPath resolves the module path of a class and checks that it names an
// existing file.
func (s *Scanner) loaderPath(id string) (string, error) {
	key, err := s.store.OpenKey(ClassesRoot, ClassPath(id))
	if err != nil {
		return "", errors.New("class not registered")
	}
	defer key.Close()

	path, err := key.StringValue("")
	if err != nil || path == "" {
		return "", errors.New("missing module path")
	}

	fi, err := s.config.Fs.Stat(path)
	if err != nil || fi.IsDir() {
		return "", errors.New("module not installed")
	}
	return path, nil
}

func (s *Scanner) warn(name, reason string) {
	if s.config.Logger != nil {
		s.config.Logger.Warn("could not read ASIO driver", "key", name, "reason", reason)
	}
}

func (s *Scanner) debugLog(msg string, args ...any) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, args...)
	}
}

func (s *Scanner) emit(name string, desc Descriptor, reason string) {
	if s.config.EventLogger == nil {
		return
	}
	event := log.Event{
		Timestamp:  time.Now(),
		SessionID:  s.config.SessionID,
		Layer:      log.LayerScanner,
		Category:   log.CategoryScan,
		DriverName: desc.Name,
		Scan: &log.ScanEvent{
			KeyName:  name,
			Accepted: reason == "",
			Path:     desc.Path,
			Reason:   reason,
		},
	}
	if !desc.ID.IsZero() {
		event.DriverID = desc.ID.String()
	}
	s.config.EventLogger.Log(event)
}

// Find resolves query against descs. It matches, in order of preference,
// the exact name, the name ignoring case, the sub-key name ignoring case,
// and the class identifier in any form clsid.Parse accepts.
func Find(descs []Descriptor, query string) (Descriptor, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Descriptor{}, fmt.Errorf("%w: empty query", ErrNoMatch)
	}
	for _, d := range descs {
		if d.Name == query {
			return d, nil
		}
	}
	for _, d := range descs {
		if strings.EqualFold(d.Name, query) || strings.EqualFold(d.KeyName, query) {
			return d, nil
		}
	}
	if id, err := clsid.Parse(query); err == nil {
		for _, d := range descs {
			if d.ID == id {
				return d, nil
			}
		}
	}
	return Descriptor{}, fmt.Errorf("%w: %q", ErrNoMatch, query)
}
