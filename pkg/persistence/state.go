package persistence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sbaudio/asio-go/pkg/clsid"
	"github.com/sbaudio/asio-go/pkg/registry"
)

// StateVersion is the current version of the state file format.
const StateVersion = 1

// HostState is the persisted host state.
type HostState struct {
	// Version is the state file format version.
	Version int `json:"version"`

	// SavedAt is when the state was last saved.
	SavedAt time.Time `json:"saved_at"`

	// Devices lists every driver seen by a scan, ordered by identity.
	Devices []DeviceRecord `json:"devices,omitempty"`

	// Selected is the identity of the driver last used, if any.
	Selected clsid.ID `json:"selected,omitzero"`
}

// DeviceRecord remembers one installed driver.
type DeviceRecord struct {
	ID   clsid.ID `json:"id"`
	Name string   `json:"name"`
	Path string   `json:"path"`

	// FirstSeen is when a scan first reported the driver.
	FirstSeen time.Time `json:"first_seen"`

	// LastSeen is when a scan last reported the driver.
	LastSeen time.Time `json:"last_seen"`

	// Present is false once a later scan no longer reports the driver.
	Present bool `json:"present"`
}

// ScanDiff reports how a scan differs from the recorded state.
type ScanDiff struct {
	Added   []DeviceRecord
	Removed []DeviceRecord
}

// Empty reports whether the scan changed nothing.
func (d ScanDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// Merge records the result of a scan taken at now. Drivers not seen before
// are added; known drivers missing from descs are marked absent but kept, so
// a reinstalled driver keeps its FirstSeen time.
func (s *HostState) Merge(descs []registry.Descriptor, now time.Time) ScanDiff {
	var diff ScanDiff

	seen := make(map[clsid.ID]bool, len(descs))
	for _, d := range descs {
		seen[d.ID] = true

		i := s.index(d.ID)
		if i < 0 {
			rec := DeviceRecord{ID: d.ID, Name: d.Name, Path: d.Path, FirstSeen: now, LastSeen: now, Present: true}
			s.Devices = append(s.Devices, rec)
			diff.Added = append(diff.Added, rec)
			continue
		}

		rec := &s.Devices[i]
		returned := !rec.Present
		rec.Name = d.Name
		rec.Path = d.Path
		rec.LastSeen = now
		rec.Present = true
		if returned {
			diff.Added = append(diff.Added, *rec)
		}
	}

	for i := range s.Devices {
		rec := &s.Devices[i]
		if rec.Present && !seen[rec.ID] {
			rec.Present = false
			diff.Removed = append(diff.Removed, *rec)
		}
	}

	slices.SortFunc(s.Devices, func(a, b DeviceRecord) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return diff
}

// Device returns the record for id.
func (s *HostState) Device(id clsid.ID) (DeviceRecord, bool) {
	if i := s.index(id); i >= 0 {
		return s.Devices[i], true
	}
	return DeviceRecord{}, false
}

func (s *HostState) index(id clsid.ID) int {
	return slices.IndexFunc(s.Devices, func(r DeviceRecord) bool { return r.ID == id })
}

// HostStateStore manages persistence of host state to a JSON file.
type HostStateStore struct {
	mu   sync.Mutex
	path string
}

// NewHostStateStore creates a new host state store.
func NewHostStateStore(path string) *HostStateStore {
	return &HostStateStore{path: path}
}

// Path returns the state file path.
func (s *HostStateStore) Path() string {
	return s.path
}

// Save persists the host state to disk.
func (s *HostStateStore) Save(state *HostState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure parent directory exists
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	state.Version = StateVersion
	state.SavedAt = time.Now()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	// Write through a temp file so a crash never leaves a truncated state.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Load reads the host state from disk.
// Returns an empty state if the file doesn't exist.
func (s *HostStateStore) Load() (*HostState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &HostState{Version: StateVersion}, nil
	}
	if err != nil {
		return nil, err
	}

	state := &HostState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Clear removes the state file.
func (s *HostStateStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
