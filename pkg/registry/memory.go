package registry

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// MemoryStore is an in-memory registry. Key and value names are matched
// case-insensitively, like the Windows registry, and children keep their
// insertion order. It is safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	roots map[Root]*memoryNode
}

type memoryNode struct {
	name     string
	children []*memoryNode
	values   map[string]string
}

func newMemoryNode(name string) *memoryNode {
	return &memoryNode{name: name, values: make(map[string]string)}
}

func (n *memoryNode) child(name string) *memoryNode {
	for _, c := range n.children {
		if strings.EqualFold(c.name, name) {
			return c
		}
	}
	return nil
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		roots: map[Root]*memoryNode{
			LocalMachine: newMemoryNode(LocalMachine.String()),
			ClassesRoot:  newMemoryNode(ClassesRoot.String()),
		},
	}
}

func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, `\`) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// CreateKey creates path below root, including missing parents.
func (s *MemoryStore) CreateKey(root Root, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createLocked(root, path)
}

// CreateKeyNamed appends a child with the exact name below path, even when
// the name is empty. Parents are created as needed.
func (s *MemoryStore) CreateKeyNamed(root Root, path, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	parent := s.createLocked(root, path)
	if name == "" || parent.child(name) == nil {
		parent.children = append(parent.children, newMemoryNode(name))
	}
}

// SetValue stores a string value on path below root, creating the key when
// missing. The empty name sets the default value.
func (s *MemoryStore) SetValue(root Root, path, name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createLocked(root, path).values[strings.ToLower(name)] = value
}

// DeleteKey removes path and its children. Missing keys are ignored.
func (s *MemoryStore) DeleteKey(root Root, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parts := splitPath(path)
	if len(parts) == 0 {
		return
	}
	parent := s.lookupLocked(root, parts[:len(parts)-1])
	if parent == nil {
		return
	}
	last := parts[len(parts)-1]
	for i, c := range parent.children {
		if strings.EqualFold(c.name, last) {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			return
		}
	}
}

func (s *MemoryStore) createLocked(root Root, path string) *memoryNode {
	n := s.roots[root]
	if n == nil {
		n = newMemoryNode(root.String())
		s.roots[root] = n
	}
	for _, part := range splitPath(path) {
		c := n.child(part)
		if c == nil {
			c = newMemoryNode(part)
			n.children = append(n.children, c)
		}
		n = c
	}
	return n
}

func (s *MemoryStore) lookupLocked(root Root, parts []string) *memoryNode {
	n := s.roots[root]
	for _, part := range parts {
		if n == nil {
			return nil
		}
		n = n.child(part)
	}
	return n
}

// OpenKey opens path below root.
func (s *MemoryStore) OpenKey(root Root, path string) (Key, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.lookupLocked(root, splitPath(path))
	if n == nil {
		return nil, fmt.Errorf("%w: %s\\%s", ErrKeyNotFound, root, path)
	}
	return &memoryKey{store: s, node: n}, nil
}

type memoryKey struct {
	store *MemoryStore
	node  *memoryNode
}

func (k *memoryKey) SubKeyNames() ([]string, error) {
	k.store.mu.RLock()
	defer k.store.mu.RUnlock()

	names := make([]string, 0, len(k.node.children))
	for _, c := range k.node.children {
		names = append(names, c.name)
	}
	return names, nil
}

func (k *memoryKey) OpenSubKey(name string) (Key, error) {
	k.store.mu.RLock()
	defer k.store.mu.RUnlock()

	n := k.node
	for _, part := range splitPath(name) {
		if n = n.child(part); n == nil {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, name)
		}
	}
	return &memoryKey{store: k.store, node: n}, nil
}

func (k *memoryKey) StringValue(name string) (string, error) {
	k.store.mu.RLock()
	defer k.store.mu.RUnlock()

	v, ok := k.node.values[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrValueNotFound, name)
	}
	return v, nil
}

func (k *memoryKey) Close() error { return nil }

// FixtureEntry describes one registered driver in a YAML fixture.
// Empty fields leave the corresponding registry value out, which is how
// fixtures model broken installations.
type FixtureEntry struct {
	// Key is the sub-key name below SOFTWARE\ASIO.
	Key string `yaml:"key"`
	// CLSID is the raw CLSID value, stored verbatim even when malformed.
	CLSID string `yaml:"clsid,omitempty"`
	// Description is the display name value.
	Description string `yaml:"description,omitempty"`
	// Path is the InprocServer32 default value.
	Path string `yaml:"path,omitempty"`
}

// Fixture is the YAML document read by LoadFixture.
type Fixture struct {
	Drivers []FixtureEntry `yaml:"drivers"`
}

// Apply adds every fixture entry to the store.
func (s *MemoryStore) Apply(f Fixture) {
	s.CreateKey(LocalMachine, DriversPath)
	for _, d := range f.Drivers {
		s.CreateKeyNamed(LocalMachine, DriversPath, d.Key)
		if d.Key == "" {
			continue
		}
		key := DriversPath + `\` + d.Key
		if d.CLSID != "" {
			s.SetValue(LocalMachine, key, ValueCLSID, d.CLSID)
		}
		if d.Description != "" {
			s.SetValue(LocalMachine, key, ValueDescription, d.Description)
		}
		if d.CLSID != "" && d.Path != "" {
			s.SetValue(ClassesRoot, ClassPath(d.CLSID), "", d.Path)
		}
	}
}

// LoadFixture reads a YAML fixture and adds its drivers to the store.
func (s *MemoryStore) LoadFixture(r io.Reader) error {
	var f Fixture
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return fmt.Errorf("decode registry fixture: %w", err)
	}
	s.Apply(f)
	return nil
}

var _ Store = (*MemoryStore)(nil)
