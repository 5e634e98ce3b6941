//go:build windows

package registry

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const keyAccess = registry.QUERY_VALUE | registry.ENUMERATE_SUB_KEYS

// WindowsStore reads the system registry.
type WindowsStore struct{}

// NewWindowsStore returns a Store backed by the system registry.
func NewWindowsStore() *WindowsStore {
	return &WindowsStore{}
}

// OpenKey opens path below root for reading.
func (s *WindowsStore) OpenKey(root Root, path string) (Key, error) {
	var base registry.Key
	switch root {
	case LocalMachine:
		base = registry.LOCAL_MACHINE
	case ClassesRoot:
		base = registry.CLASSES_ROOT
	default:
		return nil, fmt.Errorf("%w: unknown root %d", ErrKeyNotFound, root)
	}
	return openWindowsKey(base, path)
}

func openWindowsKey(base registry.Key, path string) (Key, error) {
	k, err := registry.OpenKey(base, path, keyAccess)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return windowsKey{k: k}, nil
}

type windowsKey struct {
	k registry.Key
}

func (w windowsKey) SubKeyNames() ([]string, error) {
	return w.k.ReadSubKeyNames(-1)
}

func (w windowsKey) OpenSubKey(name string) (Key, error) {
	return openWindowsKey(w.k, name)
}

func (w windowsKey) StringValue(name string) (string, error) {
	v, _, err := w.k.GetStringValue(name)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrValueNotFound, name)
		}
		return "", err
	}
	return v, nil
}

func (w windowsKey) Close() error {
	return w.k.Close()
}

var _ Store = (*WindowsStore)(nil)
