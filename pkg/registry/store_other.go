//go:build !windows

package registry

import "fmt"

// WindowsStore is unavailable off Windows; every key is reported missing so
// scans come back empty.
type WindowsStore struct{}

// NewWindowsStore returns a Store that contains no keys.
func NewWindowsStore() *WindowsStore {
	return &WindowsStore{}
}

// OpenKey always fails with ErrKeyNotFound.
func (s *WindowsStore) OpenKey(root Root, path string) (Key, error) {
	return nil, fmt.Errorf("%w: %s\\%s", ErrKeyNotFound, root, path)
}

var _ Store = (*WindowsStore)(nil)
