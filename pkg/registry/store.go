package registry

import "errors"

// Store errors.
var (
	ErrKeyNotFound   = errors.New("registry key not found")
	ErrValueNotFound = errors.New("registry value not found")
)

// Root selects one of the two registry hives the scanner reads.
type Root uint8

const (
	// LocalMachine holds the driver list (HKEY_LOCAL_MACHINE).
	LocalMachine Root = iota
	// ClassesRoot holds the class loader table (HKEY_CLASSES_ROOT).
	ClassesRoot
)

// String returns the hive name.
func (r Root) String() string {
	switch r {
	case LocalMachine:
		return "HKEY_LOCAL_MACHINE"
	case ClassesRoot:
		return "HKEY_CLASSES_ROOT"
	default:
		return "UNKNOWN"
	}
}

// Well-known locations.
const (
	// DriversPath is the driver list below LocalMachine.
	DriversPath = `SOFTWARE\ASIO`
	// ValueCLSID names the driver's class identifier.
	ValueCLSID = "CLSID"
	// ValueDescription names the driver's display name.
	ValueDescription = "Description"
	// LoaderKey is the sub-key of a class entry holding the module path.
	LoaderKey = "InprocServer32"
)

// ClassPath returns the ClassesRoot path of the loader entry for a class
// identifier in registry form.
func ClassPath(id string) string {
	return `CLSID\` + id + `\` + LoaderKey
}

// Store opens keys by path. Paths are backslash-separated and relative to root.
type Store interface {
	// OpenKey opens a key for reading. Returns ErrKeyNotFound when absent.
	OpenKey(root Root, path string) (Key, error)
}

// Key is an open registry key.
type Key interface {
	// SubKeyNames lists the direct children in store order.
	SubKeyNames() ([]string, error)

	// OpenSubKey opens a direct child. Returns ErrKeyNotFound when absent.
	OpenSubKey(name string) (Key, error)

	// StringValue reads a string value. The empty name reads the default
	// value. Returns ErrValueNotFound when absent.
	StringValue(name string) (string, error)

	// Close releases the key.
	Close() error
}
