package activation

import (
	"errors"

	"github.com/sbaudio/asio-go/pkg/asio"
	"github.com/sbaudio/asio-go/pkg/clsid"
)

// Activation errors.
var (
	ErrUnsupportedPlatform = errors.New("driver activation is not supported on this platform")
	ErrNotInitialized      = errors.New("interop runtime not initialized")
	ErrNotRegistered       = errors.New("class not registered")
	ErrActivationRefused   = errors.New("driver refused activation")
)

// Object is an activated driver: the ASIO control surface plus the platform
// reference count of the underlying component.
type Object interface {
	asio.Driver

	// AddRef increments the platform reference count and returns the new count.
	AddRef() uint32

	// Release decrements the platform reference count and returns the new
	// count. The object must not be used once the count reaches zero.
	Release() uint32
}

// Activator creates driver objects and owns the interop runtime they live in.
type Activator interface {
	// Initialize prepares the interop runtime for the calling thread.
	Initialize() error

	// Uninitialize tears down the interop runtime. Every Object created by
	// this activator must have been released before.
	Uninitialize()

	// Activate instantiates the driver registered under id. The returned
	// object holds one platform reference owned by the caller.
	Activate(id clsid.ID) (Object, error)
}
