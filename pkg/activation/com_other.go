//go:build !(windows && amd64)

package activation

import "github.com/sbaudio/asio-go/pkg/clsid"

// COMActivator loads ASIO drivers as in-process COM servers.
// On this platform every call fails with ErrUnsupportedPlatform.
type COMActivator struct{}

// NewCOMActivator creates a COM activator.
func NewCOMActivator() *COMActivator {
	return &COMActivator{}
}

// Initialize reports that COM is unavailable.
func (a *COMActivator) Initialize() error {
	return ErrUnsupportedPlatform
}

// Uninitialize does nothing.
func (a *COMActivator) Uninitialize() {}

// Activate reports that COM is unavailable.
func (a *COMActivator) Activate(clsid.ID) (Object, error) {
	return nil, ErrUnsupportedPlatform
}

var _ Activator = (*COMActivator)(nil)
