//go:build windows

package main

import "golang.org/x/sys/windows"

// sysHandle is passed to driver Init. Drivers use it as the owner of their
// control panel windows; the process pseudo-handle keeps them headless.
func sysHandle() uintptr {
	return uintptr(windows.CurrentProcess())
}
