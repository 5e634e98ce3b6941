//go:build !windows

package main

func sysHandle() uintptr { return 0 }
