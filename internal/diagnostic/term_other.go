//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows

package diagnostic

func isTerminal(uintptr) bool { return false }
