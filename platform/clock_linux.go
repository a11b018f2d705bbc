//go:build linux
// +build linux

// File: platform/clock_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package platform

import "golang.org/x/sys/unix"

// MonotonicNanoseconds reads CLOCK_MONOTONIC in nanoseconds.
func MonotonicNanoseconds() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		fatal("clock_gettime", err)
	}
	return uint64(ts.Nano())
}
