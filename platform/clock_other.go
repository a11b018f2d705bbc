//go:build !linux
// +build !linux

// File: platform/clock_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package platform

import "time"

// clockBase anchors the runtime's monotonic reading.
var clockBase = time.Now()

// MonotonicNanoseconds returns nanoseconds since package initialization,
// measured on the runtime monotonic clock.
func MonotonicNanoseconds() uint64 {
	return uint64(time.Since(clockBase))
}
