//go:build !linux
// +build !linux

// File: internal/concurrency/thread_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback thread identity for platforms without gettid. The goroutine id is
// used instead; it is unique per live goroutine, and adapter threads run one
// goroutine per OS thread.

package concurrency

// CurrentThreadID returns the goroutine id of the caller.
func CurrentThreadID() int {
	return int(GoroutineID())
}

// OSThreadCount is not available without procfs.
func OSThreadCount() (int, error) {
	return 0, ErrThreadCountUnavailable
}
