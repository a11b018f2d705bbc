//go:build !linux
// +build !linux

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for platforms without per-thread affinity.

package affinity

import "github.com/momentics/hioload-platform/api"

var errUnsupported = api.ErrNotSupported

func setAffinityPlatform(int) error {
	return errUnsupported
}

func currentCPUsPlatform() ([]int, error) {
	return nil, errUnsupported
}
