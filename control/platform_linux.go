//go:build linux
// +build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific debug probe integrations.

package control

import (
	"github.com/momentics/hioload-platform/internal/concurrency"
)

// RegisterPlatformProbes sets Linux-specific debug metrics.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return concurrency.NumCPUs()
	})
	dp.RegisterProbe("platform.os_threads", func() any {
		n, err := concurrency.OSThreadCount()
		if err != nil {
			return -1
		}
		return n
	})
}
