// File: platform/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package platform

import (
	"sync/atomic"

	"github.com/momentics/hioload-platform/internal/concurrency"
)

var counters struct {
	created       atomic.Int64
	joined        atomic.Int64
	detached      atomic.Int64
	live          atomic.Int64
	startFailures atomic.Int64
	allocFailures atomic.Int64
}

// Stats returns thread counters of the adapter. os_threads is -1 where the
// OS does not report it.
func Stats() map[string]int64 {
	osThreads := int64(-1)
	if n, err := concurrency.OSThreadCount(); err == nil {
		osThreads = int64(n)
	}
	return map[string]int64{
		"threads_created":        counters.created.Load(),
		"threads_joined":         counters.joined.Load(),
		"threads_detached":       counters.detached.Load(),
		"threads_live":           counters.live.Load(),
		"thread_start_failures":  counters.startFailures.Load(),
		"launch_alloc_failures":  counters.allocFailures.Load(),
		"launch_requests_in_use": int64(launches.InUse()),
		"os_threads":             osThreads,
	}
}
