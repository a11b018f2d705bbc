// hioload-platform/internal/concurrency/pin.go
// Author: momentics <momentics@gmail.com>
//
// CPU pinning of the calling native thread.

package concurrency

import (
	"runtime"

	"github.com/momentics/hioload-platform/affinity"
)

// PinCurrentThread locks the calling goroutine to its OS thread and pins that
// thread to cpuID. The lock is never released here; the caller owns the thread
// from now on.
func PinCurrentThread(cpuID int) error {
	runtime.LockOSThread()
	return affinity.SetAffinity(cpuID)
}

// NumCPUs returns the number of logical CPUs.
func NumCPUs() int {
	return runtime.NumCPU()
}
