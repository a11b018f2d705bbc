// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_stub.go) guarded by build tags.
//
// All calls act on the calling OS thread, so callers must hold the goroutine on its
// thread with runtime.LockOSThread for the result to stick.

package affinity

// SetAffinity pins the current OS thread to a given logical CPU.
// On unsupported platforms returns an error.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}

// CurrentCPUs lists the CPUs the current OS thread may run on.
func CurrentCPUs() ([]int, error) {
	return currentCPUsPlatform()
}
