// File: platform/clock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package platform

// MonotonicSeconds returns whole seconds of a clock that never goes backwards
// and ignores wall-clock adjustments. Only differences are meaningful.
func MonotonicSeconds() uint64 {
	return MonotonicNanoseconds() / 1e9
}
