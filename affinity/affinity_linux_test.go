//go:build linux

package affinity_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-platform/affinity"
)

func TestSetAffinityPinsCallingThread(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		// Exit while still locked so the pinned thread is discarded.
		runtime.LockOSThread()

		allowed, err := affinity.CurrentCPUs()
		if !assert.NoError(t, err) || !assert.NotEmpty(t, allowed) {
			return
		}

		assert.NoError(t, affinity.SetAffinity(allowed[0]))
		cpus, err := affinity.CurrentCPUs()
		assert.NoError(t, err)
		assert.Equal(t, []int{allowed[0]}, cpus)
	}()
	<-done
}

func TestSetAffinityRejectsInvalidCPU(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		runtime.LockOSThread()

		assert.ErrorIs(t, affinity.SetAffinity(-1), unix.EINVAL)
		// Bits beyond the mask are dropped, leaving an empty set the kernel refuses.
		assert.Error(t, affinity.SetAffinity(1<<20))
	}()
	<-done
}
