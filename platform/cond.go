// File: platform/cond.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Condition variable with millisecond timed waits.
//
// Each waiter parks on its own channel. Waiters are queued before the caller's
// mutex is released, so a signal sent after the release always finds them.

package platform

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/eapache/queue"
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-platform/api"
)

var _ api.Signaler = (*Cond)(nil)

// Cond is a condition variable used with exactly one Mutex held by the
// caller. It must be initialized once with Init (or obtained from NewCond)
// and destroyed once after last use. A Cond must not be copied.
type Cond struct {
	state atomic.Int32

	lk      sync.Mutex
	waiters *queue.Queue // *condWaiter, guarded by lk
	live    int          // queued waiters neither signaled nor timed out
}

type condWaiter struct {
	wake      chan struct{}
	signaled  bool
	abandoned bool
}

// NewCond returns an initialized condition variable.
func NewCond() *Cond {
	c := &Cond{}
	c.Init()
	return c
}

// Init prepares c.
func (c *Cond) Init() {
	if c.state.Load() == handleReady {
		fatal("cond initialize", unix.EBUSY)
	}
	c.lk.Lock()
	c.waiters = queue.New()
	c.live = 0
	c.lk.Unlock()
	c.state.Store(handleReady)
}

// Destroy retires c. Destroying a condition that still has waiters is fatal.
func (c *Cond) Destroy() {
	c.check("cond destroy")
	c.lk.Lock()
	live := c.live
	c.lk.Unlock()
	if live > 0 {
		fatal("cond destroy", unix.EBUSY)
	}
	c.state.Store(handleDestroyed)
}

// Wait atomically releases m, blocks until woken, and re-acquires m before
// returning. Wakeups may be spurious.
func (c *Cond) Wait(m *Mutex) {
	c.check("cond wait")
	w := c.enqueue()
	m.Exit()
	<-w.wake
	m.Enter()
}

// TimedWait is Wait with a deadline of now plus msec milliseconds, taken from
// the wall clock. It returns with m re-acquired whether it was signaled or
// the deadline passed; the two are indistinguishable to the caller.
func (c *Cond) TimedWait(m *Mutex, msec uint32) {
	c.check("cond timedwait")
	deadline := time.Now().Add(time.Duration(msec) * time.Millisecond)
	w := c.enqueue()
	m.Exit()

	timer := time.NewTimer(time.Until(deadline))
	select {
	case <-w.wake:
	case <-timer.C:
		c.abandon(w)
	}
	timer.Stop()
	m.Enter()
}

// Signal wakes one waiter, if any.
func (c *Cond) Signal() {
	c.check("cond signal")
	c.lk.Lock()
	defer c.lk.Unlock()
	for c.waiters.Length() > 0 {
		if c.wakeHead() {
			return
		}
	}
}

// Broadcast wakes every current waiter.
func (c *Cond) Broadcast() {
	c.check("cond broadcast")
	c.lk.Lock()
	defer c.lk.Unlock()
	for c.waiters.Length() > 0 {
		c.wakeHead()
	}
}

// Waiters returns the number of goroutines currently blocked on c.
func (c *Cond) Waiters() int {
	c.lk.Lock()
	defer c.lk.Unlock()
	return c.live
}

func (c *Cond) enqueue() *condWaiter {
	w := &condWaiter{wake: make(chan struct{})}
	c.lk.Lock()
	c.waiters.Add(w)
	c.live++
	c.lk.Unlock()
	return w
}

// wakeHead pops the head waiter and wakes it unless it already timed out.
// Caller holds c.lk.
func (c *Cond) wakeHead() bool {
	w := c.waiters.Remove().(*condWaiter)
	if w.abandoned {
		return false
	}
	w.signaled = true
	c.live--
	close(w.wake)
	return true
}

// abandon marks a timed-out waiter so signals skip it. A waiter signaled
// concurrently with its timeout keeps the signal.
func (c *Cond) abandon(w *condWaiter) {
	c.lk.Lock()
	defer c.lk.Unlock()
	if w.signaled {
		return
	}
	w.abandoned = true
	c.live--
	if c.waiters.Length() > 2*c.live+compactThreshold {
		c.compact()
	}
}

// compactThreshold bounds how many timed-out waiters may pile up in the queue
// of a condition that is rarely signaled.
const compactThreshold = 32

// compact drops timed-out waiters, preserving the order of the rest. Caller
// holds c.lk.
func (c *Cond) compact() {
	kept := queue.New()
	for c.waiters.Length() > 0 {
		if w := c.waiters.Remove().(*condWaiter); !w.abandoned {
			kept.Add(w)
		}
	}
	c.waiters = kept
}

func (c *Cond) check(op string) {
	if c.state.Load() != handleReady {
		fatal(op, unix.EINVAL)
	}
}
