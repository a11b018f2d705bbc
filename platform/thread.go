// File: platform/thread.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Native threads with a func(arg any) entry convention.
//
// Creation hands a launch request (entry + argument) to the new thread through
// a one-slot channel once the thread reports a successful start. Until that
// send the creator owns the request and frees it on failure; after it the
// trampoline owns it and frees it before calling the entry.

package platform

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-platform/api"
	"github.com/momentics/hioload-platform/internal/concurrency"
	"github.com/momentics/hioload-platform/pool"
)

// ThreadID identifies a native OS thread.
type ThreadID int

// Entry is a thread entry procedure.
type Entry func(arg any)

type launchRequest struct {
	entry Entry
	arg   any
}

// launches caps and recycles outstanding launch requests.
var launches = pool.NewBoundedPool(0, func() *launchRequest { return new(launchRequest) })

var threadSeq atomic.Uint64

var _ api.Joinable = (*Thread)(nil)

// Thread is the handle of a thread started by CreateThread.
type Thread struct {
	id       ThreadID
	name     string
	detached bool
	done     chan struct{}
	joined   atomic.Bool
}

// ID returns the native id of the thread.
func (t *Thread) ID() ThreadID { return t.id }

// Name returns the thread name given by WithName or generated at creation.
func (t *Thread) Name() string { return t.name }

// Detached reports whether the thread was created detached.
func (t *Thread) Detached() bool { return t.detached }

// CreateThread starts entry(arg) on a new OS thread.
//
// If no launch request can be allocated it returns api.ErrOutOfMemory and
// starts nothing. If the thread fails to start it returns an *api.Error with
// code api.ErrCodeThreadStart wrapping the native errno, and no handle.
// A detached thread must never be joined; any other thread must be joined
// exactly once.
func CreateThread(entry Entry, arg any, detached bool, opts ...ThreadOption) (*Thread, error) {
	if entry == nil {
		return nil, api.ErrInvalidArgument
	}
	attr := threadAttr{cpu: -1}
	for _, opt := range opts {
		opt(&attr)
	}
	seq := threadSeq.Add(1)
	if attr.name == "" {
		attr.name = fmt.Sprintf("thread-%d", seq)
	}

	req, ok := launches.TryGet()
	if !ok {
		counters.allocFailures.Add(1)
		return nil, api.ErrOutOfMemory
	}
	req.entry, req.arg = entry, arg

	t := &Thread{
		name:     attr.name,
		detached: detached,
		done:     make(chan struct{}),
	}
	handoff := make(chan *launchRequest, 1)
	if err := startNative(t, attr, handoff); err != nil {
		// The trampoline never ran; the request is still ours.
		releaseRequest(req)
		counters.startFailures.Add(1)
		logger.Printf("thread %s: %v", attr.name, err)
		return nil, err
	}
	handoff <- req

	counters.created.Add(1)
	if detached {
		counters.detached.Add(1)
	}
	return t, nil
}

// JoinThread waits for t to finish. See (*Thread).Join.
func JoinThread(t *Thread) error {
	return t.Join()
}

// Join blocks until the thread's entry returns and reclaims the thread.
// Joining a detached thread returns api.ErrDetached, joining twice returns
// api.ErrAlreadyJoined, and a thread joining itself gets api.ErrDeadlock.
func (t *Thread) Join() error {
	if t == nil {
		return api.ErrInvalidArgument
	}
	if t.detached {
		return api.ErrDetached
	}
	select {
	case <-t.done:
	default:
		if ThreadSelf() == t.id {
			return api.ErrDeadlock
		}
	}
	if !t.joined.CompareAndSwap(false, true) {
		return api.ErrAlreadyJoined
	}
	<-t.done
	counters.joined.Add(1)
	return nil
}

// ThreadSelf returns the native id of the calling thread. For goroutines not
// started by CreateThread the value is only stable under runtime.LockOSThread.
func ThreadSelf() ThreadID {
	return ThreadID(concurrency.CurrentThreadID())
}

// startNative reserves a thread slot and starts the bootstrap. It returns once
// the new thread reports its start status.
func startNative(t *Thread, attr threadAttr, handoff <-chan *launchRequest) error {
	if !reserveThread() {
		return api.NewError(api.ErrCodeThreadStart, "thread start failed").
			Wrap(unix.EAGAIN).
			WithContext("max_threads", maxThreads.Load())
	}
	status := make(chan error, 1)
	go bootstrap(t, attr, status, handoff)
	if err := <-status; err != nil {
		counters.live.Add(-1)
		return api.NewError(api.ErrCodeThreadStart, "thread start failed").
			Wrap(err).
			WithContext("cpu", attr.cpu)
	}
	return nil
}

func reserveThread() bool {
	for {
		live := counters.live.Load()
		if limit := maxThreads.Load(); limit > 0 && live >= limit {
			return false
		}
		if counters.live.CompareAndSwap(live, live+1) {
			return true
		}
	}
}

// bootstrap runs first on the new thread. It never unlocks the OS thread, so
// the runtime destroys the thread when the goroutine exits.
func bootstrap(t *Thread, attr threadAttr, status chan<- error, handoff <-chan *launchRequest) {
	runtime.LockOSThread()
	t.id = ThreadSelf()
	if attr.cpu >= 0 {
		if err := concurrency.PinCurrentThread(attr.cpu); err != nil {
			status <- err
			return
		}
	}
	status <- nil
	trampoline(t, <-handoff)
}

// trampoline takes the entry and argument out of req, frees req, then runs
// the entry.
func trampoline(t *Thread, req *launchRequest) {
	entry, arg := req.entry, req.arg
	releaseRequest(req)
	defer t.finish()
	entry(arg)
}

func (t *Thread) finish() {
	counters.live.Add(-1)
	close(t.done)
}

func releaseRequest(req *launchRequest) {
	req.entry, req.arg = nil, nil
	launches.Put(req)
}
