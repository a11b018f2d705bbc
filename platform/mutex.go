// File: platform/mutex.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutex over sync.Mutex with explicit lifecycle and fail-fast checks.

package platform

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-platform/api"
	"github.com/momentics/hioload-platform/internal/concurrency"
)

// Handle lifecycle states shared by Mutex and Cond.
const (
	handleUninit int32 = iota
	handleReady
	handleDestroyed
)

// MutexKind selects how much misuse a Mutex detects.
type MutexKind int32

const (
	// MutexNormal detects lifecycle misuse and unlocking a free mutex.
	MutexNormal MutexKind = iota
	// MutexErrorCheck additionally tracks the owning goroutine: relocking
	// from the owner and unlocking from another goroutine are fatal.
	MutexErrorCheck
)

func (k MutexKind) String() string {
	switch k {
	case MutexNormal:
		return "normal"
	case MutexErrorCheck:
		return "errorcheck"
	default:
		return fmt.Sprintf("MutexKind(%d)", int32(k))
	}
}

// ParseMutexKind converts a config value into a MutexKind.
func ParseMutexKind(s string) (MutexKind, error) {
	switch s {
	case "", "normal":
		return MutexNormal, nil
	case "errorcheck":
		return MutexErrorCheck, nil
	}
	return 0, fmt.Errorf("platform: unknown mutex kind %q: %w", s, api.ErrInvalidArgument)
}

var _ api.Locker = (*Mutex)(nil)

// Mutex is a mutual-exclusion lock. It must be initialized once with Init
// (or obtained from NewMutex) before use and destroyed once after last use.
// A Mutex must not be copied.
type Mutex struct {
	mu    sync.Mutex
	state atomic.Int32
	held  atomic.Bool
	owner atomic.Int64
	kind  MutexKind
}

// NewMutex returns an initialized mutex of the configured default kind.
func NewMutex() *Mutex {
	m := &Mutex{}
	m.Init()
	return m
}

// NewMutexKind returns an initialized mutex of the given kind.
func NewMutexKind(kind MutexKind) *Mutex {
	m := &Mutex{}
	m.InitKind(kind)
	return m
}

// Init prepares m using the configured default kind.
func (m *Mutex) Init() {
	m.InitKind(defaultMutexKind())
}

// InitKind prepares m. A destroyed mutex may be initialized again; a live
// one may not.
func (m *Mutex) InitKind(kind MutexKind) {
	if m.state.Load() == handleReady {
		fatal("mutex initialize", unix.EBUSY)
	}
	m.kind = kind
	m.held.Store(false)
	m.owner.Store(0)
	m.state.Store(handleReady)
}

// Destroy retires m. Destroying a held or already retired mutex is fatal.
func (m *Mutex) Destroy() {
	m.check("mutex destroy")
	if m.held.Load() {
		fatal("mutex destroy", unix.EBUSY)
	}
	m.state.Store(handleDestroyed)
}

// Enter blocks until m is acquired.
func (m *Mutex) Enter() {
	m.check("mutex enter")
	var gid int64
	if m.kind == MutexErrorCheck {
		gid = concurrency.GoroutineID()
		if m.held.Load() && m.owner.Load() == gid {
			fatal("mutex enter", unix.EDEADLK)
		}
	}
	m.mu.Lock()
	m.acquired(gid)
}

// Exit releases m.
func (m *Mutex) Exit() {
	m.check("mutex exit")
	if !m.held.Load() {
		fatal("mutex exit", unix.EPERM)
	}
	if m.kind == MutexErrorCheck && m.owner.Load() != concurrency.GoroutineID() {
		fatal("mutex exit", unix.EPERM)
	}
	m.owner.Store(0)
	m.held.Store(false)
	m.mu.Unlock()
}

// TryEnter acquires m without blocking. It returns nil on success and
// api.ErrBusy if m is held, including by the caller.
func (m *Mutex) TryEnter() error {
	m.check("mutex try enter")
	if !m.mu.TryLock() {
		return api.ErrBusy
	}
	var gid int64
	if m.kind == MutexErrorCheck {
		gid = concurrency.GoroutineID()
	}
	m.acquired(gid)
	return nil
}

// With runs fn with m held and releases m on every exit path, panics included.
func (m *Mutex) With(fn func()) {
	m.Enter()
	defer m.Exit()
	fn()
}

// Kind reports the kind m was initialized with.
func (m *Mutex) Kind() MutexKind {
	return m.kind
}

func (m *Mutex) acquired(gid int64) {
	m.owner.Store(gid)
	m.held.Store(true)
}

func (m *Mutex) check(op string) {
	if m.state.Load() != handleReady {
		fatal(op, unix.EINVAL)
	}
}
