// File: api/sync.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contracts of the native synchronization adapter.

package api

// Locker is an exclusive lock with a non-blocking acquire.
//
// Enter and Exit never return errors: a failing native primitive terminates
// the process. TryEnter returns nil when the lock was acquired and ErrBusy
// when it is held elsewhere.
type Locker interface {
	Enter()
	Exit()
	TryEnter() error
}

// Signaler wakes goroutines blocked on a condition.
type Signaler interface {
	Signal()
	Broadcast()
}

// Joinable is a thread handle that can be waited on exactly once.
type Joinable interface {
	Join() error
}
