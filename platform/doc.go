// File: platform/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package platform maps a platform-neutral threading API onto native OS
// primitives.
//
// It provides:
//   - Mutex: exclusive lock with Enter/Exit/TryEnter and explicit Init/Destroy.
//   - Cond: condition variable with Wait, TimedWait, Signal and Broadcast.
//   - CreateThread/JoinThread: threads whose entry takes one argument and
//     returns nothing, each running on its own dedicated OS thread.
//   - MonotonicSeconds/MonotonicNanoseconds: elapsed-time clock.
//   - Htonll/Ntohll: 64-bit host/network byte order conversion.
//
// Errors come in two tiers. A primitive that fails where it cannot fail under
// correct use (locking a destroyed mutex, unlocking a mutex nobody holds) is
// reported on the diagnostic stream and terminates the process. Expected
// failures (contention, launch request exhaustion, thread start failure,
// invalid join) are returned as *api.Error values.
//
// Condition waits may wake spuriously and a timed wait does not say whether
// it was signaled or timed out. Callers always re-check their predicate:
//
//	mu.Enter()
//	for !ready {
//		cond.Wait(mu)
//	}
//	mu.Exit()
package platform
