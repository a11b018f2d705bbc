// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Native thread plumbing for hioload-platform: identity of the calling OS
// thread and goroutine, OS thread accounting for the process, and CPU pinning
// of the calling thread.
//
// Everything here reports on the thread the caller is currently running on.
// Results are only stable while the caller holds runtime.LockOSThread.
package concurrency
