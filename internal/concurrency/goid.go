// File: internal/concurrency/goid.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Goroutine identity, used for lock ownership checks.

package concurrency

import "runtime"

// GoroutineID returns the id of the calling goroutine, parsed from the first
// line of its stack trace ("goroutine 123 [running]:"). Returns 0 if the
// format is not recognised.
func GoroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	return parseGoroutineID(buf[:n])
}

func parseGoroutineID(buf []byte) int64 {
	const prefix = "goroutine "
	if len(buf) < len(prefix) || string(buf[:len(prefix)]) != prefix {
		return 0
	}
	var id int64
	for _, c := range buf[len(prefix):] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + int64(c-'0')
	}
	return id
}
