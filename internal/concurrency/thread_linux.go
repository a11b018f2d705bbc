//go:build linux
// +build linux

// File: internal/concurrency/thread_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux thread identity and accounting.

package concurrency

import (
	"bytes"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// CurrentThreadID returns the kernel id (tid) of the calling OS thread.
func CurrentThreadID() int {
	return unix.Gettid()
}

// OSThreadCount returns the number of live OS threads in the process, as
// reported by the "Threads:" line of /proc/self/status.
func OSThreadCount() (int, error) {
	data, err := os.ReadFile("/proc/self/status")
	if err != nil {
		return 0, err
	}
	return parseThreadsLine(data)
}

func parseThreadsLine(status []byte) (int, error) {
	for _, line := range bytes.Split(status, []byte{'\n'}) {
		rest, ok := bytes.CutPrefix(line, []byte("Threads:"))
		if !ok {
			continue
		}
		return strconv.Atoi(string(bytes.TrimSpace(rest)))
	}
	return 0, ErrThreadCountUnavailable
}
