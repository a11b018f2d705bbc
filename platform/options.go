// File: platform/options.go
// Package platform defines functional options for thread creation.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package platform

// ThreadOption customizes thread creation.
type ThreadOption func(*threadAttr)

type threadAttr struct {
	cpu  int
	name string
}

// WithCPU pins the new thread to a logical CPU before its entry runs. A pin
// failure is a thread start failure.
func WithCPU(cpu int) ThreadOption {
	return func(a *threadAttr) {
		a.cpu = cpu
	}
}

// WithName names the thread in diagnostics.
func WithName(name string) ThreadOption {
	return func(a *threadAttr) {
		a.name = name
	}
}
