// File: platform/assert.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package platform

import "fmt"

// Assert terminates the process through the fatal path when cond is false.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		fatal("assertion", fmt.Errorf(format, args...))
	}
}

// InitializeSockets prepares the socket layer. POSIX sockets need no setup,
// so this is a no-op kept for callers written against the portable API.
func InitializeSockets() {}
