// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for concurrency module.

package concurrency

import "errors"

// ErrThreadCountUnavailable indicates the OS does not expose a live thread count.
var ErrThreadCountUnavailable = errors.New("OS thread count not available")
