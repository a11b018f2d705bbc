// File: platform/byteorder.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package platform

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// Htonll converts a 64-bit value from host to network (big-endian) order.
func Htonll(v uint64) uint64 {
	if cpu.IsBigEndian {
		return v
	}
	return bits.ReverseBytes64(v)
}

// Ntohll converts a 64-bit value from network to host order.
func Ntohll(v uint64) uint64 {
	return Htonll(v)
}
