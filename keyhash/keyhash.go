// File: keyhash/keyhash.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package keyhash is the key hashing function consumed by caller-owned
// lookup tables.

package keyhash

import "github.com/spaolacci/murmur3"

// Func hashes key. initval is accepted for call-site compatibility.
type Func func(key []byte, initval uint32) uint32

// Default is the hash used when a table does not install its own.
var Default Func = Hash

// Hash returns the 32-bit MurmurHash3 of key with seed 0. initval is ignored.
func Hash(key []byte, _ uint32) uint32 {
	return murmur3.Sum32(key)
}

// HashString hashes s with Default.
func HashString(s string) uint32 {
	return Default([]byte(s), 0)
}

// Bucket maps key onto one of n buckets using fn, or Default if fn is nil.
// n must be positive.
func Bucket(fn Func, key []byte, n int) int {
	if n <= 0 {
		panic("keyhash: non-positive bucket count")
	}
	if fn == nil {
		fn = Default
	}
	return int(fn(key, 0) % uint32(n))
}
