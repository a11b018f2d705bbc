// Package pool
// Author: momentics <momentics@gmail.com>
//
// Object pooling for hioload-platform. BoundedPool backs the thread launch
// requests: it recycles them and caps how many may be outstanding, which is
// what turns request allocation into a failure the caller can observe.
package pool
