// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, runtime metrics and debug introspection for hioload-platform.
//
// Provides concurrent-safe state handling primitives including:
//   - Snapshot config reads, YAML loading and validated merged updates
//   - Reload listeners
//   - Metrics registry
//   - Debug probe registration and state export
package control
