// File: api/control.go
// Package api defines Control interface.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Control manages dynamic config and runtime metrics of the platform layer.
type Control interface {
	GetConfig() map[string]any
	// SetConfig merges cfg into the config. It returns the first validator
	// error and applies nothing in that case.
	SetConfig(cfg map[string]any) error
	Stats() map[string]any
	// OnValidate registers a check of the merged config, run before an
	// update is accepted.
	OnValidate(fn func(cfg map[string]any) error)
	OnReload(fn func())
	SetMetric(key string, value any)
	RegisterDebugProbe(name string, fn func() any)
}
