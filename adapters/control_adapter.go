// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control interface using control package primitives.

package adapters

import (
	"github.com/momentics/hioload-platform/api"
	"github.com/momentics/hioload-platform/control"
)

var _ api.Control = (*ControlAdapter)(nil)

// ControlAdapter aggregates the config store, metrics registry and debug
// probes behind api.Control.
type ControlAdapter struct {
	config  *control.ConfigStore
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

// NewControlAdapter creates an adapter with the platform probes registered.
func NewControlAdapter() *ControlAdapter {
	adapter := &ControlAdapter{
		config:  control.NewConfigStore(),
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
	}
	control.RegisterPlatformProbes(adapter.debug)
	return adapter
}

func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}

func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	return c.config.SetConfig(cfg)
}

// LoadConfigFile merges a YAML file into the config store. It is also the
// hot reload path: calling it again re-reads the file.
func (c *ControlAdapter) LoadConfigFile(path string) error {
	return c.config.LoadYAML(path)
}

// Stats merges metrics with probe output; probe keys get a "debug." prefix.
func (c *ControlAdapter) Stats() map[string]any {
	stats := c.metrics.GetSnapshot()
	debugStats := c.debug.DumpState()
	combined := make(map[string]any, len(stats)+len(debugStats))
	for k, v := range stats {
		combined[k] = v
	}
	for k, v := range debugStats {
		combined["debug."+k] = v
	}
	return combined
}

// OnValidate adds a check that can veto config updates.
func (c *ControlAdapter) OnValidate(fn func(cfg map[string]any) error) {
	c.config.OnValidate(fn)
}

// OnReload fires fn after every accepted config update.
func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(fn)
}

func (c *ControlAdapter) SetMetric(key string, value any) {
	c.metrics.Set(key, value)
}

func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}
