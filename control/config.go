// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with dynamic update and reload propagation.

package control

import (
	"sync"
)

// ConfigStore is a dynamic key/value map with atomic snapshot and listener support.
type ConfigStore struct {
	mu         sync.RWMutex
	config     map[string]any
	validators []func(map[string]any) error
	listeners  []func()
}

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config:    make(map[string]any),
		listeners: make([]func(), 0),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	snapshot := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		snapshot[k] = v
	}
	return snapshot
}

// Get returns a single value.
func (cs *ConfigStore) Get(key string) (any, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	v, ok := cs.config[key]
	return v, ok
}

// SetConfig merges new values and runs the reload listeners. The merged
// result is checked by every validator first; if one rejects it the store is
// left unchanged, no listener runs and the error is returned. Listeners run
// on the caller's goroutine after the store lock is released, so they may
// read the store.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) error {
	cs.mu.Lock()
	candidate := make(map[string]any, len(cs.config)+len(newCfg))
	for k, v := range cs.config {
		candidate[k] = v
	}
	for k, v := range newCfg {
		candidate[k] = v
	}
	for _, validate := range cs.validators {
		if err := validate(candidate); err != nil {
			cs.mu.Unlock()
			return err
		}
	}
	cs.config = candidate
	listeners := append([]func(){}, cs.listeners...)
	cs.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
	return nil
}

// LoadYAML merges the flattened contents of a YAML file into the store.
// Nested mappings become dotted keys: {platform: {max_threads: 8}} is stored
// as "platform.max_threads".
func (cs *ConfigStore) LoadYAML(path string) error {
	values, err := ReadYAMLMap(path)
	if err != nil {
		return err
	}
	return cs.SetConfig(values)
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// OnValidate registers a check run against the merged config before an update
// is stored. Validators run under the store lock and must not call back into
// the store.
func (cs *ConfigStore) OnValidate(fn func(cfg map[string]any) error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.validators = append(cs.validators, fn)
}
