// File: platform/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide settings of the adapter.

package platform

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-platform/api"
	"github.com/momentics/hioload-platform/control"
)

// Config holds adapter settings. Zero limits mean unbounded.
type Config struct {
	MutexKind          string `yaml:"mutex_kind"`           // default kind for Mutex.Init: normal | errorcheck
	MaxThreads         int    `yaml:"max_threads"`          // live adapter threads before start fails with EAGAIN
	MaxPendingLaunches int    `yaml:"max_pending_launches"` // launch requests in flight before ENOMEM
	Diagnostics        string `yaml:"diagnostics"`          // stderr | stdout | discard
}

// Config keys understood by ConfigFromMap, as stored in a control.ConfigStore.
const (
	KeyMutexKind          = "platform.mutex_kind"
	KeyMaxThreads         = "platform.max_threads"
	KeyMaxPendingLaunches = "platform.max_pending_launches"
	KeyDiagnostics        = "platform.diagnostics"
)

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		MutexKind:          "normal",
		MaxThreads:         0,
		MaxPendingLaunches: 0,
		Diagnostics:        "stderr",
	}
}

var (
	settingsMu sync.RWMutex
	settings   = DefaultConfig()

	mutexKind  atomic.Int32
	maxThreads atomic.Int64
)

func defaultMutexKind() MutexKind {
	return MutexKind(mutexKind.Load())
}

// Validate checks the values of c.
func (c *Config) Validate() error {
	if _, err := ParseMutexKind(c.MutexKind); err != nil {
		return err
	}
	if c.MaxThreads < 0 || c.MaxPendingLaunches < 0 {
		return fmt.Errorf("platform: negative limit: %w", api.ErrInvalidArgument)
	}
	if _, err := diagnosticWriter(c.Diagnostics); err != nil {
		return err
	}
	return nil
}

// Configure validates cfg and applies it process-wide. Mutexes already
// initialized keep their kind.
func Configure(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	kind, _ := ParseMutexKind(cfg.MutexKind)
	w, _ := diagnosticWriter(cfg.Diagnostics)

	settingsMu.Lock()
	defer settingsMu.Unlock()
	c := *cfg
	settings = &c
	mutexKind.Store(int32(kind))
	maxThreads.Store(int64(cfg.MaxThreads))
	launches.SetLimit(cfg.MaxPendingLaunches)
	SetDiagnosticOutput(w)
	return nil
}

// CurrentConfig returns a copy of the applied configuration.
func CurrentConfig() *Config {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	c := *settings
	return &c
}

// LoadConfig reads a YAML file of the form
//
//	platform:
//	  mutex_kind: errorcheck
//	  max_threads: 64
//
// on top of DefaultConfig. It does not apply the result.
func LoadConfig(path string) (*Config, error) {
	file := struct {
		Platform *Config `yaml:"platform"`
	}{Platform: DefaultConfig()}
	if err := control.DecodeYAMLFile(path, &file); err != nil {
		return nil, err
	}
	if err := file.Platform.Validate(); err != nil {
		return nil, err
	}
	return file.Platform, nil
}

// ConfigFromMap overlays the platform.* keys of values on base.
func ConfigFromMap(base *Config, values map[string]any) (*Config, error) {
	cfg := *base
	var err error
	if v, ok := values[KeyMutexKind]; ok {
		cfg.MutexKind = fmt.Sprint(v)
	}
	if v, ok := values[KeyDiagnostics]; ok {
		cfg.Diagnostics = fmt.Sprint(v)
	}
	if v, ok := values[KeyMaxThreads]; ok {
		if cfg.MaxThreads, err = toInt(v); err != nil {
			return nil, fmt.Errorf("platform: %s: %w", KeyMaxThreads, err)
		}
	}
	if v, ok := values[KeyMaxPendingLaunches]; ok {
		if cfg.MaxPendingLaunches, err = toInt(v); err != nil {
			return nil, fmt.Errorf("platform: %s: %w", KeyMaxPendingLaunches, err)
		}
	}
	return &cfg, cfg.Validate()
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("non-integer %v: %w", n, api.ErrInvalidArgument)
		}
		return int(n), nil
	case string:
		return strconv.Atoi(n)
	}
	return 0, fmt.Errorf("unsupported type %T: %w", v, api.ErrInvalidArgument)
}

func diagnosticWriter(name string) (io.Writer, error) {
	switch name {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	case "discard":
		return io.Discard, nil
	}
	return nil, fmt.Errorf("platform: unknown diagnostics target %q: %w", name, api.ErrInvalidArgument)
}
