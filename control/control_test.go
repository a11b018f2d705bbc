package control_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-platform/control"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "platform.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestConfigStoreListenersRunAfterMerge(t *testing.T) {
	cs := control.NewConfigStore()
	var seen any
	cs.OnReload(func() {
		seen, _ = cs.Get("platform.max_threads")
	})
	require.NoError(t, cs.SetConfig(map[string]any{"platform.max_threads": 8}))
	assert.Equal(t, 8, seen)

	snap := cs.GetSnapshot()
	snap["platform.max_threads"] = 99
	v, _ := cs.Get("platform.max_threads")
	assert.Equal(t, 8, v, "snapshot must be a copy")
}

func TestConfigStoreLoadYAMLFlattens(t *testing.T) {
	path := writeFile(t, "platform:\n  mutex_kind: errorcheck\n  max_threads: 4\nname: demo\n")
	cs := control.NewConfigStore()
	require.NoError(t, cs.LoadYAML(path))

	snap := cs.GetSnapshot()
	assert.Equal(t, "errorcheck", snap["platform.mutex_kind"])
	assert.Equal(t, 4, snap["platform.max_threads"])
	assert.Equal(t, "demo", snap["name"])
}

func TestDecodeYAMLFileRejectsUnknownFields(t *testing.T) {
	type cfg struct {
		MaxThreads int `yaml:"max_threads"`
	}
	var c cfg
	require.NoError(t, control.DecodeYAMLFile(writeFile(t, "max_threads: 3\n"), &c))
	assert.Equal(t, 3, c.MaxThreads)

	err := control.DecodeYAMLFile(writeFile(t, "max_thread: 3\n"), &c)
	assert.Error(t, err)

	err = control.DecodeYAMLFile(filepath.Join(t.TempDir(), "missing.yaml"), &c)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMetricsRegistry(t *testing.T) {
	reg := control.NewMetricsRegistry()
	reg.Set("threads_live", int64(2))
	reg.Set("threads_live", int64(5))

	snap := reg.GetSnapshot()
	assert.Equal(t, int64(5), snap["threads_live"])
	snap["threads_live"] = 0
	assert.Equal(t, int64(5), reg.GetSnapshot()["threads_live"])
}

func TestDebugProbes(t *testing.T) {
	dp := control.NewDebugProbes()
	control.RegisterPlatformProbes(dp)
	dp.RegisterProbe("custom", func() any { return "ok" })

	state := dp.DumpState()
	assert.Equal(t, "ok", state["custom"])
	assert.Positive(t, state["platform.cpus"])
}

func TestConfigStoreRejectedUpdateLeavesStoreUnchanged(t *testing.T) {
	errNegative := errors.New("negative max_threads")
	cs := control.NewConfigStore()
	cs.OnValidate(func(cfg map[string]any) error {
		if n, ok := cfg["platform.max_threads"].(int); ok && n < 0 {
			return errNegative
		}
		return nil
	})
	reloads := 0
	cs.OnReload(func() { reloads++ })

	require.NoError(t, cs.SetConfig(map[string]any{"platform.max_threads": 4}))
	err := cs.SetConfig(map[string]any{"platform.max_threads": -5, "name": "bad"})
	assert.ErrorIs(t, err, errNegative)
	assert.Equal(t, 1, reloads)
	assert.Equal(t, map[string]any{"platform.max_threads": 4}, cs.GetSnapshot())

	// The rejected value is gone, so unrelated updates go through.
	require.NoError(t, cs.SetConfig(map[string]any{"name": "demo"}))
	assert.Equal(t, 2, reloads)
	assert.Equal(t, "demo", cs.GetSnapshot()["name"])

	err = cs.LoadYAML(writeFile(t, "platform:\n  max_threads: -1\n"))
	assert.ErrorIs(t, err, errNegative)
	v, _ := cs.Get("platform.max_threads")
	assert.Equal(t, 4, v)
}
