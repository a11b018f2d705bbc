// File: platform/control.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package platform

import (
	"github.com/momentics/hioload-platform/api"
)

// BindControl exposes the thread counters as debug probes of ctrl, vetoes
// config updates whose platform.* keys do not validate, and re-applies those
// keys after every accepted update.
func BindControl(ctrl api.Control) {
	for key := range Stats() {
		key := key
		ctrl.RegisterDebugProbe("platform."+key, func() any {
			return Stats()[key]
		})
	}
	ctrl.OnValidate(func(values map[string]any) error {
		_, err := ConfigFromMap(CurrentConfig(), values)
		return err
	})
	ctrl.OnReload(func() {
		cfg, err := ConfigFromMap(CurrentConfig(), ctrl.GetConfig())
		if err == nil {
			err = Configure(cfg)
		}
		if err != nil {
			logger.Printf("config reload rejected: %v", err)
			return
		}
		ctrl.SetMetric("platform.mutex_kind", cfg.MutexKind)
		ctrl.SetMetric("platform.max_threads", cfg.MaxThreads)
	})
}
