// control/yaml.go
// Author: momentics <momentics@gmail.com>
//
// YAML configuration files.

package control

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DecodeYAMLFile reads path and decodes it into out. Unknown keys are an error.
func DecodeYAMLFile(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("control: open config: %w", err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("control: decode %s: %w", path, err)
	}
	return nil
}

// ReadYAMLMap reads a YAML mapping and flattens nested mappings into dotted keys.
func ReadYAMLMap(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("control: read config: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("control: decode %s: %w", path, err)
	}
	out := make(map[string]any)
	flatten("", raw, out)
	return out, nil
}

func flatten(prefix string, in map[string]any, out map[string]any) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}
