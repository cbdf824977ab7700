package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileEnv names the variable that points at an optional YAML file.
const ConfigFileEnv = "CONFIG_FILE"

// ApplyFile reads a flat YAML mapping of environment variable names to
// scalar values and exports every key that is not already set. Real
// environment variables therefore win over the file, and the file wins over
// struct defaults. It returns the keys it exported.
func ApplyFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var values map[string]yaml.Node
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	var applied []string
	for key, node := range values {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("config file %s: %s must be a scalar", path, key)
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, node.Value); err != nil {
			return nil, fmt.Errorf("export %s: %w", key, err)
		}
		applied = append(applied, key)
	}
	return applied, nil
}
