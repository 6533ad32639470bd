package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".webboost"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadConfigFile loads site configurations and weight overrides from a
// YAML file. If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error based on whether the config file path
// was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if cf.Sites == nil {
		cf.Sites = make(map[string]SiteConfig)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .webboost in the current directory
// 3. Look for .webboost in the user's home directory
//
// Returns the path to the configuration file if found, or "" if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// ApplyWeights merges the file's weight overrides into the given table,
// returning a new table. Unknown criterion names are ignored so a typo
// in the config file cannot silently add a phantom criterion.
func (cf *File) ApplyWeights(base model.WeightTable) model.WeightTable {
	merged := make(model.WeightTable, len(base))
	for c, w := range base {
		merged[c] = w
	}
	for name, w := range cf.Weights {
		c := model.Criterion(name)
		if _, known := merged[c]; known {
			merged[c] = w
		}
	}
	return merged
}
