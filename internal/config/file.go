package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used exclusively for file unmarshalling. Pointer fields
// tell a missing key from a zero value.
type fileConfig struct {
	HashAlgorithm     *string `json:"hash_algorithm" yaml:"hash_algorithm"`
	SeedDemoData      *bool   `json:"seed_demo_data" yaml:"seed_demo_data"`
	LogLevel          *string `json:"log_level" yaml:"log_level"`
	LogFormat         *string `json:"log_format" yaml:"log_format"`
	MinPasswordLength *int    `json:"min_password_length" yaml:"min_password_length"`
	TopN              *int    `json:"top_n" yaml:"top_n"`
}

// parseFile overlays cfg with the keys present in the file at path. An empty
// path loads nothing.
func parseFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	if fc.HashAlgorithm != nil {
		cfg.HashAlgorithm = *fc.HashAlgorithm
	}
	if fc.SeedDemoData != nil {
		cfg.SeedDemoData = *fc.SeedDemoData
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
	if fc.MinPasswordLength != nil {
		cfg.MinPasswordLength = *fc.MinPasswordLength
	}
	if fc.TopN != nil {
		cfg.TopN = *fc.TopN
	}
	return nil
}
