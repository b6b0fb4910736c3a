package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func defaultConfig() TestingConfig {
	return TestingConfig{
		URI:        "mongodb://localhost:27017",
		Database:   "benchmarking",
		Collection: "docvalidation",
		Mode:       ModeDuration,
		Threads:    10,
		DocCount:   10000,
		Duration:   30,
	}
}

// loadConfig reads a YAML config file on top of the defaults. An empty path
// returns the defaults.
func loadConfig(path string) (TestingConfig, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config, nil
}

func (c TestingConfig) validate() error {
	if c.Threads < 1 {
		return errors.New("threads must be at least 1")
	}
	switch c.Mode {
	case ModeDuration:
		if c.Duration < 1 {
			return errors.New("duration must be at least 1 second")
		}
	case ModeDocs:
		if c.DocCount < 1 {
			return errors.New("docs must be at least 1")
		}
	default:
		return fmt.Errorf("unknown mode %q, expected %q or %q", c.Mode, ModeDuration, ModeDocs)
	}
	if c.Database == "" || c.Collection == "" {
		return errors.New("database and collection must be set")
	}
	return nil
}
