package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment keys read on top of the YAML file.
const (
	EnvConfigPath = "THREEPT_CONFIG"
	EnvLogOutput  = "THREEPT_LOG_OUTPUT"
	EnvLogDebug   = "THREEPT_LOG_DEBUG"

	DefaultPath    = "threept.yaml"
	CurrentVersion = "1"
)

// Defaults returns the built-in configuration.
func Defaults() RawConfig {
	debug := false
	return RawConfig{
		Version: CurrentVersion,
		Log:     &LogConfig{Output: OutputDiscard, Debug: &debug},
	}
}

// Load merges defaults <- YAML file <- environment and validates the result.
// path "" means $THREEPT_CONFIG, then DefaultPath. A missing file is not an error.
func Load(path string) (Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultPath
	}

	fileCfg, found, err := readYAML(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	envCfg, err := fromEnv()
	if err != nil {
		return Config{}, err
	}

	merged := mergeRaw(Defaults(), fileCfg)
	merged = mergeRaw(merged, envCfg)
	if err := ValidateRaw(merged); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Version:   merged.Version,
		LogOutput: merged.Log.Output,
		LogDebug:  *merged.Log.Debug,
		Notes:     merged.Notes,
	}
	if found {
		cfg.Source = path
	}
	return cfg, nil
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, bool, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, false, nil
		}
		return RawConfig{}, false, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, false, err
	}
	return cfg, true, nil
}

// fromEnv builds an override layer from THREEPT_* variables.
func fromEnv() (RawConfig, error) {
	var cfg RawConfig
	output := os.Getenv(EnvLogOutput)
	debugStr := os.Getenv(EnvLogDebug)
	if output == "" && debugStr == "" {
		return cfg, nil
	}
	cfg.Log = &LogConfig{Output: output}
	if debugStr != "" {
		debug, err := strconv.ParseBool(debugStr)
		if err != nil {
			return RawConfig{}, fmt.Errorf("%s: %w", EnvLogDebug, err)
		}
		cfg.Log.Debug = &debug
	}
	return cfg, nil
}

// mergeRaw returns a with every field set in b overriding it.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a
	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	switch {
	case out.Log == nil && b.Log != nil:
		c := *b.Log
		out.Log = &c
	case out.Log != nil && b.Log != nil:
		c := *out.Log
		if b.Log.Output != "" {
			c.Output = b.Log.Output
		}
		if b.Log.Debug != nil {
			c.Debug = b.Log.Debug
		}
		out.Log = &c
	}
	return out
}
