package config

import (
	"fmt"
	"strings"
)

// ValidateRaw checks semantic constraints of a merged RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	if cfg.Version != CurrentVersion {
		errs = append(errs, fmt.Sprintf("version must be %q, got %q", CurrentVersion, cfg.Version))
	}

	if cfg.Log == nil {
		errs = append(errs, "log section is required")
	} else {
		if strings.TrimSpace(cfg.Log.Output) == "" {
			errs = append(errs, "log.output must be discard, stderr or a file path")
		}
		if cfg.Log.Debug == nil {
			errs = append(errs, "log.debug must be set")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
