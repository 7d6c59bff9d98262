package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError accumulates config validation errors.
type ValidationError struct {
	Errors []string
}

func (v *ValidationError) Error() string {
	return "config validation failed:\n  - " + strings.Join(v.Errors, "\n  - ")
}

// HasErrors reports whether any validation errors have been recorded.
func (v *ValidationError) HasErrors() bool {
	return len(v.Errors) > 0
}

// Add records a formatted validation error.
func (v *ValidationError) Add(format string, args ...interface{}) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

// Validate checks cfg for structural correctness. It returns a
// *ValidationError when one or more problems are found, allowing callers to
// inspect all issues at once.
func Validate(cfg *Config) error {
	ve := &ValidationError{}
	validateCatalog(cfg, ve)
	validateToolchain(cfg, ve)
	validateLogger(cfg, ve)
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func validateCatalog(cfg *Config, ve *ValidationError) {
	checkURL := func(field, value string) {
		if value == "" {
			ve.Add("catalog.%s must not be empty", field)
			return
		}
		u, err := url.Parse(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			ve.Add("catalog.%s is not a valid URL: %q", field, value)
		}
	}
	checkURL("releases_url", cfg.Catalog.ReleasesURL)
	checkURL("dev_base_url", cfg.Catalog.DevBaseURL)
	checkURL("download_base_url", cfg.Catalog.DownloadBaseURL)
}

func validateToolchain(cfg *Config, ve *ValidationError) {
	if cfg.Toolchain.SwiftcCommand == "" {
		ve.Add("toolchain.swiftc_command must not be empty")
	}
	if cfg.Toolchain.SwiftCommand == "" {
		ve.Add("toolchain.swift_command must not be empty")
	}
}

var validLogLevels = map[string]bool{
	"":        true,
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

func validateLogger(cfg *Config, ve *ValidationError) {
	if !validLogLevels[strings.ToLower(cfg.Logger.Level)] {
		ve.Add("logger.level must be one of: debug, info, warn, error (got %q)", cfg.Logger.Level)
	}
	switch strings.ToLower(cfg.Logger.Format) {
	case "", "text", "json":
	default:
		ve.Add("logger.format must be text or json (got %q)", cfg.Logger.Format)
	}
}
