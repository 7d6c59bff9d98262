package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// CatalogConfig holds the swift.org catalog endpoints and fetch settings.
type CatalogConfig struct {
	ReleasesURL     string `yaml:"releases_url"`      // stable release index
	DevBaseURL      string `yaml:"dev_base_url"`      // per-branch snapshot index root
	DownloadBaseURL string `yaml:"download_base_url"` // artifact download root
	FetchTimeout    string `yaml:"fetch_timeout"`     // duration string, default "30s"
}

// ToolchainConfig holds the commands used to interrogate and manage the local
// Swift toolchain.
type ToolchainConfig struct {
	SwiftcCommand  string `yaml:"swiftc_command"`  // compiler binary, default "swiftc"
	SwiftCommand   string `yaml:"swift_command"`   // SDK management binary, default "swift"
	CommandTimeout string `yaml:"command_timeout"` // duration string, default "15s"
}

// LoggerConfig holds diagnostic logging settings.
type LoggerConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
	Output string `yaml:"output"` // stdout, stderr, or a file path
}

// Config is the top-level application configuration. A config file is
// optional; all fields have working defaults.
type Config struct {
	Catalog   CatalogConfig   `yaml:"catalog"`
	Toolchain ToolchainConfig `yaml:"toolchain"`
	Logger    LoggerConfig    `yaml:"logger"`
}

// Timeout returns the catalog fetch timeout, falling back to 30s when the
// configured value is empty or unparseable.
func (c CatalogConfig) Timeout() time.Duration {
	return parseDuration(c.FetchTimeout, 30*time.Second)
}

// Timeout returns the subprocess timeout, falling back to 15s when the
// configured value is empty or unparseable.
func (c ToolchainConfig) Timeout() time.Duration {
	return parseDuration(c.CommandTimeout, 15*time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// Defaults returns a Config pointing at the official swift.org endpoints.
func Defaults() *Config {
	return &Config{
		Catalog: CatalogConfig{
			ReleasesURL:     "https://www.swift.org/api/v1/install/releases.json",
			DevBaseURL:      "https://www.swift.org/api/v1/install/dev",
			DownloadBaseURL: "https://download.swift.org",
			FetchTimeout:    "30s",
		},
		Toolchain: ToolchainConfig{
			SwiftcCommand:  "swiftc",
			SwiftCommand:   "swift",
			CommandTimeout: "15s",
		},
		Logger: LoggerConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load reads the config file at path, applies environment overrides, and
// validates the result. A missing file is not an error: defaults plus
// environment overrides are returned.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			ApplyEnvOverrides(cfg)
			if err := Validate(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	ApplyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnvOverrides applies SWIFTWASM_* environment variables on top of cfg.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SWIFTWASM_RELEASES_URL"); v != "" {
		cfg.Catalog.ReleasesURL = v
	}
	if v := os.Getenv("SWIFTWASM_DEV_BASE_URL"); v != "" {
		cfg.Catalog.DevBaseURL = v
	}
	if v := os.Getenv("SWIFTWASM_DOWNLOAD_BASE_URL"); v != "" {
		cfg.Catalog.DownloadBaseURL = v
	}
	if v := os.Getenv("SWIFTWASM_FETCH_TIMEOUT"); v != "" {
		cfg.Catalog.FetchTimeout = v
	}
	if v := os.Getenv("SWIFTWASM_SWIFTC_COMMAND"); v != "" {
		cfg.Toolchain.SwiftcCommand = v
	}
	if v := os.Getenv("SWIFTWASM_SWIFT_COMMAND"); v != "" {
		cfg.Toolchain.SwiftCommand = v
	}
	if v := os.Getenv("SWIFTWASM_COMMAND_TIMEOUT"); v != "" {
		cfg.Toolchain.CommandTimeout = v
	}
	if v := os.Getenv("SWIFTWASM_LOGGER_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv("SWIFTWASM_LOGGER_FORMAT"); v != "" {
		cfg.Logger.Format = v
	}
	if v := os.Getenv("SWIFTWASM_LOGGER_OUTPUT"); v != "" {
		cfg.Logger.Output = v
	}
}
