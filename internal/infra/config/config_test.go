package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, Validate(Defaults()))
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https://www.swift.org/api/v1/install/releases.json", cfg.Catalog.ReleasesURL)
	assert.Equal(t, "swiftc", cfg.Toolchain.SwiftcCommand)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swiftwasm.yaml")
	data := `catalog:
  releases_url: https://mirror.example.com/releases.json
  fetch_timeout: 5s
toolchain:
  swiftc_command: /opt/swift/bin/swiftc
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.example.com/releases.json", cfg.Catalog.ReleasesURL)
	assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout())
	assert.Equal(t, "/opt/swift/bin/swiftc", cfg.Toolchain.SwiftcCommand)
	// Untouched fields keep their defaults.
	assert.Equal(t, "https://download.swift.org", cfg.Catalog.DownloadBaseURL)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swiftwasm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: [not a mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SWIFTWASM_RELEASES_URL", "https://env.example.com/releases.json")
	t.Setenv("SWIFTWASM_SWIFTC_COMMAND", "swiftc-6.2")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/releases.json", cfg.Catalog.ReleasesURL)
	assert.Equal(t, "swiftc-6.2", cfg.Toolchain.SwiftcCommand)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Defaults()
	cfg.Catalog.ReleasesURL = "not a url"
	cfg.Toolchain.SwiftCommand = ""
	cfg.Logger.Level = "verbose"

	err := Validate(cfg)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, ve.Errors, 3)
}

func TestTimeoutFallbacks(t *testing.T) {
	assert.Equal(t, 30*time.Second, CatalogConfig{}.Timeout())
	assert.Equal(t, 30*time.Second, CatalogConfig{FetchTimeout: "garbage"}.Timeout())
	assert.Equal(t, 15*time.Second, ToolchainConfig{CommandTimeout: "-1s"}.Timeout())
	assert.Equal(t, time.Minute, ToolchainConfig{CommandTimeout: "1m"}.Timeout())
}
