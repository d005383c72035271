package app

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/quaycode/stockroom/pkg/errors"
	"github.com/quaycode/stockroom/pkg/inventory"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Verify defaults are set
	// Note: LogLevel may be empty (triggers precedence logic in logger.go)
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.DataPath == "" {
		t.Error("DataPath not set to default")
	}
}

// TestLoadConfig_DataPathDefault verifies the data path falls back to the
// package default when nothing else sets it.
func TestLoadConfig_DataPathDefault(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.DataPath != inventory.DefaultPath {
		t.Errorf("DataPath = %s, want %s", config.DataPath, inventory.DefaultPath)
	}
}

// TestLoadConfig_EnvironmentVariables verifies environment variable loading.
func TestLoadConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("STOCKROOM_DATA", "/tmp/shop.yaml")
	t.Setenv("STOCKROOM_FORMAT", "json")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.DataPath != "/tmp/shop.yaml" {
		t.Errorf("DataPath = %s, want /tmp/shop.yaml", config.DataPath)
	}
	if config.Format != "json" {
		t.Errorf("Format = %s, want json", config.Format)
	}
}

// TestLoadConfig_ExplicitFileMissing verifies a config file named
// explicitly must be readable, while the default search locations
// stay optional.
func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	t.Setenv("STOCKROOM_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig() should fail for an explicit config file that does not exist")
	}

	var cfgErr *errors.ConfigError
	if !stderrors.As(err, &cfgErr) {
		t.Errorf("error = %T, want *errors.ConfigError", err)
	}
}

// TestConfig_UpdateFromFlags verifies flag values take precedence.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{
		Format:   "yaml",
		LogLevel: "warn",
		DataPath: "shop.yaml",
	}

	config.UpdateFromFlags(true, false, true, "json", "debug", "/tmp/other.yaml")

	if !config.Verbose {
		t.Error("Verbose flag not applied")
	}
	if config.Quiet {
		t.Error("Quiet flag should remain false")
	}
	if !config.NoColor {
		t.Error("NoColor flag not applied")
	}
	if config.Format != "json" {
		t.Errorf("Format = %s, want json", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}
	if config.DataPath != "/tmp/other.yaml" {
		t.Errorf("DataPath = %s, want /tmp/other.yaml", config.DataPath)
	}
}

// TestConfig_UpdateFromFlags_EmptyKeepsExisting verifies unset string
// flags do not clobber values from the environment or config file.
func TestConfig_UpdateFromFlags_EmptyKeepsExisting(t *testing.T) {
	config := &Config{
		Format:   "yaml",
		LogLevel: "warn",
		DataPath: "shop.yaml",
	}

	config.UpdateFromFlags(false, false, false, "", "", "")

	if config.Format != "yaml" {
		t.Errorf("Format = %s, want yaml", config.Format)
	}
	if config.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn", config.LogLevel)
	}
	if config.DataPath != "shop.yaml" {
		t.Errorf("DataPath = %s, want shop.yaml", config.DataPath)
	}
}
