package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Extension != ".app" {
		t.Errorf("Extension = %q, want %q", cfg.Extension, ".app")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogDir != ".appsweep/logs" {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, ".appsweep/logs")
	}
	if cfg.DryRun != false {
		t.Errorf("DryRun = %v, want false", cfg.DryRun)
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled = false, want true")
	}
	if cfg.History.KeepRuns != 100 {
		t.Errorf("History.KeepRuns = %d, want 100", cfg.History.KeepRuns)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `extension: .bundle
log_level: debug
log_dir: /tmp/logs
dry_run: true
history:
  enabled: false
  keep_runs: 10
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Extension != ".bundle" {
		t.Errorf("Extension = %q, want %q", cfg.Extension, ".bundle")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogDir != "/tmp/logs" {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, "/tmp/logs")
	}
	if cfg.DryRun != true {
		t.Errorf("DryRun = %v, want true", cfg.DryRun)
	}
	if cfg.History.Enabled {
		t.Error("History.Enabled = true, want false")
	}
	if cfg.History.KeepRuns != 10 {
		t.Errorf("History.KeepRuns = %d, want 10", cfg.History.KeepRuns)
	}
}

// TestLoadConfigMissingFile verifies defaults are returned for a missing file
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil for missing file", err)
	}
	if cfg.Extension != ".app" {
		t.Errorf("Extension = %q, want default %q", cfg.Extension, ".app")
	}
}

// TestLoadConfigMalformedFile verifies malformed YAML is an error
func TestLoadConfigMalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("extension: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig() error = nil, want error for malformed YAML")
	}
}

// TestLoadConfigFromDir verifies the .appsweep/config.yaml convention
func TestLoadConfigFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	cfgDir := filepath.Join(tmpDir, ".appsweep")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("log_level: warn\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir() error = %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
}

// TestMergeWithFlags verifies only changed flags override config
func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()

	ext := ".bundle"
	dryRun := true
	cfg.MergeWithFlags(&ext, nil, nil, &dryRun, nil)

	if cfg.Extension != ".bundle" {
		t.Errorf("Extension = %q, want %q", cfg.Extension, ".bundle")
	}
	if !cfg.DryRun {
		t.Error("DryRun = false, want true")
	}
	// Untouched values stay at defaults.
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled = false, want true")
	}
}

// TestValidate covers validation rules and extension normalization
func TestValidate(t *testing.T) {
	t.Run("valid defaults", func(t *testing.T) {
		if err := DefaultConfig().Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	t.Run("empty extension", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Extension = ""
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() error = nil, want error")
		}
	})

	t.Run("extension without dot is normalized", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Extension = "app"
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if cfg.Extension != ".app" {
			t.Errorf("Extension = %q, want %q", cfg.Extension, ".app")
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LogLevel = "loud"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() error = nil, want error")
		}
	})

	t.Run("negative keep_runs", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.History.KeepRuns = -1
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() error = nil, want error")
		}
	})
}
