package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Format != FormatText {
		t.Errorf("expected default format %q, got %q", FormatText, cfg.Output.Format)
	}
	if cfg.Output.Normalize {
		t.Error("expected normalize off by default")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "json format",
			modify:  func(c *Config) { c.Output.Format = FormatJSON },
			wantErr: false,
		},
		{
			name:    "unknown format",
			modify:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "empty format",
			modify:  func(c *Config) { c.Output.Format = "" },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
output:
  format: json
  normalize: true
log:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Output.Format != FormatJSON {
		t.Errorf("expected format json, got %s", cfg.Output.Format)
	}
	if !cfg.Output.Normalize {
		t.Error("expected normalize on")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Log.Level)
	}
}

func TestLoadFromFilePartialKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
log:
  level: warn
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Output.Format != FormatText {
		t.Errorf("expected default format preserved, got %s", cfg.Output.Format)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.Log.Level)
	}
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.Merge(&Config{
		Output: OutputConfig{Format: FormatJSON, Normalize: true},
	})

	if base.Output.Format != FormatJSON {
		t.Errorf("expected merged format json, got %s", base.Output.Format)
	}
	if !base.Output.Normalize {
		t.Error("expected merged normalize on")
	}
	if base.Log.Level != "info" {
		t.Errorf("expected untouched log level info, got %s", base.Log.Level)
	}

	base.Merge(nil) // no-op
	if base.Output.Format != FormatJSON {
		t.Error("nil merge should not reset fields")
	}
}

func TestSaveToFileRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Output.Format = FormatJSON
	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.Output.Format != FormatJSON {
		t.Errorf("round trip lost format, got %s", loaded.Output.Format)
	}
}
