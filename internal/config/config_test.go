// ABOUTME: Tests for configuration management
// ABOUTME: Verifies config loading, saving, validation and environment overrides

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if got := ConfigDir(); got != "/tmp/xdg/wordcloud" {
		t.Errorf("ConfigDir() = %s, want /tmp/xdg/wordcloud", got)
	}
	if got := ConfigPath(); got != "/tmp/xdg/wordcloud/config.yaml" {
		t.Errorf("ConfigPath() = %s", got)
	}
}

func TestConfigPathDefaultsToHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	path := ConfigPath()
	if !filepath.IsAbs(path) {
		t.Errorf("ConfigPath should return absolute path, got %s", path)
	}
	if !strings.HasSuffix(path, filepath.Join(".config", "wordcloud", "config.yaml")) {
		t.Errorf("unexpected path %s", path)
	}
}

func TestLoadConfigMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Options.MaxFontSize != 72 {
		t.Errorf("MaxFontSize = %v, want 72", cfg.Options.MaxFontSize)
	}
	if cfg.Renderer != "gg" {
		t.Errorf("Renderer = %s, want gg", cfg.Renderer)
	}
	if ConfigExists() {
		t.Error("ConfigExists should be false before saving")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Options.ColorScheme = "warm"
	cfg.Options.WordRotation = true
	cfg.Seed = 7
	cfg.Log.Level = "debug"

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	if !ConfigExists() {
		t.Fatal("ConfigExists should be true after saving")
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Options.ColorScheme != "warm" || !loaded.Options.WordRotation {
		t.Errorf("options not round-tripped: %+v", loaded.Options)
	}
	if loaded.Seed != 7 {
		t.Errorf("Seed = %d, want 7", loaded.Seed)
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("Log.Level = %s, want debug", loaded.Log.Level)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("options:\n  color_scheme: cool\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom failed: %v", err)
	}
	if cfg.Options.ColorScheme != "cool" {
		t.Errorf("ColorScheme = %s, want cool", cfg.Options.ColorScheme)
	}
	if cfg.Options.MinFontSize != 12 {
		t.Errorf("MinFontSize = %v, want default 12", cfg.Options.MinFontSize)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %s, want default text", cfg.Log.Format)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WORDCLOUD_COLOR_SCHEME", "grayscale")
	t.Setenv("WORDCLOUD_MAX_FONT_SIZE", "96")
	t.Setenv("WORDCLOUD_WIDTH", "1024")
	t.Setenv("WORDCLOUD_WORD_ROTATION", "true")
	t.Setenv("WORDCLOUD_SEED", "99")
	t.Setenv("WORDCLOUD_LOG_FORMAT", "json")

	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfigFrom failed: %v", err)
	}
	if cfg.Options.ColorScheme != "grayscale" {
		t.Errorf("ColorScheme = %s", cfg.Options.ColorScheme)
	}
	if cfg.Options.MaxFontSize != 96 {
		t.Errorf("MaxFontSize = %v", cfg.Options.MaxFontSize)
	}
	if cfg.Options.Width != 1024 {
		t.Errorf("Width = %d", cfg.Options.Width)
	}
	if !cfg.Options.WordRotation {
		t.Error("WordRotation should be true")
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %s", cfg.Log.Format)
	}
}

func TestEnvOverrideParseError(t *testing.T) {
	t.Setenv("WORDCLOUD_MIN_FONT_SIZE", "tiny")

	_, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "WORDCLOUD_MIN_FONT_SIZE") {
		t.Errorf("expected parse error naming the variable, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "font too large", mutate: func(c *Config) { c.Options.MaxFontSize = 900 }, wantErr: "MaxFontSize"},
		{name: "font zero", mutate: func(c *Config) { c.Options.MinFontSize = 0 }, wantErr: "MinFontSize"},
		{name: "narrow surface", mutate: func(c *Config) { c.Options.Width = 50 }, wantErr: "Width"},
		{name: "unknown renderer", mutate: func(c *Config) { c.Renderer = "canvas" }, wantErr: "Renderer"},
		{name: "unknown log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "Level"},
		{name: "unknown log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "Format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %s", err, tt.wantErr)
			}
		})
	}
}

func TestSaveConfigRejectsInvalid(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Renderer = "nope"
	if err := SaveConfig(cfg); err == nil {
		t.Error("expected SaveConfig to reject invalid config")
	}
	if ConfigExists() {
		t.Error("invalid config should not be written")
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	if err := LoadEnvFile(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing file should not error: %v", err)
	}

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("WORDCLOUD_RENDERER=browser\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WORDCLOUD_RENDERER", "")
	os.Unsetenv("WORDCLOUD_RENDERER")

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile failed: %v", err)
	}
	if got := os.Getenv("WORDCLOUD_RENDERER"); got != "browser" {
		t.Errorf("WORDCLOUD_RENDERER = %q, want browser", got)
	}
}

func TestValidateOptions(t *testing.T) {
	opts := DefaultConfig().Options
	if err := ValidateOptions(opts); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	opts.Width = 5
	err := ValidateOptions(opts)
	if err == nil || !strings.Contains(err.Error(), "Options.Width") {
		t.Errorf("ValidateOptions() = %v, want width error", err)
	}
}
