// ABOUTME: Configuration for wordcloud defaults, renderer and logging.
// ABOUTME: Handles XDG config paths, .env loading and WORDCLOUD_* overrides.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/harper/wordcloud/internal/models"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WORDCLOUD_"

// Config holds user defaults applied before command line flags.
type Config struct {
	// Options are the generation defaults.
	Options models.Options `yaml:"options"`

	// Renderer picks the PNG rasterizer: gg (default) or browser.
	Renderer string `yaml:"renderer" validate:"oneof=gg browser"`

	// BrowserPath points at a Chrome binary for the browser renderer.
	BrowserPath string `yaml:"browser_path,omitempty"`

	// Seed fixes the random source; 0 picks a new seed per run.
	Seed uint64 `yaml:"seed,omitempty"`

	// OutputDir is where export writes files (default: current directory).
	OutputDir string `yaml:"output_dir,omitempty"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls logger level and format.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json logfmt"`
}

var validate = validator.New()

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Options:  models.DefaultOptions(),
		Renderer: "gg",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "wordcloud")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LoadConfig loads configuration from disk, applies environment overrides
// and validates the result. Returns defaults if no file exists.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(ConfigPath())
}

// LoadConfigFrom is LoadConfig for an explicit path.
func LoadConfigFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes configuration to disk.
func SaveConfig(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(), data, 0600)
}

// ConfigExists returns true if a config file exists.
func ConfigExists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// LoadEnvFile loads a .env file into the process environment. Variables
// already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate checks value ranges and enums.
func (c *Config) Validate() error {
	return check(c, "invalid config")
}

// ValidateOptions checks generation options merged from flags or tool input.
func ValidateOptions(o models.Options) error {
	return check(o, "invalid options")
}

func check(v any, prefix string) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%s: %s", prefix, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%s: %w", prefix, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	str := map[string]*string{
		"COLOR_SCHEME": &c.Options.ColorScheme,
		"FONT_FAMILY":  &c.Options.FontFamily,
		"BACKGROUND":   &c.Options.Background,
		"RENDERER":     &c.Renderer,
		"BROWSER_PATH": &c.BrowserPath,
		"OUTPUT_DIR":   &c.OutputDir,
		"LOG_LEVEL":    &c.Log.Level,
		"LOG_FORMAT":   &c.Log.Format,
	}
	for key, dst := range str {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}

	floats := map[string]*float64{
		"MIN_FONT_SIZE": &c.Options.MinFontSize,
		"MAX_FONT_SIZE": &c.Options.MaxFontSize,
	}
	for key, dst := range floats {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
			}
			*dst = f
		}
	}

	ints := map[string]*int{
		"MIN_WORD_LENGTH": &c.Options.MinWordLength,
		"WIDTH":           &c.Options.Width,
	}
	for key, dst := range ints {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
			}
			*dst = n
		}
	}

	bools := map[string]*bool{
		"EXCLUDE_STOPWORDS": &c.Options.ExcludeStopwords,
		"WORD_ROTATION":     &c.Options.WordRotation,
		"EXCLUDE_NUMBERS":   &c.Options.ExcludeNumbers,
		"HOVER":             &c.Options.ShowFrequencyOnHover,
	}
	for key, dst := range bools {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
			}
			*dst = b
		}
	}

	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = seed
	}

	return nil
}
