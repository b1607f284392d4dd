// Package config loads homewhisper settings.
//
// Sources are applied in order, later ones winning: built-in defaults, the
// YAML file (~/.homewhisper/config.yaml), a .env file, HOMEWHISPER_*
// environment variables. Command-line flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	errs "github.com/felixgeelhaar/homewhisper/internal/errors"
	"github.com/felixgeelhaar/homewhisper/internal/log"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "HOMEWHISPER_"

// Config is the complete homewhisper configuration.
type Config struct {
	Store   StoreConfig   `json:"store" yaml:"store"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
	Output  OutputConfig  `json:"output" yaml:"output"`
	UI      UIConfig      `json:"ui" yaml:"ui"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Backend string `json:"backend" yaml:"backend"`   // "file", "sqlite", "memory"
	DataDir string `json:"data_dir" yaml:"data_dir"` // Default ~/.homewhisper/data
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`                   // "debug", "info", "warn", "error"
	Format string `json:"format" yaml:"format"`                 // "text", "json"
	File   string `json:"file,omitempty" yaml:"file,omitempty"` // Used while the TUI owns the terminal
}

// OutputConfig controls plain CLI output.
type OutputConfig struct {
	Format  string `json:"format" yaml:"format"` // "text", "json", "yaml"
	NoColor bool   `json:"no_color,omitempty" yaml:"no_color,omitempty"`
}

// UIConfig controls the terminal UI.
type UIConfig struct {
	DefaultArea string `json:"default_area,omitempty" yaml:"default_area,omitempty"`
	AltScreen   bool   `json:"alt_screen" yaml:"alt_screen"`
}

// LoadOptions tells Load where to look.
type LoadOptions struct {
	// Path is the YAML file. Empty uses DefaultPath.
	Path string
	// EnvFile is the .env file. Empty uses ".env" in the working directory.
	EnvFile string
	// Getenv reads the environment. Nil uses os.Getenv.
	Getenv func(string) string
}

// Dir returns the homewhisper home directory, honoring HOMEWHISPER_HOME.
func Dir() (string, error) {
	if dir := os.Getenv(EnvPrefix + "HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".homewhisper"), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	dataDir := "data"
	if dir, err := Dir(); err == nil {
		dataDir = filepath.Join(dir, "data")
	}
	return &Config{
		Store: StoreConfig{
			Backend: "file",
			DataDir: dataDir,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "text",
		},
		UI: UIConfig{
			DefaultArea: "westside",
			AltScreen:   true,
		},
	}
}

// Load builds the configuration from every source but flags.
// A missing YAML or .env file is not an error.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	path := opts.Path
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errs.NewConfigParseError(path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, errs.Wrap(errs.ErrCodeConfigRead, fmt.Sprintf("failed to read config file: %s", path), err)
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errs.Wrap(errs.ErrCodeConfigParse, fmt.Sprintf("failed to parse env file: %s", envFile), err)
	}

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	lookup := func(key string) (string, bool) {
		if v := getenv(EnvPrefix + key); v != "" {
			return v, true
		}
		v, ok := dotenv[EnvPrefix+key]
		return v, ok && v != ""
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	if getenv("NO_COLOR") != "" {
		cfg.Output.NoColor = true
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"STORE":        &c.Store.Backend,
		"DATA_DIR":     &c.Store.DataDir,
		"LOG_LEVEL":    &c.Logging.Level,
		"LOG_FORMAT":   &c.Logging.Format,
		"LOG_FILE":     &c.Logging.File,
		"FORMAT":       &c.Output.Format,
		"DEFAULT_AREA": &c.UI.DefaultArea,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"NO_COLOR":   &c.Output.NoColor,
		"ALT_SCREEN": &c.UI.AltScreen,
	}
	for key, dst := range bools {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errs.Wrap(errs.ErrCodeConfigParse, fmt.Sprintf("invalid boolean for %s%s", EnvPrefix, key), err)
		}
		*dst = b
	}
	return nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		allow []string
	}{
		{"store.backend", c.Store.Backend, []string{"file", "sqlite", "memory"}},
		{"logging.format", c.Logging.Format, []string{"text", "json"}},
		{"output.format", c.Output.Format, []string{"text", "json", "yaml"}},
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return errs.Wrap(errs.ErrCodeConfigParse, "invalid logging.level", err).
			WithSuggestion("Allowed values: " + strings.Join(log.LevelNames(), ", "))
	}
	for _, chk := range checks {
		if !contains(chk.allow, chk.value) {
			return errs.New(errs.ErrCodeConfigParse,
				fmt.Sprintf("invalid %s %q", chk.name, chk.value)).
				WithSuggestion("Allowed values: " + strings.Join(chk.allow, ", "))
		}
	}
	if c.Store.Backend != "memory" && c.Store.DataDir == "" {
		return errs.New(errs.ErrCodeConfigParse, "store.data_dir must be set")
	}
	return nil
}

// Save writes c as YAML to path, creating the directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
