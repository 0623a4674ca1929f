// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Board   BoardConfig   `toml:"board"`
	LLM     LLMConfig     `toml:"llm"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
	Share   ShareConfig   `toml:"share"`
}

// BoardConfig holds timeline behavior settings.
type BoardConfig struct {
	DefaultProject string `toml:"default_project"` // project opened when none is named
	SaveDebounceMS int    `toml:"save_debounce_ms"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme    string `toml:"theme"`     // "mocha", "macchiato", "frappe", "latte"
	DayWidth int    `toml:"day_width"` // cells per calendar day on the timeline
}

// LLMConfig holds LLM provider settings for the import command.
type LLMConfig struct {
	Provider string `toml:"provider"` // "openai", "ollama", "lmstudio"
	Model    string `toml:"model"`    // e.g., "gpt-4o"
	BaseURL  string `toml:"base_url"` // e.g., "http://localhost:11434"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// ShareConfig holds snapshot link settings.
type ShareConfig struct {
	BaseURL string `toml:"base_url"` // prefix for generated snapshot links
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			DefaultProject: "default",
			SaveDebounceMS: 2000,
		},
		LLM: LLMConfig{
			Provider: "openai",
			Model:    "gpt-4o",
			BaseURL:  "http://localhost:11434",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme:    "frappe",
			DayWidth: 4,
		},
		Share: ShareConfig{
			BaseURL: "ganttboard://snapshot/",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ganttboard.db"
	}
	return filepath.Join(home, ".local", "share", "ganttboard", "ganttboard.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "ganttboard", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GANTTBOARD_PROJECT"); v != "" {
		cfg.Board.DefaultProject = v
	}
	if v := os.Getenv("GANTTBOARD_SAVE_DEBOUNCE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.Board.SaveDebounceMS = ms
		}
	}

	if v := os.Getenv("GANTTBOARD_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("GANTTBOARD_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("GANTTBOARD_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}

	if v := os.Getenv("GANTTBOARD_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("GANTTBOARD_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("GANTTBOARD_DAY_WIDTH"); v != "" {
		if w, err := strconv.Atoi(v); err == nil {
			cfg.UI.DayWidth = w
		}
	}

	if v := os.Getenv("GANTTBOARD_SHARE_BASE_URL"); v != "" {
		cfg.Share.BaseURL = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

var validProviders = map[string]bool{
	"openai":   true,
	"ollama":   true,
	"lmstudio": true,
}

var validThemes = map[string]bool{
	"mocha":     true,
	"macchiato": true,
	"frappe":    true,
	"latte":     true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Board.DefaultProject == "" {
		return errors.New("default_project must be set")
	}
	if c.Board.SaveDebounceMS < 0 {
		return errors.New("save_debounce_ms cannot be negative")
	}
	if !validProviders[strings.ToLower(c.LLM.Provider)] {
		return fmt.Errorf("invalid llm provider: %s", c.LLM.Provider)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	if c.UI.DayWidth < 1 || c.UI.DayWidth > 16 {
		return errors.New("day_width must be between 1 and 16")
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
