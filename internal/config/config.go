package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the reviewassist configuration.
type Config struct {
	Provider       string  `json:"provider"`
	Model          string  `json:"model"`
	Format         string  `json:"format"`
	FailUnder      int     `json:"failUnder"`
	MaxTokens      int     `json:"maxTokens"`
	Temperature    float64 `json:"temperature,omitempty"`
	GuidelinesFile string  `json:"guidelinesFile,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Provider:  "gemini",
		Model:     "gemini-2.5-flash",
		Format:    "text",
		FailUnder: 0,
		MaxTokens: 8192,
	}
}

// ConfigDir returns the platform-appropriate config directory.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "reviewassist"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "reviewassist"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "reviewassist"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "reviewassist"), nil
	default:
		return filepath.Join(home, ".config", "reviewassist"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and
// nil error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- .env
// <- env <- overrides. The overrides map comes from CLI flags (only
// non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.FailUnder > 0 {
		dst.FailUnder = src.FailUnder
	}
	if src.MaxTokens > 0 {
		dst.MaxTokens = src.MaxTokens
	}
	if src.Temperature > 0 {
		dst.Temperature = src.Temperature
	}
	if src.GuidelinesFile != "" {
		dst.GuidelinesFile = src.GuidelinesFile
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("REVIEWASSIST_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("REVIEWASSIST_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("REVIEWASSIST_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("REVIEWASSIST_FAIL_UNDER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FailUnder = n
		}
	}
	if v := os.Getenv("REVIEWASSIST_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("REVIEWASSIST_GUIDELINES"); v != "" {
		cfg.GuidelinesFile = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["provider"]; ok && v != "" {
		cfg.Provider = v
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["failUnder"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FailUnder = n
		}
	}
	if v, ok := overrides["maxTokens"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxTokens = n
		}
	}
	if v, ok := overrides["temperature"]; ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Temperature = f
		}
	}
	if v, ok := overrides["guidelinesFile"]; ok && v != "" {
		cfg.GuidelinesFile = v
	}
}

// SetField sets a single config field by key name. Returns an error if
// the key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "format":
		cfg.Format = value
	case "failUnder":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("failUnder must be an integer: %w", err)
		}
		cfg.FailUnder = n
	case "maxTokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxTokens must be an integer: %w", err)
		}
		cfg.MaxTokens = n
	case "temperature":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("temperature must be a number: %w", err)
		}
		cfg.Temperature = f
	case "guidelinesFile":
		cfg.GuidelinesFile = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
