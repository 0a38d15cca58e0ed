package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Model == "" {
		t.Error("default model should be set")
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
	if cfg.MaxTokens <= 0 {
		t.Error("default max tokens should be positive")
	}
}

func TestLoad_FileMerge(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(t.TempDir())

	cfgDir := filepath.Join(dir, "reviewassist")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `{"provider":"anthropic","model":"claude-sonnet-4-20250514","failUnder":70}`
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Model != "claude-sonnet-4-20250514" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.FailUnder != 70 {
		t.Errorf("FailUnder = %d, want 70", cfg.FailUnder)
	}
	// Unset file fields keep defaults
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want default text", cfg.Format)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(t.TempDir())

	cfgDir := filepath.Join(dir, "reviewassist")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(`{"provider":"anthropic"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("REVIEWASSIST_PROVIDER", "openai")
	t.Setenv("REVIEWASSIST_FAIL_UNDER", "80")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai (env wins over file)", cfg.Provider)
	}
	if cfg.FailUnder != 80 {
		t.Errorf("FailUnder = %d, want 80", cfg.FailUnder)
	}
}

func TestLoad_OverridesWin(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("REVIEWASSIST_PROVIDER", "openai")
	t.Chdir(t.TempDir())

	cfg, err := Load(map[string]string{"provider": "ollama", "model": "llama3.3"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Provider != "ollama" {
		t.Errorf("Provider = %q, want ollama (flag wins over env)", cfg.Provider)
	}
	if cfg.Model != "llama3.3" {
		t.Errorf("Model = %q, want llama3.3", cfg.Model)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("REVIEWASSIST_MODEL=gemini-2.5-pro\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("REVIEWASSIST_MODEL") })

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q, want value from .env", cfg.Model)
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()

	if err := SetField(&cfg, "provider", "openai"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q", cfg.Provider)
	}

	if err := SetField(&cfg, "failUnder", "75"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if cfg.FailUnder != 75 {
		t.Errorf("FailUnder = %d", cfg.FailUnder)
	}

	if err := SetField(&cfg, "failUnder", "not-a-number"); err == nil {
		t.Error("expected error for non-integer failUnder")
	}
	if err := SetField(&cfg, "nonsense", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
}
