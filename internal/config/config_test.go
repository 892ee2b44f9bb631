package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"OPENAI_API_KEY", "OPENAI_MODEL", "DOCS_DIR", "DISCOVERY_MODE", "PERSONA", "PORT", "CVTWIN_API_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.OpenAIModel != "gpt-5-mini-2025-08-07" {
		t.Errorf("unexpected default model: %q", cfg.OpenAIModel)
	}
	if cfg.DiscoveryMode != "all" {
		t.Errorf("expected default discovery mode %q, got %q", "all", cfg.DiscoveryMode)
	}
	if cfg.Persona != "casual" {
		t.Errorf("expected default persona %q, got %q", "casual", cfg.Persona)
	}
	if cfg.Port != "8090" {
		t.Errorf("expected default port %q, got %q", "8090", cfg.Port)
	}
	if cfg.DocsDir == "" {
		t.Error("expected a non-empty docs dir default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("DISCOVERY_MODE", "first")
	t.Setenv("PERSONA", "factual")
	t.Setenv("DOCS_DIR", "/srv/cv")

	cfg := Load()
	if cfg.OpenAIModel != "gpt-4o" {
		t.Errorf("expected model override, got %q", cfg.OpenAIModel)
	}
	if cfg.DiscoveryMode != "first" {
		t.Errorf("expected mode override, got %q", cfg.DiscoveryMode)
	}
	if cfg.Persona != "factual" {
		t.Errorf("expected persona override, got %q", cfg.Persona)
	}
	if cfg.DocsDir != "/srv/cv" {
		t.Errorf("expected docs dir override, got %q", cfg.DocsDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("config should validate, got %v", err)
	}
}

func TestValidate_RejectsUnknownModes(t *testing.T) {
	cfg := Config{DiscoveryMode: "best", Persona: "casual"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown discovery mode")
	}

	cfg = Config{DiscoveryMode: "all", Persona: "stern"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown persona")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\nCVTWIN_TEST_A=from-file\nCVTWIN_TEST_B=\"quoted\"\nnot a pair\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("CVTWIN_TEST_A", "")
	os.Unsetenv("CVTWIN_TEST_A")
	t.Setenv("CVTWIN_TEST_B", "from-env")

	LoadDotEnv(path)

	if got := os.Getenv("CVTWIN_TEST_A"); got != "from-file" {
		t.Errorf("expected file value, got %q", got)
	}
	// Real environment wins over file values.
	if got := os.Getenv("CVTWIN_TEST_B"); got != "from-env" {
		t.Errorf("expected env value to win, got %q", got)
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	// Must be a no-op, not a panic.
	LoadDotEnv(filepath.Join(t.TempDir(), "nope.env"))
}
