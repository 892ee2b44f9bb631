package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	// OpenAI completion
	OpenAIAPIKey string
	OpenAIModel  string

	// Document discovery
	DocsDir       string
	DiscoveryMode string

	// Prompt persona
	Persona string

	// HTTP surface
	Port   string
	APIKey string
}

func Load() Config {
	return Config{
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  envOr("OPENAI_MODEL", "gpt-5-mini-2025-08-07"),

		DocsDir:       envOr("DOCS_DIR", defaultDocsDir()),
		DiscoveryMode: envOr("DISCOVERY_MODE", "all"),

		Persona: envOr("PERSONA", "casual"),

		Port:   envOr("PORT", "8090"),
		APIKey: os.Getenv("CVTWIN_API_KEY"),
	}
}

// Validate checks what must hold at startup. The OpenAI key is deliberately
// not required here: its absence is a call-time error on the chat path.
func (c Config) Validate() error {
	switch c.DiscoveryMode {
	case "first", "all":
	default:
		return fmt.Errorf("DISCOVERY_MODE must be %q or %q, got %q", "first", "all", c.DiscoveryMode)
	}
	switch c.Persona {
	case "factual", "casual":
	default:
		return fmt.Errorf("PERSONA must be %q or %q, got %q", "factual", "casual", c.Persona)
	}
	return nil
}

// defaultDocsDir is the docs/ directory next to the running binary.
func defaultDocsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "docs"
	}
	return filepath.Join(filepath.Dir(exe), "docs")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
