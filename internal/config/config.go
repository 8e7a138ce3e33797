// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime configuration for the Thai Customs MCP server.
// Every field is environment-driven so the server stays a zero-argument
// stdio process that MCP hosts can launch directly.
type Config struct {
	// OpenAI-compatible backend used for the Thai narrative. When APIKey is
	// empty the narrative generator runs in demo mode and never calls out.
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com"`
	OpenAIModel   string        `env:"OPENAI_MODEL"    envDefault:"gpt-4.1-mini"`
	OpenAITimeout time.Duration `env:"OPENAI_TIMEOUT"  envDefault:"60s"`

	// Tax rates applied when drafting ED01 declarations.
	DutyRate float64 `env:"DUTY_RATE" envDefault:"0.05"`
	VATRate  float64 `env:"VAT_RATE"  envDefault:"0.07"`

	// Reference search backend. IndexDBPath points at a prebuilt FTS index
	// (see cmd/indexer); when empty, the index is built in a temporary file
	// from the embedded reference documents at startup.
	SearchBackend string `env:"SEARCH_BACKEND" envDefault:"fulltext"`
	IndexDBPath   string `env:"INDEX_DB_PATH"`
	ChromaURL     string `env:"CHROMA_URL"`

	// DocumentRoot restricts where extract_document_text may read PDFs from.
	// Extraction is disabled while it is unset.
	DocumentRoot string `env:"DOCUMENT_ROOT"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DutyRate < 0 || cfg.DutyRate >= 1 {
		return nil, fmt.Errorf("DUTY_RATE must be in [0,1), got %v", cfg.DutyRate)
	}
	if cfg.VATRate < 0 || cfg.VATRate >= 1 {
		return nil, fmt.Errorf("VAT_RATE must be in [0,1), got %v", cfg.VATRate)
	}

	return &cfg, nil
}
