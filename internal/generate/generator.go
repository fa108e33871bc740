// Package generate provides a pluggable client for hosted text-generation
// models plus the prompt builders for the screenwriting tools.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrTimeout reports that a generation call exceeded its deadline.
var ErrTimeout = errors.New("generation timed out")

// Generator produces text from a prompt. Calls block until the model
// responds or the context ends; results are not deterministic between
// calls with identical prompts. Implementations do not retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds generator settings.
type Config struct {
	Provider string // "openai" or "mock"
	Model    string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration // per-call bound; 0 means DefaultTimeout
}

// DefaultTimeout bounds a single generation call.
const DefaultTimeout = 60 * time.Second

// New creates a generator from config.
func New(cfg Config) (Generator, error) {
	switch cfg.Provider {
	case "", "openai":
		return NewOpenAIClient(cfg)
	case "mock":
		return Mock{}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// NewFromEnv creates a generator from environment variables.
// SCRIPTAI_PROVIDER: "openai" (default) | "mock"
// SCRIPTAI_MODEL: model name (default gpt-4o-mini)
// SCRIPTAI_BASE_URL: OpenAI-compatible endpoint override
// OPENAI_API_KEY: API key for the openai provider
func NewFromEnv(timeout time.Duration) (Generator, error) {
	return New(Config{
		Provider: os.Getenv("SCRIPTAI_PROVIDER"),
		Model:    os.Getenv("SCRIPTAI_MODEL"),
		APIKey:   os.Getenv("OPENAI_API_KEY"),
		BaseURL:  os.Getenv("SCRIPTAI_BASE_URL"),
		Timeout:  timeout,
	})
}
