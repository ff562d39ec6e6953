// Package config loads portal configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every knob the portal reads from the environment.
// Model ids default to the ones the hosted service currently serves;
// each feature can be repointed independently.
type Config struct {
	APIKey string `env:"GEMINI_API_KEY"`

	Workspace string `env:"NANOSPHERE_WORKSPACE" envDefault:"~/.nanosphere"`
	LogLevel  string `env:"NANOSPHERE_LOG_LEVEL" envDefault:"info"`

	Models ModelConfig

	// StreamInterval throttles streaming snapshot publishing to the view.
	StreamInterval time.Duration `env:"NANOSPHERE_STREAM_INTERVAL" envDefault:"300ms"`

	// Video generation is a long-running operation polled at PollInterval,
	// at most MaxPolls times before giving up.
	PollInterval time.Duration `env:"NANOSPHERE_VIDEO_POLL_INTERVAL" envDefault:"10s"`
	MaxPolls     int           `env:"NANOSPHERE_VIDEO_MAX_POLLS" envDefault:"60"`

	// Voice used by the live lounge and speech synthesis.
	Voice string `env:"NANOSPHERE_VOICE" envDefault:"Zephyr"`
}

// ModelConfig maps each portal feature to a model id.
type ModelConfig struct {
	Text      string `env:"NANOSPHERE_MODEL_TEXT" envDefault:"gemini-3-flash-preview"`
	ProText   string `env:"NANOSPHERE_MODEL_PRO_TEXT" envDefault:"gemini-3-pro-preview"`
	ImageEdit string `env:"NANOSPHERE_MODEL_IMAGE_EDIT" envDefault:"gemini-2.5-flash-image"`
	ImageGen  string `env:"NANOSPHERE_MODEL_IMAGE_GEN" envDefault:"imagen-4.0-generate-001"`
	Video     string `env:"NANOSPHERE_MODEL_VIDEO" envDefault:"veo-3.1-generate-preview"`
	Speech    string `env:"NANOSPHERE_MODEL_SPEECH" envDefault:"gemini-2.5-flash-preview-tts"`
	Live      string `env:"NANOSPHERE_MODEL_LIVE" envDefault:"gemini-2.5-flash-native-audio-preview-12-2025"`
	Embedding string `env:"NANOSPHERE_MODEL_EMBEDDING" envDefault:"gemini-embedding-001"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// WorkspacePath expands the configured workspace directory.
func (c *Config) WorkspacePath() string {
	ws := c.Workspace
	if len(ws) >= 2 && ws[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			ws = filepath.Join(home, ws[2:])
		}
	}
	return ws
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}
	if c.MaxPolls <= 0 {
		return fmt.Errorf("NANOSPHERE_VIDEO_MAX_POLLS must be positive")
	}
	return nil
}
