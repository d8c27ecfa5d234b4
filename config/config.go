package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config captures user-level settings stored in .uconv/config.yaml.
//
// Example YAML:
//
//	provider: huggingface
//	models:
//	  - mistralai/Mistral-7B-Instruct-v0.2
//
// Zero-value Config is invalid – use Default() when no config file is
// found. Unknown keys are rejected when the file *is* present so typos
// surface early.
type Config struct {
	Provider       string        `yaml:"provider"`
	Endpoint       string        `yaml:"endpoint"`
	Models         []string      `yaml:"models"`
	HistorySize    int           `yaml:"history-size"`
	RequestTimeout time.Duration `yaml:"request-timeout"`
	Logging        `yaml:"logging"`
}

// Logging captures logging-specific settings.
type Logging struct {
	Level                string `yaml:"level"`
	RequestResponseDebug bool   `yaml:"request-response-debug"`
}

const (
	// defaultProvider must always map to a known provider in the llm
	// dispatcher.
	defaultProvider = "huggingface"

	// DefaultEndpoint is the hosted inference API the models are served from.
	DefaultEndpoint = "https://api-inference.huggingface.co"

	defaultHistorySize = 5

	// APIKeyEnv names the environment variable holding the bearer token.
	APIKeyEnv = "HUGGINGFACE_API_KEY"

	relPath = ".uconv/config.yaml"
)

var defaultModels = []string{
	"mistralai/Mistral-7B-Instruct-v0.2",
	"meta-llama/Llama-2-7b-chat-hf",
}

// Default returns a Config populated with hard-coded defaults. It should
// be used whenever .uconv/config.yaml is missing.
func Default() *Config {
	return &Config{
		Provider:    defaultProvider,
		Endpoint:    DefaultEndpoint,
		Models:      append([]string(nil), defaultModels...),
		HistorySize: defaultHistorySize,
		Logging: Logging{
			Level:                "info",
			RequestResponseDebug: false,
		},
	}
}

// Load reads .uconv/config.yaml located under root. When the file does not
// exist the function returns Default() with a nil error so the caller can
// proceed transparently. Any other I/O or unmarshalling error is
// propagated.
func Load(root string) (*Config, error) {
	if root == "" {
		return nil, fmt.Errorf("root must not be empty")
	}
	return LoadFS(os.DirFS(root))
}

// LoadFS performs the same operation as Load but works directly on an
// fs.FS. This facilitates unit-testing with fstest.MapFS.
func LoadFS(fsys fs.FS) (*Config, error) {
	data, err := fs.ReadFile(fsys, relPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", relPath, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", relPath, err)
	}

	if err := cfg.fill(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", relPath, err)
	}
	return &cfg, nil
}

// fill back-fills empty fields with their defaults and rejects values that
// cannot be defaulted.
func (c *Config) fill() error {
	def := Default()
	if c.Provider == "" {
		c.Provider = def.Provider
	}
	if c.Endpoint == "" {
		c.Endpoint = def.Endpoint
	}
	if len(c.Models) == 0 {
		c.Models = def.Models
	}
	if c.HistorySize == 0 {
		c.HistorySize = def.HistorySize
	}
	if c.HistorySize < 0 {
		return fmt.Errorf("history-size must be positive, got %d", c.HistorySize)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request-timeout must not be negative, got %s", c.RequestTimeout)
	}
	seen := make(map[string]struct{}, len(c.Models))
	for _, m := range c.Models {
		if m == "" {
			return fmt.Errorf("models must not contain empty entries")
		}
		if _, dup := seen[m]; dup {
			return fmt.Errorf("duplicate model %q", m)
		}
		seen[m] = struct{}{}
	}
	return nil
}

// LoadAPIKey loads dir/.env (if present) into the process environment and
// returns the value of HUGGINGFACE_API_KEY. Variables already set in the
// environment win over the file. An empty result is not an error: callers
// warn and carry on, requests will simply be rejected downstream.
//
// When .env exists but cannot be loaded the error is returned together with
// whatever key the environment already holds.
func LoadAPIKey(dir string) (string, error) {
	envFile := filepath.Join(dir, ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return os.Getenv(APIKeyEnv), fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	return os.Getenv(APIKeyEnv), nil
}
