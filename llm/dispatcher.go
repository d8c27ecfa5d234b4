package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vybdev/uconv/config"
	"github.com/vybdev/uconv/llm/internal/huggingface"
	"github.com/vybdev/uconv/llm/payload"
	"github.com/vybdev/uconv/logging"
)

// provider captures the common operations expected from any LLM backend.
// It is intentionally unexported so that the public surface of the llm
// package stays minimal while allowing internal dispatch based on user
// configuration.
type provider interface {
	Generate(ctx context.Context, model, prompt string, params payload.Parameters) (string, error)
}

type huggingFaceProvider struct {
	client *huggingface.Client
}

type unknownProvider struct {
	name string
}

func (p *huggingFaceProvider) Generate(ctx context.Context, model, prompt string, params payload.Parameters) (string, error) {
	return p.client.Generate(ctx, model, prompt, params)
}

// -----------------------------------------------------------------------------
//	Unknown Provider is a throwing stub
// -----------------------------------------------------------------------------

func (p *unknownProvider) Generate(_ context.Context, _, _ string, _ payload.Parameters) (string, error) {
	return "", fmt.Errorf("unknown provider %q", p.name)
}

// Doer sends HTTP requests; *http.Client satisfies it.
type Doer = huggingface.Doer

// Options tweak how a Dispatcher reaches its provider.
type Options struct {
	// APIKey is the credential sent to the provider.
	APIKey string
	// Debug forces request/response dumps regardless of configuration.
	Debug bool
	// HTTP replaces the HTTP client built from the configuration.
	HTTP Doer
}

// Dispatcher turns conversion requests into prompts and sends them to the
// configured provider.
type Dispatcher struct {
	provider provider
}

// NewDispatcher resolves cfg.Provider to one of the known providers.
func NewDispatcher(cfg *config.Config, opts Options) *Dispatcher {
	return &Dispatcher{provider: resolveProvider(cfg, opts)}
}

// Convert asks the model to explain request and returns its text.
func (d *Dispatcher) Convert(ctx context.Context, request *payload.ConversionRequest) (string, error) {
	prompt, err := payload.BuildPrompt(request)
	if err != nil {
		return "", err
	}

	entry := logging.Log.WithFields(logrus.Fields{
		"model":    request.Model,
		"category": request.Category,
	})
	if n, err := payload.CountTokens(prompt); err == nil {
		entry = entry.WithField("prompt_tokens", n)
	}
	entry.Debug("dispatching conversion request")

	return d.provider.Generate(ctx, request.Model, prompt, payload.DefaultParameters())
}

// resolveProvider resolves the value of cfg.Provider to one of the known providers.
// Returns a throwing stub if it can't map the value to any known provider.
func resolveProvider(cfg *config.Config, opts Options) provider {
	switch strings.ToLower(cfg.Provider) {
	case "huggingface":
		doer := opts.HTTP
		if doer == nil {
			doer = &http.Client{Timeout: cfg.RequestTimeout}
		}
		return &huggingFaceProvider{client: &huggingface.Client{
			HTTP:     doer,
			Endpoint: cfg.Endpoint,
			APIKey:   opts.APIKey,
			Debug:    opts.Debug || cfg.Logging.RequestResponseDebug,
		}}
	default:
		return &unknownProvider{name: cfg.Provider}
	}
}
