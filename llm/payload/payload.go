package payload

import (
	"embed"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/cbroglie/mustache"
	"github.com/tiktoken-go/tokenizer"
)

//go:embed embedded/prompts/*
var embedded embed.FS

const promptTemplate = "embedded/prompts/conversion.txt.mustache"

// Generation parameters sent with every conversion request.
const (
	Temperature    = 0.7
	MaxNewTokens   = 150
	ReturnFullText = false
)

// ---------------------
//  Data abstractions
// ---------------------

// ConversionRequest is a finalized (value, from, to, category) tuple plus the
// model that should answer it.
type ConversionRequest struct {
	Value    float64
	From     string
	To       string
	Category string
	Model    string
}

// Query is the short "value from to to" form used in history entries.
func (r *ConversionRequest) Query() string {
	return fmt.Sprintf("%s %s to %s", FormatValue(r.Value), r.From, r.To)
}

// Validate reports whether the request can be sent.
func (r *ConversionRequest) Validate() error {
	if r == nil {
		return errors.New("ConversionRequest must not be nil")
	}
	if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return fmt.Errorf("value must be a finite number, got %v", r.Value)
	}
	if r.From == "" || r.To == "" {
		return errors.New("both units must be selected")
	}
	if r.Category == "" {
		return errors.New("category is required")
	}
	if r.Model == "" {
		return errors.New("model is required")
	}
	return nil
}

// Parameters are the text-generation knobs understood by the endpoint.
type Parameters struct {
	Temperature    float64 `json:"temperature"`
	MaxNewTokens   int     `json:"max_new_tokens"`
	ReturnFullText bool    `json:"return_full_text"`
}

// DefaultParameters returns the fixed generation parameters.
func DefaultParameters() Parameters {
	return Parameters{
		Temperature:    Temperature,
		MaxNewTokens:   MaxNewTokens,
		ReturnFullText: ReturnFullText,
	}
}

// FormatValue renders v in its shortest exact decimal form, so 5 becomes
// "5" and 0.1 stays "0.1".
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BuildPrompt renders the conversion prompt for request.
func BuildPrompt(request *ConversionRequest) (string, error) {
	if err := request.Validate(); err != nil {
		return "", err
	}

	raw, err := embedded.ReadFile(promptTemplate)
	if err != nil {
		return "", err
	}
	tmpl, err := mustache.ParseString(string(raw))
	if err != nil {
		return "", err
	}

	return tmpl.Render(map[string]string{
		"value":    FormatValue(request.Value),
		"from":     request.From,
		"to":       request.To,
		"category": request.Category,
	})
}

// CountTokens estimates how many tokens text occupies. The hosted models use
// their own vocabularies, so this is only a size hint for logs.
func CountTokens(text string) (int, error) {
	enc, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		return 0, err
	}
	tokens, _, _ := enc.Encode(text)
	return len(tokens), nil
}
