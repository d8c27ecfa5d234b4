package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vybdev/uconv/llm/payload"
	"github.com/vybdev/uconv/logging"
)

// NOTE: baseEndpoint is a var (not const) to allow test overrides.
var baseEndpoint = "https://api-inference.huggingface.co"

// Doer is the subset of *http.Client used to send requests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the hosted inference API.
type Client struct {
	// HTTP sends the request. Nil means http.DefaultClient.
	HTTP Doer
	// Endpoint overrides the inference host, e.g. "https://example.com".
	Endpoint string
	// APIKey is sent as a bearer token. An empty key is sent as is and
	// rejected by the endpoint.
	APIKey string
	// Debug persists every request/response pair to a temp file.
	Debug bool
}

// requestPayload is the body of a text-generation request.
type requestPayload struct {
	Inputs     string             `json:"inputs"`
	Parameters payload.Parameters `json:"parameters"`
}

// errorResponse is the envelope the endpoint uses for failures, e.g.
//
//	{"error": "Model is currently loading", "estimated_time": 20.0}
type errorResponse struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// Generate sends prompt to model and returns the generated text.
//
// Transport errors are returned unwrapped so their text can be shown to the
// user verbatim.
func (c *Client) Generate(ctx context.Context, model, prompt string, params payload.Parameters) (string, error) {
	if model == "" {
		return "", errors.New("huggingface: model must not be empty")
	}

	body, err := json.Marshal(requestPayload{Inputs: prompt, Parameters: params})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.modelURL(model), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("huggingface: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))
	req.Header.Set("Content-Type", "application/json")

	log := logging.Log.WithField("model", model)
	log.Debug("calling inference endpoint")

	resp, err := c.doer().Do(req)
	if err != nil {
		log.WithError(err).Warn("inference request failed")
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if c.Debug {
		persist(log, body, respBytes)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		entry := log.WithField("status", resp.StatusCode)
		var e errorResponse
		if jsonErr := json.Unmarshal(respBytes, &e); jsonErr == nil && e.Error != "" {
			entry = entry.WithField("error", e.Error)
		}
		entry.Warn("inference endpoint returned a non-success status")
	}

	var decoded any
	if err := json.Unmarshal(respBytes, &decoded); err != nil {
		return "", err
	}
	return ExtractText(decoded)
}

// ExtractText turns a decoded response into display text:
//   - a list yields element 0's "generated_text",
//   - an object yields its own "generated_text",
//   - anything else is rendered whole.
//
// A missing "generated_text" yields "". An empty list, or a list whose first
// element is not an object, is an error.
func ExtractText(decoded any) (string, error) {
	switch v := decoded.(type) {
	case []any:
		if len(v) == 0 {
			return "", errors.New("list index out of range")
		}
		first, ok := v[0].(map[string]any)
		if !ok {
			return "", fmt.Errorf("unexpected response element of type %T", v[0])
		}
		return generatedText(first), nil
	case map[string]any:
		return generatedText(v), nil
	default:
		return stringify(v), nil
	}
}

func generatedText(m map[string]any) string {
	val, ok := m["generated_text"]
	if !ok {
		return ""
	}
	return stringify(val)
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func (c *Client) modelURL(model string) string {
	base := c.Endpoint
	if base == "" {
		base = baseEndpoint
	}
	return strings.TrimSuffix(base, "/") + "/models/" + model
}

func (c *Client) doer() Doer {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// persist writes the request/response pair to a uniquely-named JSON file in
// the OS temp dir.
func persist(log *logrus.Entry, reqBytes, respBytes []byte) {
	logEntry := struct {
		Request  json.RawMessage `json:"request"`
		Response json.RawMessage `json:"response"`
	}{
		Request:  reqBytes,
		Response: rawOrString(respBytes),
	}

	logBytes, err := json.MarshalIndent(logEntry, "", "  ")
	if err != nil {
		log.WithError(err).Warn("failed to marshal request/response dump")
		return
	}
	f, err := os.CreateTemp("", "uconv-huggingface-*.json")
	if err != nil {
		log.WithError(err).Warn("failed to create request/response dump")
		return
	}
	defer f.Close()
	if _, err := f.Write(logBytes); err != nil {
		log.WithError(err).Warn("failed to write request/response dump")
		return
	}
	log.WithField("file", f.Name()).Info("wrote request/response dump")
}

// rawOrString keeps valid JSON as is and quotes anything else, so a broken
// response never breaks the dump itself.
func rawOrString(b []byte) json.RawMessage {
	if json.Valid(b) {
		return b
	}
	q, _ := json.Marshal(string(b))
	return q
}
