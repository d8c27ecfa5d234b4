// Package session holds the state of one user of the converter: the
// current selection, value and model, plus the recent-conversions history.
package session

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vybdev/uconv/history"
	"github.com/vybdev/uconv/llm/payload"
	"github.com/vybdev/uconv/logging"
	"github.com/vybdev/uconv/selection"
	"github.com/vybdev/uconv/units"
)

var (
	// ErrInvalidValue is returned for NaN or infinite input values.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnknownModel is returned when a model is not among the offered ones.
	ErrUnknownModel = errors.New("unknown model")
)

// Dispatcher sends a conversion request to a language model.
type Dispatcher interface {
	Convert(ctx context.Context, request *payload.ConversionRequest) (string, error)
}

// Outcome is the result of one convert action. Text is always fit for
// display; Err is non-nil when Text is an apology rather than a model answer.
type Outcome struct {
	Query string
	Text  string
	Err   error
}

// ErrorText is the message shown in place of a model answer when the
// request failed.
func ErrorText(err error) string {
	return fmt.Sprintf("Sorry, I encountered an error: %v", err)
}

// Session is owned by a single interaction loop and is not safe for
// concurrent use.
type Session struct {
	id        string
	selection *selection.State
	history   *history.History
	models    []string
	model     string
	value     float64
}

// New returns a session with the first category and model selected and a
// value of 0.
func New(catalog *units.Catalog, models []string, historySize int) (*Session, error) {
	if len(models) == 0 {
		return nil, errors.New("at least one model is required")
	}
	return &Session{
		id:        uuid.NewString(),
		selection: selection.New(catalog),
		history:   history.New(historySize),
		models:    append([]string(nil), models...),
		model:     models[0],
	}, nil
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Selection exposes the category and unit selection.
func (s *Session) Selection() *selection.State { return s.selection }

// Value returns the number to convert.
func (s *Session) Value() float64 { return s.value }

// SetValue sets the number to convert. Any finite number is accepted.
func (s *Session) SetValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v is not a finite number", ErrInvalidValue, v)
	}
	s.value = v
	return nil
}

// Model returns the selected model identifier.
func (s *Session) Model() string { return s.model }

// Models returns the models on offer.
func (s *Session) Models() []string { return append([]string(nil), s.models...) }

// SetModel selects one of Models.
func (s *Session) SetModel(model string) error {
	for _, m := range s.models {
		if m == model {
			s.model = model
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownModel, model)
}

// History returns the recent conversions, newest first.
func (s *Session) History() []string { return s.history.Entries() }

// Request builds the conversion request for the current state.
func (s *Session) Request() *payload.ConversionRequest {
	return &payload.ConversionRequest{
		Value:    s.value,
		From:     s.selection.From(),
		To:       s.selection.To(),
		Category: s.selection.Category(),
		Model:    s.model,
	}
}

// Convert sends the current selection to d and records the result in the
// history, whether the model answered or the request failed.
func (s *Session) Convert(ctx context.Context, d Dispatcher) Outcome {
	req := s.Request()
	out := Outcome{Query: req.Query()}

	log := logging.Session(s.id).WithFields(logrus.Fields{
		"model":    req.Model,
		"category": req.Category,
		"query":    out.Query,
	})

	text, err := d.Convert(ctx, req)
	if err != nil {
		log.WithError(err).Error("conversion failed")
		out.Err = err
		out.Text = ErrorText(err)
	} else {
		log.Info("conversion completed")
		out.Text = text
	}

	s.history.Add(history.Summarize(out.Query, out.Text))
	return out
}
