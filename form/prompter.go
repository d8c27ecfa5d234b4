package form

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/vybdev/uconv/llm/payload"
)

// ErrAborted is returned by a Prompter when the user interrupts the form.
var ErrAborted = errors.New("aborted")

// Prompter asks the user one question at a time.
type Prompter interface {
	// Select offers options and returns the chosen one. def is preselected
	// when non-empty.
	Select(message string, options []string, def string) (string, error)
	// Float asks for a finite number, prefilled with def.
	Float(message string, def float64) (float64, error)
}

// SurveyPrompter asks questions on the terminal.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter returns a Prompter backed by survey. opts are passed to
// every question, e.g. survey.WithStdio.
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

func (p *SurveyPrompter) Select(message string, options []string, def string) (string, error) {
	q := &survey.Select{Message: message, Options: options}
	if def != "" {
		q.Default = def
	}
	var answer string
	if err := survey.AskOne(q, &answer, p.opts...); err != nil {
		return "", mapErr(err)
	}
	return answer, nil
}

func (p *SurveyPrompter) Float(message string, def float64) (float64, error) {
	q := &survey.Input{
		Message: message,
		Default: payload.FormatValue(def),
		Help:    "Any finite number, e.g. 5 or 0.1",
	}
	var answer string
	opts := append([]survey.AskOpt{survey.WithValidator(validateValue)}, p.opts...)
	if err := survey.AskOne(q, &answer, opts...); err != nil {
		return 0, mapErr(err)
	}
	return ParseValue(answer)
}

// ParseValue parses a finite decimal number.
func ParseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

func validateValue(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("unexpected answer of type %T", ans)
	}
	_, err := ParseValue(s)
	return err
}

func mapErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return err
}
