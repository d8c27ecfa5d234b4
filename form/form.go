// Package form runs the interactive converter page: it asks for a category,
// a value, the units and a model, then shows the model's answer and the
// recent conversions. Every round starts from the answers of the previous
// one.
package form

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vybdev/uconv/llm/payload"
	"github.com/vybdev/uconv/logging"
	"github.com/vybdev/uconv/session"
)

const (
	actionConvert = "Convert"
	actionQuit    = "Quit"
)

var errQuit = errors.New("quit")

// Form wires a session to a Prompter and an output stream.
type Form struct {
	Prompter   Prompter
	Out        io.Writer
	Session    *session.Session
	Dispatcher session.Dispatcher
	Categories []string
	// KeyPresent controls the credential banner. A missing key only warns.
	KeyPresent bool
}

// Run asks rounds of questions until the user quits, interrupts, or ctx is
// done.
func (f *Form) Run(ctx context.Context) error {
	renderBanner(f.Out, f.KeyPresent)
	defer renderFooter(f.Out)

	for ctx.Err() == nil {
		err := f.round(ctx)
		if errors.Is(err, ErrAborted) || errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *Form) round(ctx context.Context) error {
	s := f.Session
	sel := s.Selection()

	category, err := f.Prompter.Select("Category:", f.Categories, sel.Category())
	if err != nil {
		return err
	}
	if err := sel.SelectCategory(category); err != nil {
		return err
	}

	value, err := f.Prompter.Float("Value:", s.Value())
	if err != nil {
		return err
	}
	if err := s.SetValue(value); err != nil {
		return err
	}

	from, err := f.Prompter.Select("From Unit:", sel.Units(), sel.From())
	if err != nil {
		return err
	}
	if err := sel.SelectFromUnit(from); err != nil {
		return err
	}

	to, err := f.Prompter.Select("To Unit:", sel.ToCandidates(), sel.To())
	if err != nil {
		return err
	}
	if err := sel.SelectToUnit(to); err != nil {
		return err
	}

	model, err := f.Prompter.Select("Select AI Model:", s.Models(), s.Model())
	if err != nil {
		return err
	}
	if err := s.SetModel(model); err != nil {
		return err
	}

	prompt := fmt.Sprintf("%s %s → %s:", payload.FormatValue(s.Value()), sel.From(), sel.To())
	action, err := f.Prompter.Select(prompt, []string{actionConvert, actionQuit}, actionConvert)
	if err != nil {
		return err
	}
	if action == actionQuit {
		return errQuit
	}

	renderLoading(f.Out)
	out := s.Convert(ctx, f.Dispatcher)
	if out.Err != nil {
		logging.Session(s.ID()).WithError(out.Err).Debug("rendering failed conversion")
	}
	renderResult(f.Out, out.Text, out.Err != nil)
	renderHistory(f.Out, s.History())
	fmt.Fprintln(f.Out)
	return nil
}
