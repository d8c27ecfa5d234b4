package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vybdev/uconv/form"
	"github.com/vybdev/uconv/logging"
	"github.com/vybdev/uconv/units"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Starts the interactive converter (the default when no command is given).",
	RunE:  runForm,
}

func runForm(cmd *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	logging.Session(s.ID()).Debug("starting interactive form")

	f := &form.Form{
		Prompter:   form.NewSurveyPrompter(),
		Out:        cmd.OutOrStdout(),
		Session:    s,
		Dispatcher: newDispatcher(),
		Categories: units.Builtin().Categories(),
		KeyPresent: apiKey != "",
	}
	return f.Run(cmd.Context())
}
