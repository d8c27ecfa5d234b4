package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/vybdev/uconv/config"
	"github.com/vybdev/uconv/llm"
	"github.com/vybdev/uconv/logging"
	"github.com/vybdev/uconv/session"
	"github.com/vybdev/uconv/units"
)

var logLevel string
var debugLogging bool

// cfg and apiKey are populated by the root PersistentPreRunE.
var cfg *config.Config
var apiKey string

var rootCmd = &cobra.Command{
	Use:           "uconv",
	Short:         "uconv explains unit conversions with the help of a hosted language model",
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Errors past this point are about the environment, not the
		// command line.
		cmd.SilenceUsage = true

		var err error
		cfg, err = config.Load(".")
		if err != nil {
			return err
		}
		if err := llm.ValidateProvider(cfg.Provider); err != nil {
			return fmt.Errorf("invalid .uconv/config.yaml: %w", err)
		}

		level := logLevel
		if level == "" {
			level = cfg.Logging.Level
		}
		if level == "" {
			level = "info"
		}

		if err := logging.Init(level); err != nil {
			return err
		}

		apiKey, err = config.LoadAPIKey(".")
		if err != nil {
			logging.Log.WithError(err).Warn("could not load .env file")
		}
		return nil
	},
	// Without a subcommand the interactive form is started.
	RunE: runForm,
}

// Execute executes the root command. An interrupt cancels the command's
// context, which aborts any in-flight request.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := execute(ctx, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// execute runs the root command and reports its error on errOut, keeping
// stdout for command output.
func execute(ctx context.Context, errOut io.Writer) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(errOut, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (e.g. debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "enable request/response debug logging")

	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(versionCmd)
}

func newSession() (*session.Session, error) {
	return session.New(units.Builtin(), cfg.Models, cfg.HistorySize)
}

func newDispatcher() *llm.Dispatcher {
	return llm.NewDispatcher(cfg, llm.Options{APIKey: apiKey, Debug: debugLogging})
}
