package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	// Log is the default logger for the application.
	Log = logrus.New()
)

// Init parses level and configures Log to write timestamped text to stderr.
func Init(level string) error {
	return InitWriter(level, os.Stderr)
}

// InitWriter is Init with an explicit destination. The form writes its
// panels to stdout, so log lines must never share that stream.
func InitWriter(level string, out io.Writer) error {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	Log.SetLevel(logLevel)
	Log.SetOutput(out)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return nil
}

// Session returns an entry tagged with the given session id.
func Session(id string) *logrus.Entry {
	return Log.WithField("session", id)
}
