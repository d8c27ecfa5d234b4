package cmd

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// version is stamped at release time with
// -ldflags "-X github.com/vybdev/uconv/cmd.version=v1.2.3".
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the uconv CLI version.",
	Run:   Version,
}

// Version is the cobra handler for `uconv version`.
func Version(cmd *cobra.Command, _ []string) {
	v, err := deriveVersion()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%q\n", err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
}

func deriveVersion() (string, error) {
	if version != "" {
		return version, nil
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", fmt.Errorf("could not read build info")
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, nil
	}

	return pseudoVersion(info.Settings)
}

// pseudoVersion builds a version from the VCS build settings, as described
// at https://go.dev/ref/mod#pseudo-versions
func pseudoVersion(settings []debug.BuildSetting) (string, error) {
	var revision, at string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if revision == "" && at == "" {
		return "", fmt.Errorf("version information is not available")
	}

	buf := strings.Builder{}
	buf.WriteString("0.0.0")
	if at != "" {
		// the commit time is of the form 2023-01-25T19:57:54Z
		if p, err := time.Parse(time.RFC3339, at); err == nil {
			buf.WriteString("-")
			buf.WriteString(p.UTC().Format("20060102150405"))
		}
	}
	if revision != "" {
		if len(revision) > 12 {
			revision = revision[:12]
		}
		buf.WriteString("-")
		buf.WriteString(revision)
	}
	if dirty {
		buf.WriteString("+dirty")
	}
	return buf.String(), nil
}
