package form

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

const (
	title       = "Conversational Unit Converter"
	description = "Select units and get a friendly conversational response from an AI assistant."
	footer      = "Session ended, history discarded."

	keyLoaded  = "API Key loaded automatically!"
	keyMissing = "API Key not found in environment variables"

	loading = "Getting your conversion..."
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	panelStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1).
			Width(72)
	errorPanelStyle = panelStyle.BorderForeground(lipgloss.Color("9"))
	ruleStyle       = lipgloss.NewStyle().Faint(true)
)

func renderBanner(w io.Writer, keyPresent bool) {
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, description)
	if keyPresent {
		color.New(color.FgGreen).Fprintln(w, keyLoaded)
	} else {
		color.New(color.FgRed).Fprintln(w, keyMissing)
	}
	fmt.Fprintln(w)
}

func renderLoading(w io.Writer) {
	color.New(color.FgCyan).Fprintln(w, loading)
}

func renderResult(w io.Writer, text string, failed bool) {
	fmt.Fprintln(w, headingStyle.Render("Conversion Result"))
	style := panelStyle
	if failed {
		style = errorPanelStyle
	}
	fmt.Fprintln(w, style.Render(text))
}

func renderHistory(w io.Writer, entries []string) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(w, headingStyle.Render("Recent Conversions"))
	for _, e := range entries {
		fmt.Fprintf(w, "- %s\n", e)
	}
}

func renderFooter(w io.Writer) {
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("─", 40)))
	fmt.Fprintln(w, footer)
}
