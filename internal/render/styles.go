// Package render holds the terminal presentation layer: lipgloss styles,
// the .rej file tree view and the scrollable diff pager.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Success marks completed per-file actions (applied, deleted).
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	// Failure marks per-file errors.
	Failure = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	// Header introduces command output sections.
	Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	// Warning is used for confirmation prompts and destructive hints.
	Warning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	// Dim de-emphasizes secondary detail.
	Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	dirStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	ruleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Plain reports whether styled output is pointless: stdout is not a
// terminal (termenv resolves the profile to Ascii) so list and diff
// output should stay uncolored and non-interactive.
func Plain() bool {
	return termenv.ColorProfile() == termenv.Ascii
}

// Rule renders a left-aligned horizontal rule carrying a label, used to
// separate per-file sections in diff output.
func Rule(label string, width int) string {
	if width <= 0 {
		width = 80
	}
	line := "── " + label + " "
	if pad := width - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat("─", pad)
	}
	return ruleStyle.Render(line)
}
