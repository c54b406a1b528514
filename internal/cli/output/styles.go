package output

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for terminal output.
var (
	StyleRuleID  = lipgloss.NewStyle().Bold(true)
	StylePath    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	StyleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	StyleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	StyleHint    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	StyleHeading = lipgloss.NewStyle().Bold(true).Underline(true)
	StyleSubdued = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// SeverityStyle returns the style for a severity name.
func SeverityStyle(severity string) lipgloss.Style {
	switch severity {
	case "error":
		return StyleError
	case "warning":
		return StyleWarning
	case "info":
		return StyleInfo
	default:
		return StyleHint
	}
}
