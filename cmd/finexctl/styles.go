package main

import "github.com/charmbracelet/lipgloss"

var (
	accentColor  = lipgloss.Color("#6366F1")
	successColor = lipgloss.Color("#16A34A")
	errorColor   = lipgloss.Color("#DC2626")
	subtleColor  = lipgloss.Color("241")

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	subtleStyle  = lipgloss.NewStyle().Foreground(subtleColor)
)

// swatch renders a colour tag in the operator's colour.
func swatch(hex, label string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("● " + label)
}
