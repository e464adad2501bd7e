package main

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	successColor = lipgloss.Color("#04B575")
	warningColor = lipgloss.Color("#FFA500")
	errorColor   = lipgloss.Color("#FF4B4B")
	mutedColor   = lipgloss.Color("#666666")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	okStyle   = lipgloss.NewStyle().Foreground(successColor)
	warnStyle = lipgloss.NewStyle().Foreground(warningColor)
	errStyle  = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(mutedColor)
)

// styled renders text with st unless colors are disabled.
func styled(st lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return st.Render(text)
}
