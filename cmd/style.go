package cmd

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#95E1A3"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))
)
