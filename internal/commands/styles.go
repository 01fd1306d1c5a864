package commands

import "github.com/charmbracelet/lipgloss"

// Terminal styles for the analyze and lookup reports
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	sectionStyle = lipgloss.NewStyle().Bold(true)
	onStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E"))
	offStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
