package viz

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	GraphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	HelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)
