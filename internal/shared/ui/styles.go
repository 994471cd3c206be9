package ui

import "github.com/charmbracelet/lipgloss"

var (
	HighlightColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	SubtleColor    = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	AccentColor    = lipgloss.AdaptiveColor{Light: "#00BBFF", Dark: "#00BBFF"}
	SuccessColor   = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}
	ErrorColor     = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}
	WarningColor   = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	HeaderStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true).
			MarginBottom(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginTop(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(12)

	ActiveLabelStyle = LabelStyle.Copy().
				Foreground(HighlightColor).
				Bold(true)

	StatusSuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	StatusErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	StatusWarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
)
