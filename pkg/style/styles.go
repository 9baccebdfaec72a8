package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	CodeStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Background(SurfaceColor).
			Padding(0, 1)

	URLStyle = lipgloss.NewStyle().
			Foreground(URLColor).
			Underline(true)
)

// Component kind styles
var (
	FieldStyle = lipgloss.NewStyle().
			Foreground(FieldColor).
			Bold(true)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SeparatorColor).
			Bold(true)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(PlaceholderColor)
)
