package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Accent    = lipgloss.Color("#00D4AA")
	Bright    = lipgloss.Color("#39FF14")
	Dim       = lipgloss.Color("#3a3a4e")
	LightGray = lipgloss.Color("#aaaaaa")
	White     = lipgloss.Color("#e0e0e0")
	Amber     = lipgloss.Color("#FFD700")
	Red       = lipgloss.Color("#FF5555")

	TitleStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// List pane
	SelectedStyle = lipgloss.NewStyle().
			Foreground(Bright).
			Bold(true)

	ItemStyle = lipgloss.NewStyle().
			Foreground(White)

	TagStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Italic(true)

	// Filter input
	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Dim).
			Padding(0, 1)

	// Error banner shown for recoverable failures (missing snippet file)
	BannerStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Dim)

	ViewportStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Dim).
			Padding(0, 1)
)
