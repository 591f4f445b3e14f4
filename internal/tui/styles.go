package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	colorPrimary = "#3B5BDB"
	colorMuted   = "#626262"
	colorGood    = "#04B575"
	colorWarn    = "#D9822B"
	colorCursor  = "#FAFAFA"
)

// Styles for the curation views
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary))

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorCursor)).
			Background(lipgloss.Color(colorPrimary)).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorCursor)).
			Background(lipgloss.Color(colorPrimary))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGood))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorWarn))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorPrimary))
)
