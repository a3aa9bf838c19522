package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/masa/internal/logbook"
)

var (
	colorWork  = lipgloss.Color("#04B575")
	colorBreak = lipgloss.Color("#F7DC6F")
	colorIdle  = lipgloss.Color("#FF6B6B")
	colorMuted = lipgloss.Color("#626262")
	colorNote  = lipgloss.Color("#5FD7FF")

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle   = lipgloss.NewStyle().Foreground(colorNote).Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	noteStyle     = lipgloss.NewStyle().Foreground(colorNote)
	errorStyle    = lipgloss.NewStyle().Foreground(colorIdle).Bold(true)
	inputStyle    = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBreak).
			Foreground(colorBreak).
			Padding(0, 1)
)

// modeColor is the colour used for everything tied to a mode.
func modeColor(mode logbook.Mode) lipgloss.Color {
	switch mode {
	case logbook.ModeWorking:
		return colorWork
	case logbook.ModeBreak:
		return colorBreak
	default:
		return colorIdle
	}
}

func modeStyle(mode logbook.Mode) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(modeColor(mode)).Bold(true)
}
