package terminal

import "github.com/charmbracelet/lipgloss"

var (
	colorAmber  = lipgloss.Color("#F0AD4E")
	colorViolet = lipgloss.Color("#9B59B6")
	colorWhite  = lipgloss.Color("#ECF0F1")
	colorDim    = lipgloss.Color("#7F8C8D")

	plainStyle = lipgloss.NewStyle()

	titleStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorAmber)

	cursorStyle = lipgloss.NewStyle().
			Foreground(colorViolet).
			Bold(true)

	groupStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true).
			Underline(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorAmber).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)
