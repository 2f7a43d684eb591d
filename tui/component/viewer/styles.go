package viewer

import "github.com/charmbracelet/lipgloss"

var (
	colorAmber  = lipgloss.Color("#F0AD4E")
	colorRed    = lipgloss.Color("#E74C3C")
	colorViolet = lipgloss.Color("#9B59B6")
	colorWhite  = lipgloss.Color("#ECF0F1")
	colorDim    = lipgloss.Color("#7F8C8D")
	colorBg     = lipgloss.Color("#1E1E2E")

	titleStyle = lipgloss.NewStyle().
			Background(colorBg).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Background(colorBg).
			Foreground(colorDim).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorAmber)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	helpOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorViolet).
				Padding(1, 2).
				Foreground(colorWhite)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAmber).
			Bold(true).
			Width(14)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorWhite)
)
