package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpModel struct {
	visible bool
}

func (h *helpModel) toggle() {
	h.visible = !h.visible
}

func (h helpModel) view(width, height int) string {
	if !h.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(colorWhite).Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for _, bind := range keys.bindings() {
		help := bind.Help()
		b.WriteString(helpKeyStyle.Render(help.Key))
		b.WriteString(helpDescStyle.Render(help.Desc))
		b.WriteByte('\n')
	}

	overlay := helpOverlayStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay)
}
