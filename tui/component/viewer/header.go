package viewer

import (
	"fmt"
	"strings"
)

type headerModel struct {
	title string
}

// view shows the title, chart settings and event counts.
func (h headerModel) view(width int, kind, scale string, total, selected int) string {
	parts := []string{h.title, kind + " per " + strings.TrimSuffix(scale, "s")}
	parts = append(parts, fmt.Sprintf("%d events", total))
	if selected > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", selected))
	}
	return titleStyle.Width(width).Render(strings.Join(parts, " │ "))
}
