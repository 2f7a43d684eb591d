package terminal

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/safedep/timelineviewer/core/datatable"
)

const minCellWidth = 8

// Table draws one bordered table per group, each under its group key.
func Table(t datatable.Table, width int) string {
	if len(t.Columns) == 0 {
		return ""
	}
	if t.Len() == 0 {
		return dimStyle.Render("no rows")
	}

	limit := max(width/len(t.Columns)-3, minCellWidth)

	var parts []string
	for _, g := range t.Groups {
		tbl := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(dimStyle).
			Headers(t.Columns...).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
		for _, r := range g.Rows {
			cells := make([]string, len(r))
			for i, v := range r {
				cells[i] = truncate(cell(v), limit)
			}
			tbl.Row(cells...)
		}

		heading := groupStyle.Render(g.Key) + dimStyle.Render(fmt.Sprintf(" (%d)", len(g.Rows)))
		parts = append(parts, heading+"\n"+tbl.Render())
	}
	return strings.Join(parts, "\n")
}

func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		return x.Format(time.DateTime)
	case string:
		return x
	}
	return fmt.Sprint(v)
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
