package tui

import (
	"fmt"
	"io"
	"sort"
	"unicode/utf8"
)

const minBarWidth = 10

// TablePresenter renders output in table format.
type TablePresenter struct {
	w         io.Writer
	color     *Colorizer
	termWidth int
}

// NewTablePresenter creates a new table presenter.
func NewTablePresenter(opts PresenterOptions) *TablePresenter {
	termWidth := opts.TerminalWidth
	if termWidth == 0 {
		termWidth = GetTerminalWidth()
	}
	return &TablePresenter{
		w:         opts.Writer,
		color:     NewColorizer(opts.UseColors),
		termWidth: termWidth,
	}
}

// RenderSummary renders the timeline header and one bar per bucket.
func (p *TablePresenter) RenderSummary(s *SummaryView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s\n", p.color.Header(s.Title))
	tw.printf("  %-10s %s to %s (%s)\n", "Range", FormatTime(s.From), FormatTime(s.To), s.Scale)
	tw.printf("  %-10s %s", "Events", p.color.Number(FormatNumber(s.Total)))
	if s.Undated > 0 {
		tw.printf(" %s", p.color.Dim(fmt.Sprintf("(%d undated)", s.Undated)))
	}
	tw.println()
	if s.Selection != nil {
		tw.printf("  %-10s %s, %s to %s\n", "Selected", p.color.Number(FormatNumber(s.Selected)),
			FormatTime(s.Selection.From), FormatTime(s.Selection.To))
	}
	tw.println(HorizontalLine(p.termWidth))

	if len(s.Buckets) == 0 {
		tw.println("No buckets in range.")
		return tw.Err()
	}

	labelW, valueW := 0, 0
	peak := 0.0
	for _, b := range s.Buckets {
		labelW = max(labelW, len(b.Label))
		valueW = max(valueW, len(FormatValue(b.Value)))
		peak = max(peak, b.Value)
	}
	barW := max(p.termWidth-labelW-valueW-6, minBarWidth)

	for _, b := range s.Buckets {
		bar := Bar(b.Value, peak, barW)
		marker := " "
		if b.Selected {
			bar = p.color.Selected(bar)
			marker = p.color.Selected("*")
		}
		tw.printf("%s %s %s %*s\n", marker, PadRight(b.Label, labelW), bar, valueW, FormatValue(b.Value))
	}

	return tw.Err()
}

// RenderEvents renders aligned columns, with a heading per group.
func (p *TablePresenter) RenderEvents(v *EventsView) error {
	tw := &tableWriter{w: p.w}

	if len(v.Rows) == 0 {
		tw.println("No events found.")
		return tw.Err()
	}

	widths := make([]int, len(v.Columns))
	for i, c := range v.Columns {
		widths[i] = utf8.RuneCountInString(c)
	}
	for _, r := range v.Rows {
		for i, val := range r.Values {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(val))
			}
		}
	}

	tw.printf("Events (%d)\n", len(v.Rows))
	group := "\x00"
	for _, r := range v.Rows {
		if r.Group != group {
			group = r.Group
			tw.println()
			if group != "" {
				tw.println(p.color.Group(group))
			}
			tw.row(v.Columns, widths, p.color.Dim)
		}
		tw.row(r.Values, widths, nil)
	}

	return tw.Err()
}

// RenderConfig renders the configuration as sorted dotted keys.
func (p *TablePresenter) RenderConfig(config *ConfigView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s\n", p.color.Header("Configuration"))
	tw.printf("Location: %s\n", p.color.Path(config.Location))
	tw.println(HorizontalLine(p.termWidth))
	tw.println()

	flat := map[string]any{}
	flatten(config.Values, "", flat)
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		tw.printf("  %-30s %v\n", k, flat[k])
	}

	return tw.Err()
}

func flatten(m map[string]any, prefix string, out map[string]any) {
	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			flatten(nested, fullKey, out)
			continue
		}
		out[fullKey] = value
	}
}

// RenderError renders an error message.
func (p *TablePresenter) RenderError(err error) error {
	_, werr := fmt.Fprintf(p.w, "%s %s\n", p.color.Error("Error:"), err.Error())
	return werr
}

// RenderMessage renders a simple message.
func (p *TablePresenter) RenderMessage(message string) error {
	_, err := fmt.Fprintln(p.w, message)
	return err
}

// Ensure TablePresenter implements Presenter
var _ Presenter = (*TablePresenter)(nil)

