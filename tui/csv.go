package tui

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"time"
)

// CSVPresenter renders output as CSV.
type CSVPresenter struct {
	w      io.Writer
	writer *csv.Writer
}

// NewCSVPresenter creates a new CSV presenter.
func NewCSVPresenter(opts PresenterOptions) *CSVPresenter {
	return &CSVPresenter{
		w:      opts.Writer,
		writer: csv.NewWriter(opts.Writer),
	}
}

// RenderSummary renders one row per bucket.
func (p *CSVPresenter) RenderSummary(summary *SummaryView) error {
	p.writer.Write([]string{"bucket", "label", "value", "selected"})

	for _, b := range summary.Buckets {
		p.writer.Write([]string{
			b.Key.Format(time.RFC3339),
			b.Label,
			strconv.FormatFloat(b.Value, 'f', -1, 64),
			strconv.FormatBool(b.Selected),
		})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderEvents renders the events with a leading group column.
func (p *CSVPresenter) RenderEvents(events *EventsView) error {
	p.writer.Write(append([]string{"group"}, events.Columns...))

	for _, r := range events.Rows {
		p.writer.Write(append([]string{r.Group}, r.Values...))
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderConfig renders flattened key/value pairs.
func (p *CSVPresenter) RenderConfig(config *ConfigView) error {
	p.writer.Write([]string{"key", "value"})

	flat := map[string]any{}
	flatten(config.Values, "", flat)
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		p.writer.Write([]string{k, formatAny(flat[k])})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderError renders an error as CSV.
func (p *CSVPresenter) RenderError(err error) error {
	p.writer.Write([]string{"error"})
	p.writer.Write([]string{err.Error()})
	p.writer.Flush()
	return p.writer.Error()
}

// RenderMessage renders a message as CSV.
func (p *CSVPresenter) RenderMessage(message string) error {
	p.writer.Write([]string{"message"})
	p.writer.Write([]string{message})
	p.writer.Flush()
	return p.writer.Error()
}

var _ Presenter = (*CSVPresenter)(nil)
