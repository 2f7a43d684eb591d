package tui

import (
	"encoding/json"
	"io"
)

// JSONLPresenter renders output as newline-delimited JSON.
type JSONLPresenter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewJSONLPresenter creates a new JSONL presenter.
func NewJSONLPresenter(opts PresenterOptions) *JSONLPresenter {
	return &JSONLPresenter{
		w:       opts.Writer,
		encoder: json.NewEncoder(opts.Writer),
	}
}

// RenderSummary writes one line per bucket.
func (p *JSONLPresenter) RenderSummary(summary *SummaryView) error {
	for _, b := range summary.Buckets {
		if err := p.encoder.Encode(b); err != nil {
			return err
		}
	}
	return nil
}

// RenderEvents writes one object per event keyed by column name.
func (p *JSONLPresenter) RenderEvents(events *EventsView) error {
	for _, r := range events.Rows {
		obj := make(map[string]string, len(events.Columns)+1)
		for i, c := range events.Columns {
			if i < len(r.Values) {
				obj[c] = r.Values[i]
			}
		}
		if r.Group != "" {
			obj["_group"] = r.Group
		}
		if err := p.encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}

// RenderConfig renders the configuration as a single line.
func (p *JSONLPresenter) RenderConfig(config *ConfigView) error {
	return p.encoder.Encode(config)
}

// RenderError renders an error as JSONL.
func (p *JSONLPresenter) RenderError(err error) error {
	return p.encoder.Encode(struct {
		Error string `json:"error"`
	}{Error: err.Error()})
}

// RenderMessage renders a message as JSONL.
func (p *JSONLPresenter) RenderMessage(message string) error {
	return p.encoder.Encode(struct {
		Message string `json:"message"`
	}{Message: message})
}

var _ Presenter = (*JSONLPresenter)(nil)
