package tui

import (
	"encoding/json"
	"io"
)

// JSONPresenter renders output as indented JSON documents.
type JSONPresenter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewJSONPresenter creates a new JSON presenter.
func NewJSONPresenter(opts PresenterOptions) *JSONPresenter {
	encoder := json.NewEncoder(opts.Writer)
	encoder.SetIndent("", "  ")
	return &JSONPresenter{
		w:       opts.Writer,
		encoder: encoder,
	}
}

// RenderSummary renders the summary as one document.
func (p *JSONPresenter) RenderSummary(summary *SummaryView) error {
	return p.encoder.Encode(summary)
}

// RenderEvents renders the events as one document.
func (p *JSONPresenter) RenderEvents(events *EventsView) error {
	return p.encoder.Encode(events)
}

// RenderConfig renders the configuration as JSON.
func (p *JSONPresenter) RenderConfig(config *ConfigView) error {
	return p.encoder.Encode(config)
}

// RenderError renders an error as JSON.
func (p *JSONPresenter) RenderError(err error) error {
	return p.encoder.Encode(struct {
		Error string `json:"error"`
	}{Error: err.Error()})
}

// RenderMessage renders a message as JSON.
func (p *JSONPresenter) RenderMessage(message string) error {
	return p.encoder.Encode(struct {
		Message string `json:"message"`
	}{Message: message})
}

var _ Presenter = (*JSONPresenter)(nil)
