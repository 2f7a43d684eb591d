// Package tui provides the presentation layer for terminal output.
package tui

import (
	"fmt"
	"io"
	"os"
)

// Format represents the output format.
type Format string

const (
	// FormatTable is the default table format.
	FormatTable Format = "table"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatJSONL is newline-delimited JSON format.
	FormatJSONL Format = "jsonl"
	// FormatCSV is CSV format.
	FormatCSV Format = "csv"
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatJSON, FormatJSONL, FormatCSV:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (must be table, json, jsonl, or csv)", s)
	}
}

// Presenter defines the interface for output rendering.
type Presenter interface {
	// RenderSummary renders per bucket event counts of a timeline.
	RenderSummary(summary *SummaryView) error

	// RenderEvents renders event rows, usually the selected ones.
	RenderEvents(events *EventsView) error

	// RenderConfig renders the configuration.
	RenderConfig(config *ConfigView) error

	// RenderError renders an error message.
	RenderError(err error) error

	// RenderMessage renders a simple message.
	RenderMessage(message string) error
}

// PresenterOptions configures presenter behavior.
type PresenterOptions struct {
	// Writer is the output destination.
	Writer io.Writer
	// UseColors indicates if colors should be used.
	UseColors bool
	// TerminalWidth is the width of the terminal for table rendering.
	// If 0, the width will be auto-detected.
	TerminalWidth int
}

// NewPresenter creates a new presenter for the given format.
func NewPresenter(format Format, opts PresenterOptions) Presenter {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case FormatJSON:
		return NewJSONPresenter(opts)
	case FormatJSONL:
		return NewJSONLPresenter(opts)
	case FormatCSV:
		return NewCSVPresenter(opts)
	default:
		return NewTablePresenter(opts)
	}
}
