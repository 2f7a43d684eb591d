// Package source loads event records from files.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/safedep/dry/log"
	"github.com/safedep/timelineviewer/core/record"
)

// Format names an input encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatJSONL  Format = "jsonl"
	FormatCSV    Format = "csv"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// Stdin is the path that reads from standard input.
const Stdin = "-"

// ErrUnsupportedFormat is returned for formats and extensions no loader handles.
var ErrUnsupportedFormat = errors.New("unsupported input format")

var extensions = map[string]Format{
	".json":    FormatJSON,
	".jsonl":   FormatJSONL,
	".ndjson":  FormatJSONL,
	".csv":     FormatCSV,
	".yaml":    FormatYAML,
	".yml":     FormatYAML,
	".db":      FormatSQLite,
	".sqlite":  FormatSQLite,
	".sqlite3": FormatSQLite,
}

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatJSONL, FormatCSV, FormatYAML, FormatSQLite}
}

// ParseFormat validates a format name. An empty name is returned as is.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return "", nil
	}
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatOf infers the format of path from its extension.
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: cannot infer format of %q", ErrUnsupportedFormat, path)
}

// Options control how a source is read.
type Options struct {
	// Format overrides the format inferred from the file extension. It is
	// required when reading from Stdin.
	Format Format

	// Table and Query apply to SQLite sources. Query wins when both are set.
	Table string
	Query string
}

// Load reads every record of the file at path.
func Load(ctx context.Context, path string, opts Options) ([]record.Record, error) {
	format := opts.Format
	if format == "" {
		if path == Stdin {
			return nil, fmt.Errorf("%w: a format is required for standard input", ErrUnsupportedFormat)
		}
		var err error
		if format, err = FormatOf(path); err != nil {
			return nil, err
		}
	}

	if format == FormatSQLite {
		if path == Stdin {
			return nil, fmt.Errorf("%w: sqlite cannot be read from standard input", ErrUnsupportedFormat)
		}
		return loadSQLite(ctx, path, opts)
	}

	var r io.Reader = os.Stdin
	if path != Stdin {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	records, err := Read(r, format)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	log.Debugf("Loaded %d records from %s (%s)", len(records), path, format)
	return records, nil
}

// Read decodes records from r. SQLite is not a stream format.
func Read(r io.Reader, format Format) ([]record.Record, error) {
	switch format {
	case FormatJSON:
		return readJSON(r)
	case FormatJSONL:
		return readJSONL(r)
	case FormatCSV:
		return readCSV(r)
	case FormatYAML:
		return readYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
