package source

import (
	"errors"
	"fmt"
	"io"

	"github.com/safedep/timelineviewer/core/record"
	"gopkg.in/yaml.v3"
)

// readYAML accepts a sequence of mappings.
func readYAML(r io.Reader) ([]record.Record, error) {
	var rows []map[string]any
	if err := yaml.NewDecoder(r).Decode(&rows); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return toRecords(rows), nil
}
