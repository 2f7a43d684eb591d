package source

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/safedep/timelineviewer/core/record"
)

// readJSON accepts an array of objects.
func readJSON(r io.Reader) ([]record.Record, error) {
	var rows []map[string]any
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return toRecords(rows), nil
}

// readJSONL accepts one object per line. Blank lines are skipped.
func readJSONL(r io.Reader) ([]record.Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	var out []record.Record
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var row map[string]any
		if err := json.Unmarshal([]byte(text), &row); err != nil {
			return nil, fmt.Errorf("invalid json on line %d: %w", line, err)
		}
		out = append(out, record.Record(row))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func toRecords(rows []map[string]any) []record.Record {
	out := make([]record.Record, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		out = append(out, record.Record(row))
	}
	return out
}
