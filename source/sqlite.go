package source

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/safedep/dry/log"
	"github.com/safedep/timelineviewer/core/record"

	_ "modernc.org/sqlite"
)

// DefaultTable is read when neither a table nor a query is given.
const DefaultTable = "events"

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// loadSQLite runs a query against a read-only database and turns each row
// into a record keyed by column name.
func loadSQLite(ctx context.Context, path string, opts Options) ([]record.Record, error) {
	query, err := sqliteQuery(opts)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", path, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var out []record.Record
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		rec := make(record.Record, len(cols))
		for i, c := range cols {
			if b, ok := values[i].([]byte); ok {
				rec[c] = string(b)
				continue
			}
			rec[c] = values[i]
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	log.Debugf("Loaded %d records from %s with %q", len(out), path, query)
	return out, nil
}

func sqliteQuery(opts Options) (string, error) {
	if opts.Query != "" {
		return opts.Query, nil
	}
	table := opts.Table
	if table == "" {
		table = DefaultTable
	}
	if !identifier.MatchString(table) {
		return "", fmt.Errorf("invalid table name %q", table)
	}
	return "SELECT * FROM " + table, nil
}
