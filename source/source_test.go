package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/safedep/timelineviewer/core/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFormatOf(t *testing.T) {
	cases := map[string]Format{
		"events.json":     FormatJSON,
		"events.JSONL":    FormatJSONL,
		"events.ndjson":   FormatJSONL,
		"events.csv":      FormatCSV,
		"events.yml":      FormatYAML,
		"events.yaml":     FormatYAML,
		"history.sqlite":  FormatSQLite,
		"history.db":      FormatSQLite,
		"history.sqlite3": FormatSQLite,
	}
	for path, want := range cases {
		got, err := FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatOf("events.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Empty(t, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_Files(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
	}{
		{"json", "events.json", `[
			{"date": "24/10/1982", "application": "netscape"},
			{"date": "25/10/1982", "application": "firefox"}
		]`},
		{"jsonl", "events.jsonl", `{"date": "24/10/1982", "application": "netscape"}

{"date": "25/10/1982", "application": "firefox"}
`},
		{"csv", "events.csv", "date, application\n24/10/1982,netscape\n25/10/1982,firefox\n"},
		{"yaml", "events.yaml", `
- date: 24/10/1982
  application: netscape
- date: 25/10/1982
  application: firefox
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := Load(context.Background(), writeFile(t, tc.file, tc.content), Options{})
			require.NoError(t, err)
			require.Len(t, records, 2)

			assert.Equal(t, "24/10/1982", records[0]["date"])
			assert.Equal(t, "netscape", records[0]["application"])
			assert.Equal(t, "firefox", records[1]["application"])

			events := record.FromRecords(records)
			events[0].Resolve(record.DefaultDateFormat, events[0].Get("date"))
			assert.True(t, events[0].HasDate())
		})
	}
}

func TestLoad_FormatOverride(t *testing.T) {
	path := writeFile(t, "events.txt", `[{"date": "24/10/1982"}]`)

	_, err := Load(context.Background(), path, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	records, err := Load(context.Background(), path, Options{Format: FormatJSON})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestLoad_StdinNeedsFormat(t *testing.T) {
	_, err := Load(context.Background(), Stdin, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(context.Background(), Stdin, Options{Format: FormatSQLite})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRead_Errors(t *testing.T) {
	_, err := Read(strings.NewReader(`{"not": "an array"}`), FormatJSON)
	assert.Error(t, err)

	_, err = Read(strings.NewReader("{}\nnot json\n"), FormatJSONL)
	assert.ErrorContains(t, err, "line 2")

	_, err = Read(strings.NewReader("a,b\n\"unterminated\n"), FormatCSV)
	assert.Error(t, err)

	_, err = Read(strings.NewReader(""), FormatSQLite)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRead_Empty(t *testing.T) {
	for _, f := range []Format{FormatCSV, FormatYAML, FormatJSONL} {
		records, err := Read(strings.NewReader(""), f)
		require.NoError(t, err, f)
		assert.Empty(t, records, f)
	}
}

func TestRead_CSVShortRows(t *testing.T) {
	reader := strings.NewReader("date,application,title\n24/10/1982,netscape\n")
	_, err := Read(reader, FormatCSV)
	assert.Error(t, err)
}

func newDatabase(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.sqlite")

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s", path))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE events (date TEXT, application TEXT, visits INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO events VALUES
		('24/10/1982', 'netscape', 3),
		('25/10/1982', 'firefox', 1),
		('26/10/1982', 'firefox', 2)`)
	require.NoError(t, err)
	return path
}

func TestLoad_SQLite(t *testing.T) {
	path := newDatabase(t)

	records, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "24/10/1982", records[0]["date"])
	assert.Equal(t, "netscape", records[0]["application"])
	assert.EqualValues(t, 3, records[0]["visits"])

	records, err = Load(context.Background(), path, Options{
		Query: "SELECT date, application FROM events WHERE application = 'firefox'",
	})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLoad_SQLiteBadTable(t *testing.T) {
	path := newDatabase(t)

	_, err := Load(context.Background(), path, Options{Table: "events; DROP TABLE events"})
	assert.ErrorContains(t, err, "invalid table name")

	_, err = Load(context.Background(), path, Options{Table: "missing"})
	assert.Error(t, err)
}

func TestLoad_SQLiteCancelled(t *testing.T) {
	path := newDatabase(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, path, Options{})
	assert.Error(t, err)
}
