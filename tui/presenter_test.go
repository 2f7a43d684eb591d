package tui

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/safedep/timelineviewer/core/options"
	"github.com/safedep/timelineviewer/core/record"
	"github.com/safedep/timelineviewer/core/timeline"
	"github.com/safedep/timelineviewer/render/headless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oct(d int) time.Time {
	return time.Date(1982, time.October, d, 0, 0, 0, 0, time.UTC)
}

func browsingTimeline(t *testing.T, extra ...record.Record) *timeline.Timeline {
	t.Helper()
	tl := timeline.New("timeline", options.Values{
		options.DisplayScale:          "days",
		options.DataTableColumns:      []string{"date", "application"},
		options.DataTableGroupingRule: "application",
	}, headless.New())

	var data []record.Record
	for d := 24; d <= 30; d++ {
		app := "firefox"
		if d == 24 {
			app = "netscape"
		}
		data = append(data, record.Record{"date": oct(d).Format("02/01/2006"), "application": app})
	}
	tl.SetData(append(data, extra...))
	tl.SetSelectionRange(oct(29), oct(30))
	require.NoError(t, tl.Render())
	return tl
}

func TestSummarize(t *testing.T) {
	s := Summarize(browsingTimeline(t, record.Record{"date": "not a date"}), "history")

	assert.Equal(t, "history", s.Title)
	assert.Equal(t, "days", s.Scale)
	assert.Equal(t, 7, s.Total)
	assert.Equal(t, 1, s.Undated)
	assert.Equal(t, 2, s.Selected)
	require.NotNil(t, s.Selection)
	assert.Equal(t, oct(29), s.Selection.From)

	require.Len(t, s.Buckets, 7)
	assert.Equal(t, "1982-10-24", s.Buckets[0].Label)
	assert.Equal(t, 1.0, s.Buckets[0].Value)
	assert.False(t, s.Buckets[4].Selected)
	assert.True(t, s.Buckets[5].Selected)
	assert.True(t, s.Buckets[6].Selected)
}

func TestSummarize_SelectionInsideBuckets(t *testing.T) {
	tl := browsingTimeline(t)
	tl.SetSelectionRange(oct(28).Add(12*time.Hour), oct(29).Add(6*time.Hour))

	s := Summarize(tl, "")
	assert.Equal(t, 1, s.Selected)
	assert.False(t, s.Buckets[3].Selected)
	assert.True(t, s.Buckets[4].Selected)
	assert.True(t, s.Buckets[5].Selected)
	assert.False(t, s.Buckets[6].Selected)
}

func TestSummarize_NoSelection(t *testing.T) {
	tl := browsingTimeline(t)
	tl.ClearSelectionRange()

	s := Summarize(tl, "")
	assert.Nil(t, s.Selection)
	assert.Zero(t, s.Selected)
	for _, b := range s.Buckets {
		assert.False(t, b.Selected)
	}
}

func TestEvents_FollowSelection(t *testing.T) {
	v := Events(browsingTimeline(t))

	assert.Equal(t, []string{"date", "application"}, v.Columns)
	require.Len(t, v.Rows, 2)
	assert.Equal(t, "firefox", v.Rows[0].Group)
	assert.Equal(t, []string{"29/10/1982", "firefox"}, v.Rows[0].Values)
}

func TestCellText(t *testing.T) {
	assert.Equal(t, "", cellText(nil))
	assert.Equal(t, "42", cellText(42))
	assert.Equal(t, "1982-10-24 00:00:00", cellText(oct(24)))
	assert.Equal(t, "2.5", cellText(2.5))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, f)

	f, err = ParseFormat("jsonl")
	require.NoError(t, err)
	assert.Equal(t, FormatJSONL, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestNewPresenter(t *testing.T) {
	opts := PresenterOptions{Writer: &bytes.Buffer{}, TerminalWidth: 80}
	assert.IsType(t, &TablePresenter{}, NewPresenter(FormatTable, opts))
	assert.IsType(t, &JSONPresenter{}, NewPresenter(FormatJSON, opts))
	assert.IsType(t, &JSONLPresenter{}, NewPresenter(FormatJSONL, opts))
	assert.IsType(t, &CSVPresenter{}, NewPresenter(FormatCSV, opts))
}

func TestTablePresenter_Summary(t *testing.T) {
	var buf bytes.Buffer
	p := NewTablePresenter(PresenterOptions{Writer: &buf, TerminalWidth: 60})
	require.NoError(t, p.RenderSummary(Summarize(browsingTimeline(t), "history")))

	out := buf.String()
	assert.Contains(t, out, "history")
	assert.Contains(t, out, "1982-10-24 00:00:00 to 1982-10-30 00:00:00 (days)")
	assert.Contains(t, out, "Selected   2")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "* 1982-10-30 █"), last)
	assert.True(t, strings.HasSuffix(last, " 1"), last)
	assert.True(t, strings.HasPrefix(lines[len(lines)-7], "  1982-10-24"))
}

func TestTablePresenter_EmptySummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewTablePresenter(PresenterOptions{Writer: &buf, TerminalWidth: 60})
	require.NoError(t, p.RenderSummary(&SummaryView{Title: "empty"}))
	assert.Contains(t, buf.String(), "No buckets in range.")
}

func TestTablePresenter_Events(t *testing.T) {
	var buf bytes.Buffer
	p := NewTablePresenter(PresenterOptions{Writer: &buf, TerminalWidth: 60})
	require.NoError(t, p.RenderEvents(Events(browsingTimeline(t))))

	out := buf.String()
	assert.Contains(t, out, "Events (2)")
	assert.Contains(t, out, "\nfirefox\n")
	assert.Contains(t, out, "date        application")
	assert.Contains(t, out, "29/10/1982  firefox")
}

func TestTablePresenter_ConfigAndMessages(t *testing.T) {
	var buf bytes.Buffer
	p := NewTablePresenter(PresenterOptions{Writer: &buf, TerminalWidth: 60})

	require.NoError(t, p.RenderConfig(&ConfigView{
		Location: "/tmp/config.yaml",
		Values:   map[string]any{"display": map[string]any{"scale": "days"}},
	}))
	require.NoError(t, p.RenderError(errors.New("boom")))
	require.NoError(t, p.RenderMessage("done"))

	out := buf.String()
	assert.Contains(t, out, "/tmp/config.yaml")
	assert.Contains(t, out, "display.scale")
	assert.Contains(t, out, "Error: boom")
	assert.Contains(t, out, "done\n")
}

func TestColorizer(t *testing.T) {
	assert.Equal(t, "x", NewColorizer(false).Selected("x"))
	assert.Equal(t, Yellow+"x"+Reset, NewColorizer(true).Selected("x"))
}

func TestJSONPresenter_Summary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONPresenter(PresenterOptions{Writer: &buf}).
		RenderSummary(Summarize(browsingTimeline(t), "history")))

	var got SummaryView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 7, got.Total)
	assert.Len(t, got.Buckets, 7)
	assert.True(t, got.Buckets[6].Selected)
}

func TestJSONLPresenter_Events(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONLPresenter(PresenterOptions{Writer: &buf}).
		RenderEvents(Events(browsingTimeline(t))))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var row map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &row))
	assert.Equal(t, map[string]string{"date": "30/10/1982", "application": "firefox", "_group": "firefox"}, row)
}

func TestCSVPresenter(t *testing.T) {
	tl := browsingTimeline(t)

	var buf bytes.Buffer
	p := NewCSVPresenter(PresenterOptions{Writer: &buf})
	require.NoError(t, p.RenderSummary(Summarize(tl, "")))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 8)
	assert.Equal(t, []string{"bucket", "label", "value", "selected"}, rows[0])
	assert.Equal(t, []string{"1982-10-30T00:00:00Z", "1982-10-30", "1", "true"}, rows[7])

	buf.Reset()
	p = NewCSVPresenter(PresenterOptions{Writer: &buf})
	require.NoError(t, p.RenderEvents(Events(tl)))
	rows, err = csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"group", "date", "application"},
		{"firefox", "29/10/1982", "firefox"},
		{"firefox", "30/10/1982", "firefox"},
	}, rows)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "-1,000", FormatNumber(-1000))
	assert.Equal(t, "2.50", FormatValue(2.5))
	assert.Equal(t, "-", FormatTime(time.Time{}))
	assert.Equal(t, "█████░░░░░", Bar(1, 2, 10))
	assert.Equal(t, "░░░", Bar(0, 0, 3))
	assert.Equal(t, "abc...", TruncateString("abcdefgh", 6))
}
