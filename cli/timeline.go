package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/safedep/dry/log"
	"github.com/safedep/timelineviewer/config"
	"github.com/safedep/timelineviewer/core/chart"
	"github.com/safedep/timelineviewer/core/datatable"
	"github.com/safedep/timelineviewer/core/record"
	"github.com/safedep/timelineviewer/core/timeline"
	"github.com/safedep/timelineviewer/source"
	"github.com/safedep/timelineviewer/tui"
	"github.com/spf13/cobra"
)

const (
	chartContainer = "timeline"
	tableContainer = "events"
)

// timelineFlags are the source and option flags shared by every command
// that draws a timeline. Option flags override the config file.
type timelineFlags struct {
	sourceFormat string
	table        string
	query        string
	title        string

	chartType   string
	interaction string
	scale       string
	step        string
	start       string
	end         string
	width       int
	height      int
	ticks       int
	colors      []string

	dateField  string
	dateFormat string
	countField string

	columns []string
	groupBy string
	size    int

	selectFrom string
	selectTo   string
}

func addTimelineFlags(cmd *cobra.Command, f *timelineFlags) {
	flags := cmd.Flags()

	flags.StringVar(&f.sourceFormat, "source-format", "", "input format: json, jsonl, csv, yaml, sqlite (default: from extension)")
	flags.StringVar(&f.table, "table", "", "SQLite table to read (default: events)")
	flags.StringVar(&f.query, "query", "", "SQLite query to read, overrides --table")
	flags.StringVar(&f.title, "title", "", "chart title (default: source file name)")

	flags.StringVar(&f.chartType, "chart", "", "chart type: bar, line, area")
	flags.StringVar(&f.interaction, "interaction", "", "interaction type: click, brush")
	flags.StringVar(&f.scale, "scale", "", "bucket unit: seconds, minutes, hours, days, weeks, months, years")
	flags.StringVar(&f.step, "step", "", "period navigation unit")
	flags.StringVar(&f.start, "start", "", "window start date, or auto")
	flags.StringVar(&f.end, "end", "", "window end date, or auto")
	flags.IntVar(&f.width, "width", 0, "chart width in pixels")
	flags.IntVar(&f.height, "height", 0, "chart height in pixels")
	flags.IntVar(&f.ticks, "ticks", 0, "y axis tick count")
	flags.StringSliceVar(&f.colors, "color", nil, "chart colors")

	flags.StringVar(&f.dateField, "date-field", "", "record attribute holding the date")
	flags.StringVar(&f.dateFormat, "date-format", "", "strftime format of the date attribute")
	flags.StringVar(&f.countField, "count-field", "", "record attribute holding the event weight")

	flags.StringSliceVar(&f.columns, "columns", nil, "data table columns")
	flags.StringVar(&f.groupBy, "group-by", "", "data table grouping attribute")
	flags.IntVar(&f.size, "size", 0, "data table row limit")

	flags.StringVar(&f.selectFrom, "select-from", "", "initial selection start")
	flags.StringVar(&f.selectTo, "select-to", "", "initial selection end")
}

// apply copies every flag set on the command line into cfg.
func (f *timelineFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	d := &cfg.Display

	setString := func(name string, dst *string, value string) {
		if changed(name) {
			*dst = value
		}
	}
	setInt := func(name string, dst *int, value int) {
		if changed(name) {
			*dst = value
		}
	}

	setString("chart", &d.ChartType, f.chartType)
	setString("interaction", &d.InteractionType, f.interaction)
	setString("scale", &d.Scale, f.scale)
	setString("step", &d.NavigationStep, f.step)
	setString("start", &d.StartDate, f.start)
	setString("end", &d.EndDate, f.end)
	setInt("width", &d.Width, f.width)
	setInt("height", &d.Height, f.height)
	setInt("ticks", &d.Ticks, f.ticks)
	if changed("color") {
		d.Colors = f.colors
	}

	setString("date-field", &cfg.Data.DateField, f.dateField)
	setString("date-format", &cfg.Data.DateFormat, f.dateFormat)
	setString("count-field", &cfg.Data.CountField, f.countField)

	if changed("columns") {
		cfg.Table.Columns = f.columns
	}
	setString("group-by", &cfg.Table.GroupBy, f.groupBy)
	setInt("size", &cfg.Table.Size, f.size)

	if err := cfg.Validate(); err != nil {
		return ErrConfig("invalid option", err)
	}
	return nil
}

func (f *timelineFlags) sourceOptions() (source.Options, error) {
	opts := source.Options{Table: f.table, Query: f.query}
	if f.sourceFormat != "" {
		format, err := source.ParseFormat(f.sourceFormat)
		if err != nil {
			return opts, ErrInput("invalid --source-format", err)
		}
		opts.Format = format
	}
	return opts, nil
}

func (f *timelineFlags) titleFor(path string) string {
	if f.title != "" {
		return f.title
	}
	if path == source.Stdin {
		return "timeline"
	}
	return filepath.Base(path)
}

// selection parses --select-from and --select-to. Both or neither must be
// given.
func (f *timelineFlags) selection(dateFormat string) (from, to time.Time, ok bool, err error) {
	if f.selectFrom == "" && f.selectTo == "" {
		return from, to, false, nil
	}
	if f.selectFrom == "" || f.selectTo == "" {
		return from, to, false, ErrConfig("--select-from and --select-to must be given together", nil)
	}
	if from, err = parseBound(dateFormat, f.selectFrom); err != nil {
		return from, to, false, ErrConfig("invalid --select-from", err)
	}
	if to, err = parseBound(dateFormat, f.selectTo); err != nil {
		return from, to, false, ErrConfig("invalid --select-to", err)
	}
	return from, to, true, nil
}

// parseBound reads a date in the data date format, then as RFC 3339 or a
// plain YYYY-MM-DD date.
func parseBound(dateFormat, s string) (time.Time, error) {
	if t, err := record.ParseDate(dateFormat, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as %s, RFC 3339 or YYYY-MM-DD", s, dateFormat)
}

// loadTimeline reads the source at path into a new timeline drawing with
// engine. A data table is created on tables when columns are configured.
func loadTimeline(cmd *cobra.Command, app *App, path string, f *timelineFlags,
	engine chart.Engine, tables datatable.Engine) (*timeline.Timeline, error) {
	if err := f.apply(cmd, app.Config); err != nil {
		return nil, err
	}

	opts, err := f.sourceOptions()
	if err != nil {
		return nil, err
	}

	from, to, selected, err := f.selection(app.Config.Data.DateFormat)
	if err != nil {
		return nil, err
	}

	records, err := tui.Load(cmd.Context(), "Reading "+path, func(ctx context.Context) ([]record.Record, error) {
		return source.Load(ctx, path, opts)
	}, tui.WithWriter(cmd.ErrOrStderr()))
	if err != nil {
		return nil, ErrInput("failed to load records", err)
	}

	tl := timeline.New(chartContainer, app.Config.Overrides(), engine)
	if tables != nil && app.Config.HasTable() {
		tl.CreateDataTable(tableContainer, tables)
	}
	tl.SetData(records)
	if selected {
		tl.SetSelectionRange(from, to)
	}

	log.Infof("Loaded %d records from %s into timeline %s", len(records), path, tl.ID())
	return tl, nil
}
