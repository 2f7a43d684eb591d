// Package xlsx writes timeline charts and data tables into an Excel workbook.
//
// Renders only record what was drawn last. The workbook is assembled when it
// is written, so re-rendering never leaves stale rows or duplicate charts.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/safedep/timelineviewer/core/chart"
	"github.com/safedep/timelineviewer/core/datatable"
	"github.com/safedep/timelineviewer/render"
	"github.com/safedep/timelineviewer/render/headless"
	"github.com/xuri/excelize/v2"
)

const (
	ChartSheet = "Timeline"
	TableSheet = "Events"

	defaultSheet = "Sheet1"
	dateTimeFmt  = 22
)

// ErrEmptyWorkbook is returned when writing a workbook nothing was rendered into.
var ErrEmptyWorkbook = errors.New("nothing rendered into workbook")

// Engine is a chart and table engine backed by one workbook.
type Engine struct {
	chart *Chart
	table *datatable.Table
}

func New() *Engine {
	return &Engine{}
}

// NewChart implements chart.Engine.
func (e *Engine) NewChart(container string, spec chart.Spec) (chart.Drawable, error) {
	return &Chart{Chart: headless.NewChart(container, spec), engine: e}, nil
}

// RenderTable implements datatable.Engine.
func (e *Engine) RenderTable(_ string, t datatable.Table) error {
	e.table = &t
	return nil
}

// Build assembles a workbook from the last rendered chart and table. The
// caller owns the returned file.
func (e *Engine) Build() (*excelize.File, error) {
	if e.chart == nil && e.table == nil {
		return nil, ErrEmptyWorkbook
	}

	b := &builder{file: excelize.NewFile()}
	if err := b.init(); err != nil {
		_ = b.file.Close()
		return nil, err
	}

	if e.chart != nil {
		if err := b.writeChart(e.chart); err != nil {
			_ = b.file.Close()
			return nil, err
		}
	}
	if e.table != nil {
		if err := b.writeTable(*e.table); err != nil {
			_ = b.file.Close()
			return nil, err
		}
	}
	return b.file, nil
}

// Write streams the workbook to w.
func (e *Engine) Write(w io.Writer) error {
	f, err := e.Build()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveAs writes the workbook to path.
func (e *Engine) SaveAs(path string) error {
	f, err := e.Build()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// Chart records itself on the engine when rendered.
type Chart struct {
	*headless.Chart
	engine *Engine
}

func (c *Chart) Render() error {
	c.engine.chart = c
	return c.Chart.Render()
}

type builder struct {
	file   *excelize.File
	sheets int
	bold   int
	dates  int
}

func (b *builder) init() error {
	var err error
	if b.bold, err = b.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if b.dates, err = b.file.NewStyle(&excelize.Style{NumFmt: dateTimeFmt}); err != nil {
		return fmt.Errorf("failed to create date style: %w", err)
	}
	return nil
}

// sheet adds a worksheet, renaming the default one for the first.
func (b *builder) sheet(name string) error {
	defer func() { b.sheets++ }()
	if b.sheets == 0 {
		return b.file.SetSheetName(defaultSheet, name)
	}
	_, err := b.file.NewSheet(name)
	return err
}

func (b *builder) row(sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := b.file.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func (b *builder) header(sheet string, values []any) error {
	if err := b.row(sheet, 1, values); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(values), 1)
	if err != nil {
		return err
	}
	if err := b.file.SetCellStyle(sheet, "A1", last, b.bold); err != nil {
		return err
	}
	return b.file.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (b *builder) writeTable(t datatable.Table) error {
	if err := b.sheet(TableSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", TableSheet, err)
	}

	header := []any{"Group"}
	for _, c := range t.Columns {
		header = append(header, c)
	}
	if err := b.header(TableSheet, header); err != nil {
		return err
	}

	row := 2
	for _, g := range t.Groups {
		for _, r := range g.Rows {
			if err := b.row(TableSheet, row, append([]any{g.Key}, r...)); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func (b *builder) writeChart(c *Chart) error {
	if err := b.sheet(ChartSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", ChartSheet, err)
	}
	if err := b.header(ChartSheet, []any{"Bucket", "Count", "Selected"}); err != nil {
		return err
	}

	data := c.Visible()
	sel := c.Filters()
	for i, d := range data {
		selected := render.Selected(sel, c.Spec.Units, d.Key)
		if err := b.row(ChartSheet, i+2, []any{d.Key, d.Value, selected}); err != nil {
			return err
		}
	}
	if len(data) == 0 {
		return nil
	}

	last := len(data) + 1
	if err := b.file.SetCellStyle(ChartSheet, "A2", fmt.Sprintf("A%d", last), b.dates); err != nil {
		return err
	}
	if err := b.file.SetColWidth(ChartSheet, "A", "A", 18); err != nil {
		return err
	}

	hex, _ := render.Hex(render.Primary(c.Spec.Colors, "#4682B4"))
	fill := excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hex}}
	series := excelize.ChartSeries{
		Name:       fmt.Sprintf("'%s'!$B$1", ChartSheet),
		Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", ChartSheet, last),
		Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", ChartSheet, last),
		Fill:       fill,
		Line:       excelize.ChartLine{Fill: fill},
	}

	title := fmt.Sprintf("Events per %s, %s to %s", c.Spec.Units.Name(),
		c.Spec.Domain.From.Format(time.DateOnly), c.Spec.Domain.To.Format(time.DateOnly))

	return b.file.AddChart(ChartSheet, "E2", &excelize.Chart{
		Type:      chartType(c.Spec),
		Series:    []excelize.ChartSeries{series},
		Title:     []excelize.RichTextRun{{Text: title}},
		Legend:    excelize.ChartLegend{Position: "none"},
		Dimension: excelize.ChartDimension{Width: pixels(c.Spec.Width, 480), Height: pixels(c.Spec.Height, 290)},
	})
}

func chartType(spec chart.Spec) excelize.ChartType {
	switch {
	case spec.Primitive == chart.PrimitiveBar:
		return excelize.Col
	case spec.RenderArea:
		return excelize.Area
	default:
		return excelize.Line
	}
}

func pixels(px, fallback int) uint {
	if px <= 0 {
		return uint(fallback)
	}
	return uint(px)
}
