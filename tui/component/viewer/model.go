// Package viewer is an interactive terminal timeline: a chart with a
// movable cursor, keyboard brushing and the data table underneath.
package viewer

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/safedep/timelineviewer/core/aggregate"
	"github.com/safedep/timelineviewer/core/chart"
	"github.com/safedep/timelineviewer/core/eventbus"
	"github.com/safedep/timelineviewer/core/granularity"
	"github.com/safedep/timelineviewer/core/options"
	"github.com/safedep/timelineviewer/core/timeline"
	"github.com/safedep/timelineviewer/render"
)

// chrome is the number of lines around the plot: header, footer, chart
// title, x axis, axis labels, cursor line and status line.
const chrome = 7

var (
	chartKinds = []string{string(chart.KindBar), string(chart.KindLine), string(chart.KindArea)}
	scales     = []string{
		granularity.Seconds, granularity.Minutes, granularity.Hours, granularity.Days,
		granularity.Weeks, granularity.Months, granularity.Years,
	}
)

// status is shared with the timeline event handlers, which outlive any one
// copy of the Model.
type status struct {
	text string
}

type Model struct {
	opts   Options
	width  int
	height int

	header headerModel
	footer footerModel
	help   helpModel

	cursor int
	anchor int
	status *status
	ready  bool
}

func New(opts Options) Model {
	m := Model{
		opts:   opts,
		header: headerModel{title: opts.Title},
		anchor: -1,
		status: &status{},
	}

	st := m.status
	tl := opts.Timeline
	tl.On(eventbus.DataClick, func(e eventbus.Event) {
		p, ok := e.Payload.(timeline.ClickPayload)
		if !ok {
			return
		}
		st.text = fmt.Sprintf("%d events in %s", len(p.Events), label(tl, p.Key))
	})
	tl.On(eventbus.DataBrush, func(e eventbus.Event) {
		p, ok := e.Payload.(timeline.BrushPayload)
		if !ok {
			return
		}
		if p.Range.Empty() {
			st.text = "selection cleared"
			return
		}
		st.text = fmt.Sprintf("%d events selected, %s to %s",
			len(p.Events), label(tl, p.Range.From), label(tl, p.Range.To))
	})
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.render()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tl := m.opts.Timeline

	switch {
	case key.Matches(msg, keys.Quit):
		return *m, tea.Quit

	case key.Matches(msg, keys.ToggleHelp):
		m.help.toggle()

	case key.Matches(msg, keys.Left):
		m.moveCursor(-1)

	case key.Matches(msg, keys.Right):
		m.moveCursor(1)

	case key.Matches(msg, keys.Previous):
		tl.PreviousPeriod()
		m.render()

	case key.Matches(msg, keys.Next):
		tl.NextPeriod()
		m.render()

	case key.Matches(msg, keys.Mark):
		m.mark()

	case key.Matches(msg, keys.Click):
		m.click()

	case key.Matches(msg, keys.Clear):
		m.anchor = -1
		tl.ClearSelectionRange()
		m.status.text = "selection cleared"

	case key.Matches(msg, keys.ChartType):
		tl.SetOption(options.DisplayChartType, next(chartKinds, string(tl.Chart().Kind())))
		m.render()

	case key.Matches(msg, keys.Scale):
		m.cursor, m.anchor = 0, -1
		tl.SetOption(options.DisplayScale, next(scales, tl.Chart().Scale().Name()))
		m.render()
	}

	return *m, nil
}

// render redraws the timeline sized to the window.
func (m *Model) render() {
	eng := m.opts.Engine
	eng.Width = m.width
	eng.Rows = m.chartRows()

	if err := m.opts.Timeline.Render(); err != nil {
		m.footer.lastError = err.Error()
		return
	}
	m.footer.lastError = ""

	if c := eng.Chart(); c != nil {
		c.SetCursor(m.cursor)
		m.cursor = max(c.Cursor(), 0)
	}
}

func (m *Model) chartRows() int {
	rows := m.height - chrome
	if m.opts.Timeline.DataTable() != nil {
		rows /= 2
	}
	return max(rows, 3)
}

func (m *Model) moveCursor(delta int) {
	c := m.opts.Engine.Chart()
	if c == nil {
		return
	}
	c.SetCursor(m.cursor + delta)
	m.cursor = max(c.Cursor(), 0)
}

// mark starts a selection at the cursor, or brushes from the start to the
// cursor when one is pending.
func (m *Model) mark() {
	c := m.opts.Engine.Chart()
	if c == nil {
		return
	}
	buckets := c.Buckets()
	if m.cursor >= len(buckets) {
		return
	}

	tl := m.opts.Timeline
	if m.anchor < 0 {
		m.anchor = m.cursor
		m.status.text = "selecting from " + label(tl, buckets[m.cursor].Key)
		return
	}

	lo, hi := min(m.anchor, m.cursor), max(m.anchor, m.cursor)
	m.anchor = -1

	to := c.Spec.Units.Increment(buckets[hi].Key).Add(-time.Nanosecond)
	if err := c.Brush(aggregate.NewRange(buckets[lo].Key, to)); err != nil {
		m.footer.lastError = err.Error()
	}
}

func (m *Model) click() {
	c := m.opts.Engine.Chart()
	if c == nil {
		return
	}
	buckets := c.Buckets()
	if m.cursor >= len(buckets) {
		return
	}
	if k := buckets[m.cursor].Key; !c.Click(k) {
		m.status.text = "no events in " + label(m.opts.Timeline, k)
	}
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	tl := m.opts.Timeline
	header := m.header.view(m.width, string(tl.Chart().Kind()), tl.Chart().Scale().Name(),
		len(tl.GetData()), len(tl.GetSelectedData()))
	footer := m.footer.view(m.width)
	contentHeight := m.height - 2

	if m.help.visible {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.help.view(m.width, contentHeight), footer)
	}

	var chartView string
	if c := m.opts.Engine.Chart(); c != nil {
		chartView = c.View()
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		chartView,
		statusStyle.Render(m.status.text),
		m.opts.Engine.TableView(),
	)
	content := lipgloss.NewStyle().Width(m.width).Height(contentHeight).MaxHeight(contentHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

// Cursor returns the bucket index under the cursor.
func (m Model) Cursor() int {
	return m.cursor
}

// Status returns the last interaction message.
func (m Model) Status() string {
	return m.status.text
}

func label(tl *timeline.Timeline, t time.Time) string {
	return render.Label(tl.Chart().Scale().Name(), t)
}

func next(values []string, current string) string {
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}

// Run starts the viewer on the alternate screen and blocks until it quits.
func Run(opts Options) error {
	_, err := tea.NewProgram(New(opts), tea.WithAltScreen()).Run()
	return err
}

var _ tea.Model = Model{}
