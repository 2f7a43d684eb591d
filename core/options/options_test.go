package options

import (
	"testing"
	"time"

	"github.com/safedep/timelineviewer/core/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allNames() []Name {
	return []Name{
		DataCountHandler, DataDateHandler, DataDateFormat, DisplayChartType,
		DisplayInteractionType, DisplayHeight, DisplayWidth, DisplayMargins,
		DisplayStartDate, DisplayEndDate, DisplayScale, DisplayTicks, DisplayColors,
		DisplayNavigationStep, DataTableSize, DataTableColumns, DataTableGroupingRule,
	}
}

func TestDefaults_CoverEveryOption(t *testing.T) {
	d := Defaults()
	for _, name := range allNames() {
		_, ok := d[name]
		assert.True(t, ok, "missing default for %s", name)
	}
}

func TestDefaults_ReturnsCopy(t *testing.T) {
	d := Defaults()
	d[DisplayHeight] = 1

	assert.Equal(t, 300, Defaults()[DisplayHeight])
}

func TestStore_GetDefaults(t *testing.T) {
	s := New(nil)

	assert.Equal(t, "bar", s.Get(DisplayChartType))
	assert.Equal(t, 300, s.Int(DisplayHeight))
	assert.Equal(t, 1500, s.Int(DisplayWidth))
	assert.Equal(t, "months", s.String(DisplayScale))
	assert.Equal(t, "years", s.String(DisplayNavigationStep))
	assert.Equal(t, []string{"steelblue"}, s.Strings(DisplayColors))
	assert.Equal(t, Margins{Top: 10, Right: 50, Bottom: 30, Left: 30}, s.Margins())
	assert.Equal(t, "%d/%m/%Y", s.String(DataDateFormat))
}

func TestStore_OverridesAndSet(t *testing.T) {
	s := New(Values{DisplayChartType: "line"})
	assert.Equal(t, "line", s.Get(DisplayChartType))

	s.Set(DisplayChartType, "area")
	assert.Equal(t, "area", s.Get(DisplayChartType))

	s.Set(DisplayHeight, "not a number")
	assert.Equal(t, 0, s.Int(DisplayHeight))
}

func TestStore_InstancesIndependent(t *testing.T) {
	overrides := Values{DisplayTicks: 8}
	a := New(overrides)
	b := New(nil)

	a.Set(DisplayTicks, 2)
	overrides[DisplayTicks] = 99

	assert.Equal(t, 2, a.Int(DisplayTicks))
	assert.Equal(t, 4, b.Int(DisplayTicks))
}

func TestStore_Values(t *testing.T) {
	s := New(Values{DisplayScale: "days"})
	v := s.Values()

	assert.Equal(t, "days", v[DisplayScale])
	assert.Equal(t, 4, v[DisplayTicks])
}

func TestStore_MarginsFromMap(t *testing.T) {
	s := New(Values{DisplayMargins: map[string]any{"top": 1, "right": 2, "bottom": 3, "left": 4}})
	assert.Equal(t, Margins{Top: 1, Right: 2, Bottom: 3, Left: 4}, s.Margins())
}

func TestStore_CountHandler(t *testing.T) {
	e := record.New(record.Record{"count": 7})

	assert.Equal(t, 1.0, New(nil).CountHandler()(e))
	assert.Equal(t, 7.0, New(Values{DataCountHandler: "count"}).CountHandler()(e))
	assert.Equal(t, 2.0, New(Values{DataCountHandler: func(*record.Event) int { return 2 }}).CountHandler()(e))
	assert.Equal(t, 1.0, New(Values{DataCountHandler: nil}).CountHandler()(e))

	assert.Panics(t, func() { New(Values{DataCountHandler: 12}).CountHandler() })
}

func TestStore_DateHandler(t *testing.T) {
	e := record.New(record.Record{"date": "24/10/1982", "when": "30/10/1982"})

	assert.Equal(t, "24/10/1982", New(nil).DateHandler()(e))
	assert.Equal(t, "30/10/1982", New(Values{DataDateHandler: "when"}).DateHandler()(e))
}

func TestStore_Columns(t *testing.T) {
	assert.Nil(t, New(nil).Columns())

	cols := New(Values{DataTableColumns: []string{"name", "date"}}).Columns()
	require.Len(t, cols, 2)
	assert.Equal(t, "name", cols[0].Label)
	assert.Equal(t, "firefox", cols[0].Value(record.New(record.Record{"name": "firefox"})))
}

func TestStore_GroupingRule(t *testing.T) {
	assert.NotNil(t, New(nil).GroupingRule())
	assert.Nil(t, New(Values{DataTableGroupingRule: nil}).GroupingRule())

	rule := New(Values{DataTableGroupingRule: "application"}).GroupingRule()
	assert.Equal(t, "netscape", rule(record.New(record.Record{"application": "netscape"})))
}

func TestStore_Date(t *testing.T) {
	s := New(nil)

	_, auto, err := s.Date(DisplayStartDate)
	require.NoError(t, err)
	assert.True(t, auto)

	s.Set(DisplayStartDate, "06/07/1996")
	ts, auto, err := s.Date(DisplayStartDate)
	require.NoError(t, err)
	assert.False(t, auto)
	assert.Equal(t, time.Date(1996, time.July, 6, 0, 0, 0, 0, time.UTC), ts)

	literal := time.Date(1997, time.July, 6, 0, 0, 0, 0, time.UTC)
	s.Set(DisplayEndDate, literal)
	ts, auto, err = s.Date(DisplayEndDate)
	require.NoError(t, err)
	assert.False(t, auto)
	assert.Equal(t, literal, ts)

	s.Set(DisplayEndDate, "sometime")
	_, _, err = s.Date(DisplayEndDate)
	assert.Error(t, err)
}
