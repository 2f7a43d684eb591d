package config

import (
	"github.com/safedep/timelineviewer/core/options"
)

// Overrides turns the configuration into timeline option overrides. Field
// names become attribute lookups on each event.
func (c *Config) Overrides() options.Values {
	d := c.Display
	v := options.Values{
		options.DisplayChartType:       d.ChartType,
		options.DisplayInteractionType: d.InteractionType,
		options.DisplayWidth:           d.Width,
		options.DisplayHeight:          d.Height,
		options.DisplayMargins:         d.Margins,
		options.DisplayStartDate:       d.StartDate,
		options.DisplayEndDate:         d.EndDate,
		options.DisplayScale:           d.Scale,
		options.DisplayTicks:           d.Ticks,
		options.DisplayNavigationStep:  d.NavigationStep,
		options.DataDateHandler:        c.Data.DateField,
		options.DataDateFormat:         c.Data.DateFormat,
		options.DataTableSize:          c.Table.Size,
	}

	if len(d.Colors) > 0 {
		v[options.DisplayColors] = d.Colors
	}
	if c.Data.CountField != "" {
		v[options.DataCountHandler] = c.Data.CountField
	}
	if len(c.Table.Columns) > 0 {
		v[options.DataTableColumns] = c.Table.Columns
	}
	if c.Table.GroupBy != "" {
		v[options.DataTableGroupingRule] = c.Table.GroupBy
	}
	return v
}
