package config

import (
	"github.com/safedep/timelineviewer/core/options"
	"github.com/safedep/timelineviewer/core/record"
	"github.com/spf13/viper"
)

// setDefaults sets all default configuration values. They match the
// timeline option defaults.
func setDefaults(v *viper.Viper) {
	d := options.Defaults()
	margins := d[options.DisplayMargins].(options.Margins)

	// Display defaults
	v.SetDefault("display.chart_type", d[options.DisplayChartType])
	v.SetDefault("display.interaction_type", d[options.DisplayInteractionType])
	v.SetDefault("display.width", d[options.DisplayWidth])
	v.SetDefault("display.height", d[options.DisplayHeight])
	v.SetDefault("display.margins.top", margins.Top)
	v.SetDefault("display.margins.right", margins.Right)
	v.SetDefault("display.margins.bottom", margins.Bottom)
	v.SetDefault("display.margins.left", margins.Left)
	v.SetDefault("display.start_date", options.Auto)
	v.SetDefault("display.end_date", options.Auto)
	v.SetDefault("display.scale", d[options.DisplayScale])
	v.SetDefault("display.ticks", d[options.DisplayTicks])
	v.SetDefault("display.colors", d[options.DisplayColors])
	v.SetDefault("display.navigation_step", d[options.DisplayNavigationStep])

	// Data defaults
	v.SetDefault("data.date_field", "date")
	v.SetDefault("data.date_format", record.DefaultDateFormat)
	v.SetDefault("data.count_field", "")

	// Table defaults
	v.SetDefault("table.size", d[options.DataTableSize])
	v.SetDefault("table.columns", []string{})
	v.SetDefault("table.group_by", "")

	// Output defaults
	v.SetDefault("output.colors", string(ColorAuto))
}
