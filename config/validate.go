package config

import (
	"fmt"
	"slices"

	"github.com/safedep/timelineviewer/core/chart"
	"github.com/safedep/timelineviewer/core/granularity"
	"github.com/safedep/timelineviewer/core/options"
)

var (
	chartTypes       = []string{string(chart.KindBar), string(chart.KindLine), string(chart.KindArea)}
	interactionTypes = []string{options.InteractionClick, options.InteractionBrush}
)

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	d := cfg.Display

	if !slices.Contains(chartTypes, d.ChartType) {
		return fmt.Errorf("%w: display.chart_type %q (must be bar, line, or area)", ErrInvalid, d.ChartType)
	}
	if !slices.Contains(interactionTypes, d.InteractionType) {
		return fmt.Errorf("%w: display.interaction_type %q (must be click or brush)", ErrInvalid, d.InteractionType)
	}

	if d.Width <= 0 {
		return fmt.Errorf("%w: display.width must be positive", ErrInvalid)
	}
	if d.Height <= 0 {
		return fmt.Errorf("%w: display.height must be positive", ErrInvalid)
	}
	if d.Margins.Top < 0 || d.Margins.Right < 0 || d.Margins.Bottom < 0 || d.Margins.Left < 0 {
		return fmt.Errorf("%w: display.margins must be non-negative", ErrInvalid)
	}
	if d.Ticks < 0 {
		return fmt.Errorf("%w: display.ticks must be non-negative", ErrInvalid)
	}

	if _, err := granularity.Lookup(d.Scale); err != nil {
		return fmt.Errorf("%w: display.scale: %v", ErrInvalid, err)
	}
	if _, err := granularity.Lookup(d.NavigationStep); err != nil {
		return fmt.Errorf("%w: display.navigation_step: %v", ErrInvalid, err)
	}

	if cfg.Data.DateField == "" {
		return fmt.Errorf("%w: data.date_field must not be empty", ErrInvalid)
	}

	if cfg.Table.Size < 0 {
		return fmt.Errorf("%w: table.size must be non-negative", ErrInvalid)
	}

	if !isValidColorMode(cfg.Output.Colors) {
		return fmt.Errorf("%w: output.colors %q (must be auto, always, or never)", ErrInvalid, cfg.Output.Colors)
	}

	return nil
}

// isValidColorMode returns true if the given mode is valid.
func isValidColorMode(mode ColorMode) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}
