package cli

import (
	"github.com/safedep/timelineviewer/core/options"
	"github.com/safedep/timelineviewer/render/headless"
	"github.com/safedep/timelineviewer/tui"
	"github.com/spf13/cobra"
)

// NewSummaryCmd creates the summary command.
func NewSummaryCmd() *cobra.Command {
	var (
		flags  timelineFlags
		format string
		events bool
	)

	cmd := &cobra.Command{
		Use:   "summary <file>",
		Short: "Print per bucket event counts",
		Long: `Print the event count of every bucket in the display window.

With --events the rows of the data table follow, narrowed to the selection
when one is given. Columns default to the date field.`,
		Example: `  timelineviewer summary history.csv --scale weeks
  timelineviewer summary history.csv --format json
  timelineviewer summary history.csv --events --select-from 1982-10-29 --select-to 1982-10-30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := tui.ParseFormat(format)
			if err != nil {
				return ErrConfig("invalid --format", err)
			}

			app, err := loadApp()
			if err != nil {
				return err
			}

			tl, err := loadTimeline(cmd, app, args[0], &flags, headless.New(), nil)
			if err != nil {
				return err
			}
			defer tl.Destroy()

			if err := tl.Render(); err != nil {
				return ErrRender("failed to render timeline", err)
			}

			presenter := app.Presenter(cmd, outFormat)
			if !events {
				return presenter.RenderSummary(tui.Summarize(tl, flags.titleFor(args[0])))
			}

			if !app.Config.HasTable() {
				tl.SetOption(options.DataTableColumns, []string{app.Config.Data.DateField})
			}
			return presenter.RenderEvents(tui.Events(tl))
		},
	}

	addTimelineFlags(cmd, &flags)
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv")
	cmd.Flags().BoolVar(&events, "events", false, "print events instead of bucket counts")

	return cmd
}
