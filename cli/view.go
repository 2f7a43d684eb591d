package cli

import (
	"github.com/safedep/timelineviewer/render/terminal"
	"github.com/safedep/timelineviewer/source"
	"github.com/safedep/timelineviewer/tui/component/viewer"
	"github.com/spf13/cobra"
)

// NewViewCmd creates the view command.
func NewViewCmd() *cobra.Command {
	var flags timelineFlags

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Explore a timeline interactively",
		Long: `Open an interactive timeline of the records in a file.

Move the cursor with the arrow keys, press enter to list the events of a
bucket and space twice to select a range. The data table below the chart
follows the selection when columns are configured. Press ? for all keys.`,
		Example: `  timelineviewer view history.csv --columns date,url --group-by application
  timelineviewer view places.sqlite --query "SELECT visit_date AS date FROM visits"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == source.Stdin {
				return ErrInput("view reads keys from standard input", source.ErrUnsupportedFormat)
			}

			app, err := loadApp()
			if err != nil {
				return err
			}

			eng := terminal.New(nil, 0)
			tl, err := loadTimeline(cmd, app, args[0], &flags, eng, eng)
			if err != nil {
				return err
			}
			defer tl.Destroy()

			if err := viewer.Run(viewer.Options{
				Timeline: tl,
				Engine:   eng,
				Title:    flags.titleFor(args[0]),
			}); err != nil {
				return ErrRender("viewer failed", err)
			}
			return nil
		},
	}

	addTimelineFlags(cmd, &flags)

	return cmd
}
