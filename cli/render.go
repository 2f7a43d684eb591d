package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/safedep/timelineviewer/core/chart"
	"github.com/safedep/timelineviewer/core/datatable"
	"github.com/safedep/timelineviewer/render/echarts"
	"github.com/safedep/timelineviewer/render/terminal"
	"github.com/safedep/timelineviewer/tui"
	"github.com/spf13/cobra"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	var (
		flags  timelineFlags
		output string
		rows   int
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Draw a timeline chart",
		Long: `Draw a timeline chart of the records in a file.

Without --output the chart is drawn on the terminal, followed by the data
table when columns are configured. With --output a standalone HTML page is
written instead. Use - to read standard input.`,
		Example: `  timelineviewer render history.csv --scale days
  timelineviewer render history.json --chart area -o history.html
  cat events.jsonl | timelineviewer render - --source-format jsonl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			if output != "" {
				return renderHTML(cmd, app, args[0], &flags, output)
			}

			if !app.Config.ShouldUseColors() {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			eng := terminal.New(cmd.OutOrStdout(), tui.Width(cmd.OutOrStdout()))
			eng.Rows = rows
			return renderTimeline(cmd, app, args[0], &flags, eng, eng)
		},
	}

	addTimelineFlags(cmd, &flags)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write an HTML page to this file")
	cmd.Flags().IntVar(&rows, "rows", 0, "terminal chart height in lines (default: from --height)")

	return cmd
}

func renderHTML(cmd *cobra.Command, app *App, path string, flags *timelineFlags, output string) error {
	file, err := os.Create(output)
	if err != nil {
		return ErrRender("failed to create output file", err)
	}
	defer file.Close()

	if err := renderTimeline(cmd, app, path, flags, echarts.New(file, flags.titleFor(path)), nil); err != nil {
		return err
	}

	_, _ = cmd.OutOrStdout().Write([]byte("Wrote " + output + "\n"))
	return nil
}

func renderTimeline(cmd *cobra.Command, app *App, path string, flags *timelineFlags,
	engine chart.Engine, tables datatable.Engine) error {
	tl, err := loadTimeline(cmd, app, path, flags, engine, tables)
	if err != nil {
		return err
	}
	defer tl.Destroy()

	if err := tl.Render(); err != nil {
		return ErrRender("failed to render timeline", err)
	}
	return nil
}
