package cli

import (
	"fmt"

	"github.com/safedep/timelineviewer/render/xlsx"
	"github.com/spf13/cobra"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	var (
		flags  timelineFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a timeline to an Excel workbook",
		Long: `Export a timeline to an Excel workbook.

The workbook holds a sheet with the per bucket counts and a native chart,
and a sheet with the data table when columns are configured. An initial
selection narrows the data table and is marked on the chart sheet.`,
		Example: `  timelineviewer export history.csv -o history.xlsx --columns date,url
  timelineviewer export history.csv -o week.xlsx --select-from 1982-10-24 --select-to 1982-10-30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			eng := xlsx.New()
			if err := renderTimeline(cmd, app, args[0], &flags, eng, eng); err != nil {
				return err
			}

			if err := eng.SaveAs(output); err != nil {
				return ErrRender("failed to export workbook", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}

	addTimelineFlags(cmd, &flags)
	cmd.Flags().StringVarP(&output, "output", "o", "", "workbook file to write")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
