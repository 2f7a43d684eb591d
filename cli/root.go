// Package cli provides the command-line interface for timelineviewer.
package cli

import (
	"errors"
	"os"

	"github.com/safedep/dry/log"
	"github.com/safedep/timelineviewer/config"
	"github.com/safedep/timelineviewer/internal/version"
	"github.com/safedep/timelineviewer/tui"
	"github.com/spf13/cobra"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Paths  *config.Paths
}

// NewApp creates a new App with the given configuration.
func NewApp(cfg *config.Config) *App {
	paths := config.ResolvePaths()
	if globalFlags.ConfigPath != "" {
		paths.ConfigFile = globalFlags.ConfigPath
	}

	return &App{
		Config: cfg,
		Paths:  paths,
	}
}

// Presenter creates a presenter writing to cmd's output.
func (a *App) Presenter(cmd *cobra.Command, format tui.Format) tui.Presenter {
	return tui.NewPresenter(format, tui.PresenterOptions{
		Writer:    cmd.OutOrStdout(),
		UseColors: a.Config.ShouldUseColors(),
	})
}

// GlobalFlags holds the global command flags.
type GlobalFlags struct {
	ConfigPath string
	Verbose    bool
	NoColor    bool
}

var globalFlags GlobalFlags

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timelineviewer",
		Short: "Explore dated records on an interactive timeline",
		Long: `Timelineviewer loads dated records from JSON, JSONL, CSV, YAML or SQLite,
counts them per time bucket and draws the result as a bar, line or area chart.

Charts render to the terminal, to a standalone HTML page or to an Excel
workbook. The view command opens an interactive chart with keyboard
navigation, click and range selection, and a data table of the selected
events.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			if os.Getenv("TIMELINEVIEWER_NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			setupInternalLogger()

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "log debug output")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.NoColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		NewRenderCmd(),
		NewViewCmd(),
		NewExportCmd(),
		NewSummaryCmd(),
		NewConfigCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func setupInternalLogger() {
	// The CLI owns stdout.
	_ = os.Setenv("APP_LOG_SKIP_STDOUT_LOGGER", "true")
	if globalFlags.Verbose {
		_ = os.Setenv("APP_LOG_LEVEL", "debug")
	}

	log.Init("timelineviewer", "cli")
}

// loadApp loads the configuration. A missing file means defaults; an
// invalid one is an error.
func loadApp() (*App, error) {
	cfg, err := config.Load(globalFlags.ConfigPath)
	if err != nil {
		if errors.Is(err, config.ErrInvalid) {
			return nil, ErrConfig("invalid configuration", err)
		}
		if globalFlags.ConfigPath != "" {
			return nil, ErrConfig("failed to load configuration", err)
		}
		log.Warnf("Using default configuration: %v", err)
		cfg = config.Default()
	}

	if globalFlags.NoColor {
		cfg.Output.Colors = config.ColorNever
	}

	return NewApp(cfg), nil
}
