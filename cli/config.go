package cli

import (
	"fmt"

	"github.com/safedep/timelineviewer/config"
	"github.com/safedep/timelineviewer/tui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or modify configuration",
		Long: `View or modify configuration.

Values in the config file become the default timeline options of every
command. Command line flags override them.`,
	}

	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
		newConfigResetCmd(),
		newConfigInitCmd(),
	)

	return cmd
}

func loadManager() (*App, *config.Manager, error) {
	app, err := loadApp()
	if err != nil {
		return nil, nil, err
	}

	m, err := config.NewManager(app.Paths.ConfigFile)
	if err != nil {
		return nil, nil, ErrConfig("failed to open configuration", err)
	}
	return app, m, nil
}

func newConfigShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := tui.ParseFormat(format)
			if err != nil {
				return ErrConfig("invalid --format", err)
			}

			app, err := loadApp()
			if err != nil {
				return err
			}

			values, err := configValues(app.Config)
			if err != nil {
				return err
			}

			return app.Presenter(cmd, outFormat).RenderConfig(&tui.ConfigView{
				Location: app.Paths.ConfigFile,
				Values:   values,
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json")

	return cmd
}

// configValues turns cfg into nested maps keyed like the config file.
func configValues(cfg *config.Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to read back config: %w", err)
	}
	return values, nil
}

func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get specific config value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			_, m, err := loadManager()
			if err != nil {
				return err
			}

			value := m.Get(key)
			if value == nil {
				return fmt.Errorf("key not found: %s", key)
			}

			switch value.(type) {
			case map[string]any, []any, []string:
				data, err := yaml.Marshal(value)
				if err != nil {
					return err
				}
				_, _ = cmd.OutOrStdout().Write(data)
			default:
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
			}
			return nil
		},
	}

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set config value",
		Example: `  timelineviewer config set display.scale days
  timelineviewer config set table.columns [date, url]`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := config.ParseValue(args[1])

			_, m, err := loadManager()
			if err != nil {
				return err
			}

			if err := m.Set(key, value); err != nil {
				return ErrConfig("failed to set "+key, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, value)
			return nil
		},
	}

	return cmd
}

func newConfigResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset to default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := loadManager()
			if err != nil {
				return err
			}

			if err := m.Reset(); err != nil {
				return ErrConfig("failed to reset configuration", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset to defaults.")
			return nil
		},
	}

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with every default",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := loadManager()
			if err != nil {
				return err
			}

			if err := m.WriteDefaults(force); err != nil {
				return ErrConfig("failed to write configuration", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", m.ConfigPath())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	return cmd
}
