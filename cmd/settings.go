package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbelotti-dev/orariodoc/internal/output"
)

// settingsCmd represents the settings command.
var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"setting"},
	Short:   "Manage persisted settings",
	Long: `Read and write the settings map stored alongside the timetable
(theme, display preferences, school hours). Keys are free-form; values
are stored as JSON when they parse as JSON, otherwise as plain strings.

Examples:
  orariodoc settings list
  orariodoc settings get theme
  orariodoc settings set theme dark
  orariodoc settings set school_hours '{"start":"08:00","end":"14:00"}'`,
	RunE: runSettingsList,
}

// settingsGetCmd reads one settings key.
var settingsGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

// settingsSetCmd writes one settings key.
var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Store one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

// settingsListCmd lists all settings.
var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsList,
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsListCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsList(cmd *cobra.Command, args []string) error {
	settings, err := ctx.Service.Settings()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.SettingsResponse{Settings: settings})
	}

	cli := ctx.CLIFormatter()
	if len(settings) == 0 {
		cli.Muted("No settings stored.")
		return nil
	}
	for key, value := range settings {
		cli.Println(fmt.Sprintf("%s = %v", key, value))
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	settings, err := ctx.Service.Settings()
	if err != nil {
		return err
	}

	value, ok := settings[args[0]]
	if !ok {
		ctx.CLIFormatter().Muted("(not set)")
		return nil
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{args[0]: value})
	}
	ctx.Formatter.Println(value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	// Structured values are stored structured; anything else is a string.
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		value = raw
	}

	if err := ctx.Service.SetSetting(key, value); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{"status": "saved", key: value})
	}
	ctx.CLIFormatter().Success("Setting '%s' saved.", key)
	return nil
}
