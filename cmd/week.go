package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mbelotti-dev/orariodoc/internal/output"
	"github.com/mbelotti-dev/orariodoc/internal/tui"
)

// Week command flags.
var (
	weekFlagDay       int
	weekFlagHideEmpty bool
)

// weekCmd represents the week command.
var weekCmd = &cobra.Command{
	Use:     "week",
	Aliases: []string{"w", "list", "ls"},
	Short:   "Show the weekly timetable",
	Long: `Render the timetable as a weekly grid. The first day of the week and
the displayed hours follow the config file.

Examples:
  orariodoc week
  orariodoc week --day 1
  orariodoc week --format json`,
	RunE: runWeek,
}

func init() {
	weekCmd.Flags().IntVarP(&weekFlagDay, "day", "d", -1, "Show a single weekday, 0 (Sunday) to 6 (Saturday)")
	weekCmd.Flags().BoolVar(&weekFlagHideEmpty, "hide-empty", false, "Skip days without lessons")

	rootCmd.AddCommand(weekCmd)
}

func runWeek(cmd *cobra.Command, args []string) error {
	// Init rather than Get: the week view is the initial render, and a
	// failed read degrades to the empty document instead of aborting.
	data, err := ctx.Service.Init()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		if weekFlagDay >= 0 {
			return ctx.Formatter.JSON(output.NewWeekResponse(data.LessonsOnDay(weekFlagDay)))
		}
		return ctx.Formatter.JSON(output.NewWeekResponse(data.Lessons))
	}

	if ctx.Formatter.Format == output.FormatPlain {
		ctx.CLIFormatter().LessonList(data, ctx.Config.WeekdayOrder())
		return nil
	}

	opts := tui.GridOptionsFromConfig(ctx.Config, ctx.Formatter.IsColorEnabled())
	opts.HideEmpty = weekFlagHideEmpty
	if weekFlagDay >= 0 {
		ctx.Formatter.Print(tui.RenderDay(data, weekFlagDay, opts))
		return nil
	}
	ctx.Formatter.Print(tui.RenderWeek(data, opts))
	return nil
}
