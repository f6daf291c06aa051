package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mbelotti-dev/orariodoc/internal/model"
	"github.com/mbelotti-dev/orariodoc/internal/output"
)

// Add command flags.
var (
	addFlagDay      int
	addFlagStart    string
	addFlagDuration int
	addFlagClass    string
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:     "add NAME",
	Aliases: []string{"a", "new"},
	Short:   "Add a lesson to the timetable",
	Long: `Add a lesson. The save is rejected if any field is invalid or if the
lesson would overlap an existing lesson on the same day; back-to-back
lessons are allowed.

Examples:
  orariodoc add "Matematica" --day 1 --start 08:00 --duration 60
  orariodoc add "Storia" -d 2 -s 11:00 -m 60 --class 4B`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().IntVarP(&addFlagDay, "day", "d", 1, "Weekday, 0 (Sunday) to 6 (Saturday)")
	addCmd.Flags().StringVarP(&addFlagStart, "start", "s", "", "Start time, HH:MM")
	addCmd.Flags().IntVarP(&addFlagDuration, "duration", "m", 60, "Duration in minutes (1-480)")
	addCmd.Flags().StringVarP(&addFlagClass, "class", "c", "", "Class/group label")
	addCmd.MarkFlagRequired("start")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	candidate := model.Lesson{
		Name:     args[0],
		Class:    addFlagClass,
		Day:      addFlagDay,
		Start:    addFlagStart,
		Duration: addFlagDuration,
	}

	saved, err := ctx.Service.Save(candidate, "")
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.SaveResponse{
			Status: "added",
			Lesson: output.NewLessonOutput(saved),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success("Lesson added.")
	cli.Lesson(saved)
	return nil
}
