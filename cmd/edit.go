package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mbelotti-dev/orariodoc/internal/apperr"
	"github.com/mbelotti-dev/orariodoc/internal/output"
)

// Edit command flags.
var (
	editFlagName     string
	editFlagDay      int
	editFlagStart    string
	editFlagDuration int
	editFlagClass    string
)

// editCmd represents the edit command.
var editCmd = &cobra.Command{
	Use:     "edit ID",
	Aliases: []string{"e", "update"},
	Short:   "Edit an existing lesson",
	Long: `Edit a lesson by id. Only the given flags change; everything else is
kept. The edited lesson is not checked against itself, so leaving the
time unchanged never reports a conflict.

Examples:
  orariodoc edit 0194f9c2-7f1a-7e5e-b382-d4e9a97c1a11 --start 09:00
  orariodoc edit 0194f9c2-7f1a-7e5e-b382-d4e9a97c1a11 --name "Fisica" --day 3`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editFlagName, "name", "n", "", "New lesson name")
	editCmd.Flags().IntVarP(&editFlagDay, "day", "d", -1, "New weekday, 0 (Sunday) to 6 (Saturday)")
	editCmd.Flags().StringVarP(&editFlagStart, "start", "s", "", "New start time, HH:MM")
	editCmd.Flags().IntVarP(&editFlagDuration, "duration", "m", 0, "New duration in minutes (1-480)")
	editCmd.Flags().StringVarP(&editFlagClass, "class", "c", "", "New class/group label")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id := args[0]

	data, err := ctx.Service.Get()
	if err != nil {
		return err
	}
	idx := data.FindLesson(id)
	if idx < 0 {
		return &apperr.NotFoundError{ID: id}
	}

	// Merge the given flags over the stored lesson; the id is preserved
	// by Save.
	candidate := data.Lessons[idx]
	if cmd.Flags().Changed("name") {
		candidate.Name = editFlagName
	}
	if cmd.Flags().Changed("day") {
		candidate.Day = editFlagDay
	}
	if cmd.Flags().Changed("start") {
		candidate.Start = editFlagStart
	}
	if cmd.Flags().Changed("duration") {
		candidate.Duration = editFlagDuration
	}
	if cmd.Flags().Changed("class") {
		candidate.Class = editFlagClass
	}

	saved, err := ctx.Service.Save(candidate, id)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.SaveResponse{
			Status: "updated",
			Lesson: output.NewLessonOutput(saved),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success("Lesson updated.")
	cli.Lesson(saved)
	return nil
}
