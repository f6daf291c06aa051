package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mbelotti-dev/orariodoc/internal/output"
)

// removeCmd represents the remove command.
var removeCmd = &cobra.Command{
	Use:     "remove ID",
	Aliases: []string{"rm", "delete", "del"},
	Short:   "Remove a lesson from the timetable",
	Long: `Remove a lesson by id. Removing an id that no longer exists is not an
error; the timetable is simply left as it is.

Examples:
  orariodoc remove 0194f9c2-7f1a-7e5e-b382-d4e9a97c1a11`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	removed, err := ctx.Service.Remove(args[0])
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		resp := output.RemoveResponse{Status: "removed"}
		if removed == nil {
			resp.Status = "not_found"
		} else {
			resp.Lesson = output.NewLessonOutput(removed)
		}
		return ctx.Formatter.JSON(resp)
	}

	cli := ctx.CLIFormatter()
	if removed == nil {
		cli.Warning("No lesson with that id; nothing removed.")
		return nil
	}
	cli.Success("Lesson removed.")
	cli.Lesson(removed)
	return nil
}
