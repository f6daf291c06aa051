package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mbelotti-dev/orariodoc/internal/tui"
)

// viewCmd represents the view command.
var viewCmd = &cobra.Command{
	Use:     "view",
	Aliases: []string{"v", "dashboard"},
	Short:   "Browse the timetable interactively",
	Long: `Open a read-only interactive view of the week. Use the arrow keys to
move between days; the selected day lists lesson ids for use with the
edit and remove commands.`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	// Migration already ran in the root PreRun; the viewer loads through
	// the service on startup and on 'r'.
	if _, err := ctx.Service.Init(); err != nil {
		return err
	}

	model := tui.NewViewer(ctx.Service, tui.GridOptionsFromConfig(ctx.Config, true))
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
