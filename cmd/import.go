package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbelotti-dev/orariodoc/internal/apperr"
	"github.com/mbelotti-dev/orariodoc/internal/model"
)

// Import command flags.
var (
	importFlagReplace bool
	importFlagDryRun  bool
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:     "import FILE",
	Aliases: []string{"imp", "restore"},
	Short:   "Import a timetable from a file",
	Long: `Import lessons from a JSON export. The file may be a full document
({"lessons": [...], "settings": {...}}) or a bare lesson array.

By default lessons are merged one by one: each is validated and checked
for conflicts, and rejected lessons are reported without stopping the
rest. With --replace the whole stored document is overwritten.

Examples:
  orariodoc import backup.json
  orariodoc import backup.json --replace
  orariodoc import backup.json --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importFlagReplace, "replace", false, "Overwrite the stored document instead of merging")
	importCmd.Flags().BoolVar(&importFlagDryRun, "dry-run", false, "Preview the import without making changes")

	rootCmd.AddCommand(importCmd)
}

// parseImportFile accepts either a full AppData document or a bare
// lesson array.
func parseImportFile(path string) (*model.AppData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data := &model.AppData{}
	if err := json.Unmarshal(raw, data); err == nil && (data.Lessons != nil || data.Settings != nil) {
		data.Normalize()
		return data, nil
	}

	var lessons []model.Lesson
	if err := json.Unmarshal(raw, &lessons); err != nil {
		return nil, apperr.Wrap(err, "file is neither a document nor a lesson array")
	}
	data = model.NewAppData()
	data.Lessons = lessons
	return data, nil
}

func runImport(cmd *cobra.Command, args []string) error {
	incoming, err := parseImportFile(args[0])
	if err != nil {
		return err
	}

	cli := ctx.CLIFormatter()

	if importFlagReplace {
		if importFlagDryRun {
			cli.Warning("Dry run: would replace the document with %d lessons.", len(incoming.Lessons))
			return nil
		}
		if err := ctx.Service.Replace(incoming); err != nil {
			return err
		}
		cli.Success("Imported %d lessons (replaced).", len(incoming.Lessons))
		return nil
	}

	// Merge mode: each lesson goes through the normal save path, so it is
	// validated and conflict-checked against everything imported before it.
	imported, skipped := 0, 0
	for i := range incoming.Lessons {
		l := incoming.Lessons[i]
		l.ID = "" // fresh ids; the exporting install owns the old ones
		if importFlagDryRun {
			cli.Println("would import: " + l.Label())
			continue
		}
		if _, err := ctx.Service.Save(l, ""); err != nil {
			skipped++
			cli.Warning("skipped %s: %v", l.Label(), err)
			continue
		}
		imported++
	}

	if importFlagDryRun {
		return nil
	}
	if skipped > 0 {
		cli.Warning("Imported %d lessons, skipped %d.", imported, skipped)
	} else {
		cli.Success("Imported %d lessons.", imported)
	}
	return nil
}
