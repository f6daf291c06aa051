package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mbelotti-dev/orariodoc/internal/ical"
	"github.com/mbelotti-dev/orariodoc/internal/model"
)

// Export command flags.
var (
	exportFlagFormat string
	exportFlagOutput string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"ex", "dump", "backup"},
	Short:   "Export the timetable",
	Long: `Export the timetable in various formats. JSON exports the whole
document (lessons and settings) and round-trips through import; CSV
exports one row per lesson; ICS exports the lessons as calendar events
placed in the current week.

Examples:
  orariodoc export
  orariodoc export --format csv -o timetable.csv
  orariodoc export --format ics -o timetable.ics`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagFormat, "format", "F", "json", "Export format: json, csv, ics")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (stdout if omitted)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := ctx.Service.Get()
	if err != nil {
		return err
	}

	writer := os.Stdout
	if exportFlagOutput != "" {
		f, err := os.Create(exportFlagOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		writer = f
	}

	switch exportFlagFormat {
	case "json":
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return err
		}
	case "csv":
		if err := exportCSV(writer, data.Lessons); err != nil {
			return err
		}
	case "ics":
		cal := ical.BuildCalendar(data.Lessons, time.Now())
		if _, err := fmt.Fprint(writer, cal.Serialize()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown export format: %s", exportFlagFormat)
	}

	if exportFlagOutput != "" && !ctx.IsJSON() {
		ctx.CLIFormatter().Success("Exported %d lessons to %s.", len(data.Lessons), exportFlagOutput)
	}
	return nil
}

func exportCSV(w *os.File, lessons []model.Lesson) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "class", "day", "day_name", "start", "duration_minutes"}); err != nil {
		return err
	}
	for i := range lessons {
		l := &lessons[i]
		record := []string{
			l.ID,
			l.Name,
			l.Class,
			strconv.Itoa(l.Day),
			model.WeekdayName(l.Day),
			l.Start,
			strconv.Itoa(l.Duration),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
