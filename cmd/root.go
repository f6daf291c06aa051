// Package cmd provides the CLI commands for OrarioDoc.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mbelotti-dev/orariodoc/internal/apperr"
	"github.com/mbelotti-dev/orariodoc/internal/logging"
	"github.com/mbelotti-dev/orariodoc/internal/output"
	"github.com/mbelotti-dev/orariodoc/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
	flagDB     string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "orariodoc",
	Short: "A weekly lesson timetable for teachers",
	Long: `OrarioDoc manages a teacher's weekly timetable from the command line:
add, edit and remove lessons, view the week as a grid, and keep everything
in a local per-user database.

Examples:
  orariodoc add "Matematica" --day 1 --start 08:00 --duration 60 --class 3A
  orariodoc week
  orariodoc edit 0194f9c2-7f1a-7e5e-b382-d4e9a97c1a11 --start 09:00
  orariodoc remove 0194f9c2-7f1a-7e5e-b382-d4e9a97c1a11`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		if flagDebug {
			logging.Init(logging.DebugConfig())
		} else {
			logging.Init(logging.DefaultConfig())
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug
		if flagDB != "" {
			if flagDB == ":memory:" {
				opts.InMemory = true
			} else {
				opts.DBPath = flagDB
			}
		}

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		// The one-time migration runs on every startup; after the first
		// completed run it is a flag check and nothing more. A failure is
		// recoverable: the command proceeds against whatever the store
		// returns.
		if err := ctx.Store.Migrate(); err != nil {
			logging.Warn("startup migration failed, continuing", "error", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli", "Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color mode: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database directory (or ':memory:')")
}

// Execute runs the root command and renders any error in the selected
// output format.
func Execute() error {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	err := rootCmd.Execute()
	if err != nil {
		renderError(err)
	}
	return err
}

// renderError maps the error taxonomy onto user-facing output. Validation
// and conflict errors list every detail so the user can fix them all at
// once; storage errors surface as-is rather than losing data silently.
func renderError(err error) {
	formatter := output.NewFormatter()
	if ctx != nil {
		formatter = ctx.Formatter
	}

	if formatter.Format == output.FormatJSON {
		resp := output.ErrorResponse{Status: "error", Error: err.Error()}
		if ve, ok := apperr.AsValidation(err); ok {
			resp.Status = "invalid"
			resp.Details = ve.Errors
		} else if ce, ok := apperr.AsConflict(err); ok {
			resp.Status = "conflict"
			resp.Conflicts = ce.Names
		} else if apperr.IsNotFound(err) {
			resp.Status = "not_found"
		}
		_ = formatter.JSON(resp)
		return
	}

	cli := output.NewCLIFormatter(formatter)
	switch {
	case apperr.IsValidation(err):
		ve, _ := apperr.AsValidation(err)
		cli.Error("The lesson could not be saved:")
		for _, msg := range ve.Errors {
			cli.Println("  - " + msg)
		}
	case apperr.IsConflict(err):
		ce, _ := apperr.AsConflict(err)
		cli.Error("The lesson overlaps existing lessons:")
		for _, name := range ce.Names {
			cli.Println("  - " + name)
		}
		cli.Muted("Adjust the day, start time or duration and try again.")
	case apperr.IsNotFound(err):
		cli.Error("%v", err)
		cli.Muted("It may have been removed elsewhere; run 'orariodoc week' to refresh.")
	default:
		cli.Error("%v", err)
	}
}
