package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mbelotti-dev/orariodoc/internal/output"
	"github.com/mbelotti-dev/orariodoc/internal/storage"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run the one-time legacy data migration",
	Long: `Transfer data from the legacy flat-file store into the database. The
migration also runs automatically on startup; this command exists for
scripting and for checking migration status. Running it again after it
has completed does nothing.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if err := ctx.Store.Migrate(); err != nil {
		return err
	}

	migrated := false
	if ds, ok := ctx.Store.(*storage.DurableStore); ok {
		var err error
		migrated, err = ds.Migrated()
		if err != nil {
			return err
		}
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.MigrateResponse{Status: "ok", Migrated: migrated})
	}

	cli := ctx.CLIFormatter()
	if migrated {
		cli.Success("Migration complete.")
	} else {
		// Legacy-only mode: there is no durable store to migrate into.
		cli.Warning("Running on the legacy store; nothing to migrate.")
	}
	return nil
}
