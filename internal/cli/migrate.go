package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"fileuploader/internal/config"
	"fileuploader/internal/logging"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema if it does not exist",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if cfg.Database.Driver == config.StoreMemory {
		return errors.New("the memory store has no schema to migrate")
	}
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.Location())

	db, err := openDatabase(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	cmd.Printf("%s schema is up to date.\n", cfg.Database.Driver)
	return nil
}
