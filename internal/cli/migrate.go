package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"awesomedevevents/config"
	"awesomedevevents/internal/repository/sqlite"
	"awesomedevevents/migrations"
)

var errSQLiteDown = errors.New("migrate down is only supported for postgres")

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := config.NewLogger(cfg)
		if cfg.StorageDriver == config.DriverSQLite {
			db, err := sqlite.Open(cfg.SQLiteDSN)
			if err != nil {
				return err
			}
			defer db.Close()
			return sqlite.CreateSchema(cmd.Context(), db)
		}
		return migrations.Up(logger, cfg.DBUrl)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert all applied migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.StorageDriver == config.DriverSQLite {
			return errSQLiteDown
		}
		return migrations.Down(config.NewLogger(cfg), cfg.DBUrl)
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
}
