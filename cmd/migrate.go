package main

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-management-api/internal/database"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply, roll back or inspect database migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown), string(database.MigrateStatus)},
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, db := bootstrap()
		defer func() {
			if err := database.Close(db); err != nil {
				log.WithError(err).Error("Failed to close database")
			}
		}()

		command := database.MigrationCommand(args[0])
		if err := database.Migrate(cmd.Context(), db, conf.Database, command); err != nil {
			return fmt.Errorf("migrate %s: %w", command, err)
		}
		log.WithField("command", command).Info("Migration command finished")
		return nil
	},
}
