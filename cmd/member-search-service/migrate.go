package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"member-search-service/internal/config"
	"member-search-service/internal/migrations"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Manage the postgres schema",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		if cfg.DB.Driver != config.DriverPostgres {
			return errMemoryMigrate
		}

		b, err := openBackend(context.Background(), cfg, logger)
		if err != nil {
			return err
		}
		defer b.close()

		db := migrations.OpenDB(b.db.Pool)
		defer db.Close()

		action := "up"
		if len(args) > 0 {
			action = args[0]
		}

		switch action {
		case "up":
			return migrations.Up(db)
		case "down":
			return migrations.Down(db)
		case "status":
			return migrations.Status(db)
		}
		return fmt.Errorf("unknown migrate action %q", action)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
