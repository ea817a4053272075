package main

import (
	"fmt"

	"github.com/Shivanand-hulikatti/event-finder/internal/database"
	"github.com/Shivanand-hulikatti/event-finder/internal/repository"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var migrateSkipSeed bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create tables and seed the district table",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := database.NewPool(ctx, cfg.DSN())
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		logrus.Info("schema applied")

		if migrateSkipSeed {
			return nil
		}
		if err := repository.SeedDistricts(ctx, pool); err != nil {
			return err
		}
		logrus.Info("districts seeded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVar(&migrateSkipSeed, "skip-seed", false, "Only apply the schema")
}
