package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ratesmart/config"
	"ratesmart/internal/domain/lifecycle"
	"ratesmart/internal/errors"
	logs "ratesmart/internal/infra/log"
	"ratesmart/internal/infra/persistence/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logger, err := logs.NewWithWriter(cfg, os.Stdout)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.WithStack(err)
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	logger.Info("Database schema is up to date", slog.String("driver", cfg.Database.Driver))

	return nil
}
