package cmd

import (
	"cinema-ticketing/migrations"
	"cinema-ticketing/pkg/database"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

// Migrate applies the embedded schema migrations.
func Migrate(config utils.DatabaseConfig, log *zap.Logger) error {
	log.Info("Applying database migrations", zap.String("database", config.Name))
	if err := database.Migrate(config.DSN(), migrations.FS); err != nil {
		return err
	}
	log.Info("Database schema is up to date")
	return nil
}
