package cmd

import (
	"context"
	"log"
	"time"

	"country-exchange/core/config"
	"country-exchange/core/database"
	"country-exchange/core/logger"
	"country-exchange/core/storage"
	"country-exchange/feature/countries"
	"country-exchange/feature/countries/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var refreshTimeoutSeconds int

// refreshCmd runs one reconciliation pass from the command line, without
// starting the HTTP server. Useful for cron-driven refreshes.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Run one reconciliation pass against the external feeds",
	Long: `Fetches the country catalogue and exchange rates, reconciles them into
the database, updates the aggregate status, and regenerates the summary image.

Examples:
  # Refresh with the configured defaults
  country-exchange refresh

  # Give slow feeds more room
  country-exchange refresh --timeout 120`,
	RunE: runRefresh,
}

func init() {
	refreshCmd.Flags().IntVar(&refreshTimeoutSeconds, "timeout", 60, "Overall run timeout in seconds")
	RootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// CLI runs log to the console regardless of the configured format.
	logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logg.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	if err := models.Migrate(db); err != nil {
		return err
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return err
	}

	svc := countries.NewService(db, store, cfg.Storage.Bucket, logg, cfg.Sources)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(refreshTimeoutSeconds)*time.Second)
	defer cancel()

	result, err := svc.Refresh(ctx)
	if err != nil {
		return err
	}

	logg.Info("Refresh finished",
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated),
		zap.Int("total", result.Inserted+result.Updated),
	)
	return nil
}
