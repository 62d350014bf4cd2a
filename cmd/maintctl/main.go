package main

import (
	"fmt"
	"os"
	"time"

	"maintenance-hub-backend/internal/config"
	"maintenance-hub-backend/internal/database"
	"maintenance-hub-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// dbOpener connects to the configured database
type dbOpener func() (*gorm.DB, error)

var (
	waitAttempts int
	waitDelay    time.Duration
)

func newRootCmd(open dbOpener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "maintctl",
		Short:         "Administration commands for the maintenance hub backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().IntVar(&waitAttempts, "wait-attempts", 30, "Connection attempts before giving up")
	rootCmd.PersistentFlags().DurationVar(&waitDelay, "wait-delay", time.Second, "Delay between connection attempts")

	rootCmd.AddCommand(newMigrateCmd(open))
	rootCmd.AddCommand(newSeedCmd(open))
	rootCmd.AddCommand(newCreateSuperAdminCmd(open))
	return rootCmd
}

// openConfigured loads the server configuration and connects with retry so the
// tool can run while a dockerized Postgres is still starting.
func openConfigured() (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	opts := &database.Options{
		Driver:      cfg.DatabaseDriver,
		LogLevel:    gormlogger.Silent,
		SkipMigrate: true,
	}

	var lastErr error
	for attempt := 1; attempt <= waitAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		lastErr = err
		if attempt%10 == 0 || attempt == waitAttempts {
			logrus.WithError(err).Warnf("Database not ready (%d/%d)", attempt, waitAttempts)
		}
		time.Sleep(waitDelay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts: %w", waitAttempts, lastErr)
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	if err := newRootCmd(openConfigured).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
