// Package cli wires the redbull command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/Bhishaj9/redbull-backend/internal/config"
	"github.com/Bhishaj9/redbull-backend/internal/db"
	"github.com/Bhishaj9/redbull-backend/internal/logger"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "redbull",
	Short:         "Referral investment backend",
	Long:          `Serves the redbull HTTP API and runs its maintenance tasks. Without a subcommand it starts the server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap loads the configuration and opens a migrated database.
func bootstrap() (*config.Config, *sqlx.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		database.Close()
		return nil, nil, err
	}
	logger.Info("migrations completed", "path", cfg.MigrationsPath)

	return cfg, database, nil
}
