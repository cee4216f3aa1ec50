package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/killallgit/podcast-api/internal/database"
	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/pkg/config"
	"github.com/killallgit/podcast-api/pkg/logging"
	"github.com/spf13/cobra"
)

// appConfig is populated by loadConfig for commands that need it
var appConfig *config.Config

// NewRootCmd builds the command tree. Every call returns fresh commands and flags.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "podcast-api",
		Short: "Podcast API server",
		Long: `Podcast API - podcasts, episodes and user accounts over HTTP

Hosts publish podcasts and their episodes. Listeners create an account,
log in with a bearer token and browse the catalogue.

Features:
  • Podcast and episode management with ratings
  • Account creation, login and profile editing
  • SQLite or PostgreSQL storage`,
		SilenceUsage: true,
	}

	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")

	rootCmd.AddCommand(newServeCmd(), newMigrateCmd(), newVersionCmd())
	return rootCmd
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the configuration when a command needs it.
// version and help never call it.
func loadConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	appConfig = cfg
	return nil
}

// newLogger builds the process logger. Flags win over the logging section of the config.
func newLogger(cmd *cobra.Command) *log.Logger {
	level := "info"
	jsonLogs := false
	if appConfig != nil {
		level = appConfig.Logging.Level
		jsonLogs = appConfig.Logging.Format == "json"
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		level, _ = flags.GetString("log-level")
	}
	if flags.Changed("json-logs") {
		jsonLogs, _ = flags.GetBool("json-logs")
	}

	return logging.New(logging.Options{
		Level:  level,
		JSON:   jsonLogs,
		Writer: cmd.ErrOrStderr(),
	})
}

// openDatabase connects to the configured database and applies the password hashing cost
func openDatabase() (*database.DB, error) {
	if appConfig.Auth.BcryptCost > 0 {
		models.BcryptCost = appConfig.Auth.BcryptCost
	}
	return database.Open(appConfig.Database)
}
