package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/killallgit/podcast-api/api"
	"github.com/killallgit/podcast-api/api/types"
	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/auth"
	"github.com/killallgit/podcast-api/internal/services/podcasts"
	"github.com/killallgit/podcast-api/internal/services/users"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long: `Start the Podcast API server with the configured settings.

The database schema is migrated before the server starts listening.

Example:
  podcast-api serve
  podcast-api serve --port 9090
  podcast-api serve --host 0.0.0.0 --port 8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, host, port)
		},
	}

	// Server flags
	cmd.Flags().StringVar(&host, "host", "", "server host (overrides config)")
	cmd.Flags().IntVar(&port, "port", 0, "server port (overrides config)")
	return cmd
}

func runServer(cmd *cobra.Command, host string, port int) error {
	// Load config (lazy loading - only when serve command is run)
	if err := loadConfig(); err != nil {
		return err
	}
	logger := newLogger(cmd)

	// Flags override config values
	if host != "" {
		appConfig.Server.Host = host
	}
	if port != 0 {
		appConfig.Server.Port = port
	}

	db, err := openDatabase()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	issuer, err := auth.NewIssuer(appConfig.Auth.JWTSecret, appConfig.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to create token issuer: %w", err)
	}

	podcastRepo := podcasts.NewRepository(db.DB)
	deps := &types.Dependencies{
		DB:             db,
		PodcastService: podcasts.NewService(podcastRepo, podcastRepo, logger.WithPrefix("podcasts")),
		UserService:    users.NewService(users.NewRepository(db.DB), issuer, logger.WithPrefix("users")),
		Verifier:       issuer,
		Logger:         logger.WithPrefix("http"),
		Build:          buildInfo(),
	}

	server := api.NewServer(appConfig, deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Stop on interrupt or when the command context is cancelled
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	logger.Info("Server is ready to handle requests", "addr", server.Addr(), "version", Version)

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	case runErr = <-serverErr:
		logger.Error("Server failed", "err", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "err", err)
		return err
	}

	logger.Info("Server gracefully stopped")
	return runErr
}
