package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/musclemap/internal/api"
	"github.com/terraincognita07/musclemap/internal/db"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, options)
		},
	}
}

func runServe(cmd *cobra.Command, options *rootOptions) error {
	cfg := options.cfg
	logger := options.logger
	if err := cfg.Validate(); err != nil {
		return err
	}

	location := cfg.Location()
	time.Local = location

	database, err := db.OpenSQLite(cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer sqlDB.Close()

	handler, err := api.NewHandler(database, api.HandlerConfig{
		SecretKey:        cfg.Auth.SecretKey,
		Location:         location,
		CookieSecure:     cfg.Server.CookieSecure,
		TokenTTL:         cfg.GetTokenTTL(),
		LoginMaxAttempts: cfg.Auth.LoginMaxAttempts,
		LoginWindow:      cfg.GetLoginWindow(),
		Logger:           logger.Named("http"),
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}
	app := api.NewApp(handler, cfg.Server.CORSOrigins)

	sigCtx, stopSignals := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("musclemap listening",
		zap.String("port", cfg.Server.Port),
		zap.String("db", cfg.Database.Path),
		zap.String("tz", location.String()),
	)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
