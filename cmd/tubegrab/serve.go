package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/spf13/cobra"

	"github.com/tubegrab/tubegrab/internal/api"
	"github.com/tubegrab/tubegrab/internal/app"
	"github.com/tubegrab/tubegrab/internal/download"
	"github.com/tubegrab/tubegrab/internal/infra/config"
	"github.com/tubegrab/tubegrab/internal/infra/logger"
	"github.com/tubegrab/tubegrab/internal/platform"
	"github.com/tubegrab/tubegrab/internal/store"
	"github.com/tubegrab/tubegrab/internal/ytdlp"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP download server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	log, err := logger.New(cfg.Log.Path, logger.ParseLevel(cfg.Log.Level), cfg.Log.IncludeStdout)
	if err != nil {
		return fmt.Errorf("logger error: %w", err)
	}

	if err := platform.ValidateDependencies(map[string]string{
		"yt-dlp": cfg.Download.YTDLPPath,
		"ffmpeg": cfg.Download.FFmpegPath,
	}); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Download.WorkDir, 0755); err != nil {
		return fmt.Errorf("failed to create work dir: %w", err)
	}

	db, err := store.NewPersistentStore(cfg.Store.SQLitePath)
	if err != nil {
		return fmt.Errorf("store error: %w", err)
	}
	defer db.Close()

	runner, err := ytdlp.NewRunner(cfg.Download.YTDLPPath, log)
	if err != nil {
		return err
	}

	appCtx := app.NewContext(cfg, log)
	appCtx.Fetcher = download.NewService(cfg, log, runner, db, appCtx.Stats)
	appCtx.History = db

	e := echo.New()
	api.RegisterRoutes(e, appCtx)

	// Setup Signal Handling for Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening on :%s", cfg.Port)
		sc := echo.StartConfig{Address: ":" + cfg.Port, GracefulTimeout: 10 * time.Second}
		errCh <- sc.Start(ctx, e)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down...")

	return <-errCh
}
