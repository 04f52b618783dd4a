package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tubegrab/tubegrab/internal/download"
	"github.com/tubegrab/tubegrab/internal/infra/config"
	"github.com/tubegrab/tubegrab/internal/infra/logger"
	"github.com/tubegrab/tubegrab/internal/platform"
	"github.com/tubegrab/tubegrab/internal/ytdlp"
)

func newFetchCmd() *cobra.Command {
	var (
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Download a single video from the command line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(args[0], format, outDir)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "video", "output format: video or audio")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to place the downloaded file in")

	return cmd
}

func runFetch(rawURL, format, outDir string) error {
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

	runner, err := ytdlp.NewRunner(cfg.Download.YTDLPPath, log)
	if err != nil {
		return err
	}

	// No history store in CLI mode; one-shot downloads don't need a database
	svc := download.NewService(cfg, log, runner, nil, download.NewStats())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	file, err := svc.Fetch(ctx, rawURL, format)
	if err != nil {
		return err
	}
	defer file.Cleanup()

	dest := filepath.Join(outDir, file.Name)
	if err := download.MoveFile(file.Path, dest); err != nil {
		return fmt.Errorf("failed to move output file: %w", err)
	}

	fmt.Printf("Saved %s\n", dest)
	return nil
}
