package app

import (
	"context"

	"github.com/tubegrab/tubegrab/internal/domain"
	"github.com/tubegrab/tubegrab/internal/download"
	"github.com/tubegrab/tubegrab/internal/infra/config"
	"github.com/tubegrab/tubegrab/internal/infra/logger"
)

type Fetcher interface {
	// This allows controllers to run the pipeline without importing the
	// download package's concrete service
	Fetch(ctx context.Context, rawURL, rawFormat string) (*domain.FetchedFile, error)
}

type History interface {
	RecentDownloads(ctx context.Context, limit int) ([]*domain.DownloadRecord, error)
}

// Context holds the core environment and shared resources for tubegrab.
// It acts as the "Single Source of Truth" for the application state.
type Context struct {
	Config *config.Config
	Logger *logger.Logger

	// High-level interfaces for controllers to use
	Fetcher Fetcher
	History History

	Stats *download.Stats
}

// NewContext initializes the base environment.
func NewContext(cfg *config.Config, log *logger.Logger) *Context {
	return &Context{
		Config: cfg,
		Logger: log,
		Stats:  download.NewStats(),
	}
}
