package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tubegrab/tubegrab/internal/domain"
	"github.com/tubegrab/tubegrab/internal/infra/config"
	"github.com/tubegrab/tubegrab/internal/infra/logger"
	"github.com/tubegrab/tubegrab/internal/media"
	"github.com/tubegrab/tubegrab/internal/resolve"
	"github.com/tubegrab/tubegrab/internal/scratch"
	"github.com/tubegrab/tubegrab/internal/ytdlp"
)

// History persists finished downloads. Implemented by store.PersistentStore.
type History interface {
	SaveDownload(ctx context.Context, rec *domain.DownloadRecord) error
}

// Extractor is the collaborator that actually retrieves and transcodes
// the media. Implemented by ytdlp.Runner.
type Extractor interface {
	Run(ctx context.Context, targetURL string, opts ytdlp.Options) (*ytdlp.Result, error)
}

// Service runs the whole pipeline for one request: validate, build the
// extraction options, invoke yt-dlp, resolve the output file, verify and
// tag it. Each call is fully independent; the only shared state is the
// counters.
type Service struct {
	cfg     *config.Config
	log     *logger.Logger
	runner  Extractor
	history History
	stats   *Stats
}

func NewService(cfg *config.Config, log *logger.Logger, runner Extractor, history History, stats *Stats) *Service {
	return &Service{
		cfg:     cfg,
		log:     log,
		runner:  runner,
		history: history,
		stats:   stats,
	}
}

// Fetch downloads the target URL in the requested format and returns the
// resolved output file. On success the caller owns the scratch directory
// through FetchedFile.Cleanup; on error the scratch directory is already
// gone.
func (s *Service) Fetch(ctx context.Context, rawURL, rawFormat string) (*domain.FetchedFile, error) {
	format, err := ValidateRequest(rawURL, rawFormat)
	if err != nil {
		return nil, err
	}

	s.stats.Started()
	startedAt := time.Now()

	dir, err := scratch.New(s.cfg.Download.WorkDir)
	if err != nil {
		s.stats.Failed()
		return nil, fmt.Errorf("failed to create scratch dir: %w", err)
	}

	log := s.log.WithScope(dir.Token)
	log.Info("downloading %s as %s", rawURL, format)

	file, err := s.fetchInto(ctx, log, dir, rawURL, format)
	if err != nil {
		s.stats.Failed()
		s.record(ctx, dir.Token, rawURL, format, startedAt, nil, err)
		if rmErr := dir.Remove(); rmErr != nil {
			log.Warn("failed to remove scratch dir %s: %v", dir.Path, rmErr)
		}
		return nil, err
	}

	s.stats.Completed()
	s.record(ctx, dir.Token, rawURL, format, startedAt, file, nil)
	log.Info("resolved %s (%d bytes)", file.Name, file.Size)

	return file, nil
}

func (s *Service) fetchInto(ctx context.Context, log *logger.Logger, dir *scratch.Dir, rawURL string, format domain.Format) (*domain.FetchedFile, error) {
	opts := ytdlp.Build(format, dir.Token, dir.Path, s.cfg.Download.Retries, s.cfg.Download.AudioBitrate)

	meta, err := s.runner.Run(ctx, rawURL, opts)
	if err != nil {
		return nil, err
	}

	path, err := resolve.Resolve(meta, dir.Token, dir.Path, format)
	if err != nil {
		log.Error("output resolution failed: %v", err)
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
	}

	file := &domain.FetchedFile{
		Token:   dir.Token,
		Path:    path,
		Name:    media.SanitizeFileName(downloadName(path, dir.Token)),
		MIME:    format.MIME(),
		Size:    info.Size(),
		Cleanup: dir.Remove,
	}

	if meta != nil {
		file.Title = meta.Title
		file.Duration = meta.Duration
	}

	if probe, err := media.Probe(path); err != nil {
		// The file exists and is non-empty; a probe hiccup should not
		// fail the whole request.
		log.Warn("probe failed: %v", err)
	} else if probe.DurationSecs > 0 {
		file.Duration = probe.DurationSecs
	}

	if format == domain.FormatAudio && s.cfg.Download.TagAudio && meta != nil {
		if err := media.TagMP3(path, meta.Title, meta.Uploader); err != nil {
			log.Warn("tag embedding failed: %v", err)
		}
	}

	return file, nil
}

// downloadName strips the internal token prefix off the suggested
// filename so the browser sees only the title-derived name.
func downloadName(path, token string) string {
	base := filepath.Base(path)
	if trimmed, ok := strings.CutPrefix(base, token+"_"); ok && trimmed != "" {
		return trimmed
	}
	return base
}

func (s *Service) record(ctx context.Context, token, rawURL string, format domain.Format, startedAt time.Time, file *domain.FetchedFile, fetchErr error) {
	if s.history == nil {
		return
	}

	rec := &domain.DownloadRecord{
		ID:          token,
		URL:         rawURL,
		Format:      format,
		Status:      domain.StatusCompleted,
		CreatedAt:   startedAt,
		CompletedAt: time.Now(),
	}

	if fetchErr != nil {
		rec.Status = domain.StatusFailed
		rec.Error = fetchErr.Error()
	} else if file != nil {
		rec.Title = file.Title
		rec.Filename = file.Name
		rec.SizeBytes = file.Size
		rec.DurationSecs = file.Duration
	}

	if err := s.history.SaveDownload(ctx, rec); err != nil {
		s.log.Warn("failed to save download record %s: %v", token, err)
	}
}
