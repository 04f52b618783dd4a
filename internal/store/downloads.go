package store

import (
	"context"
	"time"

	"github.com/tubegrab/tubegrab/internal/domain"
)

// downloadDBO maps the downloads table. Kept separate from the domain
// struct so schema changes stay local to this package.
type downloadDBO struct {
	ID           string
	URL          string
	Format       string
	Title        string
	Filename     string
	SizeBytes    int64
	DurationSecs float64
	Status       string
	Error        string
	CreatedAt    time.Time
	CompletedAt  time.Time
}

func (d *downloadDBO) FromDomain(rec *domain.DownloadRecord) {
	d.ID = rec.ID
	d.URL = rec.URL
	d.Format = string(rec.Format)
	d.Title = rec.Title
	d.Filename = rec.Filename
	d.SizeBytes = rec.SizeBytes
	d.DurationSecs = rec.DurationSecs
	d.Status = string(rec.Status)
	d.Error = rec.Error
	d.CreatedAt = rec.CreatedAt
	d.CompletedAt = rec.CompletedAt
}

func (d *downloadDBO) ToDomain() *domain.DownloadRecord {
	return &domain.DownloadRecord{
		ID:           d.ID,
		URL:          d.URL,
		Format:       domain.Format(d.Format),
		Title:        d.Title,
		Filename:     d.Filename,
		SizeBytes:    d.SizeBytes,
		DurationSecs: d.DurationSecs,
		Status:       domain.DownloadStatus(d.Status),
		Error:        d.Error,
		CreatedAt:    d.CreatedAt,
		CompletedAt:  d.CompletedAt,
	}
}

// SaveDownload records one finished request, success or failure.
func (s *PersistentStore) SaveDownload(ctx context.Context, rec *domain.DownloadRecord) error {
	var dbo downloadDBO
	dbo.FromDomain(rec)

	query := `INSERT OR REPLACE INTO downloads
              (id, url, format, title, filename, size_bytes, duration_secs, status, error, created_at, completed_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		dbo.ID,
		dbo.URL,
		dbo.Format,
		dbo.Title,
		dbo.Filename,
		dbo.SizeBytes,
		dbo.DurationSecs,
		dbo.Status,
		dbo.Error,
		dbo.CreatedAt,
		dbo.CompletedAt,
	)
	return err
}

// RecentDownloads returns the newest history rows, most recent first.
func (s *PersistentStore) RecentDownloads(ctx context.Context, limit int) ([]*domain.DownloadRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, url, format, title, filename, size_bytes, duration_secs, status, error, created_at, completed_at
              FROM downloads
              ORDER BY created_at DESC
              LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.DownloadRecord
	for rows.Next() {
		var dbo downloadDBO
		err := rows.Scan(
			&dbo.ID, &dbo.URL, &dbo.Format, &dbo.Title, &dbo.Filename,
			&dbo.SizeBytes, &dbo.DurationSecs, &dbo.Status, &dbo.Error,
			&dbo.CreatedAt, &dbo.CompletedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, dbo.ToDomain())
	}

	return records, rows.Err()
}
