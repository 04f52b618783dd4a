package domain

import "time"

type DownloadStatus string

const (
	StatusCompleted DownloadStatus = "completed"
	StatusFailed    DownloadStatus = "failed"
)

// DownloadRecord is one row of download history. ID is the per-request
// scratch token, so history rows sort chronologically by ID as well.
type DownloadRecord struct {
	ID           string         `json:"id"`
	URL          string         `json:"url"`
	Format       Format         `json:"format"`
	Title        string         `json:"title,omitempty"`
	Filename     string         `json:"filename,omitempty"`
	SizeBytes    int64          `json:"size_bytes,omitempty"`
	DurationSecs float64        `json:"duration_secs,omitempty"`
	Status       DownloadStatus `json:"status"`
	Error        string         `json:"error,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	CompletedAt  time.Time      `json:"completed_at"`
}
