package domain

import "errors"

// Client-input failures. These map to HTTP 400.
var (
	ErrMissingURL    = errors.New("video URL is required")
	ErrInvalidFormat = errors.New("invalid format type, must be 'video' or 'audio'")
	ErrInvalidURL    = errors.New("invalid YouTube URL, provide a youtube.com or youtu.be link")
)

// Pipeline failures. These map to HTTP 500.
var (
	// ErrExtractionFailed indicates the yt-dlp collaborator returned an error
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrFileNotFound indicates the resolver exhausted every fallback
	ErrFileNotFound = errors.New("downloaded file not found")
)

// IsClientError reports whether err should surface as a 400 rather than a 500.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingURL) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidURL)
}
