package domain

import (
	"fmt"
	"strings"
)

// Format is the output shape the caller asked for.
type Format string

const (
	FormatVideo Format = "video"
	FormatAudio Format = "audio"
)

// ParseFormat validates and normalizes the raw format field from a request.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatVideo:
		return FormatVideo, nil
	case FormatAudio:
		return FormatAudio, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}
}

// Ext returns the container extension the pipeline ultimately produces
// for this format: mp4 for merged video, mp3 after audio extraction.
func (f Format) Ext() string {
	if f == FormatAudio {
		return ".mp3"
	}
	return ".mp4"
}

// MIME returns the content type served back to the browser.
func (f Format) MIME() string {
	if f == FormatAudio {
		return "audio/mpeg"
	}
	return "video/mp4"
}
