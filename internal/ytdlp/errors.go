package ytdlp

import (
	"fmt"
	"strings"

	"github.com/tubegrab/tubegrab/internal/domain"
)

// Known yt-dlp stderr fragments mapped to messages fit for the caller.
// Anything unrecognized passes through the raw stderr line instead.
var friendlyFailures = []struct {
	fragment string
	message  string
}{
	{"Private video", "this video is private and cannot be downloaded"},
	{"Video unavailable", "this video is unavailable or has been removed"},
	{"Sign in to confirm your age", "this video is age-restricted and cannot be downloaded"},
	{"This live event", "live streams cannot be downloaded"},
	{"Unsupported URL", "this URL is not supported"},
	{"is not a valid URL", "this URL is not valid"},
}

func classifyFailure(stderr string, err error) error {
	for _, f := range friendlyFailures {
		if strings.Contains(stderr, f.fragment) {
			return fmt.Errorf("%w: %s", domain.ErrExtractionFailed, f.message)
		}
	}

	if msg := lastStderrLine(stderr); msg != "" {
		return fmt.Errorf("%w: %s", domain.ErrExtractionFailed, msg)
	}

	return fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
}

// lastStderrLine picks the final non-empty line, which is where yt-dlp
// puts its actual error message.
func lastStderrLine(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
