package download

import (
	"regexp"
	"strings"

	"github.com/tubegrab/tubegrab/internal/domain"
)

// Accepted host shape: optional scheme, optional www, then the primary or
// short-link YouTube domain followed by any path.
var youtubeURLPattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.be)/.+`)

// ValidateRequest checks the raw request fields and returns the parsed
// format. Field order matters: a missing URL wins over a bad format, and
// the host pattern is only checked once both fields are present.
func ValidateRequest(rawURL, rawFormat string) (domain.Format, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", domain.ErrMissingURL
	}

	format, err := domain.ParseFormat(rawFormat)
	if err != nil {
		return "", err
	}

	if !youtubeURLPattern.MatchString(strings.TrimSpace(rawURL)) {
		return "", domain.ErrInvalidURL
	}

	return format, nil
}
