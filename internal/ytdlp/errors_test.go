package ytdlp

import (
	"errors"
	"strings"
	"testing"

	"github.com/tubegrab/tubegrab/internal/domain"
)

func TestClassifyFailure(t *testing.T) {
	cases := []struct {
		name     string
		stderr   string
		wantPart string
	}{
		{
			name:     "private video",
			stderr:   "ERROR: [youtube] abc: Private video. Sign in if you've been granted access",
			wantPart: "private",
		},
		{
			name:     "removed video",
			stderr:   "ERROR: [youtube] abc: Video unavailable",
			wantPart: "unavailable",
		},
		{
			name:     "age restricted",
			stderr:   "ERROR: Sign in to confirm your age. This video may be inappropriate",
			wantPart: "age-restricted",
		},
		{
			name:     "unsupported url",
			stderr:   "ERROR: Unsupported URL: https://example.com/clip",
			wantPart: "not supported",
		},
		{
			name:     "unknown error passes through raw",
			stderr:   "WARNING: something minor\nERROR: HTTP Error 429: Too Many Requests",
			wantPart: "HTTP Error 429",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := classifyFailure(tc.stderr, errors.New("exit status 1"))

			if !errors.Is(err, domain.ErrExtractionFailed) {
				t.Fatalf("error must wrap ErrExtractionFailed, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantPart) {
				t.Fatalf("error %q does not mention %q", err, tc.wantPart)
			}
		})
	}
}

func TestClassifyFailureEmptyStderr(t *testing.T) {
	err := classifyFailure("", errors.New("signal: killed"))
	if !errors.Is(err, domain.ErrExtractionFailed) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "signal: killed") {
		t.Fatalf("raw exec error lost: %q", err)
	}
}
