package platform

import (
	"fmt"
	"os/exec"
)

// RequiredBinaries lists external system binaries the app needs to function.
// yt-dlp performs the extraction itself; ffmpeg is invoked by yt-dlp for
// stream merging and audio conversion, and by us for probing.
var RequiredBinaries = []string{
	"yt-dlp",
	"ffmpeg",
	"ffprobe",
}

func ValidateDependencies(overrides map[string]string) error {
	for _, bin := range RequiredBinaries {
		candidate := bin
		if o, ok := overrides[bin]; ok && o != "" {
			candidate = o
		}
		if _, err := exec.LookPath(candidate); err != nil {
			return fmt.Errorf("required dependency: '%s' not found in PATH", candidate)
		}
	}

	return nil
}
