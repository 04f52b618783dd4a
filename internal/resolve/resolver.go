package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tubegrab/tubegrab/internal/domain"
	"github.com/tubegrab/tubegrab/internal/ytdlp"
)

// Resolve determines the file yt-dlp actually wrote for this request.
//
// The metadata's declared path is only a hint: when a post-processing step
// converts the download (audio extraction rewrites .webm to .mp3), yt-dlp
// records the pre-conversion name. The resolution order is fixed:
//
//  1. the path declared by the metadata, if any;
//  2. else a scan of the scratch directory for the token prefix,
//     preferring the extension the requested format produces;
//  3. if the chosen path is missing on disk, a sibling with the same stem
//     and the expected extension;
//  4. else ErrFileNotFound.
func Resolve(meta *ytdlp.Result, token, scratchDir string, format domain.Format) (string, error) {
	candidate := meta.DeclaredPath()

	if candidate == "" {
		candidate = scanByPrefix(scratchDir, token, format.Ext())
	}

	if candidate == "" {
		return "", fmt.Errorf("%w: no output for token %s in %s", domain.ErrFileNotFound, token, scratchDir)
	}

	if usable(candidate) {
		return candidate, nil
	}

	// Post-processing may have rehomed the file under the same stem.
	sibling := withExt(candidate, format.Ext())
	if sibling != candidate && usable(sibling) {
		return sibling, nil
	}

	return "", fmt.Errorf("%w: %s", domain.ErrFileNotFound, candidate)
}

// scanByPrefix enumerates the scratch directory for entries whose name
// starts with the token. Ties break deterministically: an entry with the
// wanted extension wins, otherwise the lexicographically first match.
func scanByPrefix(dir, token, wantExt string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, token) {
			continue
		}
		// In-flight download remnants are never the final output
		if strings.HasSuffix(name, ".part") || strings.HasSuffix(name, ".ytdl") {
			continue
		}
		names = append(names, name)
	}

	if len(names) == 0 {
		return ""
	}

	sort.Strings(names)

	for _, name := range names {
		if strings.EqualFold(filepath.Ext(name), wantExt) {
			return filepath.Join(dir, name)
		}
	}

	return filepath.Join(dir, names[0])
}

func withExt(path, ext string) string {
	stem := strings.TrimSuffix(path, filepath.Ext(path))
	return stem + ext
}

// usable reports whether path is an existing, non-empty regular file.
func usable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}
