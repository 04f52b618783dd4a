package media

import (
	"regexp"
	"strings"
)

// Characters that are illegal in filenames on at least one supported OS,
// plus quotes and control bytes that would corrupt a Content-Disposition
// header.
var badChars = regexp.MustCompile(`[\\/:*?"<>|\x00-\x1f]`)

// SanitizeFileName makes a title-derived name safe to suggest as a
// browser download name.
func SanitizeFileName(name string) string {
	res := badChars.ReplaceAllString(name, "_")
	res = strings.TrimSpace(res)
	if res == "" {
		return "download"
	}
	return res
}
