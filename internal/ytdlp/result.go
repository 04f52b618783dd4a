package ytdlp

// DownloadedFile is one entry of the requested_downloads list yt-dlp
// reports for the files it actually wrote.
type DownloadedFile struct {
	Filepath string `json:"filepath"`
}

// Result is the metadata object yt-dlp prints for a completed download.
// Only the fields the resolver and history care about are decoded; the
// declared paths are treated as hints, not truth, because post-processing
// can rename the file after yt-dlp records the name.
type Result struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Uploader string  `json:"uploader"`
	Duration float64 `json:"duration"`
	Ext      string  `json:"ext"`

	Filename           string           `json:"filename"`
	LegacyFilename     string           `json:"_filename"`
	RequestedDownloads []DownloadedFile `json:"requested_downloads"`
}

// DeclaredPath returns the output path the metadata claims was written:
// the first requested_downloads entry when present, else the top-level
// filename field. Empty when the metadata declares nothing usable.
func (r *Result) DeclaredPath() string {
	if r == nil {
		return ""
	}

	for _, d := range r.RequestedDownloads {
		if d.Filepath != "" {
			return d.Filepath
		}
	}

	if r.Filename != "" {
		return r.Filename
	}

	return r.LegacyFilename
}
