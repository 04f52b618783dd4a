package ytdlp

import (
	"path/filepath"
	"strconv"

	"github.com/tubegrab/tubegrab/internal/domain"
)

const (
	videoSelector = "bestvideo+bestaudio/best"
	audioSelector = "bestaudio/best"

	videoContainer = "mp4"
	audioCodec     = "mp3"
)

// Options describes one extraction run. Built once per request, never
// mutated afterwards.
type Options struct {
	Format         domain.Format
	Selector       string
	MergeContainer string
	ExtractAudio   bool
	AudioCodec     string
	AudioBitrate   string
	OutputTemplate string
	Retries        int
}

// Build assembles the options for a validated request. The output template
// embeds the request token as a filename prefix so a directory scan can
// disambiguate the file even when title-derived names collide.
func Build(format domain.Format, token, scratchDir string, retries int, audioBitrate string) Options {
	opts := Options{
		Format:         format,
		OutputTemplate: filepath.Join(scratchDir, token+"_%(title)s.%(ext)s"),
		Retries:        retries,
	}

	switch format {
	case domain.FormatAudio:
		opts.Selector = audioSelector
		opts.ExtractAudio = true
		opts.AudioCodec = audioCodec
		opts.AudioBitrate = audioBitrate
	default:
		opts.Selector = videoSelector
		opts.MergeContainer = videoContainer
	}

	return opts
}

// Args renders the options into a yt-dlp argument list for the given URL.
func (o Options) Args(targetURL string) []string {
	args := []string{
		"--no-playlist",
		"--no-warnings",
		"--print-json",
		"--retries", strconv.Itoa(o.Retries),
		"-f", o.Selector,
		"-o", o.OutputTemplate,
	}

	if o.MergeContainer != "" {
		args = append(args, "--merge-output-format", o.MergeContainer)
	}

	if o.ExtractAudio {
		args = append(args, "-x", "--audio-format", o.AudioCodec)
		if o.AudioBitrate != "" {
			args = append(args, "--audio-quality", o.AudioBitrate)
		}
	}

	return append(args, targetURL)
}
