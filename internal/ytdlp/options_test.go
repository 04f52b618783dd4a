package ytdlp

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/tubegrab/tubegrab/internal/domain"
)

func TestBuildVideoOptions(t *testing.T) {
	opts := Build(domain.FormatVideo, "tok123", "/tmp/scratch/tok123", 5, "192K")

	if opts.Selector != "bestvideo+bestaudio/best" {
		t.Fatalf("unexpected selector %q", opts.Selector)
	}
	if opts.MergeContainer != "mp4" {
		t.Fatalf("unexpected merge container %q", opts.MergeContainer)
	}
	if opts.ExtractAudio {
		t.Fatal("video options must not request audio extraction")
	}

	wantPrefix := filepath.Join("/tmp/scratch/tok123", "tok123_")
	if !strings.HasPrefix(opts.OutputTemplate, wantPrefix) {
		t.Fatalf("output template %q does not embed the token prefix", opts.OutputTemplate)
	}
}

func TestBuildAudioOptions(t *testing.T) {
	opts := Build(domain.FormatAudio, "tok123", "/tmp/scratch/tok123", 3, "192K")

	if opts.Selector != "bestaudio/best" {
		t.Fatalf("unexpected selector %q", opts.Selector)
	}
	if !opts.ExtractAudio || opts.AudioCodec != "mp3" || opts.AudioBitrate != "192K" {
		t.Fatalf("unexpected audio conversion settings: %+v", opts)
	}
	if opts.MergeContainer != "" {
		t.Fatalf("audio options must not set a merge container, got %q", opts.MergeContainer)
	}
}

func TestArgsVideo(t *testing.T) {
	opts := Build(domain.FormatVideo, "tok123", "/scratch", 5, "")
	args := opts.Args("https://youtu.be/abc")

	for _, want := range []string{"--no-playlist", "--no-warnings", "--print-json", "--merge-output-format"} {
		if !slices.Contains(args, want) {
			t.Fatalf("args missing %q: %v", want, args)
		}
	}
	if slices.Contains(args, "-x") {
		t.Fatalf("video args must not extract audio: %v", args)
	}
	if args[len(args)-1] != "https://youtu.be/abc" {
		t.Fatalf("target URL must come last: %v", args)
	}
}

func TestArgsAudio(t *testing.T) {
	opts := Build(domain.FormatAudio, "tok123", "/scratch", 5, "192K")
	args := opts.Args("https://youtu.be/abc")

	for _, want := range []string{"-x", "--audio-format", "mp3", "--audio-quality", "192K"} {
		if !slices.Contains(args, want) {
			t.Fatalf("args missing %q: %v", want, args)
		}
	}
	if slices.Contains(args, "--merge-output-format") {
		t.Fatalf("audio args must not merge containers: %v", args)
	}
}
