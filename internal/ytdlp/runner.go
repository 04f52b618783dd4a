package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/tubegrab/tubegrab/internal/infra/logger"
)

// Runner invokes the yt-dlp binary. It is the only place the service
// talks to the extraction collaborator.
type Runner struct {
	BinaryPath string
	Log        *logger.Logger
}

func NewRunner(binaryPath string, log *logger.Logger) (*Runner, error) {
	if binaryPath == "" {
		binaryPath = "yt-dlp"
	}

	path, err := exec.LookPath(binaryPath)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp binary not found: %w", err)
	}

	return &Runner{BinaryPath: path, Log: log}, nil
}

// Run downloads the target URL with the given options and decodes the
// metadata object yt-dlp prints on stdout. The returned error already
// carries a user-presentable message for known failure modes.
func (r *Runner) Run(ctx context.Context, targetURL string, opts Options) (*Result, error) {
	args := opts.Args(targetURL)

	r.Log.Debug("running %s %v", r.BinaryPath, args)

	cmd := exec.CommandContext(ctx, r.BinaryPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		r.Log.Error("yt-dlp failed for %s: %v | %s", targetURL, err, bytes.TrimSpace(stderr.Bytes()))
		return nil, classifyFailure(stderr.String(), err)
	}

	var res Result
	if err := json.NewDecoder(&stdout).Decode(&res); err != nil {
		// The download itself succeeded; the resolver can still find the
		// file by token prefix, so a metadata parse failure is not fatal.
		r.Log.Warn("could not parse yt-dlp metadata for %s: %v", targetURL, err)
		return nil, nil
	}

	return &res, nil
}
