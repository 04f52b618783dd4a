package media

import (
	"encoding/json"
	"fmt"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ProbeInfo is the subset of ffprobe's format block we record in history.
type ProbeInfo struct {
	DurationSecs float64
	SizeBytes    int64
}

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
		Size     string `json:"size"`
	} `json:"format"`
}

// Probe runs ffprobe against the resolved file to confirm it is a
// readable media file and to pull out duration and size.
func Probe(path string) (*ProbeInfo, error) {
	raw, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}

	var out probeOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	info := &ProbeInfo{}
	if out.Format.Duration != "" {
		info.DurationSecs, _ = strconv.ParseFloat(out.Format.Duration, 64)
	}
	if out.Format.Size != "" {
		info.SizeBytes, _ = strconv.ParseInt(out.Format.Size, 10, 64)
	}

	return info, nil
}
