// Package probe inspects media files with a single ffprobe JSON call. The
// animated converter uses it to verify transcoded output properties.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Result summarizes the streams of a probed media file.
type Result struct {
	Duration   float64 // Container duration in seconds.
	Width      int
	Height     int
	FPS        float64 // Average frame rate of the primary video stream.
	VideoCodec string
	HasAudio   bool
}

// Probe runs one ffprobe JSON call against path and returns the parsed
// result. probePath is the ffprobe binary to invoke.
func Probe(ctx context.Context, probePath, path string) (*Result, error) {
	cmd := exec.CommandContext(ctx, probePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}
	return ParseJSON(out)
}

// ParseJSON converts raw ffprobe JSON output into a Result.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*Result, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}

	r := &Result{Duration: parseFloat(raw.Format.Duration)}
	for i := range raw.Streams {
		s := &raw.Streams[i]
		switch s.CodecType {
		case "video":
			if r.VideoCodec == "" {
				r.VideoCodec = s.CodecName
				r.Width = s.Width
				r.Height = s.Height
				r.FPS = parseFrameRate(s.AvgFrameRate)
			}
		case "audio":
			r.HasAudio = true
		}
	}
	return r, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

type ffprobeStream struct {
	CodecName    string `json:"codec_name"`
	CodecType    string `json:"codec_type"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	AvgFrameRate string `json:"avg_frame_rate"`
}

// parseFrameRate converts ffprobe's "num/den" rate string (e.g. "30/1",
// "30000/1001") to frames per second. Returns 0 for missing or degenerate
// values like "0/0".
func parseFrameRate(s string) float64 {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return parseFloat(s)
	}
	n := parseFloat(num)
	d := parseFloat(den)
	if d == 0 {
		return 0
	}
	return n / d
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
