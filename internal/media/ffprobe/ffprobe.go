package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

var commandContext = exec.CommandContext

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index      int    `json:"index"`
	CodecName  string `json:"codec_name"`
	CodecType  string `json:"codec_type"`
	Duration   string `json:"duration"`
	BitRate    string `json:"bit_rate"`
	SampleRate string `json:"sample_rate"`
	Channels   int    `json:"channels"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string `json:"filename"`
	NBStreams  int    `json:"nb_streams"`
	Duration   string `json:"duration"`
	BitRate    string `json:"bit_rate"`
	FormatName string `json:"format_name"`
}

// Prober inspects a media file.
type Prober interface {
	Inspect(ctx context.Context, path string) (Result, error)
}

// CLI runs a specific ffprobe binary.
type CLI struct {
	binary string
}

// NewCLI returns a Prober for binary, defaulting to "ffprobe" from PATH.
func NewCLI(binary string) *CLI {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	return &CLI{binary: binary}
}

// Inspect implements Prober.
func (c *CLI) Inspect(ctx context.Context, path string) (Result, error) {
	return Inspect(ctx, c.binary, path)
}

var _ Prober = (*CLI)(nil)

// Inspect executes ffprobe against the provided path and decodes the JSON response.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := commandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path) //nolint:gosec
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return Result{}, fmt.Errorf("ffprobe inspect %s: %w: %s", path, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return Result{}, fmt.Errorf("ffprobe inspect %s: %w", path, err)
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse %s: %w", path, err)
	}
	return result, nil
}

// AudioStreamCount returns the number of audio streams discovered.
func (r Result) AudioStreamCount() int {
	count := 0
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "audio") {
			count++
		}
	}
	return count
}

// AudioCodec returns the codec name of the first audio stream, falling back
// to the container format name.
func (r Result) AudioCodec() string {
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "audio") && strings.TrimSpace(stream.CodecName) != "" {
			return strings.TrimSpace(stream.CodecName)
		}
	}
	return strings.TrimSpace(r.Format.FormatName)
}

// DurationSeconds returns the container duration in seconds, or 0 when unavailable.
// Containers without a duration fall back to the longest audio stream.
func (r Result) DurationSeconds() float64 {
	if d := parseFloat(r.Format.Duration); d > 0 {
		return d
	} else if math.IsNaN(d) {
		return d
	}
	longest := 0.0
	for _, stream := range r.Streams {
		if !strings.EqualFold(stream.CodecType, "audio") {
			continue
		}
		if d := parseFloat(stream.Duration); d > longest {
			longest = d
		}
	}
	return longest
}

// BitRate returns the container bitrate in bits per second, or 0 when unavailable.
func (r Result) BitRate() int64 {
	rate := parseFloat(r.Format.BitRate)
	if math.IsNaN(rate) || rate < 0 {
		return 0
	}
	return int64(rate)
}

// BitRateKbps returns BitRate truncated to whole kilobits per second.
func (r Result) BitRateKbps() int {
	return int(r.BitRate() / 1000)
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return parsed
	}
	return math.NaN()
}
