package deps

import "strings"

// EncoderRequirements lists the FFmpeg tools the assembly pipeline shells out
// to. Blank binaries resolve from PATH.
func EncoderRequirements(ffmpegBinary, ffprobeBinary string) []Requirement {
	return []Requirement{
		{
			Name:        "FFmpeg",
			Command:     orDefault(ffmpegBinary, "ffmpeg"),
			Description: "Required for encoding",
		},
		{
			Name:        "FFprobe",
			Command:     orDefault(ffprobeBinary, "ffprobe"),
			Description: "Required for segment inspection",
		},
	}
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
