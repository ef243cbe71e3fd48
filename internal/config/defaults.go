package config

const (
	defaultLogFormat        = "console"
	defaultLogLevel         = "warn"
	defaultAudioCodec       = "aac"
	defaultExtension        = ".mp3"
	defaultProbeConcurrency = 4
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: DefaultOutputDir(),
		},
		Encoding: Encoding{
			FFmpegBinary:     "ffmpeg",
			FFprobeBinary:    "ffprobe",
			AudioCodec:       defaultAudioCodec,
			Extension:        defaultExtension,
			ProbeConcurrency: defaultProbeConcurrency,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
