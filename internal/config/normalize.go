package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeEncoding()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("BOOKBINDER_OUTPUT_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.OutputDir = value
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = DefaultOutputDir()
	}
	var err error
	if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeEncoding() {
	c.Encoding.FFmpegBinary = strings.TrimSpace(c.Encoding.FFmpegBinary)
	if c.Encoding.FFmpegBinary == "" {
		c.Encoding.FFmpegBinary = "ffmpeg"
	}
	c.Encoding.FFprobeBinary = strings.TrimSpace(c.Encoding.FFprobeBinary)
	if c.Encoding.FFprobeBinary == "" {
		c.Encoding.FFprobeBinary = "ffprobe"
	}
	c.Encoding.AudioCodec = strings.ToLower(strings.TrimSpace(c.Encoding.AudioCodec))
	if c.Encoding.AudioCodec == "" {
		c.Encoding.AudioCodec = defaultAudioCodec
	}
	ext := strings.ToLower(strings.TrimSpace(c.Encoding.Extension))
	if ext == "" {
		ext = defaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c.Encoding.Extension = ext
	if c.Encoding.ProbeConcurrency == 0 {
		c.Encoding.ProbeConcurrency = defaultProbeConcurrency
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
