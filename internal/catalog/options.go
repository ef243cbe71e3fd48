package catalog

import (
	"log/slog"
	"strings"

	"bookbinder/internal/media/ffprobe"
)

const (
	defaultExtension   = ".mp3"
	defaultConcurrency = 4
)

type settings struct {
	extension   string
	concurrency int
	prober      ffprobe.Prober
	probes      *ProbeCache
	readTags    bool
	logger      *slog.Logger
}

// Option customizes discovery.
type Option func(*settings)

// WithExtension sets the segment file extension. A missing leading dot is added.
func WithExtension(ext string) Option {
	return func(s *settings) {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.extension = ext
	}
}

// WithConcurrency bounds the number of probes in flight.
func WithConcurrency(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithProber replaces the default ffprobe CLI prober.
func WithProber(p ffprobe.Prober) Option {
	return func(s *settings) {
		if p != nil {
			s.prober = p
		}
	}
}

// WithProbeCache shares a probe cache between discoveries.
func WithProbeCache(cache *ProbeCache) Option {
	return func(s *settings) {
		if cache != nil {
			s.probes = cache
		}
	}
}

// WithTags toggles best-effort ID3 tag reading.
func WithTags(enabled bool) Option {
	return func(s *settings) {
		s.readTags = enabled
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}
