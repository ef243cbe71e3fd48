package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"bookbinder/internal/logging"
	"bookbinder/internal/media/ffprobe"
	"bookbinder/internal/services"
)

// Catalog is the ordered, probed set of segments for one run.
type Catalog struct {
	dir      string
	segments []Segment
}

// Discover lists dir and probes every matching segment.
func Discover(ctx context.Context, dir string, opts ...Option) (*Catalog, error) {
	cfg := settings{
		extension:   defaultExtension,
		concurrency: defaultConcurrency,
		readTags:    true,
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.prober == nil {
		cfg.prober = ffprobe.NewCLI("")
	}
	if cfg.probes == nil {
		cfg.probes = NewProbeCache(0)
	}
	logger := logging.NewComponentLogger(cfg.logger, "catalog")

	names, err := listSegments(dir, cfg.extension)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, services.Wrap(services.ErrNoInput, "No audio files found in the input folder.", nil)
	}

	c := &Catalog{
		dir:      dir,
		segments: make([]Segment, len(names)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for i, name := range names {
		path := filepath.Join(dir, name)
		g.Go(func() error {
			result, err := cfg.probes.inspect(gctx, cfg.prober, path)
			if err != nil {
				return services.Wrap(services.ErrOperationFailure, "Failed to read "+name, err)
			}
			if result.AudioStreamCount() == 0 {
				return services.Wrap(services.ErrOperationFailure, name+" has no audio stream.", nil)
			}
			seg := Segment{
				Path:     path,
				Name:     name,
				Duration: result.DurationSeconds(),
				BitRate:  result.BitRateKbps(),
				Format:   result.AudioCodec(),
			}
			if cfg.readTags {
				seg.Tags = readTags(path)
			}
			c.segments[i] = seg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("segments probed",
		logging.Int("count", len(c.segments)),
		logging.Int("bitrate_kbps", c.BitRateKbps()),
		logging.Duration("total", c.TotalDuration()),
	)
	return c, nil
}

func listSegments(dir, ext string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrInputNotFound, fmt.Sprintf("Input folder %s does not exist.", dir), nil)
		}
		return nil, services.Wrap(services.ErrOperationFailure, "Cannot read input folder", err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrInputNotFound, fmt.Sprintf("Input folder %s does not exist.", dir), nil)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, services.Wrap(services.ErrOperationFailure, "Cannot read input folder", err)
	}
	names := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		if entry.IsDir() {
			return "", false
		}
		return entry.Name(), strings.EqualFold(filepath.Ext(entry.Name()), ext)
	})
	sort.Strings(names)
	return names, nil
}

// Dir returns the folder the catalog was discovered from.
func (c *Catalog) Dir() string {
	return c.dir
}

// Segments returns a copy of the ordered segments.
func (c *Catalog) Segments() []Segment {
	out := make([]Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

// Paths returns the segment file paths in order.
func (c *Catalog) Paths() []string {
	return lo.Map(c.segments, func(s Segment, _ int) string { return s.Path })
}

// Len returns the number of segments.
func (c *Catalog) Len() int {
	return len(c.segments)
}

// BitRateKbps returns the first segment's bitrate. Later segments are not
// consulted.
func (c *Catalog) BitRateKbps() int {
	if len(c.segments) == 0 {
		return 0
	}
	return c.segments[0].BitRate
}

// TotalDuration sums every segment's probed duration.
func (c *Catalog) TotalDuration() time.Duration {
	seconds := lo.Sum(lo.Map(c.segments, func(s Segment, _ int) float64 {
		if s.Duration > 0 {
			return s.Duration
		}
		return 0
	}))
	return secondsToDuration(seconds)
}

// LogSummary writes one debug line per segment.
func (c *Catalog) LogSummary(logger *slog.Logger) {
	if logger == nil {
		return
	}
	for i, seg := range c.segments {
		logger.Debug("segment",
			logging.Int("index", i),
			logging.String("name", seg.Name),
			logging.Float64("duration_s", seg.Duration),
			logging.Int("bitrate_kbps", seg.BitRate),
			logging.String("format", seg.Format),
			logging.String("tag_title", seg.Tags.Title),
			logging.String("tag_artist", seg.Tags.Artist),
		)
	}
}
