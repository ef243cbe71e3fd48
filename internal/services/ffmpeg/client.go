package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"bookbinder/internal/logging"
)

var commandContext = exec.CommandContext

// Encoder concatenates and encodes a Job.
type Encoder interface {
	Encode(ctx context.Context, job Job, observer ProgressObserver) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary = strings.TrimSpace(binary); binary != "" {
			c.binary = binary
		}
	}
}

// WithWorkRoot sets the parent directory for per-run work directories.
func WithWorkRoot(dir string) Option {
	return func(c *CLI) {
		if dir = strings.TrimSpace(dir); dir != "" {
			c.workRoot = dir
		}
	}
}

// WithLogger sets the logger used for command diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *CLI) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// CLI wraps the ffmpeg command-line tool.
type CLI struct {
	binary   string
	workRoot string
	logger   *slog.Logger
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "ffmpeg", workRoot: os.TempDir(), logger: logging.NewNop()}
	for _, opt := range opts {
		opt(cli)
	}
	cli.logger = logging.NewComponentLogger(cli.logger, "ffmpeg")
	return cli
}

// Encode runs ffmpeg for job. ffmpeg writes to a partial file next to the
// output which replaces OutputPath only after a clean exit; an existing
// book at OutputPath survives a failed run.
func (c *CLI) Encode(ctx context.Context, job Job, observer ProgressObserver) error {
	if len(job.Inputs) == 0 {
		return errors.New("no inputs to encode")
	}
	if strings.TrimSpace(job.OutputPath) == "" {
		return errors.New("output path required")
	}

	workDir, err := os.MkdirTemp(c.workRoot, "bookbinder-"+uuid.NewString()+"-")
	if err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	listPath, err := writeConcatList(workDir, job.Inputs)
	if err != nil {
		return err
	}
	metaPath, err := writeMetadata(workDir, job.Metadata, job.TotalDuration)
	if err != nil {
		return err
	}

	partial := PartialPath(job.OutputPath)
	staged := job
	staged.OutputPath = partial
	defer os.Remove(partial)

	args := BuildArgs(listPath, metaPath, staged)
	c.logger.Debug("starting ffmpeg", logging.String("binary", c.binary), logging.String("args", strings.Join(args, " ")))

	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr := &tailBuffer{limit: 4096}
	cmd.Stderr = stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	parser := newProgressParser(job.TotalDuration, observer)
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		parser.Line(scanner.Text())
	}
	scanErr := scanner.Err()
	if scanErr != nil {
		// keep ffmpeg from blocking on a full pipe
		_, _ = io.Copy(io.Discard, stdout)
	}

	if err := cmd.Wait(); err != nil {
		if detail := lastLine(stderr.String()); detail != "" {
			return fmt.Errorf("ffmpeg encode failed: %w: %s", err, detail)
		}
		return fmt.Errorf("ffmpeg encode failed: %w", err)
	}
	if scanErr != nil {
		return fmt.Errorf("read ffmpeg progress: %w", scanErr)
	}
	if err := os.Rename(partial, job.OutputPath); err != nil {
		return fmt.Errorf("finalize output: %w", err)
	}
	return nil
}

// PartialPath returns the in-progress file name used while encoding to out.
// The extension is kept so ffmpeg picks the same muxer.
func PartialPath(out string) string {
	ext := filepath.Ext(out)
	return strings.TrimSuffix(out, ext) + ".partial" + ext
}

var _ Encoder = (*CLI)(nil)

// BuildArgs returns the ffmpeg argument list for job.
func BuildArgs(listPath, metadataPath string, job Job) []string {
	codec := strings.TrimSpace(job.Options.Codec)
	if codec == "" {
		codec = "aac"
	}
	args := []string{
		"-hide_banner",
		"-f", "concat", "-safe", "0", "-i", listPath,
		"-i", metadataPath,
		"-map", "0:a",
		"-map_metadata", "1",
		"-map_chapters", "1",
		"-c:a", codec,
	}
	if job.Options.BitRateKbps > 0 {
		args = append(args, "-b:a", strconv.Itoa(job.Options.BitRateKbps)+"k")
	}
	if job.Options.FastStart {
		args = append(args, "-movflags", "+faststart")
	}
	args = append(args, "-progress", "pipe:1", "-nostats", "-y", job.OutputPath)
	return args
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	mu    sync.Mutex
	buf   bytes.Buffer
	limit int
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf.Write(p)
	if extra := t.buf.Len() - t.limit; extra > 0 {
		t.buf.Next(extra)
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.String()
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
