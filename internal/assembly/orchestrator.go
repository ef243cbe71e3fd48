package assembly

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"bookbinder/internal/book"
	"bookbinder/internal/catalog"
	"bookbinder/internal/config"
	"bookbinder/internal/deps"
	"bookbinder/internal/logging"
	"bookbinder/internal/media/ffprobe"
	"bookbinder/internal/metadata"
	"bookbinder/internal/preflight"
	"bookbinder/internal/services"
	"bookbinder/internal/services/ffmpeg"
	"bookbinder/internal/textutil"
)

const (
	outputExtension   = ".m4b"
	fallbackName      = "output"
	fallbackBitRate   = 64
	defaultAudioCodec = "aac"
	lockFilePrefix    = "."
	lockFileSuffix    = ".lock"
)

// Request describes one conversion.
type Request struct {
	InputDir  string
	OutputDir string
	DryRun    bool
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithEncoder replaces the ffmpeg CLI encoder.
func WithEncoder(enc ffmpeg.Encoder) Option {
	return func(o *Orchestrator) {
		if enc != nil {
			o.encoder = enc
		}
	}
}

// WithProber replaces the ffprobe CLI prober.
func WithProber(p ffprobe.Prober) Option {
	return func(o *Orchestrator) {
		if p != nil {
			o.prober = p
		}
	}
}

// WithOutput sets the writer for banners and the progress bar.
func WithOutput(w io.Writer) Option {
	return func(o *Orchestrator) {
		if w != nil {
			o.out = w
			o.interactive = isTerminal(w)
		}
	}
}

// WithInteractive forces in-place progress rendering on or off.
func WithInteractive(interactive bool) Option {
	return func(o *Orchestrator) {
		o.interactive = interactive
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDependencyCheck replaces the PATH lookup used in the Init state.
func WithDependencyCheck(check func([]deps.Requirement) []deps.Status) Option {
	return func(o *Orchestrator) {
		if check != nil {
			o.checkBinaries = check
		}
	}
}

// Orchestrator coordinates catalog discovery, descriptor loading, metadata
// assembly and the encode. Probe results are kept between runs, so a dry run
// followed by the real conversion probes each unchanged segment once.
type Orchestrator struct {
	cfg           *config.Config
	encoder       ffmpeg.Encoder
	prober        ffprobe.Prober
	probes        *catalog.ProbeCache
	checkBinaries func([]deps.Requirement) []deps.Status
	out           io.Writer
	interactive   bool
	logger        *slog.Logger
}

// New builds an Orchestrator. A nil cfg uses config defaults.
func New(cfg *config.Config, opts ...Option) *Orchestrator {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	o := &Orchestrator{
		cfg:           cfg,
		probes:        catalog.NewProbeCache(0),
		checkBinaries: deps.CheckBinaries,
		out:           os.Stdout,
		interactive:   isTerminal(os.Stdout),
		logger:        logging.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.logger = logging.NewComponentLogger(o.logger, "assembly")
	if o.prober == nil {
		o.prober = ffprobe.NewCLI(cfg.FFprobeBinary())
	}
	if o.encoder == nil {
		o.encoder = ffmpeg.NewCLI(ffmpeg.WithBinary(cfg.FFmpegBinary()), ffmpeg.WithLogger(o.logger))
	}
	return o
}

// run carries per-conversion state through the pipeline.
type run struct {
	ctx    context.Context
	logger *slog.Logger
	state  State
	plan   Plan
}

func (r *run) enter(state State) {
	r.state = state
	r.ctx = services.WithState(r.ctx, state.String())
	r.logger.Debug("state transition", logging.String(logging.FieldState, state.String()))
}

func (r *run) fail(err error) Outcome {
	r.logger.Debug("conversion failed",
		logging.String(logging.FieldState, r.state.String()),
		logging.Error(err),
	)
	return Outcome{State: r.state, Err: err}
}

// Run performs the conversion described by req.
func (o *Orchestrator) Run(ctx context.Context, req Request) Outcome {
	ctx = services.WithRunID(ctx, uuid.NewString())
	r := &run{ctx: ctx, logger: logging.WithContext(ctx, o.logger)}
	r.enter(StateInit)

	if err := o.checkEncoder(); err != nil {
		return r.fail(err)
	}

	outputDir, err := o.prepareOutput(req.OutputDir)
	if err != nil {
		return r.fail(err)
	}
	r.plan.OutputDir = outputDir
	r.enter(StateOutputPrepared)
	fmt.Fprintln(o.out, "Output folder:")
	fmt.Fprintln(o.out, outputDir)

	inputDir, err := validateInput(req.InputDir)
	if err != nil {
		return r.fail(err)
	}
	r.plan.InputDir = inputDir
	r.enter(StateInputValidated)
	fmt.Fprintln(o.out, "Input folder:")
	fmt.Fprintln(o.out, inputDir)

	cat, err := catalog.Discover(r.ctx, inputDir,
		catalog.WithProber(o.prober),
		catalog.WithProbeCache(o.probes),
		catalog.WithTags(req.DryRun || r.logger.Enabled(r.ctx, slog.LevelDebug)),
		catalog.WithExtension(o.cfg.Encoding.Extension),
		catalog.WithConcurrency(o.cfg.Encoding.ProbeConcurrency),
		catalog.WithLogger(r.logger),
	)
	if err != nil {
		return r.fail(err)
	}
	r.enter(StateSegmentsDiscovered)
	cat.LogSummary(r.logger)
	r.plan.Segments = cat.Segments()
	r.plan.TotalDuration = cat.TotalDuration()
	r.plan.BitRateKbps = o.resolveBitRate(r, cat.BitRateKbps())
	fmt.Fprintf(o.out, "Found %d audio files in the input folder.\n", cat.Len())
	fmt.Fprintf(o.out, "Bitrate detected: %d kbps\n", cat.BitRateKbps())

	descriptor, err := book.Load(inputDir, r.plan.Segments)
	if err != nil {
		logging.WarnWithContext(r.logger, "metadata file ignored", "metadata_parse",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "fix or remove "+book.MetadataPath(inputDir)),
			logging.String(logging.FieldImpact, "using folder name and a single chapter"),
		)
	}
	r.plan.Descriptor = descriptor
	r.enter(StateDescriptorReady)

	r.plan.Metadata = metadata.Assemble(descriptor)
	r.plan.OutputPath = filepath.Join(outputDir, textutil.FileNameOr(descriptor.Title, fallbackName)+outputExtension)
	r.enter(StateMetadataAssembled)
	r.logger.Debug("metadata assembled",
		logging.String("title", r.plan.Metadata.Title),
		logging.String("artist", r.plan.Metadata.Artist),
		logging.Int("chapters", len(r.plan.Metadata.Chapters)),
		logging.String("output", r.plan.OutputPath),
	)

	plan := r.plan
	if req.DryRun {
		return Outcome{State: r.state, OutputPath: plan.OutputPath, Plan: &plan}
	}

	r.enter(StateEncoding)
	elapsed, err := o.encode(r)
	if err != nil {
		return r.fail(err)
	}
	fmt.Fprintf(o.out, "Conversion took %.1f seconds.\n", elapsed.Seconds())

	r.enter(StateDone)
	r.logger.Info("conversion complete",
		logging.String("output", plan.OutputPath),
		logging.Duration("elapsed", elapsed),
	)
	return Outcome{State: r.state, OutputPath: plan.OutputPath, Elapsed: elapsed, Plan: &plan}
}

func (o *Orchestrator) checkEncoder() error {
	statuses := o.checkBinaries(deps.EncoderRequirements(o.cfg.FFmpegBinary(), o.cfg.FFprobeBinary()))
	missing := deps.Missing(statuses)
	if len(missing) == 0 {
		return nil
	}
	details := make([]string, 0, len(missing))
	for _, status := range missing {
		details = append(details, fmt.Sprintf("%s (%s)", status.Name, status.Detail))
	}
	return services.Wrap(services.ErrEncoderUnavailable,
		"FFmpeg is not available: "+strings.Join(details, ", "), nil)
}

func (o *Orchestrator) prepareOutput(requested string) (string, error) {
	dir := strings.TrimSpace(requested)
	if dir == "" {
		dir = o.cfg.Paths.OutputDir
	}
	if strings.TrimSpace(dir) == "" {
		dir = config.DefaultOutputDir()
	}
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return "", services.Wrap(services.ErrOperationFailure, "Invalid output folder "+dir, err)
	}
	if err := os.MkdirAll(expanded, 0o755); err != nil {
		return "", services.Wrap(services.ErrOperationFailure, "Cannot create output folder "+expanded, err)
	}
	if check := preflight.CheckDirectoryAccess("Output folder", expanded); !check.Passed {
		return "", services.Wrap(services.ErrOperationFailure, "Output folder is not usable: "+check.Detail, nil)
	}
	return expanded, nil
}

func validateInput(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", services.Wrap(services.ErrInputNotFound, "Input folder is required.", nil)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", services.Wrap(services.ErrInputNotFound, fmt.Sprintf("Input folder %s does not exist.", dir), nil)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", services.Wrap(services.ErrInputNotFound, fmt.Sprintf("Input folder %s does not exist.", dir), nil)
	}
	return abs, nil
}

// resolveBitRate prefers the configured bitrate, then the first segment's.
func (o *Orchestrator) resolveBitRate(r *run, detected int) int {
	if o.cfg.Encoding.BitrateKbps > 0 {
		return o.cfg.Encoding.BitrateKbps
	}
	if detected > 0 {
		return detected
	}
	logging.WarnWithContext(r.logger, "bitrate not detected", "bitrate_fallback",
		logging.Int("bitrate_kbps", fallbackBitRate),
		logging.String(logging.FieldErrorHint, "set encoding.bitrate_kbps in the config file"),
		logging.String(logging.FieldImpact, fmt.Sprintf("encoding at %d kbps", fallbackBitRate)),
	)
	return fallbackBitRate
}

func (o *Orchestrator) encode(r *run) (time.Duration, error) {
	plan := r.plan
	name := strings.TrimSuffix(filepath.Base(plan.OutputPath), outputExtension)
	lockPath := filepath.Join(plan.OutputDir, lockFilePrefix+name+lockFileSuffix)
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return 0, services.Wrap(services.ErrOperationFailure, "Cannot lock "+lockPath, err)
	}
	if !ok {
		return 0, services.Wrap(services.ErrOperationFailure,
			fmt.Sprintf("Another conversion is already writing %s.", plan.OutputPath), nil)
	}
	// The lock file stays on disk; unlinking it would let two runs hold locks
	// on different inodes.
	defer func() { _ = lock.Unlock() }()

	codec := strings.TrimSpace(o.cfg.Encoding.AudioCodec)
	if codec == "" {
		codec = defaultAudioCodec
	}
	job := ffmpeg.Job{
		Inputs:        segmentPaths(plan.Segments),
		Metadata:      plan.Metadata,
		Options:       ffmpeg.Options{Codec: codec, BitRateKbps: plan.BitRateKbps, FastStart: true},
		OutputPath:    plan.OutputPath,
		TotalDuration: plan.TotalDuration,
	}

	bar := newProgressBar(o.out, o.interactive)
	started := time.Now()
	err = o.encoder.Encode(r.ctx, job, func(p ffmpeg.Progress) {
		bar.Update(p.Percent)
	})
	bar.Finish()
	elapsed := time.Since(started)
	if err != nil {
		if errors.Is(err, context.Canceled) || r.ctx.Err() != nil {
			return elapsed, services.Wrap(services.ErrOperationFailure, "Conversion cancelled.", nil)
		}
		return elapsed, services.Wrap(services.ErrOperationFailure, "Conversion failed", err)
	}
	return elapsed, nil
}

func segmentPaths(segments []catalog.Segment) []string {
	return lo.Map(segments, func(s catalog.Segment, _ int) string { return s.Path })
}
