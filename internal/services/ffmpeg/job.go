package ffmpeg

import (
	"time"

	"bookbinder/internal/metadata"
)

// Options controls the output stream.
type Options struct {
	Codec       string
	BitRateKbps int
	FastStart   bool
}

// Job is one encode request.
type Job struct {
	Inputs        []string
	Metadata      metadata.Block
	Options       Options
	OutputPath    string
	TotalDuration time.Duration
}

// Progress is a snapshot of an in-flight encode.
type Progress struct {
	Percent float64
	Encoded time.Duration
	Speed   string
	Done    bool
}

// ProgressObserver receives progress from the goroutine reading ffmpeg's
// progress stream.
type ProgressObserver func(Progress)
