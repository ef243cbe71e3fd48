package assembly

import (
	"time"

	"bookbinder/internal/book"
	"bookbinder/internal/catalog"
	"bookbinder/internal/metadata"
	"bookbinder/internal/services"
)

// Plan is everything resolved before encoding starts.
type Plan struct {
	InputDir      string
	OutputDir     string
	OutputPath    string
	Segments      []catalog.Segment
	Descriptor    book.Descriptor
	Metadata      metadata.Block
	BitRateKbps   int
	TotalDuration time.Duration
}

// Outcome is the terminal result of a run. State is the last state reached;
// Err is nil on success.
type Outcome struct {
	State      State
	Err        error
	OutputPath string
	Elapsed    time.Duration
	Plan       *Plan
}

// Success reports whether the run completed without error.
func (o Outcome) Success() bool {
	return o.Err == nil
}

// Message returns the user-facing failure message, or "" on success.
func (o Outcome) Message() string {
	return services.Message(o.Err)
}
