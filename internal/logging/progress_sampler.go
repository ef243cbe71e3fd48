package logging

import "strings"

// ProgressSampler decides which progress updates are worth emitting when the
// output is not interactive. Updates pass when the phase changes or the
// percentage crosses into a new bucket.
type ProgressSampler struct {
	bucketSize float64
	lastPhase  string
	lastBucket int
}

// NewProgressSampler returns a sampler with the given bucket width in percent.
// Non-positive widths default to 5.
func NewProgressSampler(bucketSize float64) *ProgressSampler {
	if bucketSize <= 0 {
		bucketSize = 5
	}
	return &ProgressSampler{bucketSize: bucketSize, lastBucket: -1}
}

// ShouldEmit reports whether percent (negative means unknown) in phase should
// be shown. A nil sampler lets everything through.
func (s *ProgressSampler) ShouldEmit(percent float64, phase string) bool {
	if s == nil {
		return true
	}
	phase = strings.TrimSpace(phase)
	emit := false
	if phase != "" && phase != s.lastPhase {
		s.lastPhase = phase
		s.lastBucket = -1
		emit = true
	}
	if percent < 0 {
		return emit
	}
	if percent > 100 {
		percent = 100
	}
	bucket := int(percent / s.bucketSize)
	if bucket > s.lastBucket {
		s.lastBucket = bucket
		emit = true
	}
	return emit
}

// Reset clears the sampler so the next update is always emitted.
func (s *ProgressSampler) Reset() {
	if s == nil {
		return
	}
	s.lastPhase = ""
	s.lastBucket = -1
}
