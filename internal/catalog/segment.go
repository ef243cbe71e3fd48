package catalog

import "time"

// Tags holds the ID3 text frames read from a segment, when present.
type Tags struct {
	Title  string
	Album  string
	Artist string
}

// Segment is one input audio file treated as a concatenation unit.
type Segment struct {
	Path     string
	Name     string
	Duration float64 // seconds
	BitRate  int     // kbps
	Format   string
	Tags     Tags
}

// Length returns the probed duration as a time.Duration.
func (s Segment) Length() time.Duration {
	return secondsToDuration(s.Duration)
}

func secondsToDuration(seconds float64) time.Duration {
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}
