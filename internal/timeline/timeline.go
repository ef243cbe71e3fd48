// Package timeline converts chapters, expressed as a spine index plus an
// offset, into absolute positions in the concatenated output.
package timeline

import (
	"time"

	"bookbinder/internal/book"
)

// Mark is a chapter resolved to an absolute elapsed time.
type Mark struct {
	Start time.Duration
	Title string
}

// Resolve sums the durations of every spine entry before ch.Spine and adds
// ch.Offset seconds. A spine index outside the spine resolves to zero with
// the title kept, so the number of marks always matches the chapter count.
func Resolve(ch book.Chapter, spine []book.SpineEntry) Mark {
	if ch.Spine < 0 || ch.Spine >= len(spine) {
		return Mark{Title: ch.Title}
	}
	seconds := 0.0
	for _, entry := range spine[:ch.Spine] {
		seconds += entry.Duration
	}
	seconds += float64(ch.Offset)
	return Mark{Start: fromSeconds(seconds), Title: ch.Title}
}

// ResolveAll resolves chapters in the order given. The result is never sorted.
func ResolveAll(chapters []book.Chapter, spine []book.SpineEntry) []Mark {
	marks := make([]Mark, 0, len(chapters))
	for _, ch := range chapters {
		marks = append(marks, Resolve(ch, spine))
	}
	return marks
}

func fromSeconds(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
