package metadata

import (
	"bookbinder/internal/book"
	"bookbinder/internal/timeline"
)

const (
	Genre           = "Audiobook"
	UnknownAuthor   = "Unknown Author"
	UnknownNarrator = "Unknown Narrator"

	roleAuthor   = "author"
	roleNarrator = "narrator"
)

// Block is the final metadata handed to the encoder.
type Block struct {
	Title       string
	Album       string
	Artist      string
	Composer    string
	Genre       string
	Description string
	Chapters    []timeline.Mark
}

// Assemble builds the Block for d. Chapter marks keep the descriptor's order
// even when their start times are not monotonic.
func Assemble(d book.Descriptor) Block {
	return Block{
		Title:       d.Title,
		Album:       d.Title,
		Artist:      creatorOr(d, roleAuthor, UnknownAuthor),
		Composer:    creatorOr(d, roleNarrator, UnknownNarrator),
		Genre:       Genre,
		Description: d.Description.Full,
		Chapters:    timeline.ResolveAll(d.Chapters, d.Spine),
	}
}

func creatorOr(d book.Descriptor, role, fallback string) string {
	if c, ok := d.FirstCreator(role); ok {
		return c.Name
	}
	return fallback
}
