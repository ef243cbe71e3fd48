package catalog

import (
	"strings"

	"github.com/bogem/id3v2"
)

// readTags returns the ID3 title, album and artist. Unreadable or untagged
// files yield empty Tags.
func readTags(path string) Tags {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return Tags{}
	}
	defer tag.Close()
	return Tags{
		Title:  strings.TrimSpace(tag.Title()),
		Album:  strings.TrimSpace(tag.Album()),
		Artist: strings.TrimSpace(tag.Artist()),
	}
}
