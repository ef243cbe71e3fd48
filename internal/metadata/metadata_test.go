package metadata

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookbinder/internal/book"
	"bookbinder/internal/timeline"
)

func TestAssembleRoles(t *testing.T) {
	d := book.Descriptor{
		Title:       "Dune",
		Description: book.Description{Full: "Long text", Short: "Short"},
		Creators: []book.Creator{
			{Name: "A", Role: "editor"},
			{Name: "B", Role: "author"},
			{Name: "N", Role: "narrator"},
		},
	}
	b := Assemble(d)
	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, "Dune", b.Album)
	assert.Equal(t, "B", b.Artist)
	assert.Equal(t, "N", b.Composer)
	assert.Equal(t, "Audiobook", b.Genre)
	assert.Equal(t, "Long text", b.Description)
}

func TestAssembleUnknownCreators(t *testing.T) {
	b := Assemble(book.Descriptor{Title: "X", Creators: []book.Creator{}})
	assert.Equal(t, "Unknown Author", b.Artist)
	assert.Equal(t, "Unknown Narrator", b.Composer)
}

func TestAssemblePreservesChapterOrder(t *testing.T) {
	d := book.Descriptor{
		Spine: []book.SpineEntry{{Duration: 100}, {Duration: 200}, {Duration: 150}},
		Chapters: []book.Chapter{
			{Title: "Third", Spine: 2, Offset: 30},
			{Title: "Out", Spine: 7},
			{Title: "First", Spine: 0, Offset: 10},
		},
	}
	b := Assemble(d)
	require.Len(t, b.Chapters, 3)
	assert.Equal(t, timeline.Mark{Start: 330 * time.Second, Title: "Third"}, b.Chapters[0])
	assert.Equal(t, timeline.Mark{Title: "Out"}, b.Chapters[1])
	assert.Equal(t, timeline.Mark{Start: 10 * time.Second, Title: "First"}, b.Chapters[2])
}

func TestWriteFFMetadata(t *testing.T) {
	b := Block{
		Title:       "A=B; C#",
		Album:       "A=B; C#",
		Artist:      `Back\slash`,
		Composer:    "Unknown Narrator",
		Genre:       Genre,
		Description: "line one\nline two",
		Chapters: []timeline.Mark{
			{Start: 0, Title: "Intro"},
			{Start: 90 * time.Second, Title: "Middle"},
			{Start: 30 * time.Second, Title: "Backwards"},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, b.WriteFFMetadata(&buf, 10*time.Minute))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, ";FFMETADATA1\n"))
	assert.Contains(t, out, "title=A\\=B\\; C\\#\n")
	assert.Contains(t, out, "artist=Back\\\\slash\n")
	assert.Contains(t, out, "description=line one\\\nline two\n")
	assert.Contains(t, out, "genre=Audiobook\n")
	assert.Equal(t, 3, strings.Count(out, "[CHAPTER]"))

	assert.Contains(t, out, "START=0\nEND=90000\ntitle=Intro\n")
	assert.Contains(t, out, "START=90000\nEND=90000\ntitle=Middle\n")
	assert.Contains(t, out, "START=30000\nEND=600000\ntitle=Backwards\n")
	assert.Less(t, strings.Index(out, "title=Intro"), strings.Index(out, "title=Backwards"))
}

func TestWriteFFMetadataSkipsEmptyTags(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Block{Title: "T"}.WriteFFMetadata(&buf, 0))
	assert.Equal(t, ";FFMETADATA1\ntitle=T\n", buf.String())
}
