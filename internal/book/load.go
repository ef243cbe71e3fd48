package book

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/samber/lo"

	"bookbinder/internal/catalog"
	"bookbinder/internal/services"
)

// MetadataPath returns the location of the optional description file.
func MetadataPath(inputDir string) string {
	return filepath.Join(inputDir, "metadata", "metadata.json")
}

// Load returns the external descriptor when metadata.json exists and parses,
// otherwise a synthesized one. A malformed file yields the synthesized
// descriptor together with an ErrMetadataParse error, which callers should
// treat as a warning.
func Load(inputDir string, segments []catalog.Segment) (Descriptor, error) {
	path := MetadataPath(inputDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Synthesize(inputDir, segments), nil
		}
		return Synthesize(inputDir, segments), services.Wrap(services.ErrMetadataParse, "Cannot read "+path, err)
	}

	d, err := Parse(data)
	if err != nil {
		return Synthesize(inputDir, segments), services.Wrap(services.ErrMetadataParse, "Ignoring malformed "+path, err)
	}
	return d, nil
}

// Parse decodes a description document. Field names match case-insensitively.
func Parse(data []byte) (Descriptor, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Descriptor{}, errors.New("empty document")
	}
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return Descriptor{}, err
	}
	if d.isZero() {
		return Descriptor{}, errors.New("document describes nothing")
	}
	d.Source = SourceExternal
	return d, nil
}

// Synthesize builds the default descriptor: the folder name as title, no
// creators, one "Introduction" chapter at the start, and a spine mirroring
// the probed segments.
func Synthesize(inputDir string, segments []catalog.Segment) Descriptor {
	return Descriptor{
		Title:    filepath.Base(filepath.Clean(inputDir)),
		Creators: []Creator{},
		Spine: lo.Map(segments, func(s catalog.Segment, _ int) SpineEntry {
			return SpineEntry{Duration: s.Duration, Type: s.Format, BitRate: s.BitRate}
		}),
		Chapters: []Chapter{{Title: DefaultChapterTitle, Spine: 0, Offset: 0}},
		Source:   SourceSynthesized,
	}
}
