package book

// Source records where a Descriptor came from.
type Source string

const (
	SourceExternal    Source = "external"
	SourceSynthesized Source = "synthesized"
)

// DefaultChapterTitle names the single chapter of a synthesized descriptor.
const DefaultChapterTitle = "Introduction"

// Description holds the long and short book blurbs.
type Description struct {
	Full  string `json:"full"`
	Short string `json:"short"`
}

// Creator is a contributor such as an author or narrator.
type Creator struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Bio  string `json:"bio"`
}

// SpineEntry is the declared duration, type and bitrate of one segment.
type SpineEntry struct {
	Duration float64 `json:"duration"` // seconds
	Type     string  `json:"type"`
	BitRate  int     `json:"bitrate"`
}

// Chapter is a named point expressed as a spine index plus an offset in
// seconds from the start of that spine entry.
type Chapter struct {
	Title  string `json:"title"`
	Spine  int    `json:"spine"`
	Offset int    `json:"offset"`
}

// Descriptor is the complete description of a book.
type Descriptor struct {
	Title       string       `json:"title"`
	Description Description  `json:"description"`
	CoverURL    string       `json:"coverUrl"`
	Creators    []Creator    `json:"creator"`
	Spine       []SpineEntry `json:"spine"`
	Chapters    []Chapter    `json:"chapters"`

	Source Source `json:"-"`
}

func (d Descriptor) isZero() bool {
	return d.Title == "" && d.Description == (Description{}) && d.CoverURL == "" &&
		len(d.Creators) == 0 && len(d.Spine) == 0 && len(d.Chapters) == 0
}

// FirstCreator returns the first creator whose role equals role exactly.
func (d Descriptor) FirstCreator(role string) (Creator, bool) {
	for _, c := range d.Creators {
		if c.Role == role {
			return c, true
		}
	}
	return Creator{}, false
}
