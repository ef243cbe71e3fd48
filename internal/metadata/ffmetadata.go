package metadata

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

var ffmetaEscaper = strings.NewReplacer(
	`\`, `\\`,
	"=", `\=`,
	";", `\;`,
	"#", `\#`,
	"\n", "\\\n",
)

func escape(value string) string {
	return ffmetaEscaper.Replace(strings.ReplaceAll(value, "\r\n", "\n"))
}

// WriteFFMetadata renders b as an FFMETADATA1 document. Chapter times use a
// millisecond timebase; each chapter ends where the next one starts, the last
// one ends at total, and no chapter ends before it starts.
func (b Block) WriteFFMetadata(w io.Writer, total time.Duration) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, ";FFMETADATA1")
	writeTag(bw, "title", b.Title)
	writeTag(bw, "album", b.Album)
	writeTag(bw, "artist", b.Artist)
	writeTag(bw, "album_artist", b.Artist)
	writeTag(bw, "composer", b.Composer)
	writeTag(bw, "genre", b.Genre)
	writeTag(bw, "description", b.Description)
	writeTag(bw, "comment", b.Description)

	for i, mark := range b.Chapters {
		start := mark.Start.Milliseconds()
		end := total.Milliseconds()
		if i+1 < len(b.Chapters) {
			end = b.Chapters[i+1].Start.Milliseconds()
		}
		if end < start {
			end = start
		}
		fmt.Fprintln(bw, "[CHAPTER]")
		fmt.Fprintln(bw, "TIMEBASE=1/1000")
		fmt.Fprintf(bw, "START=%d\n", start)
		fmt.Fprintf(bw, "END=%d\n", end)
		fmt.Fprintf(bw, "title=%s\n", escape(mark.Title))
	}
	return bw.Flush()
}

func writeTag(w io.Writer, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "%s=%s\n", key, escape(value))
}
