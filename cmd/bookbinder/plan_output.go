package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"bookbinder/internal/assembly"
)

func printPlan(out io.Writer, plan *assembly.Plan) {
	fmt.Fprintf(out, "Title:    %s\n", plan.Metadata.Title)
	fmt.Fprintf(out, "Artist:   %s\n", plan.Metadata.Artist)
	fmt.Fprintf(out, "Composer: %s\n", plan.Metadata.Composer)
	fmt.Fprintf(out, "Source:   %s metadata\n", plan.Descriptor.Source)
	fmt.Fprintf(out, "Bitrate:  %d kbps\n", plan.BitRateKbps)
	fmt.Fprintf(out, "Duration: %s\n", formatClock(plan.TotalDuration))
	fmt.Fprintf(out, "Output:   %s\n", plan.OutputPath)
	fmt.Fprintln(out)

	segmentRows := make([][]string, 0, len(plan.Segments))
	for i, seg := range plan.Segments {
		segmentRows = append(segmentRows, []string{
			strconv.Itoa(i),
			seg.Name,
			formatClock(seg.Length()),
			strconv.Itoa(seg.BitRate),
			seg.Format,
			seg.Tags.Title,
			seg.Tags.Artist,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "File", "Duration", "Kbps", "Format", "Tag Title", "Tag Artist"},
		segmentRows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft, alignLeft, alignLeft},
	))
	fmt.Fprintln(out)

	chapterRows := make([][]string, 0, len(plan.Metadata.Chapters))
	for i, mark := range plan.Metadata.Chapters {
		chapterRows = append(chapterRows, []string{
			strconv.Itoa(i + 1),
			mark.Title,
			formatClock(mark.Start),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Chapter", "Start"},
		chapterRows,
		[]columnAlignment{alignRight, alignLeft, alignRight},
	))
}

// formatClock renders d as H:MM:SS.mmm.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	h := ms / 3_600_000
	m := (ms / 60_000) % 60
	s := (ms / 1000) % 60
	return fmt.Sprintf("%d:%02d:%02d.%03d", h, m, s, ms%1000)
}
