package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bookbinder/internal/assembly"
	"bookbinder/internal/catalog"
	"bookbinder/internal/metadata"
	"bookbinder/internal/services"
	"bookbinder/internal/timeline"
)

func TestConvertWritesBook(t *testing.T) {
	env := setupCLITestEnv(t)
	input := makeBookDir(t, "Moby Dick", "01.mp3", "02.mp3")

	out, _, err := runCLI(t, []string{"convert", input}, env.configPath)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "Output folder:\n"+env.outputDir)
	requireContains(t, out, "Found 2 audio files in the input folder.")
	requireContains(t, out, "Bitrate detected: 64 kbps")
	requireContains(t, out, "Conversion took")

	if _, err := os.Stat(filepath.Join(env.outputDir, "Moby Dick.m4b")); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if env.encoder.calls != 1 {
		t.Fatalf("expected one encode, got %d", env.encoder.calls)
	}
}

func TestConvertOutputFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	input := makeBookDir(t, "Book", "a.mp3")
	target := filepath.Join(t.TempDir(), "elsewhere")

	if _, _, err := runCLI(t, []string{"convert", input, "-o", target}, env.configPath); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, "Book.m4b")); err != nil {
		t.Fatalf("expected output in flag dir: %v", err)
	}
	if _, _, err := runCLI(t, []string{"convert", input, "--output", target}, env.configPath); err != nil {
		t.Fatalf("second convert into existing dir: %v", err)
	}
}

func TestConvertNoAudioFiles(t *testing.T) {
	env := setupCLITestEnv(t)
	input := makeBookDir(t, "Empty", "cover.jpg")

	_, _, err := runCLI(t, []string{"convert", input}, env.configPath)
	if err == nil {
		t.Fatal("expected failure for folder without mp3 files")
	}
	if !errors.Is(err, services.ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
	if err.Error() != "No audio files found in the input folder." {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	entries, _ := os.ReadDir(env.outputDir)
	if len(entries) != 0 {
		t.Fatalf("expected no output files, found %d", len(entries))
	}
	if env.encoder.calls != 0 {
		t.Fatal("encoder must not run")
	}
}

func TestConvertRequiresInput(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"convert"}, env.configPath); err == nil {
		t.Fatal("expected argument error")
	}
}

func TestConvertDryRun(t *testing.T) {
	env := setupCLITestEnv(t)
	input := makeBookDir(t, "Plan", "01.mp3", "02.mp3")

	out, _, err := runCLI(t, []string{"convert", "--dry-run", input}, env.configPath)
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	requireContains(t, out, "Artist:   Unknown Author")
	requireContains(t, out, "Source:   synthesized metadata")
	requireContains(t, out, "01.mp3")
	requireContains(t, out, "0:01:01.500")
	requireContains(t, out, "Introduction")
	if env.encoder.calls != 0 {
		t.Fatal("dry run must not encode")
	}
	if _, err := os.Stat(filepath.Join(env.outputDir, "Plan.m4b")); !os.IsNotExist(err) {
		t.Fatalf("dry run must not write output, stat err=%v", err)
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00:00.000"},
		{-5, "0:00:00.000"},
		{3723004 * time.Millisecond, "1:02:03.004"},
	}
	for _, tc := range cases {
		if got := formatClock(tc.in); got != tc.want {
			t.Fatalf("formatClock(%v) = %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestPrintPlanShowsSegmentTags(t *testing.T) {
	plan := &assembly.Plan{
		OutputPath: "/books/Dune.m4b",
		Segments: []catalog.Segment{
			{Name: "01.mp3", Duration: 61.5, BitRate: 64, Format: "mp3", Tags: catalog.Tags{Title: "Part One", Artist: "Frank Herbert"}},
			{Name: "02.mp3", Duration: 30, BitRate: 64, Format: "mp3"},
		},
		Metadata: metadata.Block{
			Title:    "Dune",
			Artist:   "Frank Herbert",
			Chapters: []timeline.Mark{{Title: "Introduction"}},
		},
		BitRateKbps: 64,
	}

	var out bytes.Buffer
	printPlan(&out, plan)
	text := out.String()
	requireContains(t, text, "Part One")
	requireContains(t, text, "Frank Herbert")
	requireContains(t, text, "02.mp3")
}
