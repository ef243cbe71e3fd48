package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"bookbinder/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed || !result.Required {
		t.Fatalf("expected required failure for file path, got %+v", result)
	}
}

func TestRunAllReportsMissingBinaries(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.OutputDir = t.TempDir()
	cfg.Encoding.FFmpegBinary = "bookbinder-missing-ffmpeg"
	cfg.Encoding.FFprobeBinary = "bookbinder-missing-ffprobe"

	results := RunAll(&cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d: %+v", len(results), results)
	}
	failed := Failed(results)
	if len(failed) != 2 {
		t.Fatalf("expected both binaries to fail, got %+v", failed)
	}
	if !results[2].Passed {
		t.Fatalf("expected output dir to pass, got %+v", results[2])
	}
}

func TestRunAllIncludesLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.OutputDir = t.TempDir()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "missing")

	results := RunAll(&cfg)
	last := results[len(results)-1]
	if last.Name != "Log directory" || last.Passed || last.Required {
		t.Fatalf("expected missing log directory warning, got %+v", last)
	}
	for _, r := range Failed(results) {
		if r.Name == "Log directory" {
			t.Fatalf("missing log directory must not be a required failure: %+v", r)
		}
	}
}

func TestRunAllNilConfig(t *testing.T) {
	if RunAll(nil) != nil {
		t.Fatal("expected nil results for nil config")
	}
}
