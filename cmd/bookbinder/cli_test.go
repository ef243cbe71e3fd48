package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bookbinder/internal/assembly"
	"bookbinder/internal/config"
	"bookbinder/internal/deps"
	"bookbinder/internal/media/ffprobe"
	"bookbinder/internal/preflight"
	"bookbinder/internal/services/ffmpeg"
)

type stubProber struct{}

func (stubProber) Inspect(context.Context, string) (ffprobe.Result, error) {
	return ffprobe.Result{
		Streams: []ffprobe.Stream{{CodecType: "audio", CodecName: "mp3"}},
		Format:  ffprobe.Format{Duration: "61.5", BitRate: "64000"},
	}, nil
}

type stubEncoder struct {
	calls int
}

func (s *stubEncoder) Encode(_ context.Context, job ffmpeg.Job, observer ffmpeg.ProgressObserver) error {
	s.calls++
	observer(ffmpeg.Progress{Percent: 100, Done: true})
	return os.WriteFile(job.OutputPath, []byte("m4b"), 0o644)
}

func allAvailable(reqs []deps.Requirement) []deps.Status {
	out := make([]deps.Status, len(reqs))
	for i, r := range reqs {
		out[i] = deps.Status{Name: r.Name, Command: r.Command, Available: true}
	}
	return out
}

func passingBinaries() []preflight.Result {
	return []preflight.Result{
		{Name: "FFmpeg", Passed: true, Required: true, Detail: "ffmpeg"},
		{Name: "FFprobe", Passed: true, Required: true, Detail: "ffprobe"},
	}
}

type cliTestEnv struct {
	configPath string
	outputDir  string
	encoder    *stubEncoder
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("BOOKBINDER_OUTPUT_DIR", "")

	outputDir := filepath.Join(base, "books")
	configPath := filepath.Join(base, "bookbinder.toml")
	content := fmt.Sprintf("[paths]\noutput_dir = %q\n\n[logging]\nlevel = \"error\"\n", outputDir)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	enc := &stubEncoder{}
	original := orchestratorOptions
	orchestratorOptions = []assembly.Option{
		assembly.WithEncoder(enc),
		assembly.WithProber(stubProber{}),
		assembly.WithDependencyCheck(allAvailable),
	}
	originalPreflight := runPreflight
	runPreflight = func(cfg *config.Config) []preflight.Result {
		return append(passingBinaries(), preflight.CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir))
	}
	t.Cleanup(func() {
		orchestratorOptions = original
		runPreflight = originalPreflight
	})

	return &cliTestEnv{configPath: configPath, outputDir: outputDir, encoder: enc}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func makeBookDir(t *testing.T, name string, files ...string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir book: %v", err)
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("audio"), 0o644); err != nil {
			t.Fatalf("write %s: %v", f, err)
		}
	}
	return dir
}
