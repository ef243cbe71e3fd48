package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bookbinder/internal/config"
	"bookbinder/internal/preflight"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "Output directory")
	requireContains(t, out, "warning")
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	if _, _, err := runCLI(t, []string{"config", "validate"}, target); err != nil {
		t.Fatalf("sample config must validate: %v", err)
	}
}

func TestInvalidConfigFailsCommand(t *testing.T) {
	setupCLITestEnv(t)
	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("[logging]\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := runCLI(t, []string{"config", "validate"}, bad); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestConfigValidateFailsOnMissingBinary(t *testing.T) {
	env := setupCLITestEnv(t)
	runPreflight = func(*config.Config) []preflight.Result {
		return []preflight.Result{
			{Name: "FFmpeg", Required: true, Detail: "binary \"ffmpeg\" not found"},
			{Name: "FFprobe", Passed: true, Required: true, Detail: "ffprobe"},
		}
	}

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err == nil {
		t.Fatal("expected validate to fail when ffmpeg is missing")
	}
	if !strings.Contains(err.Error(), "FFmpeg") {
		t.Fatalf("expected failing check name in error, got %v", err)
	}
	requireContains(t, out, "missing")
	if strings.Contains(out, "Configuration valid") {
		t.Fatalf("must not report a valid configuration: %q", out)
	}
}
