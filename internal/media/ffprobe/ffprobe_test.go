package ffprobe

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"testing"
)

func TestResultHelpers(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "video", CodecName: "mjpeg"},
			{CodecType: "audio", CodecName: "mp3"},
		},
		Format: Format{
			Duration:   "123.45",
			BitRate:    "64123",
			FormatName: "mp3",
		},
	}
	if result.AudioStreamCount() != 1 {
		t.Fatalf("expected 1 audio stream, got %d", result.AudioStreamCount())
	}
	if result.AudioCodec() != "mp3" {
		t.Fatalf("unexpected codec: %q", result.AudioCodec())
	}
	if result.DurationSeconds() != 123.45 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
	if result.BitRate() != 64123 {
		t.Fatalf("unexpected bitrate: %d", result.BitRate())
	}
	if result.BitRateKbps() != 64 {
		t.Fatalf("unexpected kbps: %d", result.BitRateKbps())
	}
}

func TestResultHelpersHandleInvalidNumbers(t *testing.T) {
	result := Result{
		Format: Format{
			Duration: "bad",
			BitRate:  "nope",
		},
	}
	if !math.IsNaN(result.DurationSeconds()) {
		t.Fatalf("expected duration NaN, got %v", result.DurationSeconds())
	}
	if result.BitRate() != 0 {
		t.Fatalf("expected bitrate 0, got %d", result.BitRate())
	}
}

func TestDurationFallsBackToAudioStream(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "audio", Duration: "12.5"},
			{CodecType: "audio", Duration: "14"},
		},
	}
	if result.DurationSeconds() != 14 {
		t.Fatalf("expected longest audio stream duration, got %v", result.DurationSeconds())
	}
}

func TestInspectRequiresPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "", "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestInspectParsesOutput(t *testing.T) {
	var capturedName string
	var capturedArgs []string
	setHelperCommand(t, "success", &capturedName, &capturedArgs)

	result, err := NewCLI("/opt/ffprobe").Inspect(context.Background(), "/books/part01.mp3")
	if err != nil {
		t.Fatalf("Inspect returned error: %v", err)
	}
	if capturedName != "/opt/ffprobe" {
		t.Fatalf("expected binary override, got %q", capturedName)
	}
	if capturedArgs[len(capturedArgs)-1] != "/books/part01.mp3" {
		t.Fatalf("expected path as last argument, got %v", capturedArgs)
	}
	if result.DurationSeconds() != 61.5 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
	if result.BitRateKbps() != 128 {
		t.Fatalf("unexpected bitrate: %d", result.BitRateKbps())
	}
}

func TestInspectFailure(t *testing.T) {
	setHelperCommand(t, "failure", nil, nil)
	if _, err := Inspect(context.Background(), "", "/books/broken.mp3"); err == nil {
		t.Fatal("expected inspect failure")
	}
}

func TestInspectBadJSON(t *testing.T) {
	setHelperCommand(t, "badjson", nil, nil)
	if _, err := Inspect(context.Background(), "", "/books/odd.mp3"); err == nil {
		t.Fatal("expected parse failure")
	}
}

func setHelperCommand(t *testing.T, mode string, name *string, args *[]string) {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, bin string, argv ...string) *exec.Cmd {
		if name != nil {
			*name = bin
		}
		if args != nil {
			*args = append([]string(nil), argv...)
		}
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", fmt.Sprintf("FFPROBE_HELPER_MODE=%s", mode))
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	switch os.Getenv("FFPROBE_HELPER_MODE") {
	case "success":
		fmt.Println(`{"streams":[{"index":0,"codec_name":"mp3","codec_type":"audio","sample_rate":"44100","channels":2}],"format":{"filename":"part01.mp3","nb_streams":1,"duration":"61.500000","size":"984000","bit_rate":"128000","format_name":"mp3"}}`)
		os.Exit(0)
	case "failure":
		fmt.Fprintln(os.Stderr, "Invalid data found when processing input")
		os.Exit(1)
	case "badjson":
		fmt.Println("not-json")
		os.Exit(0)
	default:
		os.Exit(0)
	}
}
