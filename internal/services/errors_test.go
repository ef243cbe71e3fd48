package services_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ansel1/merry/v2"

	"bookbinder/internal/services"
)

func TestWrapKeepsMarkerAndMessage(t *testing.T) {
	base := errors.New("exit status 1")
	err := services.Wrap(services.ErrOperationFailure, "ffprobe failed for a.mp3", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrOperationFailure) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !strings.Contains(err.Error(), "ffprobe failed for a.mp3") {
		t.Fatalf("expected message in error string %q", err.Error())
	}
	if merry.Cause(err) != base {
		t.Fatalf("expected cause to be retained, got %v", merry.Cause(err))
	}
}

func TestWrapNilMarkerFallsBack(t *testing.T) {
	err := services.Wrap(nil, "boom", nil)
	if !errors.Is(err, services.ErrOperationFailure) {
		t.Fatalf("expected operation failure marker, got %v", err)
	}
}

func TestMessageTrims(t *testing.T) {
	if got := services.Message(nil); got != "" {
		t.Fatalf("expected empty message, got %q", got)
	}
	err := services.Wrap(services.ErrNoInput, "No audio files found in the input folder.", nil)
	if got := services.Message(err); got != "No audio files found in the input folder." {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestMessageAppendsCause(t *testing.T) {
	cause := errors.New("ffmpeg encode failed: exit status 1: Invalid data found when processing input")
	err := services.Wrap(services.ErrOperationFailure, "Conversion failed", cause)
	want := "Conversion failed: ffmpeg encode failed: exit status 1: Invalid data found when processing input"
	if got := services.Message(err); got != want {
		t.Fatalf("unexpected message %q", got)
	}
}
