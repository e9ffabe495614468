package dating

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mediaorg/internal/testsupport"
)

func TestFSTimestampsModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	testsupport.WriteFile(t, path, 16)
	want := time.Date(2018, 6, 1, 12, 0, 0, 0, time.UTC)
	testsupport.Chtimes(t, path, want)

	got, err := (FSTimestamps{}).Modified(path)
	if err != nil {
		t.Fatalf("Modified: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("Modified = %v, want %v", got, want)
	}
}

func TestFSTimestampsCreatedAuto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	testsupport.WriteFile(t, path, 16)

	got, err := (FSTimestamps{Policy: CreatedAuto}).Created(path)
	if err != nil {
		t.Fatalf("Created: %v", err)
	}
	if got.IsZero() {
		t.Fatal("expected non-zero creation time")
	}
}

func TestFSTimestampsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.mp4")
	if _, err := (FSTimestamps{}).Created(path); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := (FSTimestamps{}).Modified(path); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestParseCreatedPolicy(t *testing.T) {
	cases := map[string]CreatedPolicy{
		"":        CreatedAuto,
		"auto":    CreatedAuto,
		" Birth ": CreatedBirth,
		"CHANGE":  CreatedChange,
	}
	for in, want := range cases {
		got, err := ParseCreatedPolicy(in)
		if err != nil {
			t.Fatalf("ParseCreatedPolicy(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseCreatedPolicy(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseCreatedPolicy("mtime"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
