package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"mediaorg/internal/dating"
	"mediaorg/internal/testsupport"
)

func TestPlanCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	photo := filepath.Join(env.cfg.Paths.Source, "Family Trip 2024", "Day-1", "IMG.jpg")
	testsupport.WriteJPEGWithCapture(t, photo, "2024:08:15 12:00:00")
	other := filepath.Join(env.cfg.Paths.Source, "notes.txt")
	testsupport.WriteFile(t, other, 1)

	out, _, err := runCLI(t, []string{"plan", photo, other, "--json"}, env.configPath, "")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	var entries []planEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode plan: %v\n%s", err, out)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	want := filepath.Join(env.cfg.Paths.Destination, "2024", "2024_08", "2024_08_15_Family_Trip_2024_Day_1_IMG.jpg")
	if entries[0].Destination != want || entries[0].DateSource != dating.SourceMetadata {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
	if entries[1].Error == "" {
		t.Fatalf("expected unsupported-extension error, got %+v", entries[1])
	}
	requireExists(t, photo)
}

func TestPlanCommandTable(t *testing.T) {
	env := setupCLITestEnv(t)
	photo := filepath.Join(env.cfg.Paths.Source, "IMG_1.jpg")
	testsupport.WriteJPEGWithCapture(t, photo, "2023:01:02 08:00:00")

	out, _, err := runCLI(t, []string{"plan", photo}, env.configPath, "")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	requireContains(t, out, "2023_01_02_IMG_1.jpg")
	requireContains(t, out, "exif")
}

func TestRelativeFolder(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "photos")
	cases := map[string]string{
		filepath.Join(root, "a.jpg"):            "",
		filepath.Join(root, "Trip", "a.jpg"):    "Trip",
		filepath.Join(root, "..", "x", "a.jpg"): "",
	}
	for path, want := range cases {
		if got := relativeFolder(root, path); got != want {
			t.Fatalf("relativeFolder(%q) = %q, want %q", path, got, want)
		}
	}
	if got := relativeFolder("", filepath.Join(root, "Trip", "a.jpg")); got != "" {
		t.Fatalf("expected empty prefix without a root, got %q", got)
	}
}
