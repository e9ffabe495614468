package dating

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mediaorg/internal/testsupport"
)

func TestReadDateTimeOriginal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	testsupport.WriteJPEGWithCapture(t, path, "2019:12:31 23:59:58")

	raw, err := ReadDateTimeOriginal(path)
	if err != nil {
		t.Fatalf("ReadDateTimeOriginal: %v", err)
	}
	if raw != "2019:12:31 23:59:58" {
		t.Fatalf("raw = %q", raw)
	}
}

func TestExifReaderMisses(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.jpg")
	if err := os.WriteFile(garbage, []byte("not an image at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	truncated := filepath.Join(dir, "truncated.jpg")
	if err := os.WriteFile(truncated, []byte{0xFF, 0xD8, 0xFF, 0xE1, 0x00, 0x40, 'E', 'x', 'i', 'f', 0, 0, 'M', 'M'}, 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{garbage, truncated, filepath.Join(dir, "missing.jpg")} {
		if raw, ok := (ExifReader{}).CaptureTime(path); ok {
			t.Fatalf("expected miss for %s, got %q", filepath.Base(path), raw)
		}
		if _, err := ReadDateTimeOriginal(path); !errors.Is(err, ErrMetadataUnreadable) {
			t.Fatalf("expected ErrMetadataUnreadable for %s, got %v", filepath.Base(path), err)
		}
	}
}
