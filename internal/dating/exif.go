package dating

import (
	"fmt"
	"os"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
)

// ExifReader reads DateTimeOriginal with goexif.
type ExifReader struct{}

// CaptureTime implements MetadataReader. Every failure collapses to ok=false.
func (ExifReader) CaptureTime(path string) (string, bool) {
	raw, err := ReadDateTimeOriginal(path)
	if err != nil {
		return "", false
	}
	return raw, true
}

// ReadDateTimeOriginal returns the raw DateTimeOriginal text. Errors match
// ErrMetadataUnreadable.
func ReadDateTimeOriginal(path string) (raw string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMetadataUnreadable, err)
	}
	defer f.Close()

	// goexif can panic on truncated IFD chains.
	defer func() {
		if r := recover(); r != nil {
			raw = ""
			err = fmt.Errorf("%w: decode panic: %v", ErrMetadataUnreadable, r)
		}
	}()

	x, err := exif.Decode(f)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMetadataUnreadable, err)
	}
	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMetadataUnreadable, err)
	}
	value, err := tag.StringVal()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMetadataUnreadable, err)
	}
	return strings.TrimRight(value, "\x00"), nil
}
