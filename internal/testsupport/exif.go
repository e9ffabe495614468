package testsupport

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// WriteJPEGWithCapture writes a minimal JPEG whose APP1 segment carries a
// big-endian TIFF block with a single DateTimeOriginal entry set to capture
// (expected as "YYYY:MM:DD HH:MM:SS").
func WriteJPEGWithCapture(t testing.TB, path, capture string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, jpegWithCapture(capture), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func jpegWithCapture(capture string) []byte {
	value := append([]byte(capture), 0)

	const (
		ifd0Offset = 8
		ifdSize    = 2 + 12 + 4
		exifOffset = ifd0Offset + ifdSize
		dataOffset = exifOffset + ifdSize
	)

	var tiff bytes.Buffer
	be := binary.BigEndian
	tiff.WriteString("MM")
	_ = binary.Write(&tiff, be, uint16(42))
	_ = binary.Write(&tiff, be, uint32(ifd0Offset))

	// IFD0: ExifIFDPointer -> exif sub-IFD.
	_ = binary.Write(&tiff, be, uint16(1))
	_ = binary.Write(&tiff, be, uint16(0x8769))
	_ = binary.Write(&tiff, be, uint16(4))
	_ = binary.Write(&tiff, be, uint32(1))
	_ = binary.Write(&tiff, be, uint32(exifOffset))
	_ = binary.Write(&tiff, be, uint32(0))

	// Exif IFD: DateTimeOriginal (ASCII).
	_ = binary.Write(&tiff, be, uint16(1))
	_ = binary.Write(&tiff, be, uint16(0x9003))
	_ = binary.Write(&tiff, be, uint16(2))
	_ = binary.Write(&tiff, be, uint32(len(value)))
	_ = binary.Write(&tiff, be, uint32(dataOffset))
	_ = binary.Write(&tiff, be, uint32(0))

	tiff.Write(value)

	payload := append([]byte("Exif\x00\x00"), tiff.Bytes()...)

	var out bytes.Buffer
	out.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	_ = binary.Write(&out, be, uint16(len(payload)+2))
	out.Write(payload)
	out.Write([]byte{0xFF, 0xD9})
	return out.Bytes()
}
