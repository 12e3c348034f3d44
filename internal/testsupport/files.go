package testsupport

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// PNGSignature is enough of a PNG for content sniffing to call it an image.
var PNGSignature = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// WriteFile writes data to path, creating parent directories, and returns
// path.
func WriteFile(t testing.TB, path string, data []byte) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// JPEGWithCaptureTime builds a minimal JPEG whose APP1 segment holds a
// little-endian TIFF block with IFD0 -> Exif IFD -> DateTimeOriginal.
// value must be 19 characters ("YYYY:MM:DD HH:MM:SS").
func JPEGWithCaptureTime(t testing.TB, value string) []byte {
	t.Helper()
	if len(value) != 19 {
		t.Fatalf("capture time must be 19 characters, got %q", value)
	}
	le := binary.LittleEndian
	var tiff bytes.Buffer
	tiff.WriteString("II")
	_ = binary.Write(&tiff, le, uint16(42))
	_ = binary.Write(&tiff, le, uint32(8))

	// IFD0 at 8: one entry pointing at the Exif IFD.
	const exifIFDOffset = 8 + 2 + 12 + 4
	_ = binary.Write(&tiff, le, uint16(1))
	_ = binary.Write(&tiff, le, uint16(0x8769))
	_ = binary.Write(&tiff, le, uint16(4))
	_ = binary.Write(&tiff, le, uint32(1))
	_ = binary.Write(&tiff, le, uint32(exifIFDOffset))
	_ = binary.Write(&tiff, le, uint32(0))

	// Exif IFD: DateTimeOriginal, ASCII, 20 bytes stored after the IFD.
	const valueOffset = exifIFDOffset + 2 + 12 + 4
	_ = binary.Write(&tiff, le, uint16(1))
	_ = binary.Write(&tiff, le, uint16(0x9003))
	_ = binary.Write(&tiff, le, uint16(2))
	_ = binary.Write(&tiff, le, uint32(20))
	_ = binary.Write(&tiff, le, uint32(valueOffset))
	_ = binary.Write(&tiff, le, uint32(0))
	tiff.WriteString(value)
	tiff.WriteByte(0)

	payload := append([]byte("Exif\x00\x00"), tiff.Bytes()...)
	var out bytes.Buffer
	out.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	_ = binary.Write(&out, binary.BigEndian, uint16(len(payload)+2))
	out.Write(payload)
	out.Write([]byte{0xFF, 0xD9})
	return out.Bytes()
}
