package capture

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"hoarder/internal/services"
)

// Source names the strategy that produced a date.
type Source string

const (
	SourceNone     Source = ""
	SourceMetadata Source = "exif"
	SourceFilename Source = "filename"
)

var (
	filenameDatePattern = regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`)

	captureLayouts = []string{
		"2006:01:02 15:04:05",
		"2006-01-02 15:04:05",
	}
)

// Extract returns the capture date of an image. Embedded EXIF
// DateTimeOriginal wins; the first YYYYMMDD run in the file name is the
// fallback. ok is false when neither yields a valid calendar date.
func Extract(path string) (Date, Source, bool) {
	if d, err := FromMetadata(path); err == nil {
		return d, SourceMetadata, true
	}
	if d, err := FromFilename(path); err == nil {
		return d, SourceFilename, true
	}
	return Date{}, SourceNone, false
}

// FromMetadata reads the EXIF DateTimeOriginal tag. Non-critical EXIF decode
// errors are tolerated as long as the tag itself is readable.
func FromMetadata(path string) (Date, error) {
	f, err := os.Open(path)
	if err != nil {
		return Date{}, services.Wrap(services.ErrNotFound, "extract", "open", path, err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil && (x == nil || exif.IsCriticalError(err)) {
		return Date{}, services.Wrap(services.ErrNotFound, "extract", "decode exif", "", err)
	}
	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return Date{}, services.Wrap(services.ErrNotFound, "extract", "exif tag", "DateTimeOriginal missing", err)
	}
	raw, err := tag.StringVal()
	if err != nil {
		return Date{}, services.Wrap(services.ErrNotFound, "extract", "exif tag", "DateTimeOriginal not text", err)
	}
	return ParseCaptureTime(raw)
}

// ParseCaptureTime accepts "YYYY:MM:DD HH:MM:SS" (raw EXIF) and
// "YYYY-MM-DD HH:MM:SS" and returns the date portion.
func ParseCaptureTime(raw string) (Date, error) {
	value := strings.TrimSpace(strings.TrimRight(raw, "\x00"))
	for _, layout := range captureLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return fromTime(t)
	}
	return Date{}, services.Wrap(services.ErrNotFound, "extract", "parse capture time", value, nil)
}

// FromFilename parses the first YYYYMMDD run in the base name. Only the first
// run is considered; an invalid one is not retried further along the name.
func FromFilename(path string) (Date, error) {
	name := filepath.Base(path)
	match := filenameDatePattern.FindString(name)
	if match == "" {
		return Date{}, services.Wrap(services.ErrNotFound, "extract", "filename date", "no YYYYMMDD run in "+name, nil)
	}
	d, err := ParseCompact(match)
	if err != nil {
		return Date{}, services.Wrap(services.ErrNotFound, "extract", "filename date", match, err)
	}
	return d, nil
}
