package media

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".avi":  {},
	".mkv":  {},
	".mov":  {},
	".webm": {},
}

// Classify decides the kind of the file at path. Images are recognized by
// their leading bytes, never by extension; videos by a fixed extension list.
// Files that cannot be opened for reading, and directories, classify as plain.
func Classify(path string) Kind {
	f, err := os.Open(path)
	if err != nil {
		return KindPlain
	}
	defer f.Close()
	if info, err := f.Stat(); err != nil || !info.Mode().IsRegular() {
		return KindPlain
	}
	if sniffImage(f) {
		return KindImage
	}
	if IsVideoName(path) {
		return KindVideo
	}
	return KindPlain
}

func sniffImage(r io.Reader) bool {
	mtype, err := mimetype.DetectReader(r)
	if err != nil || mtype == nil {
		return false
	}
	return strings.HasPrefix(mtype.String(), "image/")
}

// IsVideoName reports whether the file name carries an allow-listed video
// extension, compared case-insensitively.
func IsVideoName(path string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}
