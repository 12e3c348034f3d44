package identification

import (
	"path/filepath"
	"regexp"
	"strings"

	"hoarder/internal/textutil"
)

// releaseNoisePattern matches bracketed segments and the release tags that
// scene-style file names carry. Tags are matched case-sensitively as literal
// substrings.
var releaseNoisePattern = regexp.MustCompile(
	`\[[^\]]*\]|\([^)]*\)|480p|720p|1080p|2160p|4K|UHD|HDR|x264|x265|HEVC|BluRay|WEB-DL|WEBRip`,
)

var separatorReplacer = strings.NewReplacer(".", " ", "_", " ")

// QueryFromFilename derives a search query from a file name: the final
// extension is dropped and the stem is cleaned with CleanQuery.
func QueryFromFilename(path string) string {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return CleanQuery(stem)
}

// CleanQuery removes release noise, turns dot and underscore separators into
// spaces and collapses whitespace. Removal repeats until nothing matches, so
// tags split by a removed segment ("4[x]K") cannot survive, and cleaning an
// already clean query returns it unchanged.
func CleanQuery(value string) string {
	for {
		next := releaseNoisePattern.ReplaceAllString(value, "")
		if next == value {
			break
		}
		value = next
	}
	value = separatorReplacer.Replace(value)
	return textutil.CollapseWhitespace(value)
}
