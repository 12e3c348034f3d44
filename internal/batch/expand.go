package batch

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoMatch reports an input that named no file.
var ErrNoMatch = errors.New("no matching files")

// Expand turns command-line inputs into a sorted, de-duplicated list of
// regular files. Inputs may be files, directories or glob patterns.
// Directories are walked recursively when recursive is set and read one level
// deep otherwise; hidden entries found while walking are skipped. Inputs that
// match nothing come back as failed results so they can be reported alongside
// the processed files.
func Expand(inputs []string, recursive bool) ([]string, []Result) {
	seen := make(map[string]struct{})
	var files []string
	var failures []Result

	add := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}
	fail := func(input, reason string, err error) {
		failures = append(failures, Result{Source: input, Status: StatusFailed, Reason: reason, Err: err})
	}

	for _, input := range inputs {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		candidates := []string{input}
		if hasGlobMeta(input) && !exists(input) {
			matches, err := filepath.Glob(input)
			if err != nil {
				fail(input, "invalid pattern", err)
				continue
			}
			if len(matches) == 0 {
				fail(input, "pattern matched nothing", ErrNoMatch)
				continue
			}
			candidates = matches
		}

		for _, candidate := range candidates {
			info, err := os.Stat(candidate)
			if err != nil {
				fail(candidate, "cannot access input", err)
				continue
			}
			switch {
			case info.IsDir():
				found, err := listDir(candidate, recursive)
				if err != nil {
					fail(candidate, "cannot read directory", err)
				}
				for _, f := range found {
					add(f)
				}
			case info.Mode().IsRegular():
				add(candidate)
			default:
				fail(candidate, "not a regular file", ErrNoMatch)
			}
		}
	}

	sort.Strings(files)
	return files, failures
}

func listDir(root string, recursive bool) ([]string, error) {
	var files []string
	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if isHidden(entry.Name()) || !entry.Type().IsRegular() {
				continue
			}
			files = append(files, filepath.Join(root, entry.Name()))
		}
		return files, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// exists lets literal names containing glob characters through unexpanded.
func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func hasGlobMeta(path string) bool {
	return strings.ContainsAny(path, "*?[")
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
