// Package exclude decides which files and folders are left out of chunking.
package exclude

import (
	"path/filepath"
	"strings"
)

// Rules holds the exclusion sets applied during traversal. Extensions are
// matched case-insensitively and include the leading dot; folder names and
// file names are matched exactly against the path's base name.
type Rules struct {
	extensions map[string]struct{}
	folders    map[string]struct{}
	filenames  map[string]struct{}
}

// NewRules compiles exclusion lists into a Rules matcher. Extension entries
// are lowercased and given a leading dot if missing, so "PNG" and ".png"
// behave the same.
func NewRules(extensions, folders, filenames []string) *Rules {
	r := &Rules{
		extensions: make(map[string]struct{}, len(extensions)),
		folders:    make(map[string]struct{}, len(folders)),
		filenames:  make(map[string]struct{}, len(filenames)),
	}
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.extensions[ext] = struct{}{}
	}
	for _, name := range folders {
		if name = strings.TrimSpace(name); name != "" {
			r.folders[name] = struct{}{}
		}
	}
	for _, name := range filenames {
		if name = strings.TrimSpace(name); name != "" {
			r.filenames[name] = struct{}{}
		}
	}
	return r
}

// MatchesDir reports whether a directory with the given path should be
// skipped, together with everything beneath it. Only the base name is
// consulted, so the check applies at every depth of the traversal.
func (r *Rules) MatchesDir(path string) bool {
	_, ok := r.folders[filepath.Base(path)]
	return ok
}

// MatchesFile reports whether the file at the given path should be skipped,
// either by exact base name or by its lowercased extension.
func (r *Rules) MatchesFile(path string) bool {
	if _, ok := r.filenames[filepath.Base(path)]; ok {
		return true
	}
	_, ok := r.extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}
