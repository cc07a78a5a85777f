// File: pkg/chunker/config.go
package chunker

import "fmt"

// Config holds the configuration options for a chunking run. A Config is
// built once (from defaults plus command-line flags) and passed by value
// into the collector and packer; nothing mutates it afterwards.
type Config struct {
	Limit              int      // Character budget per output segment.
	ExcludedExtensions []string // File extensions to skip, dot included (case-insensitive).
	ExcludedFolders    []string // Folder base names to skip at any depth.
	ExcludedFilenames  []string // Exact file base names to skip.
	IncludeTree        bool     // Prepend a project tree block to the chunk stream.
}

// DefaultConfig returns the stock configuration: an 8000-character budget and
// the usual binary-asset and vendored-folder exclusions.
func DefaultConfig() Config {
	return Config{
		Limit:              8000,
		ExcludedExtensions: []string{".png", ".jpg", ".jpeg", ".gif", ".zip", ".exe"},
		ExcludedFolders:    []string{"node_modules", "dist", "venv"},
		ExcludedFilenames:  []string{".DS_Store", "Dockerfile", ".gitignore"},
		IncludeTree:        true,
	}
}

// Validate reports configuration errors. A non-positive limit is fatal and is
// rejected here, before any traversal begins.
func (c Config) Validate() error {
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", c.Limit)
	}
	return nil
}
