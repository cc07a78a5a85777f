// File: pkg/chunker/collector.go
package chunker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/karaposu/codebase-chunker/pkg/exclude"

	"go.uber.org/zap"
)

// Collector walks a source directory and yields the filtered sequence of
// SourceFiles in deterministic (lexical per-directory) order. Each call to
// Files performs one full traversal from scratch.
type Collector struct {
	root   string
	rules  *exclude.Rules
	logger *zap.Logger
}

// NewCollector creates a Collector for the given root directory and
// exclusion rules.
func NewCollector(root string, rules *exclude.Rules, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{root: root, rules: rules, logger: logger}
}

// Files walks the tree and invokes fn once per eligible file, in traversal
// order. Unreadable or binary files are skipped with a warning; an error
// from fn aborts the walk and is returned as-is.
func (c *Collector) Files(fn func(SourceFile) error) error {
	absRoot, err := filepath.Abs(c.root)
	if err != nil {
		return fmt.Errorf("failed to resolve source directory %s: %w", c.root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return fmt.Errorf("source directory %s is not accessible: %w", absRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source path %s is not a directory", absRoot)
	}

	return filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}

		if d.IsDir() {
			if path != absRoot && c.rules.MatchesDir(path) {
				c.logger.Debug("Skipping excluded directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if c.rules.MatchesFile(path) {
			c.logger.Debug("Skipping excluded file", zap.String("filePath", path))
			return nil
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			c.logger.Warn("Failed to read file, skipping", zap.String("filePath", path), zap.Error(readErr))
			return nil
		}

		if isLikelyBinary(content) {
			c.logger.Warn("File does not decode as text, skipping", zap.String("filePath", path))
			return nil
		}

		relPath, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			relPath = path // Fallback to the absolute path.
		}
		relPath = filepath.ToSlash(relPath)

		return fn(SourceFile{RelPath: relPath, Content: string(content)})
	})
}
