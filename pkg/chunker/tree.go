// File: pkg/chunker/tree.go
package chunker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karaposu/codebase-chunker/pkg/exclude"

	"go.uber.org/zap"
)

// treePseudoPath is the "file name" the project tree block is packed under,
// so its header reads like any other block's.
const treePseudoPath = "the project tree (excluded items omitted)"

// GenerateTree renders a box-drawing view of the source directory with the
// exclusion rules applied, rooted at the directory's base name.
func GenerateTree(root string, rules *exclude.Rules, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory for tree generation: %w", err)
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(filepath.Base(absRoot))
	treeBuilder.WriteString("\n")

	subtree, err := generateTreeRecursively(absRoot, rules, "", logger)
	if err != nil {
		return "", err
	}
	treeBuilder.WriteString(subtree)

	// Every line, the root included, carries its own trailing newline, so the
	// tree block ends cleanly before whatever is packed after it.
	return treeBuilder.String(), nil
}

// generateTreeRecursively builds the tree structure below one directory.
// Entries are sorted directories first, then files, case-insensitively.
func generateTreeRecursively(directory string, rules *exclude.Rules, prefix string, logger *zap.Logger) (string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		logger.Warn("Failed to read directory for tree structure", zap.String("directory", directory), zap.Error(err))
		return "", fmt.Errorf("failed to read directory '%s': %w", directory, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	visible := entries[:0]
	for _, entry := range entries {
		entryPath := filepath.Join(directory, entry.Name())
		if entry.IsDir() {
			if !rules.MatchesDir(entryPath) {
				visible = append(visible, entry)
			}
		} else if !rules.MatchesFile(entryPath) {
			visible = append(visible, entry)
		}
	}

	var output strings.Builder
	for i, entry := range visible {
		connector := "├── "
		extension := "│   "
		if i == len(visible)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.IsDir() {
			output.WriteString(fmt.Sprintf("%s%s%s/\n", prefix, connector, entry.Name()))
			subtree, err := generateTreeRecursively(filepath.Join(directory, entry.Name()), rules, prefix+extension, logger)
			if err != nil {
				logger.Warn("Failed to generate subtree", zap.String("directory", entry.Name()), zap.Error(err))
				continue
			}
			output.WriteString(subtree)
		} else {
			output.WriteString(fmt.Sprintf("%s%s%s\n", prefix, connector, entry.Name()))
		}
	}

	return output.String(), nil
}
