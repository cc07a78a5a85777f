// File: pkg/chunker/execute.go
package chunker

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/karaposu/codebase-chunker/pkg/exclude"

	"go.uber.org/zap"
)

// Execute runs the full pipeline: collect files under sourceDir, pack them
// into bounded segments, and write the numbered chunk files into outputDir.
func Execute(sourceDir, outputDir string, cfg Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	startTime := time.Now()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("Starting chunking process",
		zap.String("sourceDir", sourceDir),
		zap.String("outputDir", outputDir),
		zap.Int("limit", cfg.Limit))

	segments, err := Run(sourceDir, cfg, logger)
	if err != nil {
		return err
	}

	if len(segments) == 0 {
		logger.Warn("No files to chunk after filtering.")
		return nil
	}

	if err := ensureDirectory(outputDir, logger); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := WriteSegments(outputDir, segments, logger); err != nil {
		return err
	}

	logger.Info("Chunking process completed",
		zap.Int("segments", len(segments)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// Run collects and packs without touching the output directory. Segments are
// materialized in full because the chunk file names carry the total count,
// which is only known once packing has finished.
func Run(sourceDir string, cfg Config, logger *zap.Logger) ([]Segment, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	rules := exclude.NewRules(cfg.ExcludedExtensions, cfg.ExcludedFolders, cfg.ExcludedFilenames)
	packer := NewPacker(cfg.Limit, logger)

	if cfg.IncludeTree {
		tree, err := GenerateTree(sourceDir, rules, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to generate project tree: %w", err)
		}
		packer.Add(SourceFile{RelPath: treePseudoPath, Content: tree})
	}

	collector := NewCollector(sourceDir, rules, logger)
	if err := collector.Files(func(f SourceFile) error {
		packer.Add(f)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to collect files: %w", err)
	}

	return packer.Finish(), nil
}

// WriteSegments persists each segment as chunk_<i>_of_<M>.txt in outputDir.
// A write failure is fatal for the run; chunks already written stay in place.
func WriteSegments(outputDir string, segments []Segment, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	total := len(segments)
	for i, segment := range segments {
		name := fmt.Sprintf("chunk_%d_of_%d.txt", i+1, total)
		path := filepath.Join(outputDir, name)
		if err := writeToFile(path, []byte(segment.Content()), 0644, logger); err != nil {
			return fmt.Errorf("failed to write chunk file %s: %w", name, err)
		}
	}

	logger.Debug("Wrote all chunk files", zap.Int("count", total))
	return nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}

// writeToFile writes data to a file and logs the operation.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path))
	return nil
}
