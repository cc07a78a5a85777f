package chunker

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/karaposu/codebase-chunker/pkg/exclude"
)

func writeFixture(t *testing.T, root, rel string, data []byte) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", rel, err)
	}
}

func collect(t *testing.T, root string, rules *exclude.Rules) []SourceFile {
	t.Helper()
	var files []SourceFile
	c := NewCollector(root, rules, nil)
	if err := c.Files(func(f SourceFile) error {
		files = append(files, f)
		return nil
	}); err != nil {
		t.Fatalf("unexpected collector error: %v", err)
	}
	return files
}

func defaultRules() *exclude.Rules {
	cfg := DefaultConfig()
	return exclude.NewRules(cfg.ExcludedExtensions, cfg.ExcludedFolders, cfg.ExcludedFilenames)
}

func TestCollector_FiltersAndOrder(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "a.txt", []byte("alpha"))
	writeFixture(t, root, "sub/b.txt", []byte("beta"))
	writeFixture(t, root, "diagram.png", []byte("not really an image"))
	writeFixture(t, root, ".DS_Store", []byte("junk"))
	writeFixture(t, root, "node_modules/ignored.js", []byte("module.exports = {}"))
	writeFixture(t, root, "nested/dist/x.js", []byte("bundled"))

	files := collect(t, root, defaultRules())

	var paths []string
	for _, f := range files {
		paths = append(paths, f.RelPath)
	}

	want := []string{"a.txt", "sub/b.txt"}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("collected paths = %v, want %v", paths, want)
	}
	if files[0].Content != "alpha" {
		t.Errorf("unexpected content for a.txt: %q", files[0].Content)
	}
}

func TestCollector_ExcludedFolderAtAnyDepth(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "src/node_modules/pkg/index.js", []byte("x"))
	writeFixture(t, root, "src/main.go", []byte("package main"))

	files := collect(t, root, defaultRules())

	if len(files) != 1 || files[0].RelPath != "src/main.go" {
		t.Errorf("expected only src/main.go, got %+v", files)
	}
}

func TestCollector_SkipsBinaryFiles(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "data.bin", []byte{0x00, 0x01, 0x02, 'a', 'b'})
	writeFixture(t, root, "readme.md", []byte("# readme"))

	files := collect(t, root, defaultRules())

	if len(files) != 1 || files[0].RelPath != "readme.md" {
		t.Errorf("expected binary file to be skipped, got %+v", files)
	}
}

func TestCollector_EmitsZeroByteFiles(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "empty.txt", nil)

	files := collect(t, root, defaultRules())

	if len(files) != 1 || files[0].RelPath != "empty.txt" || files[0].Content != "" {
		t.Errorf("expected zero-byte file to be yielded, got %+v", files)
	}
}

func TestCollector_DeterministicAcrossRuns(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "c.txt", []byte("3"))
	writeFixture(t, root, "a.txt", []byte("1"))
	writeFixture(t, root, "b/d.txt", []byte("2"))

	first := collect(t, root, defaultRules())
	second := collect(t, root, defaultRules())

	if !reflect.DeepEqual(first, second) {
		t.Error("two walks over an unchanged tree yielded different sequences")
	}

	var paths []string
	for _, f := range first {
		paths = append(paths, f.RelPath)
	}
	want := []string{"a.txt", "b/d.txt", "c.txt"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("expected lexical traversal order %v, got %v", want, paths)
	}
}

func TestCollector_MissingSource(t *testing.T) {
	c := NewCollector(filepath.Join(t.TempDir(), "does-not-exist"), defaultRules(), nil)
	err := c.Files(func(SourceFile) error { return nil })
	if err == nil {
		t.Error("expected error for missing source directory")
	}
}

func TestCollector_SourceIsFile(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "plain.txt", []byte("x"))

	c := NewCollector(filepath.Join(root, "plain.txt"), defaultRules(), nil)
	err := c.Files(func(SourceFile) error { return nil })
	if err == nil {
		t.Error("expected error when source path is not a directory")
	}
}

func TestIsLikelyBinary(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected bool
	}{
		{"empty", nil, false},
		{"plain text", []byte("hello world\n"), false},
		{"utf8 text", []byte("héllo wörld ünïcode"), false},
		{"null byte", []byte("abc\x00def"), true},
		{"mostly control bytes", []byte{0x01, 0x02, 0x03, 0x04, 'a'}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isLikelyBinary(tt.data); got != tt.expected {
				t.Errorf("isLikelyBinary(%q) = %v, want %v", tt.data, got, tt.expected)
			}
		})
	}
}
