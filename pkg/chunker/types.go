// File: pkg/chunker/types.go
package chunker

import (
	"fmt"
	"strings"
)

// SourceFile is one discovered input file: its path relative to the source
// root and its full text content. Ownership passes to the packer.
type SourceFile struct {
	RelPath string // Path relative to the source root, forward slashes.
	Content string // The file's text content.
}

// Block is the unit of packing: a header line identifying the originating
// file (and split part, if any) plus the body text. Header stores the fully
// rendered line including its trailing newline, so a Block's byte
// contribution to an output file is exactly Size() and rendering is plain
// concatenation.
type Block struct {
	Header string // Rendered header line, trailing newline included.
	Body   string // File content or one split part of it.
}

// Size returns the number of characters the Block occupies in its segment.
func (b Block) Size() int {
	return len(b.Header) + len(b.Body)
}

// Render returns the Block as it appears in the output file.
func (b Block) Render() string {
	return b.Header + b.Body
}

// Segment is one bounded-size output unit: an ordered run of Blocks and
// their accumulated size. Segments are filled by the packer and immutable
// once emitted.
type Segment struct {
	Blocks []Block
	Size   int
}

// append adds a Block to the segment and grows the running size.
func (s *Segment) append(b Block) {
	s.Blocks = append(s.Blocks, b)
	s.Size += b.Size()
}

// Content returns the segment rendered as output-file text: each Block's
// header line followed by its body, concatenated in order.
func (s *Segment) Content() string {
	var out strings.Builder
	out.Grow(s.Size)
	for _, b := range s.Blocks {
		out.WriteString(b.Header)
		out.WriteString(b.Body)
	}
	return out.String()
}

// formatHeader renders the annotation line for a whole, unsplit file.
func formatHeader(relPath string) string {
	return fmt.Sprintf("# here is %s\n", relPath)
}

// formatPartHeader renders the annotation line for one split part of a file
// too large to fit a single segment.
func formatPartHeader(relPath string, part, total int) string {
	return fmt.Sprintf("# here is %s (part %d/%d)\n", relPath, part, total)
}
