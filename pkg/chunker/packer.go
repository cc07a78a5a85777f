// File: pkg/chunker/packer.go
package chunker

import "go.uber.org/zap"

// Packer consumes SourceFiles and groups them greedily into Segments bounded
// by the configured character limit. The in-progress segment accumulator is
// owned by the Packer for the duration of one run; a fresh Packer is created
// per run, so the algorithm stays reentrant.
//
// The only case where a finalized Segment exceeds the limit is a single
// Block whose header alone leaves no room for content: that Block is placed
// alone in its own Segment rather than dropped.
type Packer struct {
	limit    int
	segments []Segment
	current  Segment
	logger   *zap.Logger
}

// NewPacker creates a Packer with the given positive character limit.
func NewPacker(limit int, logger *zap.Logger) *Packer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Packer{limit: limit, logger: logger}
}

// Add packs one SourceFile. Files that fit a segment whole become a single
// Block; larger files are split into consecutive parts, each sized to fit
// the limit together with its own numbered header. Split points are plain
// character counts, with no regard for line boundaries.
func (p *Packer) Add(f SourceFile) {
	header := formatHeader(f.RelPath)
	if len(header)+len(f.Content) <= p.limit || f.Content == "" {
		p.place(Block{Header: header, Body: f.Content})
		return
	}

	blocks := splitFile(f.RelPath, f.Content, p.limit)
	p.logger.Debug("Split oversized file",
		zap.String("relPath", f.RelPath),
		zap.Int("parts", len(blocks)))
	for _, b := range blocks {
		p.place(b)
	}
}

// Finish finalizes the in-progress segment, if any, and returns every
// emitted Segment in order. The Packer must not be reused afterwards.
func (p *Packer) Finish() []Segment {
	if len(p.current.Blocks) > 0 {
		p.flush()
	}
	return p.segments
}

// place appends a Block to the open segment if it fits (or if the segment is
// empty); otherwise it finalizes the open segment and starts a new one with
// the Block as sole initial occupant.
func (p *Packer) place(b Block) {
	if len(p.current.Blocks) > 0 && p.current.Size+b.Size() > p.limit {
		p.flush()
	}
	p.current.append(b)
}

// flush emits the open segment and resets the accumulator.
func (p *Packer) flush() {
	p.segments = append(p.segments, p.current)
	p.current = Segment{}
}

// splitFile cuts content into consecutive parts such that each part plus its
// own numbered header fits within limit. The total part count feeds into the
// header text, and the header width feeds back into how much content fits
// beside it, so the count is settled by fixed-point iteration. If the limit
// leaves no room for content beside a part header, the whole file is kept as
// a single oversized Block.
func splitFile(relPath, content string, limit int) []Block {
	total := 1
	for {
		blocks, ok := buildParts(relPath, content, limit, total)
		if !ok {
			return []Block{{Header: formatHeader(relPath), Body: content}}
		}
		if len(blocks) == total {
			return blocks
		}
		total = len(blocks)
	}
}

// buildParts slices content greedily assuming the given total part count.
// It reports false when some part's header leaves no capacity at all.
func buildParts(relPath, content string, limit, total int) ([]Block, bool) {
	var blocks []Block
	rest := content
	for part := 1; len(rest) > 0; part++ {
		header := formatPartHeader(relPath, part, total)
		capacity := limit - len(header)
		if capacity <= 0 {
			return nil, false
		}
		if capacity > len(rest) {
			capacity = len(rest)
		}
		blocks = append(blocks, Block{Header: header, Body: rest[:capacity]})
		rest = rest[capacity:]
	}
	return blocks, true
}
