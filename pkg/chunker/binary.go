// File: pkg/chunker/binary.go
package chunker

import "bytes"

// sniffLen is how many leading bytes are inspected when deciding whether
// file content is text.
const sniffLen = 512

// isLikelyBinary reports whether the given content fails to decode as text.
// It checks the leading bytes for null bytes and for a high ratio of
// non-printable characters, the same heuristic `file` and git use.
func isLikelyBinary(data []byte) bool {
	if len(data) == 0 {
		return false // Empty files are considered text.
	}

	sample := data
	if len(sample) > sniffLen {
		sample = sample[:sniffLen]
	}

	// Null bytes are the strongest binary signal.
	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isPrintable(b) {
			nonPrintable++
		}
	}

	// More than 30% non-printable characters means binary.
	return float64(nonPrintable)/float64(len(sample)) > 0.3
}

// isPrintable checks if a byte represents a printable ASCII character or
// common whitespace. Bytes above 127 are allowed so UTF-8 text passes.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b >= 128 || b == '\n' || b == '\r' || b == '\t'
}
