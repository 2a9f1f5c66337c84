package source

import (
	"path/filepath"
	"sort"
)

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/32)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol converts a byte offset to a 1-based line/column pair.
// Columns are byte columns, matching what the compiler reports.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// количество '\n' строго до off == номер строки - 1
	line := sort.Search(len(lineIdx), func(i int) bool {
		return lineIdx[i] >= off
	})
	var lineStart uint32
	if line > 0 {
		lineStart = lineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line) + 1, Col: off - lineStart + 1}
}

// toOffset is the inverse of toLineCol. Returns false when the position lies
// outside the indexed content.
func toOffset(lineIdx []uint32, contentLen uint32, pos LineCol) (uint32, bool) {
	if pos.Line == 0 || pos.Col == 0 {
		return 0, false
	}
	var lineStart uint32
	if pos.Line > 1 {
		idx := pos.Line - 2
		if idx >= uint32(len(lineIdx)) {
			return 0, false
		}
		lineStart = lineIdx[idx] + 1
	}
	off := lineStart + pos.Col - 1
	if off > contentLen {
		return 0, false
	}
	return off, true
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
