package prune

import (
	"sort"

	"surgemin/internal/source"
)

// Delete returns a copy of buf with every byte covered by at least one span
// removed. Spans may overlap and arrive in any order; the output depends
// only on the union of covered indices. No validation or reparsing happens
// here.
func Delete(buf []byte, spans []source.Span) []byte {
	merged := mergeSpans(spans, len(buf))
	if len(merged) == 0 {
		out := make([]byte, len(buf))
		copy(out, buf)
		return out
	}
	out := make([]byte, 0, len(buf))
	prev := 0
	for _, r := range merged {
		out = append(out, buf[prev:r[0]]...)
		prev = r[1]
	}
	out = append(out, buf[prev:]...)
	return out
}

// mergeSpans clamps spans to the buffer, drops empty ones and merges the
// rest into disjoint sorted ranges.
func mergeSpans(spans []source.Span, limit int) [][2]int {
	ranges := make([][2]int, 0, len(spans))
	for _, sp := range spans {
		start, end := int(sp.Start), int(sp.End)
		if start > limit {
			start = limit
		}
		if end > limit {
			end = limit
		}
		if start >= end {
			continue
		}
		ranges = append(ranges, [2]int{start, end})
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i][0] < ranges[j][0] })
	merged := ranges[:0]
	for _, r := range ranges {
		if n := len(merged); n > 0 && r[0] <= merged[n-1][1] {
			if r[1] > merged[n-1][1] {
				merged[n-1][1] = r[1]
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
