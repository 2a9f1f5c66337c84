package prune

import (
	"surgemin/internal/source"
)

// Expand widens a resolved definition span over the whitespace that would
// otherwise be orphaned by the deletion. One uniform rule for both
// strategies:
//
//   - start moves back over horizontal whitespace, but only when that run
//     sits at the beginning of its line (the definition's own indentation);
//     a fully blank preceding line is absorbed together with its
//     terminator, a line holding other code is not touched;
//   - end moves forward over horizontal whitespace and, if that reaches a
//     line terminator, consumes exactly that one terminator. When other
//     code follows on the same line the end stays put so inter-token
//     spacing of surviving code is preserved.
//
// The result is that a definition alone on its line disappears with its
// whole line, and adjacent deletions do not pile up blank lines.
func Expand(buf []byte, sp source.Span) source.Span {
	sp.Start = expandStart(buf, int(sp.Start))
	sp.End = expandEnd(buf, int(sp.End))
	return sp
}

func isHorizontal(b byte) bool { return b == ' ' || b == '\t' }

func expandStart(buf []byte, start int) uint32 {
	i := start
	for i > 0 && isHorizontal(buf[i-1]) {
		i--
	}
	if i > 0 && buf[i-1] != '\n' {
		// Слева на той же строке есть код: отступ не трогаем.
		return uint32(start)
	}
	if i == 0 {
		return 0
	}
	// i стоит сразу после терминатора своей строки. Если предыдущая строка
	// целиком пустая, забираем её вместе с этим терминатором.
	j := i - 1
	if j > 0 && buf[j-1] == '\r' {
		j--
	}
	k := j
	for k > 0 && isHorizontal(buf[k-1]) {
		k--
	}
	if k == 0 || buf[k-1] == '\n' {
		return uint32(k)
	}
	return uint32(i)
}

func expandEnd(buf []byte, end int) uint32 {
	i := end
	for i < len(buf) && isHorizontal(buf[i]) {
		i++
	}
	if i >= len(buf) {
		return uint32(i)
	}
	if buf[i] == '\r' && i+1 < len(buf) && buf[i+1] == '\n' {
		return uint32(i + 2)
	}
	if buf[i] == '\n' {
		return uint32(i + 1)
	}
	return uint32(end)
}
