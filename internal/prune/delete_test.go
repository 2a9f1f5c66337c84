package prune

import (
	"bytes"
	"testing"

	"surgemin/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{Start: start, End: end}
}

func TestDeleteBasic(t *testing.T) {
	buf := []byte("0123456789")
	cases := []struct {
		name  string
		spans []source.Span
		want  string
	}{
		{"none", nil, "0123456789"},
		{"middle", []source.Span{sp(3, 6)}, "0126789"},
		{"disjoint", []source.Span{sp(0, 2), sp(8, 10)}, "234567"},
		{"overlap", []source.Span{sp(2, 6), sp(4, 8)}, "0189"},
		{"contained", []source.Span{sp(1, 9), sp(3, 5)}, "09"},
		{"empty span", []source.Span{sp(4, 4)}, "0123456789"},
		{"past end", []source.Span{sp(7, 42)}, "0123456"},
		{"all", []source.Span{sp(0, 10)}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Delete(buf, tc.spans)
			if string(got) != tc.want {
				t.Fatalf("Delete = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDeleteOrderIndependent(t *testing.T) {
	buf := []byte("fn a() {} fn b() {} fn c() {}")
	spans := []source.Span{sp(10, 20), sp(0, 9), sp(25, 29)}
	perms := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	var first []byte
	for _, p := range perms {
		ordered := []source.Span{spans[p[0]], spans[p[1]], spans[p[2]]}
		got := Delete(buf, ordered)
		if first == nil {
			first = got
			continue
		}
		if !bytes.Equal(got, first) {
			t.Fatalf("permutation %v gave %q, earlier %q", p, got, first)
		}
	}
}

func TestDeleteIdempotent(t *testing.T) {
	buf := []byte("let a = 1;\nlet b = 2;\nlet c = 3;\n")
	spans := []source.Span{sp(11, 22), sp(0, 5)}

	once := Delete(buf, spans)
	// Результат зависит только от объединения покрытых индексов: дубли
	// ничего не добавляют.
	doubled := append(append([]source.Span(nil), spans...), spans...)
	if got := Delete(buf, doubled); !bytes.Equal(got, once) {
		t.Fatalf("duplicated spans changed result: %q vs %q", got, once)
	}
	if got := Delete(once, nil); !bytes.Equal(got, once) {
		t.Fatalf("empty deletion changed buffer: %q vs %q", got, once)
	}
}

func TestDeleteDoesNotAliasInput(t *testing.T) {
	buf := []byte("abcdef")
	got := Delete(buf, nil)
	got[0] = 'X'
	if buf[0] != 'a' {
		t.Fatalf("Delete returned aliasing slice")
	}
}
