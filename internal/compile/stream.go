package compile

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// maxLine bounds a single stream line. Diagnostics with many spans can get
// long, but a well-formed line never approaches this.
const maxLine = 8 << 20

// Decode reads the line-delimited JSON stream from r and calls fn for every
// decoded message in stream order. Blank lines are skipped. A line that does
// not decode aborts the stream with an error naming the line number; fn
// returning an error aborts it too.
func Decode(r io.Reader, fn func(Message) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			return fmt.Errorf("compile: stream line %d: %w", line, err)
		}
		if err := fn(msg); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("compile: read stream: %w", err)
	}
	return nil
}

// DecodeAll is Decode collecting into a slice.
func DecodeAll(r io.Reader) ([]Message, error) {
	var out []Message
	err := Decode(r, func(m Message) error {
		out = append(out, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
