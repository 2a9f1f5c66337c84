package diffview

// Package diffview renders the original/proposed pair of a change as a line
// diff with a small context window, the shape reviewers read before
// deciding to rerun with --fix.

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/term"
)

// ColorMode controls whether diff output is colorized.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode maps a --color flag value to a mode.
func ParseColorMode(name string) (ColorMode, error) {
	switch name {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return 0, fmt.Errorf("diffview: unknown color mode %q", name)
}

// Apply sets the process-wide color switch. Auto enables color only when
// stdout is a terminal.
func (m ColorMode) Apply() {
	switch m {
	case ColorAlways:
		color.NoColor = false
	case ColorNever:
		color.NoColor = true
	default:
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// contextLines is how many unchanged lines surround each change.
const contextLines = 3

// Printer writes diffs for changed files.
type Printer struct {
	w      io.Writer
	header *color.Color
	minus  *color.Color
	plus   *color.Color
	marker *color.Color
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:      w,
		header: color.New(color.Bold),
		minus:  color.New(color.FgRed),
		plus:   color.New(color.FgGreen),
		marker: color.New(color.FgCyan),
	}
}

// File renders the diff between original and proposed under a path header.
// Unchanged runs longer than the context window collapse into a `# ...`
// marker line.
func (p *Printer) File(path string, original, proposed []byte) error {
	if _, err := p.header.Fprintf(p.w, "%s:\n", path); err != nil {
		return err
	}
	a := difflib.SplitLines(string(original))
	b := difflib.SplitLines(string(proposed))
	matcher := difflib.NewMatcher(a, b)
	opcodes := matcher.GetOpCodes()

	for idx, op := range opcodes {
		switch op.Tag {
		case 'e':
			if err := p.printEqual(a[op.I1:op.I2], idx == 0, idx == len(opcodes)-1); err != nil {
				return err
			}
		case 'r':
			if err := p.printLines(p.minus, "-", a[op.I1:op.I2]); err != nil {
				return err
			}
			if err := p.printLines(p.plus, "+", b[op.J1:op.J2]); err != nil {
				return err
			}
		case 'd':
			if err := p.printLines(p.minus, "-", a[op.I1:op.I2]); err != nil {
				return err
			}
		case 'i':
			if err := p.printLines(p.plus, "+", b[op.J1:op.J2]); err != nil {
				return err
			}
		}
	}
	return nil
}

// printEqual shows at most contextLines around the neighboring changes and
// collapses the rest.
func (p *Printer) printEqual(lines []string, first, last bool) error {
	switch {
	case first && last:
		return nil
	case first:
		if len(lines) > contextLines {
			if err := p.printMarker(); err != nil {
				return err
			}
			lines = lines[len(lines)-contextLines:]
		}
		return p.printLines(nil, " ", lines)
	case last:
		if len(lines) > contextLines {
			if err := p.printLines(nil, " ", lines[:contextLines]); err != nil {
				return err
			}
			return p.printMarker()
		}
		return p.printLines(nil, " ", lines)
	}
	if len(lines) > 2*contextLines+1 {
		if err := p.printLines(nil, " ", lines[:contextLines]); err != nil {
			return err
		}
		if err := p.printMarker(); err != nil {
			return err
		}
		return p.printLines(nil, " ", lines[len(lines)-contextLines:])
	}
	return p.printLines(nil, " ", lines)
}

func (p *Printer) printMarker() error {
	_, err := p.marker.Fprintln(p.w, "# ...")
	return err
}

func (p *Printer) printLines(c *color.Color, prefix string, lines []string) error {
	for _, line := range lines {
		var err error
		if c != nil {
			_, err = c.Fprintf(p.w, "%s%s", prefix, line)
		} else {
			_, err = fmt.Fprintf(p.w, "%s%s", prefix, line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
