package prune

// Package prune turns normalized dead-definition diagnostics into byte
// ranges, deletes them from the source bytes and cleans up blocks the
// deletion emptied.

import (
	"errors"

	"surgemin/internal/source"
	"surgemin/internal/unused"
)

// ErrUnresolvable means a recognized diagnostic has no matching definition
// in the current buffer. The buffer was probably edited since the compiler
// ran; skipping silently would hide a requested deletion, so callers treat
// this as fatal.
var ErrUnresolvable = errors.New("prune: definition not found in buffer")

// Resolver computes the byte range of the definition a diagnostic names.
// The returned span is the raw definition extent; whitespace expansion is a
// separate uniform step (see Expand).
type Resolver interface {
	Resolve(file *source.File, d unused.Diagnostic) (source.Span, error)
}

// Strategy selects a Resolver implementation.
type Strategy uint8

const (
	// StrategyStructural parses the file and matches items by kind and
	// identifier. Exact, but the buffer must parse.
	StrategyStructural Strategy = iota
	// StrategyLexical scans raw bytes around the diagnostic offset.
	// Cheaper and parse-free, but approximate.
	StrategyLexical
)

func (s Strategy) String() string {
	switch s {
	case StrategyStructural:
		return "structural"
	case StrategyLexical:
		return "lexical"
	}
	return "unknown"
}

// ParseStrategy maps a flag value to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "structural":
		return StrategyStructural, nil
	case "lexical":
		return StrategyLexical, nil
	}
	return 0, errors.New("prune: unknown strategy " + name)
}

// NewResolver returns the Resolver for the strategy.
func NewResolver(s Strategy) Resolver {
	if s == StrategyLexical {
		return Lexical{}
	}
	return Structural{}
}
