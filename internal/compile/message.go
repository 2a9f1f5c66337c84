package compile

// Package compile consumes the structured message stream emitted by
// `surge check --message-format=json`: one JSON document per line, either
// build progress (ignored here) or a compiler message with diagnostic spans.

// Reason discriminates the line-delimited message stream.
type Reason string

const (
	// ReasonCompilerMessage carries a diagnostic from the compiler.
	ReasonCompilerMessage Reason = "compiler-message"
	// ReasonBuildFinished terminates the stream.
	ReasonBuildFinished Reason = "build-finished"
)

// Message is one line of the compiler's JSON stream.
type Message struct {
	Reason  Reason      `json:"reason"`
	Target  Target      `json:"target"`
	Message *Diagnostic `json:"message,omitempty"`
}

// Target identifies the build target a message belongs to.
type Target struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// Diagnostic is the compiler's free-text diagnostic plus its source spans.
type Diagnostic struct {
	Message string `json:"message"`
	Level   string `json:"level,omitempty"`
	Spans   []Span `json:"spans"`
}

// Span locates a diagnostic in a source file. Byte offsets and line/column
// pairs both reference the on-disk bytes. A non-nil Expansion means the span
// points into macro-generated text that has no literal counterpart in the
// file, so no byte range can be deleted for it.
type Span struct {
	FileName    string     `json:"file_name"`
	ByteStart   uint32     `json:"byte_start"`
	ByteEnd     uint32     `json:"byte_end"`
	LineStart   uint32     `json:"line_start"`
	ColumnStart uint32     `json:"column_start"`
	LineEnd     uint32     `json:"line_end"`
	ColumnEnd   uint32     `json:"column_end"`
	Expansion   *Expansion `json:"expansion,omitempty"`
}

// Expansion describes the macro call a span was generated from.
type Expansion struct {
	MacroName string `json:"macro_name"`
	Span      *Span  `json:"span,omitempty"`
}

// InExpansion reports whether the span originates from macro-generated text.
func (s *Span) InExpansion() bool {
	return s.Expansion != nil
}
