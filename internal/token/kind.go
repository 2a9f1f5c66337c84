package token

// Kind represents the category of a source token.
//
// The pruner only needs to navigate item structure, so the inventory is much
// smaller than a full compiler's: keywords that start or shape items,
// literals (which must stay opaque to delimiter scans), the delimiters
// themselves, and Op as a catch-all for every other operator byte.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwType represents the 'type' keyword.
	KwType // type
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwTag represents the 'tag' keyword.
	KwTag // tag
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern
	// KwContract represents the 'contract' keyword.
	KwContract // contract
	// KwMacro represents the 'macro' keyword.
	KwMacro // macro
	// KwPragma represents the 'pragma' keyword.
	KwPragma // pragma
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwField represents the 'field' keyword.
	KwField // field

	// IntLit represents a numeric literal token.
	IntLit
	// StringLit represents a string literal token.
	StringLit
	// FStringLit represents a formatted string literal token.
	FStringLit
	// CharLit represents a single-quoted literal token.
	CharLit

	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
	// Semicolon represents ';'.
	Semicolon
	// Comma represents ','.
	Comma
	// Colon represents ':'.
	Colon
	// Assign represents '='.
	Assign
	// Arrow represents '->'.
	Arrow
	// Lt represents '<'.
	Lt
	// Gt represents '>'.
	Gt
	// At represents '@', the attribute marker.
	At
	// Op represents any other operator or punctuation byte.
	Op
)

var kindNames = map[Kind]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	KwFn:       "fn",
	KwLet:      "let",
	KwConst:    "const",
	KwMut:      "mut",
	KwType:     "type",
	KwEnum:     "enum",
	KwTag:      "tag",
	KwExtern:   "extern",
	KwContract: "contract",
	KwMacro:    "macro",
	KwPragma:   "pragma",
	KwImport:   "import",
	KwPub:      "pub",
	KwAsync:    "async",
	KwIs:       "is",
	KwField:    "field",
	IntLit:     "IntLit",
	StringLit:  "StringLit",
	FStringLit: "FStringLit",
	CharLit:    "CharLit",
	LBrace:     "{",
	RBrace:     "}",
	LParen:     "(",
	RParen:     ")",
	LBracket:   "[",
	RBracket:   "]",
	Semicolon:  ";",
	Comma:      ",",
	Colon:      ":",
	Assign:     "=",
	Arrow:      "->",
	Lt:         "<",
	Gt:         ">",
	At:         "@",
	Op:         "Op",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
