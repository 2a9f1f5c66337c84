package ast

import (
	"surgemin/internal/source"
)

type ItemKind uint8

const (
	ItemFn ItemKind = iota
	ItemLet
	ItemConst
	ItemType
	ItemEnum
	ItemTag
	ItemExtern
	ItemContract
	ItemMacro
	ItemPragma
	ItemImport
)

func (k ItemKind) String() string {
	switch k {
	case ItemFn:
		return "fn"
	case ItemLet:
		return "let"
	case ItemConst:
		return "const"
	case ItemType:
		return "type"
	case ItemEnum:
		return "enum"
	case ItemTag:
		return "tag"
	case ItemExtern:
		return "extern"
	case ItemContract:
		return "contract"
	case ItemMacro:
		return "macro"
	case ItemPragma:
		return "pragma"
	case ItemImport:
		return "import"
	}
	return "unknown"
}

// TypeDeclKind distinguishes the right-hand side of a `type` item.
type TypeDeclKind uint8

const (
	TypeDeclAlias TypeDeclKind = iota
	TypeDeclStruct
	TypeDeclUnion
)

// Member is an associated function inside an extern block.
type Member struct {
	Name      string
	NameSpan  source.Span
	Span      source.Span // includes the member's attributes and modifiers
	AttrCount int
}

// Item is one top-level definition. Span covers the whole definition
// including attributes and the visibility prefix, so deleting the span
// removes the item completely.
type Item struct {
	Kind      ItemKind
	Name      string // empty for extern, pragma and import items
	NameSpan  source.Span
	Span      source.Span
	AttrCount int

	// ItemType only.
	TypeDecl TypeDeclKind

	// ItemExtern only. HasTarget separates `extern<T>` implementation
	// blocks from bare `extern { ... }` declaration blocks; a non-empty
	// Contract means the block implements a named contract and must be
	// kept even when emptied.
	Target    string
	HasTarget bool
	Contract  string
	Members   []Member
}

// File is the parse result for one source file: a flat list of items in
// source order.
type File struct {
	ID    source.FileID
	Items []Item
}
