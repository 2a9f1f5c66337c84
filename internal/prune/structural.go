package prune

import (
	"fmt"

	"surgemin/internal/ast"
	"surgemin/internal/diag"
	"surgemin/internal/parser"
	"surgemin/internal/source"
	"surgemin/internal/unused"
)

// Structural resolves a definition by parsing the whole buffer and walking
// its items for the first one whose kind and identifier both match. Exact,
// but the buffer must currently parse.
type Structural struct{}

func (Structural) Resolve(file *source.File, d unused.Diagnostic) (source.Span, error) {
	bag := diag.NewBag(32)
	res := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		return source.Span{}, fmt.Errorf("prune: %s does not parse: %w", file.Path, ErrUnresolvable)
	}
	for i := range res.File.Items {
		item := &res.File.Items[i]
		if kindMatchesItem(d.Kind, item) && item.Name == d.Ident {
			return item.Span, nil
		}
		if d.Kind.Nestable() && item.Kind == ast.ItemExtern {
			for j := range item.Members {
				if item.Members[j].Name == d.Ident {
					return item.Members[j].Span, nil
				}
			}
		}
	}
	return source.Span{}, fmt.Errorf("prune: %s %q in %s: %w", d.Kind, d.Ident, file.Path, ErrUnresolvable)
}

// kindMatchesItem says which top-level item kinds a diagnostic kind may
// delete. Anything outside the table fails closed.
func kindMatchesItem(kind unused.DefinitionKind, item *ast.Item) bool {
	switch kind {
	case unused.KindFunction:
		return item.Kind == ast.ItemFn
	case unused.KindConstant:
		return item.Kind == ast.ItemConst
	case unused.KindStatic:
		return item.Kind == ast.ItemLet
	case unused.KindStruct:
		return item.Kind == ast.ItemType && item.TypeDecl == ast.TypeDeclStruct
	case unused.KindUnion:
		return item.Kind == ast.ItemType && item.TypeDecl == ast.TypeDeclUnion
	case unused.KindTypeAlias:
		return item.Kind == ast.ItemType && item.TypeDecl == ast.TypeDeclAlias
	case unused.KindEnum:
		return item.Kind == ast.ItemEnum
	case unused.KindMacro:
		return item.Kind == ast.ItemMacro
	}
	// Associated functions live in extern members, never at top level.
	return false
}
