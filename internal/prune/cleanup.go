package prune

import (
	"errors"
	"fmt"

	"surgemin/internal/ast"
	"surgemin/internal/diag"
	"surgemin/internal/parser"
	"surgemin/internal/source"
)

// ErrReparse means the pruned buffer no longer parses. Committing it would
// break the build, so the whole run aborts and the file stays untouched.
var ErrReparse = errors.New("prune: pruned buffer does not parse")

// Cleanup reparses the pruned bytes and removes extern blocks the deletion
// emptied. A block survives when it still has members, carries attributes,
// or implements a named contract (the contract requires its presence even
// empty). The pass runs once; a block emptied by the pass itself is left
// alone.
func Cleanup(fs *source.FileSet, path string, pruned []byte) ([]byte, error) {
	id := fs.AddVirtual(path, pruned)
	file := fs.Get(id)

	bag := diag.NewBag(32)
	res := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		first := bag.Items()[0]
		return nil, fmt.Errorf("%w: %s: %s", ErrReparse, path, first.Message)
	}

	var doomed []source.Span
	for i := range res.File.Items {
		item := &res.File.Items[i]
		if item.Kind != ast.ItemExtern {
			continue
		}
		if len(item.Members) > 0 || item.AttrCount > 0 || item.Contract != "" {
			continue
		}
		doomed = append(doomed, Expand(pruned, item.Span))
	}
	if len(doomed) == 0 {
		return pruned, nil
	}
	return Delete(pruned, doomed), nil
}
