package prune

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Commit overwrites each change's path with its proposed bytes, keeping the
// existing file mode. A failing write does not stop the loop; every failure
// is reported in the aggregate so the user sees the full damage at once.
func Commit(changes []Change) error {
	var errs []error
	for _, ch := range changes {
		mode := fs.FileMode(0o644)
		if info, err := os.Stat(ch.Path); err == nil {
			mode = info.Mode().Perm()
		}
		if err := os.WriteFile(ch.Path, ch.Proposed, mode); err != nil {
			errs = append(errs, fmt.Errorf("prune: write %s: %w", ch.Path, err))
		}
	}
	return errors.Join(errs...)
}
