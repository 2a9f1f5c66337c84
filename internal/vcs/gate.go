package vcs

import (
	"fmt"
	"strings"
)

// Allow holds the user's explicit overrides for the cleanliness gate.
type Allow struct {
	Dirty  bool
	Staged bool
	NoVCS  bool
}

// Gate decides whether destructive writes may proceed. A nil result means
// go ahead; otherwise the error names every offending path and the flag
// that would override the refusal.
func Gate(st Status, allow Allow) error {
	switch st.State {
	case StateClean:
		return nil
	case StateNoVCS:
		if allow.NoVCS {
			return nil
		}
		return fmt.Errorf("vcs: no version control found; rerun with --allow-no-vcs to write anyway")
	}
	var parts []string
	if len(st.Dirty) > 0 && !allow.Dirty {
		parts = append(parts, fmt.Sprintf("dirty paths (--allow-dirty to override):\n  %s",
			strings.Join(st.Dirty, "\n  ")))
	}
	if len(st.Staged) > 0 && !allow.Staged {
		parts = append(parts, fmt.Sprintf("staged paths (--allow-staged to override):\n  %s",
			strings.Join(st.Staged, "\n  ")))
	}
	if len(parts) == 0 {
		return nil
	}
	return fmt.Errorf("vcs: working copy is not clean\n%s", strings.Join(parts, "\n"))
}
