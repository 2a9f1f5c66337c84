package unused

import (
	"surgemin/internal/compile"
)

// Collect reduces a compiler message stream to the dead-definition
// diagnostics for the given build targets. Non-diagnostic messages, messages
// for other targets, diagnostics whose primary span points into macro
// expansions, and texts that do not match a known template are all dropped.
func Collect(msgs []compile.Message, targets map[string]bool) []Diagnostic {
	var out []Diagnostic
	for i := range msgs {
		m := &msgs[i]
		if m.Reason != compile.ReasonCompilerMessage || m.Message == nil {
			continue
		}
		if len(targets) > 0 && !targets[m.Target.Name] {
			continue
		}
		if len(m.Message.Spans) == 0 || m.Message.Spans[0].InExpansion() {
			continue
		}
		d, err := Normalize(m.Message)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out
}
