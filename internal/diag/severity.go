package diag

// Severity ранжирует диагностики; HasErrors смотрит только на SevError и выше.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	// SevError делает буфер непригодным: удалять из него ничего нельзя.
	SevError
)

var severityNames = [...]string{"INFO", "WARNING", "ERROR"}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}
