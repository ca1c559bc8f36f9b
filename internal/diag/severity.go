package diag

// Severity ranks a problem found in a puzzle input. Only SevError makes
// `advent check` exit non-zero; the lower levels are printed and ignored.
type Severity uint8

const (
	SevInfo Severity = iota
	// SevWarning marks input that solves but looks suspicious.
	SevWarning
	// SevError marks a line no day can parse or solve.
	SevError
)

// FailsCheck reports whether s alone fails a check run.
func (s Severity) FailsCheck() bool { return s >= SevError }

// String is the label check prints in front of each problem.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
