package outcome

// Severity classifies an outcome variant independently of its payload.
// The ordering is total and fixed: SeverityOK < SeverityInfo <
// SeverityWarning < SeverityError < SeverityCritical. It orders variants
// only; it never compares payloads.
type Severity int

const (
	// SeverityOK is a plain success.
	SeverityOK Severity = iota
	// SeverityInfo is a success with non-actionable informational context.
	SeverityInfo
	// SeverityWarning is a success whose context suggests a latent problem.
	SeverityWarning
	// SeverityError is an expected failure: valid code, invalid input.
	SeverityError
	// SeverityCritical is a defect in the program or an underlying system.
	SeverityCritical
)

// IsSuccess reports whether the severity belongs to a success variant.
func (s Severity) IsSuccess() bool {
	return s <= SeverityWarning
}

func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
