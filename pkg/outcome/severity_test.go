package outcome

import (
	"testing"
)

func TestSeverityOrdering(t *testing.T) {
	t.Parallel()
	ordered := []Severity{SeverityOK, SeverityInfo, SeverityWarning, SeverityError, SeverityCritical}

	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Fatalf("expected %v < %v", ordered[i-1], ordered[i])
		}
	}
}

func TestSeverityIsSuccess(t *testing.T) {
	t.Parallel()
	success := map[Severity]bool{
		SeverityOK:       true,
		SeverityInfo:     true,
		SeverityWarning:  true,
		SeverityError:    false,
		SeverityCritical: false,
	}

	for s, want := range success {
		if s.IsSuccess() != want {
			t.Fatalf("IsSuccess(%v): expected %v", s, want)
		}
	}
}

func TestSeverityString(t *testing.T) {
	t.Parallel()
	want := map[Severity]string{
		SeverityOK:       "ok",
		SeverityInfo:     "info",
		SeverityWarning:  "warning",
		SeverityError:    "error",
		SeverityCritical: "critical",
		Severity(99):     "unknown",
	}

	for s, str := range want {
		if s.String() != str {
			t.Fatalf("String(%d): expected %q, got %q", int(s), str, s.String())
		}
	}
}
