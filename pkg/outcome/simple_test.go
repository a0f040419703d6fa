package outcome

import (
	"testing"
)

func TestSuccess(t *testing.T) {
	t.Parallel()
	r := Success[int, string, string](5)

	if !r.IsSuccess() || r.IsFail() || r.IsCritical() {
		t.Fatalf("expected success variant, got fail=%v critical=%v", r.IsFail(), r.IsCritical())
	}
	if r.Value() != 5 {
		t.Fatalf("expected value 5, got %d", r.Value())
	}
}

func TestFail(t *testing.T) {
	t.Parallel()
	r := Fail[int, string, string]("invalid input")

	if r.IsSuccess() || !r.IsFail() || r.IsCritical() {
		t.Fatalf("expected fail variant, got success=%v critical=%v", r.IsSuccess(), r.IsCritical())
	}
	if r.Err() != "invalid input" {
		t.Fatalf("expected err 'invalid input', got %q", r.Err())
	}
	if r.Value() != 0 {
		t.Fatalf("expected zero value on failure, got %d", r.Value())
	}
}

func TestCritical(t *testing.T) {
	t.Parallel()
	r := Critical[int, string, string]("defect")

	if r.IsSuccess() || r.IsFail() || !r.IsCritical() {
		t.Fatalf("expected critical variant, got success=%v fail=%v", r.IsSuccess(), r.IsFail())
	}
	if r.CriticalErr() != "defect" {
		t.Fatalf("expected critical 'defect', got %q", r.CriticalErr())
	}
}

func TestFailureFrom_RetypesFailure(t *testing.T) {
	t.Parallel()
	from := Fail[int, string, string]("bad")

	to := FailureFrom[int, bool](from)
	if !to.IsFail() || to.Err() != "bad" {
		t.Fatalf("expected fail 'bad' after re-type, got fail=%v err=%q", to.IsFail(), to.Err())
	}
}

func TestFailureFrom_RetypesCritical(t *testing.T) {
	t.Parallel()
	from := Critical[int, string, string]("boom")

	to := FailureFrom[int, bool](from)
	if !to.IsCritical() || to.CriticalErr() != "boom" {
		t.Fatalf("expected critical 'boom' after re-type, got critical=%v val=%q", to.IsCritical(), to.CriticalErr())
	}
}

func TestFailureFrom_PanicsOnSuccess(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when re-typing a success result")
		}
	}()

	FailureFrom[int, bool](Success[int, string, string](1))
}
