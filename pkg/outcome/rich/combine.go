package rich

import "strings"

// Combiner is the capability required of every annotation type parameter:
// a closed binary merge over the type. Implementations must be associative,
//
//	a.Combine(b).Combine(c) == a.Combine(b.Combine(c))
//
// so that diagnostics collected across a chain can be merged in any
// grouping. No identity element is required. The compiler cannot check the
// law; implementors are on the hook for it.
type Combiner[T any] interface {
	Combine(other T) T
}

// Notes is a stock annotation type: an ordered list of diagnostic messages
// whose Combine concatenates. LiftSimple uses it for synthesized
// annotations.
type Notes []string

// Combine returns a new Notes holding n followed by other. Neither input is
// modified.
func (n Notes) Combine(other Notes) Notes {
	merged := make(Notes, 0, len(n)+len(other))
	merged = append(merged, n...)
	merged = append(merged, other...)
	return merged
}

func (n Notes) String() string {
	return strings.Join(n, "; ")
}
