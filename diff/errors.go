package diff

import "fmt"

// InvariantViolationError is the generator's sole error return: it must
// never originate from a well-formed (ss, sd, ms) triple, so seeing one
// in practice means the input mapping violated the mono invariant or
// referenced an out-of-range id.
type InvariantViolationError struct {
	Phase  string
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("diff: invariant violation in %s: %s", e.Phase, e.Detail)
}
