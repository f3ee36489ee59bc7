package taxengine

import (
	"errors"
	"fmt"
)

// ErrMalformedTable is wrapped by every ComputationError.
var ErrMalformedTable = errors.New("malformed bracket table")

// ComputationError describes a bracket table that breaks the ordering or
// contiguity rules. It is a configuration bug and is reported when tables are
// loaded.
type ComputationError struct {
	Table  string
	Index  int
	Reason string
}

func (e *ComputationError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%s: bracket %d: %s", ErrMalformedTable, e.Index, e.Reason)
	}
	return fmt.Sprintf("%s %q: bracket %d: %s", ErrMalformedTable, e.Table, e.Index, e.Reason)
}

func (e *ComputationError) Unwrap() error {
	return ErrMalformedTable
}

// Validate checks that the table starts at 0, ascends contiguously (allowing
// the one unit gap used by published tables), ends with an unbounded bracket
// and only carries rates in [0,1].
func (t BracketTable) Validate() error {
	if len(t) == 0 {
		return &ComputationError{Index: -1, Reason: "table is empty"}
	}
	if t[0].Min != 0 {
		return &ComputationError{Index: 0, Reason: fmt.Sprintf("first bracket starts at %v, want 0", t[0].Min)}
	}

	for i, b := range t {
		if b.Rate < 0 || b.Rate > 1 {
			return &ComputationError{Index: i, Reason: fmt.Sprintf("rate %v outside [0,1]", b.Rate)}
		}
		if b.Max <= b.Min {
			return &ComputationError{Index: i, Reason: fmt.Sprintf("max %v not above min %v", b.Max, b.Min)}
		}

		last := i == len(t)-1
		if last && !b.Unbounded() {
			return &ComputationError{Index: i, Reason: "last bracket must be unbounded"}
		}
		if !last && b.Unbounded() {
			return &ComputationError{Index: i, Reason: "only the last bracket may be unbounded"}
		}

		if i == 0 {
			continue
		}
		gap := b.Min - t[i-1].Max
		switch {
		case gap < 0:
			return &ComputationError{Index: i, Reason: fmt.Sprintf("overlaps previous bracket by %v", -gap)}
		case gap > 1:
			return &ComputationError{Index: i, Reason: fmt.Sprintf("gap of %v after previous bracket", gap)}
		}
	}

	return nil
}
