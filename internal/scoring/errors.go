package scoring

import (
	"fmt"
	"strings"
)

// ValidationError reports an incomplete or out-of-range answer set.
// The engine never computes a classification on invalid input.
type ValidationError struct {
	Missing    []string       // question IDs with no answer, in catalog order
	Unknown    []string       // answer keys that match no catalog question
	OutOfRange map[string]int // question ID -> offending value
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing answers for %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, fmt.Sprintf("unknown questions %s", strings.Join(e.Unknown, ", ")))
	}
	for id, v := range e.OutOfRange {
		parts = append(parts, fmt.Sprintf("answer for %s is %d, want 0..2", id, v))
	}
	if len(parts) == 0 {
		return "invalid answer set"
	}
	return "invalid answer set: " + strings.Join(parts, "; ")
}

// ok reports whether the error carries no problems.
func (e *ValidationError) ok() bool {
	return len(e.Missing) == 0 && len(e.Unknown) == 0 && len(e.OutOfRange) == 0
}
