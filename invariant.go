package retained

import "fmt"

// InvariantError reports a violated internal invariant: a caller-contract
// breach that indicates corruption upstream (for example a malformed
// display-list record), not a recoverable runtime condition. It is
// delivered by panic, never as an error return, and is distinct from
// ordinary errors so that recovery layers can tell the two apart.
type InvariantError struct {
	Msg string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return "retained: invariant violated: " + e.Msg
}

// Assert panics with an InvariantError when cond is false.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
	}
}
