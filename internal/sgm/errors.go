package sgm

import "fmt"

// InvariantError reports a post-step invariant violation. It indicates an
// engine bug, not bad input: the scenario already passed validation. It is
// fatal for the run; Runner.Run returns it together with the partial
// trajectory accumulated so far.
type InvariantError struct {
	Period int
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated at period %d: %s", e.Period, e.Detail)
}
