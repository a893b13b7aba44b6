package tickloop

import (
	"errors"
	"fmt"
)

// ErrTimeout is the sentinel matched by every timeout produced in this
// package, via [errors.Is] through the [TimeoutError] cause chain.
var ErrTimeout = errors.New(`tickloop: timed out`)

// TimeoutError reports that a future wrapped by [Timeout] did not become
// ready within its tick budget. It is the only domain error kind in this
// package; all other operations are infallible at this layer.
type TimeoutError struct {
	// Ticks is the budget that was exhausted.
	Ticks int
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf(`tickloop: timed out after %d ticks`, e.Ticks)
}

// Unwrap returns [ErrTimeout], enabling use with [errors.Is].
func (e *TimeoutError) Unwrap() error { return ErrTimeout }
