// errors.go - Error types surfaced by the engine.
package card

import "fmt"

// ValidationError reports a Review field that fails validation. It is
// the only error Render returns: cover, logo and stamp failures
// degrade to placeholders instead of propagating.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid review: %s %s", e.Field, e.Reason)
}
