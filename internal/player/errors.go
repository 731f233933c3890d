package player

import (
	"errors"
	"fmt"
)

// ErrPlayerNotFound reports that the referenced player id or name does not
// exist in the registry.
var ErrPlayerNotFound = errors.New("player not found")

// ValidationError reports malformed registry input, such as an empty name or
// a position outside the known set.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
