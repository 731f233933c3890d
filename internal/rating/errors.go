package rating

import "errors"

// ErrInvalidScore reports a score outside the accepted 1..5 range.
var ErrInvalidScore = errors.New("score must be an integer between 1 and 5")
