package environment

import "errors"

// Error implements errors unique to constructing and stepping
// environments.
type Error struct {
	Op  string
	Err error
}

// Error satisfies the error interface
func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrInvalidAction is reported when an action identifier lies outside
// the action table of an environment. It signals a violated caller
// contract and is never recovered from internally.
var ErrInvalidAction = errors.New("invalid action")

// ErrConfig is reported when an environment is constructed with a
// malformed configuration, for example a goal outside the grid.
var ErrConfig = errors.New("invalid configuration")

// IsInvalidAction returns whether or not an error reports that an
// invalid action was taken
func IsInvalidAction(err error) bool {
	return errors.Is(err, ErrInvalidAction)
}

// IsConfig returns whether or not an error reports a malformed
// environment configuration
func IsConfig(err error) bool {
	return errors.Is(err, ErrConfig)
}
