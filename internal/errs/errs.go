// Package errs holds the error taxonomy shared by every tupleregex package.
package errs

import (
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrInvalidPattern reports a pattern the engine could not compile.
	ErrInvalidPattern = errors.Base("invalid pattern")

	// ErrUnsupportedOptions reports option flags an engine cannot honour.
	ErrUnsupportedOptions = errors.Base("unsupported pattern options")

	// ErrGroupNotParticipating reports a non-optional read of a group that
	// did not take part in the match.
	ErrGroupNotParticipating = errors.Base("group did not participate in match")

	// ErrShapeMismatch reports a requested shape that the pattern's groups
	// cannot fill, such as a tuple arity differing from the group count.
	ErrShapeMismatch = errors.Base("shape mismatch")
)

// PatternError represents a pattern compilation error.
type PatternError struct {
	Pattern string
	Options string
	Engine  string
	Err     error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	msg := "tupleregex: compile `" + e.Pattern + "`"
	if e.Options != "" {
		msg += " [" + e.Options + "]"
	}
	if e.Engine != "" {
		msg += " (" + e.Engine + ")"
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *PatternError) Unwrap() error {
	return e.Err
}

// Is makes every PatternError match ErrInvalidPattern.
func (e *PatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

// ShapeMismatch builds an ErrShapeMismatch naming the expected arity and the
// element type that could not be produced.
func ShapeMismatch(want int, have int, elem string) error {
	return errors.Errorf("%w: cannot entuple %d x %s from %d group(s)", ErrShapeMismatch, want, elem, have)
}

// GroupNotParticipating builds an ErrGroupNotParticipating for group.
func GroupNotParticipating(group int) error {
	return errors.Errorf("%w: group %d", ErrGroupNotParticipating, group)
}
