package tupleregex

import (
	"github.com/coregx/tupleregex/internal/errs"
)

var (
	// ErrInvalidPattern is matched by every compilation failure.
	ErrInvalidPattern = errs.ErrInvalidPattern

	// ErrUnsupportedOptions reports option flags the configured engine
	// cannot honour.
	ErrUnsupportedOptions = errs.ErrUnsupportedOptions

	// ErrGroupNotParticipating reports a non-optional read of a group
	// absent from the match.
	ErrGroupNotParticipating = errs.ErrGroupNotParticipating

	// ErrShapeMismatch reports a shape the pattern's groups cannot fill.
	// It indicates a caller/pattern mismatch, not a data problem.
	ErrShapeMismatch = errs.ErrShapeMismatch
)

// PatternError represents a pattern compilation error.
type PatternError = errs.PatternError
