package shape

import (
	"fmt"

	"github.com/coregx/tupleregex/internal/errs"
	"github.com/coregx/tupleregex/match"
)

// Entuple reads m, a match in subject, into shape s with element type T.
//
// The result has one element per group selected by s.Indices. Presence
// yields an empty result. For a non-optional scalar with string elements an
// absent group is an ErrGroupNotParticipating error; every other combination
// represents absence in the element itself.
func Entuple[T Element](m match.Match, subject string, s Shape, opts Options) ([]T, error) {
	idx, err := s.Indices(m.NumGroups())
	if err != nil {
		return nil, err
	}
	if len(idx) == 0 {
		return nil, nil
	}
	spans := make([]match.Span, len(idx))
	for i, g := range idx {
		spans[i] = m.Group(g)
	}
	if s.kind == KindScalar && !spans[0].Matched() {
		var zero T
		if _, ok := any(zero).(string); ok {
			return nil, errs.GroupNotParticipating(idx[0])
		}
	}
	return convert[T](spans, subject, m.NumGroups(), opts)
}

// EntupleOne is Entuple for single-value shapes.
func EntupleOne[T Element](m match.Match, subject string, s Shape, opts Options) (T, error) {
	var zero T
	out, err := Entuple[T](m, subject, s, opts)
	if err != nil {
		return zero, err
	}
	if len(out) != 1 {
		return zero, errs.ShapeMismatch(1, m.NumGroups(), s.String())
	}
	return out[0], nil
}

// convert tries each representation in turn, from raw spans to rune ranges,
// and returns the first one assignable to []T.
func convert[T Element](spans []match.Span, subject string, groups int, opts Options) ([]T, error) {
	if out, ok := any(spans).([]T); ok {
		return out, nil
	}
	subs := substrings(spans, subject)
	if out, ok := any(subs).([]T); ok {
		return out, nil
	}
	strs := texts(subs, opts.Unmatched)
	if out, ok := any(strs).([]T); ok {
		return out, nil
	}
	ranges := runeRanges(spans, subject)
	if out, ok := any(ranges).([]T); ok {
		return out, nil
	}
	var zero T
	return nil, errs.ShapeMismatch(len(spans), groups, fmt.Sprintf("%T", zero))
}
