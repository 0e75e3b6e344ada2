// Package shape converts between regular-expression matches and the
// structured values callers read from or write into them.
//
// A Shape says which groups of a match a caller wants:
//
//	Scalar()      group 0, the whole match
//	Optional()    like Scalar, but tolerates an absent (forced) group
//	Tuple(n)      groups 1..n; n must equal the pattern's group count
//	List()        group 0 followed by every capture group
//	s.Group(g)    exactly group g, overriding the rule above
//
// Tuples exclude the whole match and lists include it. A zero-group pattern
// read as Tuple(1) yields the whole match. Callers that want group 1 of a
// one-group pattern as a single value ask for Tuple(1) or Scalar().Group(1).
//
// Entuple reads a match into a shape; Value and Targets describe the
// symmetric write direction.
package shape

import (
	"strconv"

	"github.com/coregx/tupleregex/internal/errs"
)

// Kind enumerates the shape variants.
type Kind uint8

const (
	// KindPresence reads nothing; only whether a match exists.
	KindPresence Kind = iota
	// KindScalar reads a single value.
	KindScalar
	// KindOptional reads a single value that may be absent.
	KindOptional
	// KindTuple reads a fixed number of capture groups.
	KindTuple
	// KindList reads the whole match and every capture group.
	KindList
)

var kindNames = [...]string{"presence", "scalar", "optional", "tuple", "list"}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Shape is the structural form a caller reads from a match.
type Shape struct {
	kind   Kind
	arity  int
	group  int
	forced bool
}

// Presence returns the shape that only tests for a match.
func Presence() Shape {
	return Shape{kind: KindPresence}
}

// Scalar returns the single-value shape; it reads the whole match.
func Scalar() Shape {
	return Shape{kind: KindScalar, arity: 1}
}

// Optional returns the optional single-value shape.
func Optional() Shape {
	return Shape{kind: KindOptional, arity: 1}
}

// Tuple returns the shape reading capture groups 1..n.
func Tuple(n int) Shape {
	return Shape{kind: KindTuple, arity: n}
}

// List returns the shape reading group 0 and every capture group.
func List() Shape {
	return Shape{kind: KindList}
}

// Group returns a copy of s narrowed to group g alone (0 is the whole match).
// A g the pattern does not have, negative ones included, is a shape mismatch.
func (s Shape) Group(g int) Shape {
	s.group = g
	s.forced = true
	if s.kind != KindPresence {
		s.arity = 1
	}
	return s
}

// Kind returns the shape variant.
func (s Shape) Kind() Kind {
	return s.kind
}

// Arity returns the tuple arity; 1 for scalars and forced groups, 0 for
// lists and presence.
func (s Shape) Arity() int {
	return s.arity
}

// Forced returns the forced group, if any.
func (s Shape) Forced() (int, bool) {
	return s.group, s.forced
}

// IsOptional reports whether an absent group is acceptable.
func (s Shape) IsOptional() bool {
	return s.kind == KindOptional
}

// String describes the shape, e.g. "tuple(3)" or "scalar@2".
func (s Shape) String() string {
	str := s.kind.String()
	if s.kind == KindTuple {
		str += "(" + strconv.Itoa(s.arity) + ")"
	}
	if s.forced {
		str += "@" + strconv.Itoa(s.group)
	}
	return str
}

// Indices returns the group numbers s reads from a match of a pattern with
// groups capture groups, in output order.
func (s Shape) Indices(groups int) ([]int, error) {
	if s.forced {
		if err := CheckGroup(s.group, groups); err != nil {
			return nil, err
		}
		if s.kind == KindPresence {
			return nil, nil
		}
		return []int{s.group}, nil
	}
	switch s.kind {
	case KindPresence:
		return nil, nil
	case KindScalar, KindOptional:
		return []int{0}, nil
	case KindTuple:
		if s.arity == 1 && groups == 0 {
			return []int{0}, nil
		}
		if s.arity <= 0 || s.arity != groups {
			return nil, errs.ShapeMismatch(s.arity, groups, "tuple")
		}
		idx := make([]int, s.arity)
		for i := range idx {
			idx[i] = i + 1
		}
		return idx, nil
	case KindList:
		idx := make([]int, groups+1)
		for i := range idx {
			idx[i] = i
		}
		return idx, nil
	}
	return nil, errs.ShapeMismatch(s.arity, groups, s.kind.String())
}
