// Package engine defines the narrow contract tupleregex needs from a
// regular-expression engine: compile a pattern descriptor into a matcher,
// and search a subject from a byte offset.
//
// Implementations live in the subpackages:
//   - pcre: backtracking engine (lookaround, backreferences, all flags)
//   - re2: linear-time RE2-syntax engine
//   - literal: multi-pattern literal search for IgnoreMetacharacters
//   - auto: picks the cheapest of the above that accepts a descriptor
package engine

import (
	"github.com/coregx/tupleregex/internal/errs"
	"github.com/coregx/tupleregex/match"
	"github.com/coregx/tupleregex/pattern"
)

// Engine compiles pattern descriptors.
type Engine interface {
	// Name identifies the engine in errors and logs.
	Name() string

	// Compile compiles d. Failures are reported as *PatternError.
	Compile(d pattern.Descriptor) (Matcher, error)
}

// Matcher is a compiled pattern. A Matcher is immutable and safe for
// concurrent use; all per-search state lives in the Scanner.
type Matcher interface {
	// NumGroups returns the number of capture groups, excluding group 0.
	NumGroups() int

	// GroupNames returns the group names indexed by group number; names[0]
	// is always "" and unnamed groups are "".
	GroupNames() []string

	// Scan returns a scanner over subject.
	Scan(subject string) match.Scanner
}

// CompileError wraps err as a pattern compilation error for d.
func CompileError(engine string, d pattern.Descriptor, err error) error {
	return &errs.PatternError{
		Pattern: d.Expr,
		Options: d.Options.String(),
		Engine:  engine,
		Err:     err,
	}
}

// GroupIndex returns the group number whose name is name, or -1.
func GroupIndex(m Matcher, name string) int {
	if name == "" {
		return -1
	}
	for i, n := range m.GroupNames() {
		if n == name {
			return i
		}
	}
	return -1
}

// First returns the first match of m in subject at or after start.
func First(m Matcher, subject string, start int) (match.Match, bool, error) {
	if start < 0 || start > len(subject) {
		return match.Match{}, false, nil
	}
	return m.Scan(subject).Search(start)
}

// ErrUnsupportedOptions is returned (wrapped in a *PatternError) when an
// engine cannot honour a descriptor's option flags.
var ErrUnsupportedOptions = errs.ErrUnsupportedOptions
