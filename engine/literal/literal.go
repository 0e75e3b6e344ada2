// Package literal implements the tupleregex engine contract for patterns
// compiled with pattern.IgnoreMetacharacters, using the Aho-Corasick
// automaton from github.com/coregx/ahocorasick.
//
// A literal pattern has no capture groups. Case-insensitive literals are
// rejected with ErrUnsupportedOptions; the auto engine hands those to pcre.
package literal

import (
	"github.com/coregx/ahocorasick"
	"gitlab.com/tozd/go/errors"

	"github.com/coregx/tupleregex/engine"
	"github.com/coregx/tupleregex/match"
	"github.com/coregx/tupleregex/pattern"
)

// Name is the engine name used in configuration and errors.
const Name = "literal"

// Engine compiles descriptors as literal text.
type Engine struct{}

var _ engine.Engine = Engine{}

// New returns the literal engine.
func New() Engine {
	return Engine{}
}

// Name implements engine.Engine.
func (Engine) Name() string {
	return Name
}

// Compile implements engine.Engine. The expression is always taken
// literally, whether or not IgnoreMetacharacters is set.
func (Engine) Compile(d pattern.Descriptor) (engine.Matcher, error) {
	if d.Options.Has(pattern.CaseInsensitive) {
		return nil, engine.CompileError(Name, d,
			errors.Errorf("%w: %s", engine.ErrUnsupportedOptions, pattern.CaseInsensitive))
	}
	if d.Expr == "" {
		return &matcher{}, nil
	}
	builder := ahocorasick.NewBuilder()
	builder.AddPattern([]byte(d.Expr))
	auto, err := builder.Build()
	if err != nil {
		return nil, engine.CompileError(Name, d, err)
	}
	return &matcher{auto: auto, n: len(d.Expr)}, nil
}

var literalGroupNames = []string{""}

type matcher struct {
	auto *ahocorasick.Automaton
	n    int
}

func (m *matcher) NumGroups() int {
	return 0
}

func (m *matcher) GroupNames() []string {
	return literalGroupNames
}

func (m *matcher) Scan(subject string) match.Scanner {
	return &scanner{m: m, subject: subject}
}

type scanner struct {
	m        *matcher
	subject  string
	haystack []byte
}

func (s *scanner) Search(at int) (match.Match, bool, error) {
	if at > len(s.subject) {
		return match.Match{}, false, nil
	}
	// the empty literal matches everywhere
	if s.m.auto == nil {
		return match.New([]match.Span{{Start: at, End: at}}), true, nil
	}
	if len(s.subject)-at < s.m.n {
		return match.Match{}, false, nil
	}
	if s.haystack == nil {
		s.haystack = []byte(s.subject)
	}
	found := s.m.auto.Find(s.haystack, at)
	if found == nil {
		return match.Match{}, false, nil
	}
	return match.New([]match.Span{{Start: found.Start, End: found.End}}), true, nil
}
