// Package re2 implements the tupleregex engine contract on top of
// github.com/coregx/coregex, a linear-time engine with RE2 syntax.
//
// Options map onto inline flags ((?i), (?s), (?m)); comments-and-whitespace
// mode has no RE2 equivalent and is rejected with ErrUnsupportedOptions.
//
// coregex scans from the start of the haystack only, so a search that begins
// at a non-zero offset sees subject[at:]: ^ and \b evaluate as if the text
// started there. Use the pcre engine when exact context at an offset matters.
package re2

import (
	"regexp/syntax"

	"github.com/coregx/coregex"
	"gitlab.com/tozd/go/errors"

	"github.com/coregx/tupleregex/engine"
	"github.com/coregx/tupleregex/match"
	"github.com/coregx/tupleregex/pattern"
)

// Name is the engine name used in configuration and errors.
const Name = "re2"

// Engine compiles descriptors with coregex.
type Engine struct{}

var _ engine.Engine = Engine{}

// New returns the coregex engine.
func New() Engine {
	return Engine{}
}

// Name implements engine.Engine.
func (Engine) Name() string {
	return Name
}

// Compile implements engine.Engine.
func (Engine) Compile(d pattern.Descriptor) (engine.Matcher, error) {
	expr, err := Translate(d)
	if err != nil {
		return nil, engine.CompileError(Name, d, err)
	}
	// Group names come from the stdlib parser; coregex parses the same syntax.
	tree, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return nil, engine.CompileError(Name, d, err)
	}
	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, engine.CompileError(Name, d, err)
	}
	return &matcher{re: re, names: tree.CapNames()}, nil
}

// Translate rewrites d into a single RE2 expression carrying its options as
// inline flags.
func Translate(d pattern.Descriptor) (string, error) {
	if d.Options.Has(pattern.AllowCommentsAndWhitespace) {
		return "", errors.Errorf("%w: %s", engine.ErrUnsupportedOptions,
			pattern.AllowCommentsAndWhitespace)
	}
	expr := d.Expr
	if d.Options.Has(pattern.IgnoreMetacharacters) {
		expr = coregex.QuoteMeta(expr)
	}
	var flags []byte
	if d.Options.Has(pattern.CaseInsensitive) {
		flags = append(flags, 'i')
	}
	if d.Options.Has(pattern.AnchorsMatchLines) {
		flags = append(flags, 'm')
	}
	if d.Options.Has(pattern.DotMatchesLineSeparators) {
		flags = append(flags, 's')
	}
	if len(flags) == 0 {
		return expr, nil
	}
	return "(?" + string(flags) + ")" + expr, nil
}

type matcher struct {
	re    *coregex.Regex
	names []string
}

func (m *matcher) NumGroups() int {
	return len(m.names) - 1
}

func (m *matcher) GroupNames() []string {
	return m.names
}

func (m *matcher) Scan(subject string) match.Scanner {
	return &scanner{re: m.re, subject: subject, groups: len(m.names), base: -1}
}

// scanner runs coregex once per base offset and serves successive searches
// from the batch, rescanning only when asked for an offset the batch cannot
// answer (before the base, or inside a batched match).
type scanner struct {
	re      *coregex.Regex
	subject string
	groups  int
	base    int
	batch   [][]int
	next    int
}

func (s *scanner) Search(at int) (match.Match, bool, error) {
	if at > len(s.subject) {
		return match.Match{}, false, nil
	}
	if s.base < 0 || at < s.base || s.inside(at) {
		s.rescan(at)
	}
	for ; s.next < len(s.batch); s.next++ {
		loc := s.batch[s.next]
		if loc[0]+s.base >= at {
			return s.build(loc), true, nil
		}
	}
	return match.Match{}, false, nil
}

func (s *scanner) inside(at int) bool {
	for i := s.next; i < len(s.batch); i++ {
		start, end := s.batch[i][0]+s.base, s.batch[i][1]+s.base
		if start >= at {
			return false
		}
		if at < end {
			return true
		}
	}
	return false
}

func (s *scanner) rescan(at int) {
	s.base = at
	s.next = 0
	s.batch = s.re.FindAllStringSubmatchIndex(s.subject[at:], -1)
}

func (s *scanner) build(loc []int) match.Match {
	spans := make([]match.Span, s.groups)
	for i := range spans {
		spans[i] = match.NoSpan
		if 2*i+1 >= len(loc) || loc[2*i] < 0 {
			continue
		}
		spans[i] = match.Span{Start: loc[2*i] + s.base, End: loc[2*i+1] + s.base}
	}
	return match.New(spans)
}
