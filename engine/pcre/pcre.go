// Package pcre implements the tupleregex engine contract on top of
// github.com/dlclark/regexp2, a backtracking engine with Perl/.NET syntax.
//
// It supports every pattern option and constructs RE2 lacks: lookaround,
// backreferences, atomic groups. regexp2 reports positions in runes; the
// scanner converts them to byte offsets once per subject.
package pcre

import (
	"strconv"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/coregx/tupleregex/engine"
	"github.com/coregx/tupleregex/match"
	"github.com/coregx/tupleregex/pattern"
)

// Name is the engine name used in configuration and errors.
const Name = "pcre"

// Engine compiles descriptors with regexp2.
type Engine struct {
	// MatchTimeout bounds each search; zero means no timeout.
	MatchTimeout time.Duration
}

var _ engine.Engine = (*Engine)(nil)

// New returns an engine without a match timeout.
func New() *Engine {
	return &Engine{}
}

// Name implements engine.Engine.
func (e *Engine) Name() string {
	return Name
}

// Compile implements engine.Engine.
func (e *Engine) Compile(d pattern.Descriptor) (engine.Matcher, error) {
	expr := d.Expr
	if d.Options.Has(pattern.IgnoreMetacharacters) {
		expr = regexp2.Escape(expr)
	}
	re, err := regexp2.Compile(expr, translate(d.Options))
	if err != nil {
		return nil, engine.CompileError(Name, d, err)
	}
	if e.MatchTimeout > 0 {
		re.MatchTimeout = e.MatchTimeout
	}
	return newMatcher(re, captures(expr, d.Options.Has(pattern.AllowCommentsAndWhitespace))), nil
}

// translate maps descriptor options onto regexp2 options. Line-separator and
// word-boundary modes have no regexp2 counterpart and only take part in the
// descriptor's identity.
func translate(o pattern.Options) regexp2.RegexOptions {
	opts := regexp2.None
	if o.Has(pattern.CaseInsensitive) {
		opts |= regexp2.IgnoreCase
	}
	if o.Has(pattern.AllowCommentsAndWhitespace) {
		opts |= regexp2.IgnorePatternWhitespace
	}
	if o.Has(pattern.DotMatchesLineSeparators) {
		opts |= regexp2.Singleline
	}
	if o.Has(pattern.AnchorsMatchLines) {
		opts |= regexp2.Multiline
	}
	return opts
}

// matcher reports groups in the order their parentheses appear; order[i]
// is the regexp2 group number of group i.
type matcher struct {
	re    *regexp2.Regexp
	order []int
	names []string
}

func newMatcher(re *regexp2.Regexp, caps []capture) *matcher {
	order := groupOrder(re, caps)
	names := make([]string, len(order))
	for i, num := range order {
		name := re.GroupNameFromNumber(num)
		// unnamed groups are reported under their number
		if i == 0 || name == strconv.Itoa(num) {
			name = ""
		}
		names[i] = name
	}
	return &matcher{re: re, order: order, names: names}
}

func (m *matcher) NumGroups() int {
	return len(m.names) - 1
}

func (m *matcher) GroupNames() []string {
	return m.names
}

func (m *matcher) Scan(subject string) match.Scanner {
	return &scanner{re: m.re, subject: subject, order: m.order}
}

// scanner holds the rune form of one subject and the byte offset of every
// rune, so that rune positions from regexp2 convert in O(1).
type scanner struct {
	re      *regexp2.Regexp
	subject string
	order   []int
	runes   []rune
	offsets []int
}

func (s *scanner) init() {
	if s.offsets != nil {
		return
	}
	s.runes = make([]rune, 0, len(s.subject))
	s.offsets = make([]int, 0, len(s.subject)+1)
	for i, r := range s.subject {
		s.runes = append(s.runes, r)
		s.offsets = append(s.offsets, i)
	}
	s.offsets = append(s.offsets, len(s.subject))
}

// runeIndex converts a byte offset to the index of the first rune starting
// at or after it.
func (s *scanner) runeIndex(at int) int {
	lo, hi := 0, len(s.offsets)-1
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.offsets[mid] < at {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func (s *scanner) Search(at int) (match.Match, bool, error) {
	if at > len(s.subject) {
		return match.Match{}, false, nil
	}
	s.init()
	m, err := s.re.FindRunesMatchStartingAt(s.runes, s.runeIndex(at))
	if err != nil {
		return match.Match{}, false, err
	}
	if m == nil {
		return match.Match{}, false, nil
	}
	spans := make([]match.Span, len(s.order))
	for i, num := range s.order {
		spans[i] = match.NoSpan
		g := m.GroupByNumber(num)
		if g == nil || len(g.Captures) == 0 {
			continue
		}
		spans[i] = match.Span{
			Start: s.offsets[g.Index],
			End:   s.offsets[g.Index+g.Length],
		}
	}
	return match.New(spans), true, nil
}
