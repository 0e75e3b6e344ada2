// Package auto selects an engine per pattern descriptor.
//
// Literal descriptors, and expressions that parse to a single case-sensitive
// literal, go to the Aho-Corasick literal engine. Everything RE2 can express
// goes to coregex, and the rest (lookaround, backreferences,
// comments-and-whitespace mode) falls back to the regexp2 backtracker.
package auto

import (
	"regexp/syntax"

	"github.com/coregx/tupleregex/engine"
	"github.com/coregx/tupleregex/engine/literal"
	"github.com/coregx/tupleregex/engine/pcre"
	"github.com/coregx/tupleregex/engine/re2"
	"github.com/coregx/tupleregex/pattern"
)

// Name is the engine name used in configuration and errors.
const Name = "auto"

// Engine tries its engines in order and returns the first success.
type Engine struct {
	literal engine.Engine
	fast    engine.Engine
	full    engine.Engine
}

var _ engine.Engine = (*Engine)(nil)

// New returns an auto engine whose fallback is full.
func New(full *pcre.Engine) *Engine {
	if full == nil {
		full = pcre.New()
	}
	return &Engine{literal: literal.New(), fast: re2.New(), full: full}
}

// Name implements engine.Engine.
func (e *Engine) Name() string {
	return Name
}

// Compile implements engine.Engine. Only the fallback's error is reported,
// since a pattern rejected by RE2 may still be valid for the backtracker.
func (e *Engine) Compile(d pattern.Descriptor) (engine.Matcher, error) {
	if lit, ok := pureLiteral(d); ok {
		if m, err := e.literal.Compile(lit); err == nil {
			return m, nil
		}
	}
	if m, err := e.fast.Compile(d); err == nil {
		return m, nil
	}
	return e.full.Compile(d)
}

// pureLiteral reports whether d matches exactly one fixed string, and returns
// the equivalent literal descriptor.
func pureLiteral(d pattern.Descriptor) (pattern.Descriptor, bool) {
	if d.Options.Has(pattern.IgnoreMetacharacters) {
		return d, true
	}
	if d.Options.Has(pattern.CaseInsensitive) || d.Options.Has(pattern.AllowCommentsAndWhitespace) {
		return d, false
	}
	re, err := syntax.Parse(d.Expr, syntax.Perl)
	if err != nil {
		return d, false
	}
	re = re.Simplify()
	if re.Op != syntax.OpLiteral || re.Flags&syntax.FoldCase != 0 {
		return d, false
	}
	return pattern.New(string(re.Rune), d.Options|pattern.IgnoreMetacharacters), true
}
