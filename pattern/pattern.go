// Package pattern defines the immutable pattern descriptor: an expression
// plus the option flags it is compiled with.
//
// Two descriptors are equal when both the expression and the options are
// equal, and equal descriptors compile to equivalent matchers. Descriptor is
// comparable and is used directly as a cache key.
//
// Example:
//
//	d := pattern.New(`(\w+) = (.*)`).CaseInsensitive().AnchorsMatchLines()
//	fmt.Println(d) // (\w+) = (.*) [case-insensitive,anchors-match-lines]
package pattern

import (
	"strings"
)

// Descriptor is a pattern expression together with its matching options.
type Descriptor struct {
	Expr    string
	Options Options
}

// New returns a descriptor for expr with the given options.
func New(expr string, opts ...Options) Descriptor {
	d := Descriptor{Expr: expr}
	for _, o := range opts {
		d.Options |= o
	}
	return d
}

// Descriptor returns d itself, so that a Descriptor can be passed wherever a
// pattern source is accepted.
func (d Descriptor) Descriptor() Descriptor {
	return d
}

// With returns a copy of d with opts added.
func (d Descriptor) With(opts Options) Descriptor {
	return Descriptor{Expr: d.Expr, Options: d.Options | opts}
}

// Without returns a copy of d with opts removed.
func (d Descriptor) Without(opts Options) Descriptor {
	return Descriptor{Expr: d.Expr, Options: d.Options &^ opts}
}

// CaseInsensitive returns a copy of d matching without regard to case.
func (d Descriptor) CaseInsensitive() Descriptor {
	return d.With(CaseInsensitive)
}

// AllowCommentsAndWhitespace returns a copy of d in which unescaped
// whitespace is ignored and # starts a comment.
func (d Descriptor) AllowCommentsAndWhitespace() Descriptor {
	return d.With(AllowCommentsAndWhitespace)
}

// IgnoreMetacharacters returns a copy of d whose expression is matched
// literally.
func (d Descriptor) IgnoreMetacharacters() Descriptor {
	return d.With(IgnoreMetacharacters)
}

// DotMatchesLineSeparators returns a copy of d in which . matches \n.
func (d Descriptor) DotMatchesLineSeparators() Descriptor {
	return d.With(DotMatchesLineSeparators)
}

// AnchorsMatchLines returns a copy of d in which ^ and $ match at line
// boundaries.
func (d Descriptor) AnchorsMatchLines() Descriptor {
	return d.With(AnchorsMatchLines)
}

// UseUnixLineSeparators returns a copy of d that treats only \n as a line
// separator.
func (d Descriptor) UseUnixLineSeparators() Descriptor {
	return d.With(UseUnixLineSeparators)
}

// UseUnicodeWordBoundaries returns a copy of d that asks for Unicode word
// boundaries.
func (d Descriptor) UseUnicodeWordBoundaries() Descriptor {
	return d.With(UseUnicodeWordBoundaries)
}

// Key returns a string uniquely identifying d.
func (d Descriptor) Key() string {
	var b strings.Builder
	b.Grow(len(d.Expr) + 5)
	b.WriteString(d.Options.hex())
	b.WriteByte(':')
	b.WriteString(d.Expr)
	return b.String()
}

// String returns the expression followed by the option names in brackets.
func (d Descriptor) String() string {
	if d.Options == 0 {
		return d.Expr
	}
	return d.Expr + " [" + d.Options.String() + "]"
}
