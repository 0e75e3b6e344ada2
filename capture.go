package tupleregex

import (
	"github.com/coregx/tupleregex/match"
	"github.com/coregx/tupleregex/shape"
)

// Capture remembers the last successful match so a chain of conditions can
// test several patterns against one subject and read the winner's groups.
//
// Example:
//
//	var c tupleregex.Capture
//	switch {
//	case c.Match(tupleregex.Expr(`^(\d+)-(\d+)$`), s):
//	    lo, _ := c.Group(1)
//	    hi, _ := c.Group(2)
//	case c.Match(tupleregex.Expr(`^(\d+)$`), s):
//	    n, _ := c.Group(1)
//	}
//	if err := c.Err(); err != nil {
//	    return err
//	}
//
// The zero value is ready to use. A Capture is not safe for concurrent use.
type Capture struct {
	re      *Regex
	subject string
	m       match.Match
	err     error
}

// Match reports whether s contains a match of l and, if it does, remembers
// the match. A failed attempt clears the previous match; a compile or engine
// error is kept for Err.
func (c *Capture) Match(l Literal, s string) bool {
	c.re, c.subject, c.m = nil, "", match.Match{}
	re, err := Default().Resolve(l)
	if err != nil {
		c.fail(err)
		return false
	}
	m, ok, err := re.first(s)
	if err != nil {
		c.fail(err)
		return false
	}
	if !ok {
		return false
	}
	c.re, c.subject, c.m = re, s, m
	return true
}

// Err returns the first compile or engine error met by Match.
func (c *Capture) Err() error {
	return c.err
}

func (c *Capture) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Span returns the byte span of group i of the remembered match.
func (c *Capture) Span(i int) match.Span {
	return c.m.Group(i)
}

// Group returns the text of group i of the remembered match. ok is false
// when there is no match or the group did not take part in it.
func (c *Capture) Group(i int) (string, bool) {
	sp := c.m.Group(i)
	if !sp.Matched() {
		return "", false
	}
	return sp.Text(c.subject), true
}

// Named returns the text of the group named name.
func (c *Capture) Named(name string) (string, bool) {
	if c.re == nil {
		return "", false
	}
	return c.Group(c.re.SubexpIndex(name))
}

// Tuple returns groups 1..n of the remembered match.
func (c *Capture) Tuple(n int) ([]string, error) {
	if c.re == nil {
		return nil, nil
	}
	return shape.Entuple[string](c.m, c.subject, shape.Tuple(n), c.re.opts)
}

// List returns the whole match followed by every group of the remembered
// match, or nil when there is none.
func (c *Capture) List() []string {
	if c.re == nil {
		return nil
	}
	out, _ := shape.Entuple[string](c.m, c.subject, shape.List(), c.re.opts)
	return out
}
