// Package replace rebuilds a subject string with some of its matches
// replaced.
//
// The composer walks the matches from left to right and keeps a cursor into
// the subject. For every accepted replacement it emits the untouched gap up to
// the replaced group, then the replacement, and moves the cursor past the
// group; when enumeration ends it emits the untouched tail:
//
//	scanning -> emitting-literal-gap -> emitting-replacement -> scanning
//	scanning -> done
//
// A group that did not participate, a slot without a template, or a group
// starting before the cursor (already consumed by an earlier replacement) is
// left as it is.
package replace

import (
	"strings"

	"github.com/coregx/tupleregex/engine"
	"github.com/coregx/tupleregex/match"
	"github.com/coregx/tupleregex/shape"
)

type state uint8

const (
	stateScanning state = iota
	stateGap
	stateReplacement
	stateDone
)

// Result reports what a composition did.
type Result struct {
	Text     string
	Matches  int
	Replaced int
}

// Compose applies req to the matches of m in subject found at or after byte
// offset start. Text before start is kept verbatim.
func Compose(m engine.Matcher, subject string, start int, req Request) (Result, error) {
	if req.forced {
		if err := shape.CheckGroup(req.group, m.NumGroups()); err != nil {
			return Result{}, err
		}
	}
	c := &composer{subject: subject, names: m.GroupNames()}
	e := match.NewEnumerator(m.Scan(subject), subject, start)

	var err error
	switch req.mode {
	case ModeGlobal:
		err = c.global(e, req, m.NumGroups())
	case ModeSelective:
		err = c.selective(e, req, m.NumGroups())
	case ModeCallback:
		err = c.callback(e, req)
	}
	if err != nil {
		return Result{}, err
	}
	if err := e.Err(); err != nil {
		return Result{}, err
	}
	return c.finish(), nil
}

// ComposeString is Compose returning only the rebuilt text.
func ComposeString(m engine.Matcher, subject string, start int, req Request) (string, error) {
	res, err := Compose(m, subject, start, req)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

type composer struct {
	subject  string
	names    []string
	out      strings.Builder
	pos      int
	state    state
	matches  int
	replaced int
	buf      []byte
}

func (c *composer) global(e *match.Enumerator, req Request, groups int) error {
	targets, err := req.targets(req.values[0], groups)
	if err != nil {
		return err
	}
	for e.Next() {
		c.apply(e.Match(), targets)
	}
	return nil
}

func (c *composer) selective(e *match.Enumerator, req Request, groups int) error {
	for i := 0; i < len(req.values) && e.Next(); i++ {
		targets, err := req.targets(req.values[i], groups)
		if err != nil {
			return err
		}
		c.apply(e.Match(), targets)
	}
	return nil
}

func (c *composer) callback(e *match.Enumerator, req Request) error {
	group := 0
	if req.forced {
		group = req.group
	}
	for e.Next() {
		m := e.Match()
		c.matches++
		act, err := req.eval(m, c.subject)
		if err != nil {
			return err
		}
		if sp := m.Group(group); c.accepts(sp) {
			c.emit(sp, act.text)
		}
		if act.stop {
			break
		}
	}
	return nil
}

func (c *composer) apply(m match.Match, targets []shape.Target) {
	c.matches++
	for _, t := range targets {
		sp := m.Group(t.Group)
		if !c.accepts(sp) {
			continue
		}
		c.buf = Expand(c.buf[:0], t.Template, c.subject, m, c.names)
		c.emit(sp, string(c.buf))
	}
}

func (c *composer) accepts(sp match.Span) bool {
	return sp.Matched() && sp.Start >= c.pos
}

func (c *composer) emit(sp match.Span, text string) {
	c.state = stateGap
	c.out.WriteString(c.subject[c.pos:sp.Start])
	c.state = stateReplacement
	c.out.WriteString(text)
	c.pos = sp.End
	c.replaced++
	c.state = stateScanning
}

func (c *composer) finish() Result {
	if c.state != stateDone {
		if c.replaced == 0 {
			c.state = stateDone
			return Result{Text: c.subject, Matches: c.matches}
		}
		c.out.WriteString(c.subject[c.pos:])
		c.state = stateDone
	}
	return Result{Text: c.out.String(), Matches: c.matches, Replaced: c.replaced}
}
