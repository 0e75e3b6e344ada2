package replace

import (
	"github.com/coregx/tupleregex/match"
	"github.com/coregx/tupleregex/shape"
)

// Mode is the replacement strategy of a Request.
type Mode uint8

const (
	// ModeGlobal applies one value to every match.
	ModeGlobal Mode = iota
	// ModeSelective applies one value per match, in order, and stops when
	// the values run out.
	ModeSelective
	// ModeCallback asks a function for each match's replacement text.
	ModeCallback
)

// Action is a callback's answer for one match: the literal text replacing
// the match, and whether enumeration continues afterwards.
type Action struct {
	text string
	stop bool
}

// Continue replaces the match with text and moves on to the next match.
func Continue(text string) Action {
	return Action{text: text}
}

// Stop replaces the match with text and ends the replacement.
func Stop(text string) Action {
	return Action{text: text, stop: true}
}

// Text returns the replacement text.
func (a Action) Text() string {
	return a.text
}

// Stopped reports whether the action ends enumeration.
func (a Action) Stopped() bool {
	return a.stop
}

// evaluator reads one match in its caller's shape and produces an Action.
type evaluator func(m match.Match, subject string) (Action, error)

// Request describes a replacement.
type Request struct {
	mode   Mode
	values []shape.Value
	group  int
	forced bool
	eval   evaluator
}

// Global returns a request applying v to every match.
func Global(v shape.Value) Request {
	return Request{mode: ModeGlobal, values: []shape.Value{v}}
}

// Selective returns a request applying values[i] to the i-th match and
// leaving everything after the last consumed match untouched.
func Selective(values ...shape.Value) Request {
	return Request{mode: ModeSelective, values: values}
}

// Callback returns a request that entuples each match as read and replaces
// it with fn's answer. The answer is literal text; it is not expanded.
func Callback[T shape.Element](read shape.Shape, opts shape.Options, fn func(groups []T) Action) Request {
	eval := func(m match.Match, subject string) (Action, error) {
		groups, err := shape.Entuple[T](m, subject, read, opts)
		if err != nil {
			return Action{}, err
		}
		return fn(groups), nil
	}
	return Request{mode: ModeCallback, eval: eval}
}

// Group returns a copy of r that replaces group g of each match instead of
// the groups its values would select.
// Compose rejects a g outside 0..NumGroups before searching.
func (r Request) Group(g int) Request {
	r.group = g
	r.forced = true
	return r
}

// Mode returns the request's strategy.
func (r Request) Mode() Mode {
	return r.mode
}

func (r Request) targets(v shape.Value, groups int) ([]shape.Target, error) {
	if r.forced {
		return shape.GroupTargets(v, r.group, groups)
	}
	return shape.Targets(v, groups)
}
