package match

import (
	"iter"
	"unicode/utf8"
)

// Scanner searches one subject string. Search returns the leftmost match
// found by a search beginning at byte offset at, or ok == false when there is
// none. Implementations keep whatever per-subject state they need; they are
// not shared between goroutines.
type Scanner interface {
	Search(at int) (m Match, ok bool, err error)
}

// Enumerator produces successive non-overlapping matches from left to right.
//
// After a zero-length match at p the next search starts one rune past p, so
// enumeration always terminates over a finite subject.
//
// Example:
//
//	e := match.NewEnumerator(sc, subject, 0)
//	for e.Next() {
//	    fmt.Println(e.Match().Whole())
//	}
//	if err := e.Err(); err != nil {
//	    return err
//	}
type Enumerator struct {
	sc      Scanner
	subject string
	pos     int
	cur     Match
	err     error
	done    bool
}

// NewEnumerator returns an enumerator over subject starting at byte offset
// start. Offsets past the end of subject yield no matches.
func NewEnumerator(sc Scanner, subject string, start int) *Enumerator {
	e := &Enumerator{sc: sc, subject: subject}
	e.Reset(start)
	return e
}

// Reset restarts the enumeration at byte offset offset.
func (e *Enumerator) Reset(offset int) {
	if offset < 0 {
		offset = 0
	}
	e.pos = offset
	e.cur = Match{}
	e.err = nil
	e.done = offset > len(e.subject)
}

// Next advances to the next match. It returns false when the subject is
// exhausted or the engine failed; Err distinguishes the two.
func (e *Enumerator) Next() bool {
	if e.done {
		return false
	}
	m, ok, err := e.sc.Search(e.pos)
	if err != nil {
		e.err = err
		e.done = true
		return false
	}
	if !ok {
		e.done = true
		return false
	}
	e.cur = m
	whole := m.Whole()
	switch {
	case whole.End > whole.Start:
		e.pos = whole.End
	case whole.End >= len(e.subject):
		e.pos = len(e.subject)
		e.done = true
	default:
		_, width := utf8.DecodeRuneInString(e.subject[whole.End:])
		e.pos = whole.End + width
	}
	return true
}

// Match returns the match produced by the last successful call to Next.
func (e *Enumerator) Match() Match {
	return e.cur
}

// Err returns the engine error that stopped the enumeration, if any.
func (e *Enumerator) Err() error {
	return e.err
}

// Offset returns the byte offset at which the next search will begin.
func (e *Enumerator) Offset() int {
	return e.pos
}

// All returns an iterator over the remaining matches. The iteration stops
// early on error; check Err afterwards.
func (e *Enumerator) All() iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for e.Next() {
			if !yield(e.cur) {
				return
			}
		}
	}
}
