package shape

import (
	"unicode/utf8"

	"github.com/coregx/tupleregex/match"
)

// Element is the representation of one group in an entupled value:
//
//	match.Span   raw byte range, NoSpan when absent
//	Substring    the group's text plus whether it matched
//	string       the group's text, Options.Unmatched when absent
//	RuneRange    character-index range, NoRuneRange when absent
type Element interface {
	match.Span | Substring | string | RuneRange
}

// Substring is optional group text.
type Substring struct {
	Text    string
	Matched bool
}

// String returns the text, "" when unmatched.
func (s Substring) String() string {
	return s.Text
}

// RuneRange is a half-open range of character (rune) indices.
type RuneRange struct {
	Start int
	End   int
}

// NoRuneRange is the range of an absent group.
var NoRuneRange = RuneRange{Start: -1, End: -1}

// Matched reports whether the range is present.
func (r RuneRange) Matched() bool {
	return r.Start >= 0
}

// Len returns the number of characters in the range.
func (r RuneRange) Len() int {
	if !r.Matched() {
		return 0
	}
	return r.End - r.Start
}

// Options tunes conversions.
type Options struct {
	// Unmatched is the text produced for an absent group when the element
	// type is string.
	Unmatched string
}

func substrings(spans []match.Span, subject string) []Substring {
	out := make([]Substring, len(spans))
	for i, sp := range spans {
		if sp.Matched() {
			out[i] = Substring{Text: subject[sp.Start:sp.End], Matched: true}
		}
	}
	return out
}

func texts(subs []Substring, unmatched string) []string {
	out := make([]string, len(subs))
	for i, sub := range subs {
		if sub.Matched {
			out[i] = sub.Text
		} else {
			out[i] = unmatched
		}
	}
	return out
}

func runeRanges(spans []match.Span, subject string) []RuneRange {
	out := make([]RuneRange, len(spans))
	for i, sp := range spans {
		if !sp.Matched() {
			out[i] = NoRuneRange
			continue
		}
		start := utf8.RuneCountInString(subject[:sp.Start])
		out[i] = RuneRange{Start: start, End: start + utf8.RuneCountInString(subject[sp.Start:sp.End])}
	}
	return out
}
