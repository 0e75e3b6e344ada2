// Package match holds the engine-neutral match representation and the
// enumerator that walks successive matches through a subject string.
package match

import (
	"strconv"
)

// Span is a half-open byte range [Start, End) into a subject string.
// A negative Start marks a group that did not participate in the match.
type Span struct {
	Start int
	End   int
}

// NoSpan is the span of a group that did not participate in a match.
var NoSpan = Span{Start: -1, End: -1}

// Matched reports whether the span is present.
func (s Span) Matched() bool {
	return s.Start >= 0
}

// Len returns the length of the span in bytes, 0 when absent.
func (s Span) Len() int {
	if !s.Matched() {
		return 0
	}
	return s.End - s.Start
}

// Text returns the text of the span in subject, "" when absent.
func (s Span) Text(subject string) string {
	if !s.Matched() {
		return ""
	}
	return subject[s.Start:s.End]
}

// String formats the span as [start,end) or "-" when absent.
func (s Span) String() string {
	if !s.Matched() {
		return "-"
	}
	return "[" + strconv.Itoa(s.Start) + "," + strconv.Itoa(s.End) + ")"
}

// Match is one occurrence of a pattern in a subject. Index 0 is the whole
// match, indices 1..NumGroups() are the capture groups in pattern order.
type Match struct {
	spans []Span
}

// New returns a match over spans. spans[0] must be the whole match.
// The slice is retained.
func New(spans []Span) Match {
	return Match{spans: spans}
}

// FromIndex builds a match from the flat index pairs used by stdlib-style
// engines (start0, end0, start1, end1, ...). Negative pairs become NoSpan.
func FromIndex(loc []int) Match {
	spans := make([]Span, len(loc)/2)
	for i := range spans {
		if loc[2*i] < 0 {
			spans[i] = NoSpan
			continue
		}
		spans[i] = Span{Start: loc[2*i], End: loc[2*i+1]}
	}
	return Match{spans: spans}
}

// Whole returns the span of the entire match.
func (m Match) Whole() Span {
	if len(m.spans) == 0 {
		return NoSpan
	}
	return m.spans[0]
}

// Group returns the span of group i; group 0 is the whole match.
// Groups outside the match report NoSpan.
func (m Match) Group(i int) Span {
	if i < 0 || i >= len(m.spans) {
		return NoSpan
	}
	return m.spans[i]
}

// NumGroups returns the number of capture groups, excluding group 0.
func (m Match) NumGroups() int {
	if len(m.spans) == 0 {
		return 0
	}
	return len(m.spans) - 1
}

// Spans returns the spans of group 0 followed by every capture group.
// The returned slice must not be modified.
func (m Match) Spans() []Span {
	return m.spans
}

// IsZero reports whether m holds no spans at all.
func (m Match) IsZero() bool {
	return len(m.spans) == 0
}
