// Package tupleregex reads and assigns parts of strings through regular
// expressions, in the shape the caller asks for.
//
// A pattern is compiled once per process and cached. Reads take the first or
// every match and convert it to a scalar, a fixed-size tuple of capture
// groups or a list of all groups. Writes rebuild the subject with one
// template for every match, one template per match, one template per group,
// or the answer of a callback.
//
// Basic usage:
//
//	re := tupleregex.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
//
//	// Whole match
//	date, ok, err := re.FindString("due 2018-01-01")
//
//	// Capture groups 1..3
//	ymd, ok, err := re.FindTuple("due 2018-01-01", 3)
//	// ymd = ["2018", "01", "01"]
//
//	// Assign the groups
//	out, err := re.ReplaceTuple("due 2018-01-01", "2019", "02", "02")
//	// out = "due 2019-02-02"
//
// String sugar:
//
//	s := tupleregex.Text("phone: 555 666-1234")
//	phone := tupleregex.Expr(`(\d+) (\d+)-(\d+)`)
//	area, _, _ := s.GetGroup(phone, 1) // "555"
//	err = s.SetGroup(phone, 1, "444")
//	// s = "phone: 444 666-1234"
//
// Shapes:
//   - scalar: group 0, the whole match
//   - tuple(n): groups 1..n, n must equal the number of groups
//   - list: group 0 followed by every group
//   - a forced group overrides all of the above
//
// Templates use $0..$9, ${n}, ${name} and $$.
package tupleregex

import (
	"iter"

	"github.com/coregx/coregex"

	"github.com/coregx/tupleregex/engine"
	"github.com/coregx/tupleregex/match"
	"github.com/coregx/tupleregex/pattern"
	"github.com/coregx/tupleregex/shape"
)

// Regex is a compiled pattern together with a start offset.
//
// A Regex is immutable and safe to use concurrently from multiple
// goroutines; Offset returns a new value.
//
// Example:
//
//	re := tupleregex.MustCompile(`\w+`)
//	words, err := re.FindAllString("hello big world")
//	// words = ["hello", "big", "world"]
type Regex struct {
	desc    pattern.Descriptor
	matcher engine.Matcher
	opts    shape.Options
	start   int
}

// Compile compiles expr through the default compiler and its process-wide
// cache.
//
// Example:
//
//	re, err := tupleregex.Compile(`(\w)(\w*)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(expr string) (*Regex, error) {
	return Default().Compile(expr)
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
// It simplifies safe initialization of global variables holding compiled
// patterns.
func MustCompile(expr string) *Regex {
	return Default().MustCompile(expr)
}

// CompilePattern compiles a descriptor through the default compiler.
//
// Example:
//
//	re, err := tupleregex.CompilePattern(pattern.New(`^\w+`).AnchorsMatchLines())
func CompilePattern(d pattern.Descriptor) (*Regex, error) {
	return Default().CompilePattern(d)
}

// QuoteMeta returns a string that escapes all regular expression
// metacharacters inside the argument text; the returned string is a pattern
// that matches the literal text.
//
// Example:
//
//	tupleregex.QuoteMeta("1.5") // `1\.5`
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// Descriptor returns the pattern the Regex was compiled from.
func (r *Regex) Descriptor() pattern.Descriptor {
	return r.desc
}

// Pattern returns the source expression.
func (r *Regex) Pattern() string {
	return r.desc.Expr
}

// String returns the source expression, like Pattern.
func (r *Regex) String() string {
	return r.desc.Expr
}

// NumGroups returns the number of capture groups in the pattern.
func (r *Regex) NumGroups() int {
	return r.matcher.NumGroups()
}

// GroupNames returns the names of the capture groups, indexed by group
// number. Element 0 and unnamed groups are "".
func (r *Regex) GroupNames() []string {
	return r.matcher.GroupNames()
}

// SubexpIndex returns the number of the group named name, or -1.
func (r *Regex) SubexpIndex(name string) int {
	return engine.GroupIndex(r.matcher, name)
}

// Matcher returns the compiled matcher shared through the cache.
func (r *Regex) Matcher() engine.Matcher {
	return r.matcher
}

// Offset returns a copy of r whose reads and writes begin at byte offset n.
// Text before n is never matched and never modified.
//
// Example:
//
//	re := tupleregex.MustCompile(`\d+`)
//	s, _, _ := re.Offset(4).FindString("123 456")
//	// s = "456"
func (r *Regex) Offset(n int) *Regex {
	c := *r
	c.start = n
	return &c
}

// Unmatched returns a copy of r that reads placeholder for groups that did
// not participate in a match.
func (r *Regex) Unmatched(placeholder string) *Regex {
	c := *r
	c.opts.Unmatched = placeholder
	return &c
}

// MatchString reports whether s contains any match of the pattern. An engine
// failure, such as a match timeout, reports false.
//
// Example:
//
//	re := tupleregex.MustCompile(`\d+`)
//	re.MatchString("abc 123") // true
func (r *Regex) MatchString(s string) bool {
	_, ok, err := engine.First(r.matcher, s, r.start)
	return ok && err == nil
}

// CountString returns the number of non-overlapping matches of the pattern
// in s. If n > 0, counts at most n matches.
func (r *Regex) CountString(s string, n int) (int, error) {
	e := r.enumerate(s)
	count := 0
	for (n <= 0 || count < n) && e.Next() {
		count++
	}
	return count, e.Err()
}

// Split slices s into substrings separated by the pattern and returns a
// slice of the substrings between those matches.
//
// The count determines the number of substrings to return:
//
//	n > 0: at most n substrings; the last substring will be the unsplit remainder.
//	n == 0: the result is nil (zero substrings)
//	n < 0: all substrings
func (r *Regex) Split(s string, n int) ([]string, error) {
	if n == 0 {
		return nil, nil
	}
	var result []string
	beg, end := 0, 0
	e := r.enumerate(s)
	for e.Next() {
		if n > 0 && len(result) == n-1 {
			break
		}
		whole := e.Match().Whole()
		end = whole.Start
		if whole.End != 0 {
			result = append(result, s[beg:end])
		}
		beg = whole.End
	}
	if err := e.Err(); err != nil {
		return nil, err
	}
	if end != len(s) {
		result = append(result, s[beg:])
	}
	return result, nil
}

func (r *Regex) enumerate(s string) *match.Enumerator {
	return match.NewEnumerator(r.matcher.Scan(s), s, r.start)
}

func (r *Regex) first(s string) (match.Match, bool, error) {
	return engine.First(r.matcher, s, r.start)
}

// Matches returns a lazy iterator over the raw matches of the pattern in s.
// Every range over the result starts a new enumeration; an engine failure
// ends the iteration and is yielded as the error.
func (r *Regex) Matches(s string) iter.Seq2[match.Match, error] {
	return func(yield func(match.Match, error) bool) {
		e := r.enumerate(s)
		for e.Next() {
			if !yield(e.Match(), nil) {
				return
			}
		}
		if err := e.Err(); err != nil {
			yield(match.Match{}, err)
		}
	}
}
