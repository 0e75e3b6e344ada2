package tupleregex

import (
	"iter"

	"gitlab.com/tozd/go/errors"

	"github.com/coregx/tupleregex/shape"
)

// Find reads the first match of re in s into shape sh with element type T.
// ok is false when there is no match.
//
// Example:
//
//	re := tupleregex.MustCompile(`(\w)(\w*)`)
//	spans, ok, err := tupleregex.Find[match.Span](re, "Hello", shape.Tuple(2))
//	// spans = [[0,1) [1,5)]
func Find[T shape.Element](re *Regex, s string, sh shape.Shape) ([]T, bool, error) {
	if err := checkForced(re, sh); err != nil {
		return nil, false, err
	}
	m, ok, err := re.first(s)
	if err != nil || !ok {
		return nil, false, err
	}
	out, err := shape.Entuple[T](m, s, sh, re.opts)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// FindAll reads every match of re in s into shape sh.
func FindAll[T shape.Element](re *Regex, s string, sh shape.Shape) ([][]T, error) {
	var all [][]T
	for groups, err := range Iter[T](re, s, sh) {
		if err != nil {
			return nil, err
		}
		all = append(all, groups)
	}
	return all, nil
}

// Iter returns a lazy iterator reading each match of re in s into shape sh.
// The sequence is restartable: every range over it enumerates from re's
// offset again. An error is yielded once and ends the sequence.
//
// Example:
//
//	re := tupleregex.MustCompile(`(\w+)=(\w+)`)
//	for kv, err := range tupleregex.Iter[string](re, "a=1 b=2", shape.Tuple(2)) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(kv[0], kv[1])
//	}
func Iter[T shape.Element](re *Regex, s string, sh shape.Shape) iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		if err := checkForced(re, sh); err != nil {
			yield(nil, err)
			return
		}
		for m, err := range re.Matches(s) {
			if err != nil {
				yield(nil, err)
				return
			}
			groups, err := shape.Entuple[T](m, s, sh, re.opts)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(groups, nil) {
				return
			}
		}
	}
}

// checkForced rejects a forced group the pattern does not have, whether or
// not s matches.
func checkForced(re *Regex, sh shape.Shape) error {
	if g, ok := sh.Forced(); ok {
		return shape.CheckGroup(g, re.NumGroups())
	}
	return nil
}

// FindString returns the text of the first match of the pattern in s.
//
// Example:
//
//	re := tupleregex.MustCompile(`(\w)(\w*)`)
//	word, ok, err := re.FindString("Hello, playground")
//	// word = "Hello", ok = true
func (r *Regex) FindString(s string) (string, bool, error) {
	return findOne(r, s, shape.Scalar())
}

// FindGroup returns the text of group g (0 is the whole match) of the first
// match in s. ok is false when there is no match or the group did not take
// part in it.
//
// Example:
//
//	re := tupleregex.MustCompile(`(\d+) (\d+)-(\d+)`)
//	area, ok, err := re.FindGroup("phone: 555 666-1234", 1)
//	// area = "555"
func (r *Regex) FindGroup(s string, g int) (string, bool, error) {
	return findOne(r, s, shape.Scalar().Group(g))
}

// FindNamed is FindGroup for a named group.
func (r *Regex) FindNamed(s string, name string) (string, bool, error) {
	g := r.SubexpIndex(name)
	if g < 0 {
		return "", false, errors.Errorf("%w: no group named %q", ErrShapeMismatch, name)
	}
	return r.FindGroup(s, g)
}

func findOne(r *Regex, s string, sh shape.Shape) (string, bool, error) {
	out, ok, err := Find[string](r, s, sh)
	if errors.Is(err, ErrGroupNotParticipating) {
		return "", false, nil
	}
	if err != nil || !ok {
		return "", false, err
	}
	return out[0], true, nil
}

// FindTuple returns capture groups 1..n of the first match in s. n must equal
// the number of groups in the pattern, except that a pattern without groups
// reads its whole match as a 1-tuple. Absent groups read as the placeholder.
//
// Example:
//
//	re := tupleregex.MustCompile(`(\w)(\w*)`)
//	t, ok, err := re.FindTuple("Hello, playground", 2)
//	// t = ["H", "ello"]
func (r *Regex) FindTuple(s string, n int) ([]string, bool, error) {
	return Find[string](r, s, shape.Tuple(n))
}

// FindList returns the whole match followed by every capture group of the
// first match in s.
func (r *Regex) FindList(s string) ([]string, bool, error) {
	return Find[string](r, s, shape.List())
}

// FindAllString returns the text of every match in s.
func (r *Regex) FindAllString(s string) ([]string, error) {
	return r.FindAllGroup(s, 0)
}

// FindAllGroup returns group g of every match in s. Matches in which the
// group did not take part read as the placeholder.
func (r *Regex) FindAllGroup(s string, g int) ([]string, error) {
	all, err := FindAll[string](r, s, shape.Optional().Group(g))
	if err != nil {
		return nil, err
	}
	out := make([]string, len(all))
	for i, groups := range all {
		out[i] = groups[0]
	}
	return out, nil
}

// FindAllTuple returns groups 1..n of every match in s.
func (r *Regex) FindAllTuple(s string, n int) ([][]string, error) {
	return FindAll[string](r, s, shape.Tuple(n))
}

// FindAllList returns the whole match and every capture group of every match
// in s.
//
// Example:
//
//	re := tupleregex.MustCompile(`(\w+)@(\w+)`)
//	all, err := re.FindAllList("a@b x@y")
//	// all = [["a@b" "a" "b"] ["x@y" "x" "y"]]
func (r *Regex) FindAllList(s string) ([][]string, error) {
	return FindAll[string](r, s, shape.List())
}
