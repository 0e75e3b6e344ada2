package tupleregex

import (
	"github.com/coregx/tupleregex/replace"
	"github.com/coregx/tupleregex/shape"
)

// Text is a string read and assigned through patterns. Patterns are
// compiled through the default compiler.
//
// Methods that read or return a new Text take a value receiver; the Set
// methods assign through a pointer.
//
// Example:
//
//	phone := `(\d+) (\d+)-(\d+)`
//	s := tupleregex.Text("phone: 555 666-1234")
//	area, ok, err := s.GetGroup(tupleregex.Expr(phone), 1)
//	// area = "555"
//	err = s.SetGroup(tupleregex.Expr(phone), 1, "444")
//	// s = "phone: 444 666-1234"
type Text string

// String returns t as a plain string.
func (t Text) String() string {
	return string(t)
}

// Contains reports whether t contains a match of l.
func (t Text) Contains(l Literal) (bool, error) {
	re, err := Default().Resolve(l)
	if err != nil {
		return false, err
	}
	return re.MatchString(string(t)), nil
}

// Get returns the first match of l in t.
func (t Text) Get(l Literal) (string, bool, error) {
	re, err := Default().Resolve(l)
	if err != nil {
		return "", false, err
	}
	return re.FindString(string(t))
}

// GetGroup returns group g of the first match of l in t.
func (t Text) GetGroup(l Literal, g int) (string, bool, error) {
	re, err := Default().Resolve(l)
	if err != nil {
		return "", false, err
	}
	return re.FindGroup(string(t), g)
}

// GetTuple returns groups 1..n of the first match of l in t.
func (t Text) GetTuple(l Literal, n int) ([]string, bool, error) {
	re, err := Default().Resolve(l)
	if err != nil {
		return nil, false, err
	}
	return re.FindTuple(string(t), n)
}

// GetAll returns every match of l in t.
func (t Text) GetAll(l Literal) ([]string, error) {
	re, err := Default().Resolve(l)
	if err != nil {
		return nil, err
	}
	return re.FindAllString(string(t))
}

// With returns a copy of t with every match of l replaced by template.
//
// Example:
//
//	s, err := tupleregex.Text("John Smith").With(tupleregex.Expr(`(\w+) (\w+)`), "$2, $1")
//	// s = "Smith, John"
func (t Text) With(l Literal, template string) (Text, error) {
	return t.with(l, func(re *Regex, s string) (string, error) {
		return re.Replace(s, template)
	})
}

// Set replaces every match of l in *t with template.
func (t *Text) Set(l Literal, template string) error {
	return t.set(l, func(re *Regex, s string) (string, error) {
		return re.Replace(s, template)
	})
}

// SetTuple replaces groups 1..len(templates) of every match of l.
func (t *Text) SetTuple(l Literal, templates ...string) error {
	return t.set(l, func(re *Regex, s string) (string, error) {
		return re.ReplaceTuple(s, templates...)
	})
}

// SetGroup replaces group g of every match of l.
func (t *Text) SetGroup(l Literal, g int, template string) error {
	return t.set(l, func(re *Regex, s string) (string, error) {
		return re.ReplaceGroup(s, g, template)
	})
}

// SetEach replaces the i-th match of l with templates[i].
func (t *Text) SetEach(l Literal, templates ...string) error {
	return t.set(l, func(re *Regex, s string) (string, error) {
		return re.ReplaceEach(s, templates...)
	})
}

// SetValues replaces the i-th match of l with values[i].
func (t *Text) SetValues(l Literal, values ...shape.Value) error {
	return t.set(l, func(re *Regex, s string) (string, error) {
		return re.ReplaceValues(s, values...)
	})
}

// SetFunc replaces every match of l, read as groups 1..n (or the whole
// match for a pattern without groups), with the text fn returns.
func (t *Text) SetFunc(l Literal, fn func(groups []string) replace.Action) error {
	return t.set(l, func(re *Regex, s string) (string, error) {
		return ReplaceFunc(re, s, shape.Tuple(max(re.NumGroups(), 1)), fn)
	})
}

func (t Text) with(l Literal, fn func(re *Regex, s string) (string, error)) (Text, error) {
	re, err := Default().Resolve(l)
	if err != nil {
		return t, err
	}
	out, err := fn(re, string(t))
	if err != nil {
		return t, err
	}
	return Text(out), nil
}

func (t *Text) set(l Literal, fn func(re *Regex, s string) (string, error)) error {
	out, err := t.with(l, fn)
	if err != nil {
		return err
	}
	*t = out
	return nil
}
