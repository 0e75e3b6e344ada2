package tupleregex

import (
	"github.com/coregx/tupleregex/replace"
	"github.com/coregx/tupleregex/shape"
)

// Replace returns a copy of s with every match replaced by template.
// Inside template, $0..$9, ${n} and ${name} refer to groups of the match and
// $$ is a literal $.
//
// Example:
//
//	re := tupleregex.MustCompile(`(\w+)@(\w+)`)
//	out, err := re.Replace("a@b", "$2 at $1")
//	// out = "b at a"
func (r *Regex) Replace(s string, template string) (string, error) {
	return r.ReplaceValue(s, shape.Template(template))
}

// ReplaceLiteral returns a copy of s with every match replaced by text,
// without template expansion.
func (r *Regex) ReplaceLiteral(s string, text string) (string, error) {
	return r.ReplaceStringFunc(s, func(string) string { return text })
}

// ReplaceStringFunc returns a copy of s in which every match has been
// replaced by the return value of fn applied to the matched text. The
// returned text is used literally.
func (r *Regex) ReplaceStringFunc(s string, fn func(string) string) (string, error) {
	return ReplaceFunc(r, s, shape.Scalar(), func(groups []string) replace.Action {
		return replace.Continue(fn(groups[0]))
	})
}

// ReplaceTuple replaces capture groups 1..len(templates) of every match with
// the templates, in order. Templates beyond the pattern's groups are
// ignored; for a pattern without groups the first template replaces the
// whole match.
//
// Example:
//
//	re := tupleregex.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
//	out, err := re.ReplaceTuple("2018-01-01", "2019", "02", "02")
//	// out = "2019-02-02"
func (r *Regex) ReplaceTuple(s string, templates ...string) (string, error) {
	return r.ReplaceValue(s, shape.Templates(templates...))
}

// ReplaceGroup replaces group g of every match with template.
//
// Example:
//
//	re := tupleregex.MustCompile(`(\d+) (\d+)-(\d+)`)
//	out, err := re.ReplaceGroup("phone: 555 666-1234", 1, "444")
//	// out = "phone: 444 666-1234"
func (r *Regex) ReplaceGroup(s string, g int, template string) (string, error) {
	return r.compose(s, replace.Global(shape.Template(template)).Group(g))
}

// ReplaceEach replaces the i-th match with templates[i]. Matches after the
// last template are left untouched.
//
// Example:
//
//	re := tupleregex.MustCompile(`\d+`)
//	out, err := re.ReplaceEach("1 2 3", "one", "two")
//	// out = "one two 3"
func (r *Regex) ReplaceEach(s string, templates ...string) (string, error) {
	return r.ReplaceValues(s, scalars(templates)...)
}

// ReplaceEachGroup replaces group g of the i-th match with templates[i].
func (r *Regex) ReplaceEachGroup(s string, g int, templates ...string) (string, error) {
	return r.compose(s, replace.Selective(scalars(templates)...).Group(g))
}

// ReplaceValue replaces every match with v.
func (r *Regex) ReplaceValue(s string, v shape.Value) (string, error) {
	return r.compose(s, replace.Global(v))
}

// ReplaceValues replaces the i-th match with values[i]. A shape.Skip value
// leaves its match untouched.
//
// Example:
//
//	re := tupleregex.MustCompile(`(\w+)=(\w+)`)
//	out, err := re.ReplaceValues("a=1 b=2 c=3",
//	    shape.Templates("x", "9"), shape.Skip(), shape.Template("gone"))
//	// out = "x=9 b=2 gone"
func (r *Regex) ReplaceValues(s string, values ...shape.Value) (string, error) {
	return r.compose(s, replace.Selective(values...))
}

// ReplaceRequest runs req over s and reports the match and replacement
// counts along with the text.
func (r *Regex) ReplaceRequest(s string, req replace.Request) (replace.Result, error) {
	return replace.Compose(r.matcher, s, r.start, req)
}

func (r *Regex) compose(s string, req replace.Request) (string, error) {
	return replace.ComposeString(r.matcher, s, r.start, req)
}

// ReplaceFunc replaces matches of re in s with the text fn returns for each
// match read in shape sh. The text is used literally. If sh forces a group,
// only that group is replaced. Returning replace.Stop ends the replacement
// after the current match.
//
// Example:
//
//	re := tupleregex.MustCompile(`(\w+)=(\d+)`)
//	out, err := tupleregex.ReplaceFunc(re, "a=1 b=2", shape.Tuple(2),
//	    func(kv []string) replace.Action {
//	        return replace.Continue(kv[1] + "=" + kv[0])
//	    })
//	// out = "1=a 2=b"
func ReplaceFunc[T shape.Element](re *Regex, s string, sh shape.Shape, fn func(groups []T) replace.Action) (string, error) {
	req := replace.Callback(sh, re.opts, fn)
	if g, ok := sh.Forced(); ok {
		req = req.Group(g)
	}
	return re.compose(s, req)
}

func scalars(templates []string) []shape.Value {
	values := make([]shape.Value, len(templates))
	for i, t := range templates {
		values[i] = shape.Template(t)
	}
	return values
}
