package tupleregex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/tupleregex/replace"
	"github.com/coregx/tupleregex/shape"
)

func TestReplace(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		repl    string
		want    string
	}{
		{`\d+`, "age: 42", "XX", "age: XX"},
		{`\d+`, "1 2 3", "X", "X X X"},
		{`\d+`, "abc", "X", "abc"},
		{`(\w+) (\w+)`, "John Smith", "$2, $1", "Smith, John"},
		{`(?<first>\w+) (?<last>\w+)`, "John Smith", "${last} ${first}", "Smith John"},
		{`\d+`, "cost 5", "$$$0", "cost $5"},
		// an empty match right after a non-empty one is a match of its own
		{`a*`, "baaac", "-", "-b--c-"},
	}
	for _, tt := range tests {
		got, err := MustCompile(tt.pattern).Replace(tt.input, tt.repl)
		require.NoError(t, err)
		if got != tt.want {
			t.Errorf("Replace(%q, %q, %q) = %q, want %q", tt.pattern, tt.input, tt.repl, got, tt.want)
		}
	}
}

func TestReplaceLiteral(t *testing.T) {
	got, err := MustCompile(`\d+`).ReplaceLiteral("a 1 b 2", "$0")
	require.NoError(t, err)
	assert.Equal(t, "a $0 b $0", got)

	got, err = MustCompile(`\w+`).ReplaceStringFunc("hello big world", strings.ToUpper)
	require.NoError(t, err)
	assert.Equal(t, "HELLO BIG WORLD", got)
}

func TestReplaceTuple(t *testing.T) {
	re := MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	got, err := re.ReplaceTuple("2018-01-01", "2019", "02", "02")
	require.NoError(t, err)
	assert.Equal(t, "2019-02-02", got)

	// templates are expanded against the match
	got, err = re.ReplaceTuple("on 2018-01-31 and 2020-12-24", "$3", "$2", "$1")
	require.NoError(t, err)
	assert.Equal(t, "on 31-01-2018 and 24-12-2020", got)

	// extra templates are ignored
	got, err = MustCompile(`(\w)=(\w)`).ReplaceTuple("a=b", "x", "y", "z")
	require.NoError(t, err)
	assert.Equal(t, "x=y", got)
}

func TestReplaceGroup(t *testing.T) {
	re := MustCompile(`(\d+) (\d+)-(\d+)`)
	got, err := re.ReplaceGroup("phone: 555 666-1234", 1, "444")
	require.NoError(t, err)
	assert.Equal(t, "phone: 444 666-1234", got)

	got, err = re.ReplaceGroup("phone: 555 666-1234", 3, "[$3]")
	require.NoError(t, err)
	assert.Equal(t, "phone: 555 666-[1234]", got)

	_, err = re.ReplaceGroup("phone: 555 666-1234", 7, "x")
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// a group that did not participate is left alone
	got, err = MustCompile(`(\w+)(?:=(\w+))?`).ReplaceGroup("a=1 b", 2, "0")
	require.NoError(t, err)
	assert.Equal(t, "a=0 b", got)
}

func TestReplaceGroupOutOfRange(t *testing.T) {
	re := MustCompile(`(\d+) (\d+)-(\d+)`)
	for _, g := range []int{-1, 4} {
		for _, s := range []string{"phone: 555 666-1234", "no phone"} {
			_, err := re.ReplaceGroup(s, g, "X")
			assert.ErrorIs(t, err, ErrShapeMismatch, "group %d in %q", g, s)

			_, err = re.ReplaceEachGroup(s, g, "X", "Y")
			assert.ErrorIs(t, err, ErrShapeMismatch, "group %d in %q", g, s)

			_, err = ReplaceFunc(re, s, shape.Scalar().Group(g), func([]string) replace.Action {
				return replace.Continue("X")
			})
			assert.ErrorIs(t, err, ErrShapeMismatch, "group %d in %q", g, s)
		}
	}
}

func TestReplaceEach(t *testing.T) {
	re := MustCompile(`\d+`)
	got, err := re.ReplaceEach("1 22 333", "one", "two")
	require.NoError(t, err)
	assert.Equal(t, "one two 333", got)

	got, err = re.ReplaceEach("1 22", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "a b", got)

	got, err = MustCompile(`(\w)=(\d)`).ReplaceEachGroup("a=1 b=2 c=3", 1, "x", "y")
	require.NoError(t, err)
	assert.Equal(t, "x=1 y=2 c=3", got)
}

func TestReplaceValues(t *testing.T) {
	re := MustCompile(`(\w+)=(\w+)`)
	got, err := re.ReplaceValues("a=1 b=2 c=3",
		shape.Templates("x", "9"), shape.Skip(), shape.Template("gone"))
	require.NoError(t, err)
	assert.Equal(t, "x=9 b=2 gone", got)

	got, err = re.ReplaceValue("a=1 b=2",
		shape.ListSlots(shape.Fill("<$0>"), shape.Fill("ignored")))
	require.NoError(t, err)
	assert.Equal(t, "<a=1> <b=2>", got)

	got, err = re.ReplaceValue("a=1 b=2", shape.TemplateSlots(shape.Keep(), shape.Fill("$1")))
	require.NoError(t, err)
	assert.Equal(t, "a=a b=b", got)
}

func TestReplaceFunc(t *testing.T) {
	re := MustCompile(`(\w+)=(\d+)`)
	got, err := ReplaceFunc(re, "a=1 b=2", shape.Tuple(2), func(kv []string) replace.Action {
		return replace.Continue(kv[1] + "=" + kv[0])
	})
	require.NoError(t, err)
	assert.Equal(t, "1=a 2=b", got)

	// a forced group replaces only that group
	got, err = ReplaceFunc(re, "a=1 b=2", shape.Scalar().Group(1), func(k []string) replace.Action {
		return replace.Continue(strings.ToUpper(k[0]))
	})
	require.NoError(t, err)
	assert.Equal(t, "A=1 B=2", got)

	calls := 0
	got, err = ReplaceFunc(re, "a=1 b=2 c=3", shape.Scalar(), func([]string) replace.Action {
		calls++
		if calls == 2 {
			return replace.Stop("STOP")
		}
		return replace.Continue("go")
	})
	require.NoError(t, err)
	assert.Equal(t, "go STOP c=3", got)
	assert.Equal(t, 2, calls)
}

func TestReplaceRequest(t *testing.T) {
	re := MustCompile(`\d`)
	res, err := re.ReplaceRequest("1 2 3", replace.Selective(shape.Template("x"), shape.Skip()))
	require.NoError(t, err)
	assert.Equal(t, replace.Result{Text: "x 2 3", Matches: 2, Replaced: 1}, res)

	// matches are counted even when nothing is replaced
	res, err = re.ReplaceRequest("1 2 3", replace.Global(shape.Skip()))
	require.NoError(t, err)
	assert.Equal(t, replace.Result{Text: "1 2 3", Matches: 3}, res)
}
