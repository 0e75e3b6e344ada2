package tupleregex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/tupleregex/match"
	"github.com/coregx/tupleregex/shape"
)

func TestFindHello(t *testing.T) {
	re := MustCompile(`(\w)(\w*)`)

	word, ok, err := re.FindString("Hello, playground")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Hello", word)

	tuple, ok, err := re.FindTuple("Hello, playground", 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"H", "ello"}, tuple)

	list, ok, err := re.FindList("Hello, playground")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"Hello", "H", "ello"}, list)
}

func TestFindGroup(t *testing.T) {
	re := MustCompile(`(\d+) (\d+)-(\d+)`)
	tests := []struct {
		group int
		want  string
	}{
		{0, "555 666-1234"},
		{1, "555"},
		{2, "666"},
		{3, "1234"},
	}
	for _, tt := range tests {
		got, ok, err := re.FindGroup("phone: 555 666-1234", tt.group)
		require.NoError(t, err)
		require.True(t, ok)
		if got != tt.want {
			t.Errorf("FindGroup(%d) = %q, want %q", tt.group, got, tt.want)
		}
	}

	_, _, err := re.FindGroup("phone: 555 666-1234", 4)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFindGroupOutOfRange(t *testing.T) {
	re := MustCompile(`(\d+) (\d+)-(\d+)`)
	for _, g := range []int{-1, -5, 4} {
		for _, s := range []string{"phone: 555 666-1234", "no phone"} {
			got, ok, err := re.FindGroup(s, g)
			assert.ErrorIs(t, err, ErrShapeMismatch, "group %d in %q", g, s)
			assert.False(t, ok)
			assert.Empty(t, got)

			all, err := re.FindAllGroup(s, g)
			assert.ErrorIs(t, err, ErrShapeMismatch, "group %d in %q", g, s)
			assert.Nil(t, all)
		}
	}
}

func TestFindGroupNotParticipating(t *testing.T) {
	re := MustCompile(`(a)|(b)`)
	got, ok, err := re.FindGroup("b", 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got)

	got, ok, err = re.FindGroup("b", 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b", got)

	// the raw read reports the absence as an error
	_, _, err = Find[string](re, "b", shape.Scalar().Group(1))
	assert.ErrorIs(t, err, ErrGroupNotParticipating)

	// optional reads use the placeholder
	opt, ok, err := Find[string](re.Unmatched("∅"), "b", shape.Optional().Group(1))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"∅"}, opt)
}

func TestFindNamed(t *testing.T) {
	re := MustCompile(`(?<user>\w+)@(?<host>\w+)`)
	host, ok, err := re.FindNamed("mail root@example now", "host")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "example", host)

	_, _, err = re.FindNamed("root@example", "port")
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFindNoMatch(t *testing.T) {
	re := MustCompile(`(\d+)-(\d+)`)

	s, ok, err := re.FindString("none here")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, s)

	tuple, ok, err := re.FindTuple("none here", 2)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, tuple)

	all, err := re.FindAllTuple("none here", 2)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFindTupleArity(t *testing.T) {
	re := MustCompile(`(\d+)-(\d+)`)
	for _, n := range []int{0, 1, 3} {
		_, _, err := re.FindTuple("1-2", n)
		assert.ErrorIs(t, err, ErrShapeMismatch, "arity %d", n)
	}

	// a pattern without groups reads its whole match as a 1-tuple
	got, ok, err := MustCompile(`\d+`).FindTuple("x 42", 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"42"}, got)
}

func TestFindAll(t *testing.T) {
	re := MustCompile(`(\w+)=(\d+)?`)
	subject := "a=1 b= c=3"

	words, err := re.FindAllString(subject)
	require.NoError(t, err)
	assert.Equal(t, []string{"a=1", "b=", "c=3"}, words)

	keys, err := re.FindAllGroup(subject, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	values, err := re.Unmatched("?").FindAllGroup(subject, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "?", "3"}, values)

	tuples, err := re.FindAllTuple(subject, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "1"}, {"b", ""}, {"c", "3"}}, tuples)

	lists, err := re.FindAllList(subject)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a=1", "a", "1"}, {"b=", "b", ""}, {"c=3", "c", "3"}}, lists)
}

func TestFindGeneric(t *testing.T) {
	re := MustCompile(`(\p{L}+)-(\d+)`)
	subject := "ключ-1 née-22"

	spans, ok, err := Find[match.Span](re, subject, shape.Tuple(2))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []match.Span{{Start: 0, End: 8}, {Start: 9, End: 10}}, spans)

	ranges, err := FindAll[shape.RuneRange](re, subject, shape.Scalar())
	require.NoError(t, err)
	assert.Equal(t, [][]shape.RuneRange{{{Start: 0, End: 6}}, {{Start: 7, End: 13}}}, ranges)

	subs, ok, err := Find[shape.Substring](re, subject, shape.List())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ключ-1", subs[0].Text)
	assert.True(t, subs[2].Matched)
}

func TestIter(t *testing.T) {
	re := MustCompile(`(\w+)=(\w+)`)
	seq := Iter[string](re, "a=1 b=2 c=3", shape.Tuple(2))

	var keys []string
	for kv, err := range seq {
		require.NoError(t, err)
		keys = append(keys, kv[0])
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	// restartable and lazy: a second range starts over and may stop early
	var first []string
	for kv, err := range seq {
		require.NoError(t, err)
		first = kv
		break
	}
	assert.Equal(t, []string{"a", "1"}, first)

	var errs []error
	for _, err := range Iter[string](re, "a=1 b=2", shape.Tuple(3)) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrShapeMismatch)
}
