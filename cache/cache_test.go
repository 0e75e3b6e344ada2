package cache

import (
	"bytes"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/coregx/tupleregex/engine"
	"github.com/coregx/tupleregex/engine/pcre"
	"github.com/coregx/tupleregex/internal/errs"
	"github.com/coregx/tupleregex/pattern"
)

// countingEngine counts compilations and can hold them until released.
type countingEngine struct {
	engine.Engine
	compiles atomic.Int64
	gate     chan struct{}
}

func newCounting() *countingEngine {
	return &countingEngine{Engine: pcre.New()}
}

func (e *countingEngine) Compile(d pattern.Descriptor) (engine.Matcher, error) {
	e.compiles.Add(1)
	if e.gate != nil {
		<-e.gate
	}
	return e.Engine.Compile(d)
}

func TestGetCompilesOnce(t *testing.T) {
	e := newCounting()
	c := New(e)
	d := pattern.New(`\d+`)

	m1, err := c.Get(d)
	require.NoError(t, err)
	m2, err := c.Get(d)
	require.NoError(t, err)

	assert.Same(t, m1, m2)
	assert.Equal(t, int64(1), e.compiles.Load())
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Contains(d))
	assert.Equal(t, Stats{Hits: 1, Misses: 1, Compiles: 1}, c.Stats())
}

func TestOptionsArePartOfTheKey(t *testing.T) {
	e := newCounting()
	c := New(e)

	plain, err := c.Get(pattern.New(`abc`))
	require.NoError(t, err)
	folded, err := c.Get(pattern.New(`abc`).CaseInsensitive())
	require.NoError(t, err)

	assert.NotSame(t, plain, folded)
	assert.Equal(t, int64(2), e.compiles.Load())
	assert.Equal(t, 2, c.Len())
}

func TestFailuresAreNotCached(t *testing.T) {
	e := newCounting()
	c := New(e)
	d := pattern.New(`(abc`)

	for range 3 {
		_, err := c.Get(d)
		require.ErrorIs(t, err, errs.ErrInvalidPattern)
	}
	assert.Equal(t, int64(3), e.compiles.Load())
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Contains(d))
	assert.Equal(t, uint64(3), c.Stats().Failures)
}

func TestConcurrentMissesCompileOnce(t *testing.T) {
	e := newCounting()
	e.gate = make(chan struct{})
	c := New(e)
	d := pattern.New(`(\w+)@(\w+)`)

	const workers = 16
	var (
		g       errgroup.Group
		started sync.WaitGroup
		results [workers]engine.Matcher
	)
	started.Add(workers)
	for i := range workers {
		g.Go(func() error {
			started.Done()
			m, err := c.Get(d)
			results[i] = m
			return err
		})
	}
	started.Wait()
	// give every worker time to reach the flight before the compile finishes
	time.Sleep(20 * time.Millisecond)
	close(e.gate)
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(1), e.compiles.Load())
	assert.Equal(t, 1, c.Len())
	for _, m := range results {
		assert.Same(t, results[0], m)
	}
}

func TestConcurrentDistinctPatterns(t *testing.T) {
	c := New(pcre.New())
	var g errgroup.Group
	for i := range 50 {
		g.Go(func() error {
			d := pattern.New(`x` + strconv.Itoa(i%10))
			m, err := c.Get(d)
			if err != nil {
				return err
			}
			_, ok, err := engine.First(m, "x"+strconv.Itoa(i%10), 0)
			if err == nil && !ok {
				t.Errorf("pattern %s did not match its own text", d)
			}
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 10, c.Len())
}

func TestLimitEvictsLeastRecentlyUsed(t *testing.T) {
	e := newCounting()
	c := New(e, WithLimit(2))
	a, b, d := pattern.New("a"), pattern.New("b"), pattern.New("d")

	_, err := c.Get(a)
	require.NoError(t, err)
	_, err = c.Get(b)
	require.NoError(t, err)
	_, err = c.Get(a) // a is now the most recent
	require.NoError(t, err)
	_, err = c.Get(d) // evicts b
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Contains(a))
	assert.False(t, c.Contains(b))
	assert.True(t, c.Contains(d))
	assert.Equal(t, uint64(1), c.Stats().Evictions)

	_, err = c.Get(b)
	require.NoError(t, err)
	assert.Equal(t, int64(4), e.compiles.Load())
}

func TestPurge(t *testing.T) {
	for _, limit := range []int{0, 8} {
		c := New(pcre.New(), WithLimit(limit))
		for _, expr := range []string{"a", "b", "c"} {
			_, err := c.Get(pattern.New(expr))
			require.NoError(t, err)
		}
		c.Purge()
		assert.Equal(t, 0, c.Len(), "limit %d", limit)
		assert.Equal(t, uint64(0), c.Stats().Evictions, "limit %d", limit)
		assert.Equal(t, uint64(3), c.Stats().Compiles, "limit %d", limit)
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	c := New(pcre.New(), WithLogger(log), WithLimit(1))

	_, err := c.Get(pattern.New(`a`))
	require.NoError(t, err)
	_, err = c.Get(pattern.New(`b`).CaseInsensitive())
	require.NoError(t, err)
	_, err = c.Get(pattern.New(`(`))
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"pattern compiled"`)
	assert.Contains(t, out, `"message":"pattern evicted"`)
	assert.Contains(t, out, `"message":"pattern compilation failed"`)
	assert.Contains(t, out, `"options":"case-insensitive"`)
	assert.Contains(t, out, `"engine":"pcre"`)
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Equal(t, pcre.Name, Default().Engine().Name())
}
