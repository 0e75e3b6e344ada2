package tupleregex

import (
	"sync"

	"github.com/coregx/tupleregex/cache"
	"github.com/coregx/tupleregex/pattern"
	"github.com/coregx/tupleregex/shape"
)

// Compiler compiles patterns through a cache with one configuration.
// A Compiler is safe for concurrent use.
type Compiler struct {
	config Config
	cache  *cache.Cache
}

// NewCompiler returns a compiler with its own cache.
func NewCompiler(config Config) (*Compiler, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	c := cache.New(config.newEngine(),
		cache.WithLimit(config.CacheSize),
		cache.WithLogger(config.Logger))
	return &Compiler{config: config, cache: c}, nil
}

var defaultCompiler = sync.OnceValue(func() *Compiler {
	return &Compiler{config: DefaultConfig(), cache: cache.Default()}
})

// Default returns the compiler behind the package-level functions. It uses
// DefaultConfig and the process-wide cache.
func Default() *Compiler {
	return defaultCompiler()
}

// Config returns the compiler's configuration.
func (c *Compiler) Config() Config {
	return c.config
}

// Cache returns the compiler's cache.
func (c *Compiler) Cache() *cache.Cache {
	return c.cache
}

// Compile compiles expr with the configured default options.
func (c *Compiler) Compile(expr string) (*Regex, error) {
	return c.CompilePattern(pattern.New(expr, c.config.DefaultOptions))
}

// CompilePattern compiles d exactly as given.
func (c *Compiler) CompilePattern(d pattern.Descriptor) (*Regex, error) {
	m, err := c.cache.Get(d)
	if err != nil {
		return nil, err
	}
	return &Regex{
		desc:    d,
		matcher: m,
		opts:    shape.Options{Unmatched: c.config.Unmatched},
	}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func (c *Compiler) MustCompile(expr string) *Regex {
	re, err := c.Compile(expr)
	if err != nil {
		panic("tupleregex: Compile(`" + expr + "`): " + err.Error())
	}
	return re
}

// Resolve compiles a pattern source. A *Regex is returned unchanged, an Expr
// gets the default options and a descriptor is compiled as is.
func (c *Compiler) Resolve(l Literal) (*Regex, error) {
	switch l := l.(type) {
	case *Regex:
		return l, nil
	case Expr:
		return c.Compile(string(l))
	default:
		return c.CompilePattern(l.Descriptor())
	}
}

// Literal is a pattern source: an Expr, a pattern.Descriptor or a compiled
// *Regex.
type Literal interface {
	Descriptor() pattern.Descriptor
}

// Expr is a plain pattern expression.
type Expr string

// Descriptor returns the descriptor of e without options.
func (e Expr) Descriptor() pattern.Descriptor {
	return pattern.New(string(e))
}

// CaseInsensitive returns the descriptor of e matching without regard to
// case.
func (e Expr) CaseInsensitive() pattern.Descriptor {
	return e.Descriptor().CaseInsensitive()
}

// AnchorsMatchLines returns the descriptor of e whose anchors match at line
// boundaries.
func (e Expr) AnchorsMatchLines() pattern.Descriptor {
	return e.Descriptor().AnchorsMatchLines()
}

// Literally returns the descriptor of e matched as literal text.
func (e Expr) Literally() pattern.Descriptor {
	return e.Descriptor().IgnoreMetacharacters()
}
