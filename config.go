package tupleregex

import (
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/coregx/tupleregex/engine"
	"github.com/coregx/tupleregex/engine/auto"
	"github.com/coregx/tupleregex/engine/literal"
	"github.com/coregx/tupleregex/engine/pcre"
	"github.com/coregx/tupleregex/engine/re2"
	"github.com/coregx/tupleregex/pattern"
)

// Config controls how a Compiler compiles and evaluates patterns.
//
// Example:
//
//	config := tupleregex.DefaultConfig()
//	config.Engine = "auto"
//	config.CacheSize = 1024
//	c, err := tupleregex.NewCompiler(config)
type Config struct {
	// Engine names the regex engine: "pcre" (default), "re2", "literal"
	// or "auto".
	Engine string `yaml:"engine"`

	// DefaultOptions are added to every pattern compiled from a plain
	// expression (Compile, Expr). CompilePattern uses its descriptor as is.
	DefaultOptions pattern.Options `yaml:"default_options"`

	// CacheSize bounds the compiled-pattern cache; 0 means unbounded.
	CacheSize int `yaml:"cache_size"`

	// MatchTimeout bounds each search on engines that support it (pcre).
	// 0 means no timeout.
	MatchTimeout time.Duration `yaml:"match_timeout"`

	// Unmatched is the text read for a non-participating group when the
	// caller asked for plain strings.
	Unmatched string `yaml:"unmatched"`

	// Logger receives debug events from the cache.
	Logger zerolog.Logger `yaml:"-"`
}

// DefaultConfig returns the default configuration: pcre engine, unbounded
// cache, no timeout, empty placeholder, no logging.
func DefaultConfig() Config {
	return Config{
		Engine: pcre.Name,
		Logger: zerolog.Nop(),
	}
}

// LoadConfig parses a YAML document over DefaultConfig and validates it.
//
// Example:
//
//	engine: auto
//	default_options: [case-insensitive, anchors-match-lines]
//	cache_size: 512
//	match_timeout: 250ms
//	unmatched: "-"
func LoadConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Errorf("tupleregex: load config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	switch c.Engine {
	case pcre.Name, re2.Name, literal.Name, auto.Name:
	default:
		return errors.Errorf("tupleregex: unknown engine %q", c.Engine)
	}
	if c.CacheSize < 0 {
		return errors.Errorf("tupleregex: negative cache size %d", c.CacheSize)
	}
	if c.MatchTimeout < 0 {
		return errors.Errorf("tupleregex: negative match timeout %s", c.MatchTimeout)
	}
	if c.DefaultOptions&^pattern.AllOptions != 0 {
		return errors.Errorf("tupleregex: unknown default options %#x", uint16(c.DefaultOptions))
	}
	return nil
}

func (c Config) newEngine() engine.Engine {
	full := &pcre.Engine{MatchTimeout: c.MatchTimeout}
	switch c.Engine {
	case re2.Name:
		return re2.New()
	case literal.Name:
		return literal.New()
	case auto.Name:
		return auto.New(full)
	default:
		return full
	}
}
