package pattern

import (
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Options is a set of matching flags. Flags are passed through to the
// engine; beyond that they only contribute to a descriptor's identity.
type Options uint16

const (
	// CaseInsensitive matches letters without regard to case.
	CaseInsensitive Options = 1 << iota
	// AllowCommentsAndWhitespace ignores whitespace and #-comments in the
	// expression.
	AllowCommentsAndWhitespace
	// IgnoreMetacharacters treats the whole expression as literal text.
	IgnoreMetacharacters
	// DotMatchesLineSeparators lets . match line separators.
	DotMatchesLineSeparators
	// AnchorsMatchLines lets ^ and $ match at the start and end of lines.
	AnchorsMatchLines
	// UseUnixLineSeparators treats only \n as a line separator.
	UseUnixLineSeparators
	// UseUnicodeWordBoundaries uses Unicode rules for \b.
	UseUnicodeWordBoundaries

	optionsEnd
)

// AllOptions is the union of every known flag.
const AllOptions = optionsEnd - 1

var optionNames = [...]string{
	"case-insensitive",
	"allow-comments-and-whitespace",
	"ignore-metacharacters",
	"dot-matches-line-separators",
	"anchors-match-lines",
	"use-unix-line-separators",
	"use-unicode-word-boundaries",
}

// Has reports whether every flag in flags is set in o.
func (o Options) Has(flags Options) bool {
	return o&flags == flags
}

// String returns the comma-separated flag names of o.
func (o Options) String() string {
	if o == 0 {
		return ""
	}
	var names []string
	for i, name := range optionNames {
		if o&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, ",")
}

func (o Options) hex() string {
	return strconv.FormatUint(uint64(o), 16)
}

// ParseOptions parses a comma-separated list of flag names. Single-letter
// inline flags (i, x, m, s) are accepted as well.
func ParseOptions(s string) (Options, error) {
	var o Options
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		flag, err := parseOption(field)
		if err != nil {
			return 0, err
		}
		o |= flag
	}
	return o, nil
}

func parseOption(name string) (Options, error) {
	switch strings.ToLower(name) {
	case "i":
		return CaseInsensitive, nil
	case "x":
		return AllowCommentsAndWhitespace, nil
	case "s":
		return DotMatchesLineSeparators, nil
	case "m":
		return AnchorsMatchLines, nil
	}
	for i, known := range optionNames {
		if strings.EqualFold(name, known) {
			return 1 << i, nil
		}
	}
	return 0, errors.Errorf("unknown pattern option %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (o Options) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Options) UnmarshalText(text []byte) error {
	parsed, err := ParseOptions(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// UnmarshalYAML accepts either a comma-separated scalar or a sequence of
// flag names.
func (o *Options) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return o.UnmarshalText([]byte(node.Value))
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		return o.UnmarshalText([]byte(strings.Join(names, ",")))
	default:
		return errors.Errorf("pattern options: line %d: expected scalar or sequence", node.Line)
	}
}
