package replace

import (
	"strconv"

	"github.com/coregx/tupleregex/match"
)

// Expand appends template to dst and returns the result; during the append,
// it replaces group references with the corresponding text of m, a match in
// subject:
//
//	$0 .. $9     single-digit group number ($0 is the entire match)
//	${12}        any group number
//	${name}      named group, resolved through names
//	$$           a literal $
//
// References to unknown or non-participating groups expand to "". A $ that
// starts none of the above, including an unterminated ${, is copied as is.
func Expand(dst []byte, template string, subject string, m match.Match, names []string) []byte {
	i := 0
	for i < len(template) {
		if template[i] != '$' || i+1 >= len(template) {
			dst = append(dst, template[i])
			i++
			continue
		}

		next := template[i+1]

		// $0-$9
		if next >= '0' && next <= '9' {
			dst = appendGroup(dst, subject, m, int(next-'0'))
			i += 2
			continue
		}

		// ${n} or ${name}
		if next == '{' {
			end := i + 2
			for end < len(template) && template[end] != '}' {
				end++
			}
			if end >= len(template) || end == i+2 {
				dst = append(dst, '$')
				i++
				continue
			}
			dst = appendGroup(dst, subject, m, resolve(template[i+2:end], names))
			i = end + 1
			continue
		}

		// $$ -> $
		if next == '$' {
			dst = append(dst, '$')
			i += 2
			continue
		}

		// Unknown $ escape, treat as literal
		dst = append(dst, '$')
		i++
	}
	return dst
}

// ExpandString is Expand returning a new string.
func ExpandString(template string, subject string, m match.Match, names []string) string {
	return string(Expand(make([]byte, 0, len(template)), template, subject, m, names))
}

func appendGroup(dst []byte, subject string, m match.Match, group int) []byte {
	sp := m.Group(group)
	if !sp.Matched() {
		return dst
	}
	return append(dst, subject[sp.Start:sp.End]...)
}

// resolve turns the text between ${ and } into a group number, -1 when it
// names no group.
func resolve(ref string, names []string) int {
	if n, err := strconv.Atoi(ref); err == nil {
		return n
	}
	for g, name := range names {
		if g > 0 && name == ref {
			return g
		}
	}
	return -1
}
