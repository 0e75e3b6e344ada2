package pcre

import (
	"github.com/dlclark/regexp2"
)

// capture is one capturing group as written in an expression. name is empty
// for an unnamed group; explicitly numbered groups such as (?<3>x) carry
// their number as the name.
type capture struct {
	name string
}

// scope holds the inline modes that affect how parentheses are read.
type scope struct {
	extended bool // x: whitespace and # comments are ignored
	explicit bool // n: unnamed groups do not capture
}

// captures lists the capturing groups of expr in the order their opening
// parentheses appear. It follows regexp2's syntax closely enough to tell
// capturing from non-capturing parentheses; expr is assumed to compile.
func captures(expr string, extended bool) []capture {
	rs := []rune(expr)
	var (
		out        []capture
		stack      []scope
		cur        = scope{extended: extended}
		ignoreNext bool
	)
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '\\':
			i++
		case '[':
			i = skipClass(rs, i)
		case '#':
			if cur.extended {
				for i < len(rs) && rs[i] != '\n' {
					i++
				}
			}
		case ')':
			if n := len(stack); n > 0 {
				cur, stack = stack[n-1], stack[:n-1]
			}
		case '(':
			ignore := ignoreNext
			ignoreNext = false
			if i+1 >= len(rs) || rs[i+1] != '?' {
				if !ignore && !cur.explicit {
					out = append(out, capture{})
				}
				stack = append(stack, cur)
				continue
			}
			i += 2
			if i >= len(rs) {
				return out
			}
			switch rs[i] {
			case '#':
				for i < len(rs) && rs[i] != ')' {
					i++
				}
				continue
			case '(':
				// (?(cond)yes|no): the condition's parentheses never capture
				ignoreNext = true
				i--
			case '<', '\'':
				if i+1 < len(rs) && (rs[i+1] == '=' || rs[i+1] == '!') {
					break
				}
				var name string
				name, i = groupName(rs, i+1)
				if name != "" && !ignore {
					out = append(out, capture{name: name})
				}
			case 'P':
				if i+1 < len(rs) && rs[i+1] == '<' {
					var name string
					name, i = groupName(rs, i+2)
					if name != "" && !ignore {
						out = append(out, capture{name: name})
					}
				}
			default:
				if next, end, ok := inlineModes(rs, i, cur); ok {
					if end < len(rs) && rs[end] == ')' {
						// (?flags) changes the enclosing scope
						cur = next
						i = end
						continue
					}
					stack = append(stack, cur)
					cur = next
					i = end
					continue
				}
			}
			stack = append(stack, cur)
		}
	}
	return out
}

// groupName reads a group name starting at rs[i] up to its closing > or '.
// For balancing groups (?<a-b>) only the part before the dash names a new
// group. It returns the index of the closing delimiter.
func groupName(rs []rune, i int) (string, int) {
	start := i
	for i < len(rs) && rs[i] != '>' && rs[i] != '\'' {
		i++
	}
	name := rs[start:i]
	for j, r := range name {
		if r == '-' {
			name = name[:j]
			break
		}
	}
	return string(name), i
}

// inlineModes reads an option run such as "im-x" at rs[i] that ends in ':'
// or ')'. It returns the scope after applying the run and the index of the
// terminator.
func inlineModes(rs []rune, i int, cur scope) (scope, int, bool) {
	on := true
	for ; i < len(rs); i++ {
		switch rs[i] {
		case '-':
			on = false
		case 'x':
			cur.extended = on
		case 'n':
			cur.explicit = on
		case 'i', 'm', 's':
		case ':', ')':
			return cur, i, true
		default:
			return cur, i, false
		}
	}
	return cur, i, false
}

// skipClass returns the index of the ] closing the character class opened
// at rs[i], including .NET subtractions like [a-z-[aeiou]].
func skipClass(rs []rune, i int) int {
	j := i + 1
	if j < len(rs) && rs[j] == '^' {
		j++
	}
	if j < len(rs) && rs[j] == ']' {
		j++
	}
	for ; j < len(rs); j++ {
		switch rs[j] {
		case '\\':
			j++
		case '-':
			if j+1 < len(rs) && rs[j+1] == '[' {
				j = skipClass(rs, j+1)
			}
		case '[':
			if j+1 < len(rs) && rs[j+1] == ':' {
				for j+1 < len(rs) && !(rs[j] == ':' && rs[j+1] == ']') {
					j++
				}
				j++
			}
		case ']':
			return j
		}
	}
	return j
}

// groupOrder maps positional group indexes onto regexp2 group numbers.
// regexp2 numbers unnamed groups before named ones; the result puts them
// back in the order their parentheses appear. Groups the scan could not
// place keep regexp2's order at the end.
func groupOrder(re *regexp2.Regexp, caps []capture) []int {
	nums := re.GetGroupNumbers()
	known := make(map[int]bool, len(nums))
	for _, n := range nums {
		known[n] = true
	}
	order := make([]int, 1, len(nums)+1)
	seen := map[int]bool{0: true}
	auto := 0
	for _, c := range caps {
		var num int
		if c.name == "" {
			auto++
			num = auto
		} else {
			num = re.GroupNumberFromName(c.name)
		}
		if !known[num] || seen[num] {
			continue
		}
		seen[num] = true
		order = append(order, num)
	}
	for _, n := range nums {
		if !seen[n] {
			seen[n] = true
			order = append(order, n)
		}
	}
	return order
}
