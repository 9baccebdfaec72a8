package matcher

import (
	"strconv"
	"strings"
)

// unnameGroups rewrites named groups as plain capturing groups so that
// group numbers follow opening-paren order, as they do in browser regexes.
// Named backreferences become numbered ones. Lookbehinds, escapes and
// character classes are left untouched.
func unnameGroups(expr string) string {
	if !strings.Contains(expr, "(?<") && !strings.Contains(expr, "(?'") {
		return expr
	}

	// backreferences may point forward, so names are numbered first
	names := make(map[string]int)
	rewriteGroups(expr, names, true)
	if len(names) == 0 {
		return expr
	}
	return rewriteGroups(expr, names, false)
}

func rewriteGroups(expr string, names map[string]int, collect bool) string {
	var b strings.Builder
	b.Grow(len(expr))

	group := 0
	inClass := false
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c == '\\' && i+1 < len(expr):
			if !inClass && expr[i+1] == 'k' && i+2 < len(expr) {
				if name, end, ok := groupName(expr, i+2); ok {
					if n, known := names[name]; known && !collect {
						// (?:) keeps a following digit out of the group number
						b.WriteString(`\` + strconv.Itoa(n) + `(?:)`)
					} else {
						b.WriteString(expr[i : end+1])
					}
					i = end
					continue
				}
			}
			b.WriteByte(c)
			b.WriteByte(expr[i+1])
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
			b.WriteByte(c)
		case c == '[':
			inClass = true
			b.WriteByte(c)
		case c == '(':
			if i+1 >= len(expr) || expr[i+1] != '?' {
				group++
				b.WriteByte(c)
				continue
			}
			if i+2 < len(expr) {
				if name, end, ok := groupName(expr, i+2); ok {
					group++
					if collect {
						names[name] = group
					}
					b.WriteByte('(')
					i = end
					continue
				}
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// groupName reads <name> or 'name' starting at the opening delimiter and
// returns the name and the index of the closing delimiter. Lookbehind
// markers (<= and <!) are not names.
func groupName(expr string, open int) (string, int, bool) {
	var closer byte
	switch expr[open] {
	case '<':
		closer = '>'
	case '\'':
		closer = '\''
	default:
		return "", 0, false
	}
	start := open + 1
	if start >= len(expr) || expr[start] == '=' || expr[start] == '!' {
		return "", 0, false
	}
	end := strings.IndexByte(expr[start:], closer)
	if end <= 0 {
		return "", 0, false
	}
	name := expr[start : start+end]
	for _, r := range name {
		if !(r == '_' || r == '$' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return "", 0, false
		}
	}
	return name, start + end, true
}
