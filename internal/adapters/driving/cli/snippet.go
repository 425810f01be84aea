package cli

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var snippetSpaceRun = regexp.MustCompile(`\s+`)

// Snippet window sizes in bytes, widened to the nearest rune boundary.
const (
	snippetBefore = 80
	snippetAfter  = 260
	snippetPlain  = 320
)

// snippet returns a short excerpt of text centred on the first query
// word when it occurs, or the leading text otherwise.
func snippet(text, query string) string {
	t := strings.TrimSpace(snippetSpaceRun.ReplaceAllString(text, " "))
	if t == "" {
		return ""
	}

	first := ""
	if fields := strings.Fields(strings.ToLower(strings.TrimSpace(query))); len(fields) > 0 {
		first = fields[0]
	}

	if first != "" {
		if i := strings.Index(strings.ToLower(t), first); i >= 0 {
			a := runeFloor(t, i-snippetBefore)
			b := runeFloor(t, i+snippetAfter)
			out := t[a:b]
			if a > 0 {
				out = "…" + out
			}
			if b < len(t) {
				out += "…"
			}
			return out
		}
	}

	end := runeFloor(t, snippetPlain)
	if end < len(t) {
		return t[:end] + "…"
	}
	return t
}

// runeFloor clamps a byte offset into [0, len(s)] and moves it back to
// the start of the rune it lands in.
func runeFloor(s string, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(s) {
		return len(s)
	}
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
