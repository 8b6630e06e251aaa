package tui

import (
	"strings"
	"unicode"
)

// sanitize strips terminal escape sequences and control characters from
// server-provided text before it is drawn.
func sanitize(s string) string {
	var out strings.Builder
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r != '\x1b' {
			if !unicode.IsControl(r) {
				out.WriteRune(r)
			}
			continue
		}
		if i+1 >= len(rs) {
			break
		}
		i++
		switch rs[i] {
		case '[': // CSI: parameters then a final byte in 0x40–0x7E
			for i+1 < len(rs) {
				i++
				if rs[i] >= 0x40 && rs[i] <= 0x7E {
					break
				}
			}
		case ']': // OSC: terminated by BEL or ESC \
			for i+1 < len(rs) {
				i++
				if rs[i] == '\x07' {
					break
				}
				if rs[i] == '\x1b' && i+1 < len(rs) && rs[i+1] == '\\' {
					i++
					break
				}
			}
		}
	}
	return out.String()
}

// truncate shortens s to at most n runes, ending in "…" when cut.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(rs[:n-1]) + "…"
}

// truncateLeft keeps the last n runes of s, starting with "…" when cut.
// URLs are more recognizable by their tail.
func truncateLeft(s string, n int) string {
	if n <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return "…" + string(rs[len(rs)-n+1:])
}
