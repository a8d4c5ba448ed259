// Package normalize reduces extracted page text to the token alphabet the
// segmenter operates on.
package normalize

import "strings"

// Normalize replaces every maximal run of characters that are neither CJK
// ideographs (U+4E00..U+9FFF) nor ASCII letters with a single space, then
// trims the ends. Whitespace collapses along with everything else, so the
// output never contains double spaces. Pure and idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if !keep(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func keep(r rune) bool {
	if r >= 0x4E00 && r <= 0x9FFF {
		return true
	}
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
