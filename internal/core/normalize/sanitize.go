package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops what a transcript should never carry into the engine:
// NUL and other ASCII controls except tab and line breaks, DEL, C1 controls (U+0080..U+009F)
// and invalid UTF-8 bytes. Clean input is returned unchanged without allocating
func Sanitize(s string) string {
	if isClean(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if keepRune(r) {
			return r
		}
		return -1
	}, s)
}

func isClean(s string) bool {
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			if !keepRune(rune(s[i])) {
				return false
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if !keepRune(r) {
			return false
		}
		i += size
	}
	return true
}

// keepRune reports false for controls and for utf8.RuneError, which is how
// strings.Map and DecodeRuneInString surface invalid bytes
func keepRune(r rune) bool {
	switch {
	case r == '\n', r == '\r', r == '\t':
		return true
	case r < 0x20, r == 0x7F:
		return false
	case r >= 0x80 && r <= 0x9F:
		return false
	case r == utf8.RuneError:
		return false
	}
	return true
}
