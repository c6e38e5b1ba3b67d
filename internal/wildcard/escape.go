package wildcard

import "strings"

// Escape prefixes every wildcard metacharacter in pattern with the escape
// character, except those listed in charsNotToEscape.
func Escape(pattern, charsNotToEscape string) string {
	var sb strings.Builder
	sb.Grow(len(pattern))
	for _, r := range pattern {
		if isMetaChar(r) && !strings.ContainsRune(charsNotToEscape, r) {
			sb.WriteRune(EscapeChar)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Unescape reverses Escape. An escape character followed by a wildcard
// metacharacter is dropped; followed by anything else it is kept literally,
// so "`x" stays "`x" while "`*" becomes "*". A doubled escape collapses to
// one, and a trailing unpaired escape is preserved, mirroring the
// tokenizer's trailing-backtick rule.
func Unescape(pattern string) string {
	var sb strings.Builder
	sb.Grow(len(pattern))

	pendingEscape := false
	for _, r := range pattern {
		if r == EscapeChar {
			if pendingEscape {
				sb.WriteRune(EscapeChar)
				pendingEscape = false
			} else {
				pendingEscape = true
			}
			continue
		}
		if pendingEscape && !isMetaChar(r) {
			sb.WriteRune(EscapeChar)
		}
		sb.WriteRune(r)
		pendingEscape = false
	}
	if pendingEscape {
		sb.WriteRune(EscapeChar)
	}
	return sb.String()
}

// ContainsWildcardCharacters reports whether pattern contains an unescaped
// "*", "?" or "[".
func ContainsWildcardCharacters(pattern string) bool {
	skipNext := false
	for _, r := range pattern {
		if skipNext {
			skipNext = false
			continue
		}
		switch r {
		case EscapeChar:
			skipNext = true
		case wildcardStar, wildcardQuestion, wildcardBracketOpen:
			return true
		}
	}
	return false
}
