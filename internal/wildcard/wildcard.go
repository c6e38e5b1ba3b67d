// Package wildcard contains the core implementation of the wildcard pattern
// engine: the tokenizer, the compiler, the NFA matcher, and the alternative
// renderings (regex, DOS wildcard, WQL LIKE). It is intended for internal use
// by the parent wildpat package.
package wildcard

import (
	"errors"
	"fmt"
)

// ErrBadPattern indicates a pattern was malformed.
var ErrBadPattern = errors.New("syntax error in wildcard pattern")

// Specific failure modes. Both unwrap to ErrBadPattern.
var (
	// ErrUnterminatedBracket reports a "[" that is never closed by "]".
	ErrUnterminatedBracket = fmt.Errorf("%w: unterminated [] block", ErrBadPattern)

	// ErrInvertedRange reports a character range whose upper bound precedes
	// its lower bound, such as "[z-a]".
	ErrInvertedRange = fmt.Errorf("%w: range upper bound precedes lower bound", ErrBadPattern)
)

// ErrUnsupportedConversion reports a well-formed pattern that cannot be
// rendered in the requested target format without client-side post-filtering.
// It is distinct from ErrBadPattern so callers can fall back to filtering.
var ErrUnsupportedConversion = errors.New("pattern cannot be converted without post-filtering")

// PatternError is the structured error returned for malformed or
// unconvertible patterns. It carries the offending pattern text and a stable
// code string, and unwraps to one of the sentinel errors above.
type PatternError struct {
	Code    string // stable identifier, e.g. "UnterminatedBracket"
	Pattern string // the pattern that failed
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("wildcard: %v in pattern %q", e.Err, e.Pattern)
}

func (e *PatternError) Unwrap() error { return e.Err }

func newPatternError(code, pattern string, err error) error {
	return &PatternError{Code: code, Pattern: pattern, Err: err}
}

const (
	// EscapeChar suppresses the special meaning of the character after it.
	EscapeChar = '`'

	wildcardStar         = '*'
	wildcardQuestion     = '?'
	wildcardBracketOpen  = '['
	wildcardBracketClose = ']'
	rangeSeparator       = '-'
)

// isMetaChar reports whether r is one of the characters Escape protects.
// Note "]" is escapable even though only "[" opens a wildcard construct.
func isMetaChar(r rune) bool {
	switch r {
	case wildcardStar, wildcardQuestion, wildcardBracketOpen, wildcardBracketClose:
		return true
	}
	return false
}
