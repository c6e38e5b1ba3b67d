// Package wildpat compiles glob-style wildcard patterns into efficient,
// reusable matchers. A pattern combines literal characters with `*` (any
// sequence of characters, including none), `?` (exactly one character) and
// `[...]` bracket expressions holding literal characters and lo-hi ranges,
// with the backtick as escape character.
//
// Matching runs a bounded NFA simulation over the compiled pattern: every
// reachable pattern position is tracked simultaneously, so there is no
// backtracking and no pathological pattern can cause exponential work.
//
// A compiled Pattern is immutable and safe for concurrent use. Patterns can
// also be rendered as a best-effort regular expression, a DOS wildcard
// string, or a WQL LIKE operand for query-language interoperability.
package wildpat

import (
	"golang.org/x/text/language"

	"github.com/twinfer/wildpat/internal/wildcard"
)

// Options control how a Pattern is compiled and matched. Values combine with
// bitwise OR.
type Options uint32

const (
	// None requests default behavior: case-sensitive, culture-independent.
	None Options = 0

	// Compiled is a performance hint only; it never changes match results.
	// The facade always compiles patterns eagerly, which subsumes the hint.
	Compiled Options = 1 << iota
	// IgnoreCase requests case-insensitive matching.
	IgnoreCase
	// CultureInvariant forces culture-independent case folding; it only
	// matters together with IgnoreCase and a culture-aware constructor.
	CultureInvariant
)

// Errors reported by Compile and the conversion methods. PatternError values
// wrapping these sentinels carry the offending pattern text and a stable
// code string.
var (
	ErrBadPattern            = wildcard.ErrBadPattern
	ErrUnterminatedBracket   = wildcard.ErrUnterminatedBracket
	ErrInvertedRange         = wildcard.ErrInvertedRange
	ErrUnsupportedConversion = wildcard.ErrUnsupportedConversion
)

// PatternError is the structured error type carried by all pattern failures.
type PatternError = wildcard.PatternError

// Pattern is an immutable compiled wildcard pattern. It holds the element
// array and folding policy produced at compile time and can be matched
// against many inputs, concurrently, without synchronization.
type Pattern struct {
	pattern  string
	options  Options
	compiled *wildcard.Compiled
}

// matchAll is the canonical match-everything pattern. Compile returns this
// shared instance for the single-character pattern "*" with default options;
// other option sets get a thin wrapper around the same compiled core, since
// no option can change what "*" matches but Options must report what the
// caller passed.
var matchAll = func() *Pattern {
	c, err := wildcard.Compile("*", wildcard.NewNormalizer(false, false, language.Und))
	if err != nil {
		panic(err)
	}
	return &Pattern{pattern: "*", options: None, compiled: c}
}()

// Compile parses pattern and builds its matcher. Malformed patterns
// (unterminated bracket expressions, inverted ranges such as "[z-a]") fail
// here with a *PatternError; matching itself never fails. IgnoreCase folds
// through plain Unicode lower-casing, equivalent to the culture-invariant
// policy; use CompileCulture for language-specific folding.
func Compile(pattern string, options Options) (*Pattern, error) {
	return CompileCulture(pattern, options, language.Und)
}

// CompileCulture is Compile with an explicit culture for case folding. The
// culture is consulted only when IgnoreCase is set and CultureInvariant is
// not; language.Und selects the invariant policy.
func CompileCulture(pattern string, options Options, culture language.Tag) (*Pattern, error) {
	if pattern == "*" {
		if options == None {
			return matchAll, nil
		}
		return &Pattern{pattern: "*", options: options, compiled: matchAll.compiled}, nil
	}

	norm := wildcard.NewNormalizer(
		options&IgnoreCase != 0,
		options&CultureInvariant != 0,
		culture,
	)
	c, err := wildcard.Compile(pattern, norm)
	if err != nil {
		return nil, err
	}
	return &Pattern{pattern: pattern, options: options, compiled: c}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(pattern string, options Options) *Pattern {
	p, err := Compile(pattern, options)
	if err != nil {
		panic(err)
	}
	return p
}

// Match is a one-shot convenience that compiles pattern with default options
// and matches it against s. Callers matching one pattern against many inputs
// should compile once and reuse the Pattern.
func Match(pattern, s string) (bool, error) {
	p, err := Compile(pattern, None)
	if err != nil {
		return false, err
	}
	return p.IsMatch(s), nil
}

// IsMatch reports whether s matches the pattern. It allocates frontier state
// local to the call and terminates in O(len(pattern) * len(s)) time.
func (p *Pattern) IsMatch(s string) bool {
	return p.compiled.IsMatch(s)
}

// String returns the raw pattern text. It implements fmt.Stringer.
func (p *Pattern) String() string { return p.pattern }

// Options returns the option flags the pattern was compiled with.
func (p *Pattern) Options() Options { return p.options }

// ToRegexString renders the pattern as an anchored regular expression with
// the legacy simplification rules: a pattern reducing to "^.*$" yields the
// empty string, and one leading "^.*" and one trailing ".*$" are stripped.
// The rendering is best-effort and lossy with respect to match options.
func (p *Pattern) ToRegexString() string {
	s, _ := wildcard.ToRegexString(p.pattern) // pattern was validated at compile time
	return s
}

// ToDosWildcardString renders the pattern as a simplified DOS wildcard
// string, in which bracket expressions collapse to "?".
func (p *Pattern) ToDosWildcardString() string {
	s, _ := wildcard.ToDosWildcardString(p.pattern) // pattern was validated at compile time
	return s
}

// ToWqlString renders the pattern as a WQL LIKE operand ("%", "_", with
// "[c]" quoting). Patterns containing bracket expressions cannot be
// expressed in WQL and return an error wrapping ErrUnsupportedConversion,
// distinct from syntax errors so callers can fall back to client-side
// filtering.
func (p *Pattern) ToWqlString() (string, error) {
	return wildcard.ToWqlString(p.pattern)
}

// Escape prefixes every wildcard metacharacter ("*", "?", "[", "]") in
// pattern with a backtick.
func Escape(pattern string) string {
	return wildcard.Escape(pattern, "")
}

// EscapeExcept is Escape with an allow-list: metacharacters listed in
// charsNotToEscape are left unescaped.
func EscapeExcept(pattern, charsNotToEscape string) string {
	return wildcard.Escape(pattern, charsNotToEscape)
}

// Unescape reverses Escape. A backtick before a wildcard metacharacter is
// dropped; before anything else it is kept literally.
func Unescape(pattern string) string {
	return wildcard.Unescape(pattern)
}

// ContainsWildcardCharacters reports whether pattern contains an unescaped
// "*", "?" or "[".
func ContainsWildcardCharacters(pattern string) bool {
	return wildcard.ContainsWildcardCharacters(pattern)
}
