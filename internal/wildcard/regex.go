package wildcard

import (
	"regexp"
	"strings"
)

// regexEmitter renders the tokenizer events as a regular expression.
type regexEmitter struct {
	sb strings.Builder
}

func (e *regexEmitter) BeginPattern() { e.sb.WriteByte('^') }

func (e *regexEmitter) Literal(r rune) {
	e.sb.WriteString(regexp.QuoteMeta(string(r)))
}

func (e *regexEmitter) AnySequence() { e.sb.WriteString(".*") }

func (e *regexEmitter) AnyOne() { e.sb.WriteByte('.') }

func (e *regexEmitter) BeginBracket() { e.sb.WriteByte('[') }

func (e *regexEmitter) BracketLiteral(r rune) { e.writeClassRune(r) }

func (e *regexEmitter) BracketRange(lo, hi rune) {
	e.writeClassRune(lo)
	e.sb.WriteByte('-')
	e.writeClassRune(hi)
}

func (e *regexEmitter) EndBracket() { e.sb.WriteByte(']') }

func (e *regexEmitter) EndPattern() { e.sb.WriteByte('$') }

// writeClassRune emits one character inside a [...] class, escaping the
// characters that are significant there.
func (e *regexEmitter) writeClassRune(r rune) {
	switch r {
	case ']', '^', '-', '\\':
		e.sb.WriteByte('\\')
	}
	e.sb.WriteRune(r)
}

// ToRegexString renders pattern as an anchored regular expression, then
// applies the legacy simplifications kept for compatibility with earlier
// versions: a pattern that reduces to "^.*$" becomes the empty string, and
// otherwise one leading "^.*" and one trailing ".*$" are stripped, each at
// most once and independently of the other.
func ToRegexString(pattern string) (string, error) {
	var e regexEmitter
	if err := Parse(pattern, &e); err != nil {
		return "", err
	}

	s := e.sb.String()
	if s == "^.*$" {
		return "", nil
	}
	s = strings.TrimPrefix(s, "^.*")
	s = strings.TrimSuffix(s, ".*$")
	return s, nil
}
