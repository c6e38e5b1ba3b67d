package wildcard

import "strings"

// dosEmitter renders the tokenizer events as a simplified DOS-style wildcard
// string. Bracket expressions cannot be represented and collapse to a single
// "?" regardless of content, matching the 8.3-era filesystem interop
// behavior.
type dosEmitter struct {
	sb strings.Builder
}

func (e *dosEmitter) BeginPattern() {}

func (e *dosEmitter) Literal(r rune) { e.sb.WriteRune(r) }

func (e *dosEmitter) AnySequence() { e.sb.WriteByte('*') }

func (e *dosEmitter) AnyOne() { e.sb.WriteByte('?') }

func (e *dosEmitter) BeginBracket() {}

func (e *dosEmitter) BracketLiteral(rune) {}

func (e *dosEmitter) BracketRange(rune, rune) {}

func (e *dosEmitter) EndBracket() { e.sb.WriteByte('?') }

func (e *dosEmitter) EndPattern() {}

// ToDosWildcardString renders pattern as a DOS wildcard string.
func ToDosWildcardString(pattern string) (string, error) {
	var e dosEmitter
	if err := Parse(pattern, &e); err != nil {
		return "", err
	}
	return e.sb.String(), nil
}
