package wildcard

import "strings"

// wqlEmitter renders the tokenizer events as a WQL LIKE operand: "%" for any
// sequence, "_" for any one character, and "[c]" quoting for characters that
// are significant to LIKE. Bracket expressions have no faithful WQL
// rendering, so their presence makes the whole conversion unsupported; the
// caller is expected to fall back to client-side filtering.
type wqlEmitter struct {
	sb          strings.Builder
	unsupported bool
}

func (e *wqlEmitter) BeginPattern() {}

func (e *wqlEmitter) Literal(r rune) {
	switch r {
	case '%', '_', '[', ']':
		e.sb.WriteByte('[')
		e.sb.WriteRune(r)
		e.sb.WriteByte(']')
	default:
		e.sb.WriteRune(r)
	}
}

func (e *wqlEmitter) AnySequence() { e.sb.WriteByte('%') }

func (e *wqlEmitter) AnyOne() { e.sb.WriteByte('_') }

func (e *wqlEmitter) BeginBracket() { e.unsupported = true }

func (e *wqlEmitter) BracketLiteral(rune) {}

func (e *wqlEmitter) BracketRange(rune, rune) {}

func (e *wqlEmitter) EndBracket() {}

func (e *wqlEmitter) EndPattern() {}

// ToWqlString renders pattern as a WQL LIKE operand. Patterns containing
// bracket expressions return ErrUnsupportedConversion.
func ToWqlString(pattern string) (string, error) {
	var e wqlEmitter
	if err := Parse(pattern, &e); err != nil {
		return "", err
	}
	if e.unsupported {
		return "", newPatternError("UnsupportedConversion", pattern, ErrUnsupportedConversion)
	}
	return e.sb.String(), nil
}
