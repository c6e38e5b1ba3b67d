/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// This file implements the pattern tokenizer: a single left-to-right scan of
// the raw pattern that reports what it finds to a Visitor. The compiler and
// every alternative rendering (regex, DOS, WQL) are Visitor implementations,
// so the escape and bracket rules live in exactly one place.
package wildcard

// Visitor receives pattern events from Parse in pattern order. Bracket
// expression contents arrive between BeginBracket and EndBracket; everything
// else arrives at the top level between BeginPattern and EndPattern.
type Visitor interface {
	BeginPattern()
	Literal(r rune)
	AnySequence()
	AnyOne()
	BeginBracket()
	BracketLiteral(r rune)
	BracketRange(lo, hi rune)
	EndBracket()
	EndPattern()
}

// Parse walks pattern once, character by character, and drives v.
//
// The backtick escapes the character after it. A trailing backtick with
// nothing left to escape is kept as a literal backtick, with one legacy
// exception: a pattern that is exactly one backtick parses as the empty
// pattern. Both behaviors are long-standing compatibility rules.
func Parse(pattern string, v Visitor) error {
	runes := []rune(pattern)

	v.BeginPattern()
	if len(runes) == 1 && runes[0] == EscapeChar {
		v.EndPattern()
		return nil
	}

	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case EscapeChar:
			if i+1 < len(runes) {
				i++
				v.Literal(runes[i])
			} else {
				v.Literal(EscapeChar)
			}
		case wildcardStar:
			v.AnySequence()
		case wildcardQuestion:
			v.AnyOne()
		case wildcardBracketOpen:
			end, err := parseBracket(runes, i, pattern, v)
			if err != nil {
				return err
			}
			i = end
		default:
			v.Literal(r)
		}
	}

	v.EndPattern()
	return nil
}

// parseBracket scans a bracket expression whose "[" sits at index open and
// returns the index of the closing "]". Inside brackets "]" closes the
// expression unless it is the first content character or escaped, and "-"
// forms a range only when it sits between two ordinary characters. There is
// no negation operator: "^" and "!" are literals.
func parseBracket(runes []rune, open int, pattern string, v Visitor) (int, error) {
	v.BeginBracket()

	first := true
	var pending rune
	hasPending := false

	for i := open + 1; i < len(runes); i++ {
		r := runes[i]
		escaped := false
		if r == EscapeChar && i+1 < len(runes) {
			i++
			r = runes[i]
			escaped = true
		}

		if r == wildcardBracketClose && !escaped && !first {
			if hasPending {
				v.BracketLiteral(pending)
			}
			v.EndBracket()
			return i, nil
		}
		first = false

		if r == rangeSeparator && !escaped && hasPending {
			if hi, end, ok := bracketRangeEnd(runes, i); ok {
				if pending > hi {
					return 0, newPatternError("InvertedRange", pattern, ErrInvertedRange)
				}
				v.BracketRange(pending, hi)
				hasPending = false
				i = end
				continue
			}
			// "-" before "]" or at end of pattern stays literal.
		}

		if hasPending {
			v.BracketLiteral(pending)
		}
		pending = r
		hasPending = true
	}

	return 0, newPatternError("UnterminatedBracket", pattern, ErrUnterminatedBracket)
}

// bracketRangeEnd reads the upper bound of a candidate range whose "-" sits
// at index dash. It reports ok=false when the "-" cannot form a range, i.e.
// when it is immediately followed by the closing "]" or by end of pattern.
func bracketRangeEnd(runes []rune, dash int) (hi rune, end int, ok bool) {
	i := dash + 1
	if i >= len(runes) {
		return 0, 0, false
	}
	r := runes[i]
	if r == EscapeChar && i+1 < len(runes) {
		return runes[i+1], i + 1, true
	}
	if r == wildcardBracketClose {
		return 0, 0, false
	}
	return r, i, true
}
