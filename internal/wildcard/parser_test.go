package wildcard

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// eventRecorder captures tokenizer callbacks as compact strings so tests can
// assert on the exact event sequence.
type eventRecorder struct {
	events []string
}

func (r *eventRecorder) BeginPattern()       { r.events = append(r.events, "begin") }
func (r *eventRecorder) Literal(c rune)      { r.events = append(r.events, fmt.Sprintf("lit(%c)", c)) }
func (r *eventRecorder) AnySequence()        { r.events = append(r.events, "seq") }
func (r *eventRecorder) AnyOne()             { r.events = append(r.events, "one") }
func (r *eventRecorder) BeginBracket()       { r.events = append(r.events, "[") }
func (r *eventRecorder) BracketLiteral(c rune) {
	r.events = append(r.events, fmt.Sprintf("blit(%c)", c))
}
func (r *eventRecorder) BracketRange(lo, hi rune) {
	r.events = append(r.events, fmt.Sprintf("range(%c-%c)", lo, hi))
}
func (r *eventRecorder) EndBracket() { r.events = append(r.events, "]") }
func (r *eventRecorder) EndPattern() { r.events = append(r.events, "end") }

func TestParse(t *testing.T) {
	cases := []struct {
		pattern string
		events  string // space-separated, without begin/end
	}{
		{"", ""},
		{"abc", "lit(a) lit(b) lit(c)"},
		{"a*c", "lit(a) seq lit(c)"},
		{"a?c", "lit(a) one lit(c)"},
		{"**", "seq seq"},
		{"*?[a]", "seq one [ blit(a) ]"},

		// Escape handling.
		{"`*", "lit(*)"},
		{"`?`[`]", "lit(?) lit([) lit(])"},
		{"a``b", "lit(a) lit(`) lit(b)"},
		{"a`", "lit(a) lit(`)"}, // trailing escape stays a literal backtick
		{"`", ""},               // lone backtick is the empty pattern (legacy)
		{"``", "lit(`)"},

		// Bracket expressions.
		{"[abc]", "[ blit(a) blit(b) blit(c) ]"},
		{"[a-c]", "[ range(a-c) ]"},
		{"[a-cx]", "[ range(a-c) blit(x) ]"},
		{"[xa-c]", "[ blit(x) range(a-c) ]"},
		{"[a-c0-9]", "[ range(a-c) range(0-9) ]"},
		{"[]abc]", "[ blit(]) blit(a) blit(b) blit(c) ]"}, // "]" first is literal
		{"[a-]", "[ blit(a) blit(-) ]"},                   // "-" before "]" is literal
		{"[-a]", "[ blit(-) blit(a) ]"},                   // leading "-" is literal
		{"[a`-c]", "[ blit(a) blit(-) blit(c) ]"},         // escaped "-" never forms a range
		{"[A-`]]", "[ range(A-]) ]"},                      // escaped "]" as range upper bound
		{"[`]]", "[ blit(]) ]"},
		{"[^a]", "[ blit(^) blit(a) ]"}, // no negation operator
		{"[!a]", "[ blit(!) blit(a) ]"},
		{"x[ab]y", "lit(x) [ blit(a) blit(b) ] lit(y)"},
		{"[--0]", "[ range(--0) ]"},
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			var rec eventRecorder
			if err := Parse(tc.pattern, &rec); err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.pattern, err)
			}

			want := "begin"
			if tc.events != "" {
				want += " " + tc.events
			}
			want += " end"

			got := strings.Join(rec.events, " ")
			if got != want {
				t.Errorf("Parse(%q)\n got: %s\nwant: %s", tc.pattern, got, want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		pattern string
		want    error
		code    string
	}{
		{"[", ErrUnterminatedBracket, "UnterminatedBracket"},
		{"[abc", ErrUnterminatedBracket, "UnterminatedBracket"},
		{"ab[cd", ErrUnterminatedBracket, "UnterminatedBracket"},
		{"[]", ErrUnterminatedBracket, "UnterminatedBracket"}, // "]" first is content, not a close
		{"[a`]", ErrUnterminatedBracket, "UnterminatedBracket"},
		{"[z-a]", ErrInvertedRange, "InvertedRange"},
		{"x[9-0]y", ErrInvertedRange, "InvertedRange"},
		{"[a-`]]", ErrInvertedRange, "InvertedRange"}, // "]" (U+005D) precedes "a" (U+0061)
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			var rec eventRecorder
			err := Parse(tc.pattern, &rec)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tc.pattern)
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse(%q) = %v, want %v", tc.pattern, err, tc.want)
			}
			if !errors.Is(err, ErrBadPattern) {
				t.Errorf("Parse(%q) error does not unwrap to ErrBadPattern", tc.pattern)
			}

			var perr *PatternError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error is not a *PatternError", tc.pattern)
			}
			if perr.Pattern != tc.pattern {
				t.Errorf("PatternError.Pattern = %q, want %q", perr.Pattern, tc.pattern)
			}
			if perr.Code != tc.code {
				t.Errorf("PatternError.Code = %q, want %q", perr.Code, tc.code)
			}
		})
	}
}
