package wildcard

import "testing"

func TestEscape(t *testing.T) {
	cases := []struct {
		pattern string
		skip    string
		want    string
	}{
		{"", "", ""},
		{"abc", "", "abc"},
		{"a*b?c", "", "a`*b`?c"},
		{"[ab]", "", "`[ab`]"},
		{"*?[]", "", "`*`?`[`]"},
		{"a*b?c", "*", "a*b`?c"}, // allow-list leaves chosen metacharacters bare
		{"a*b?c", "*?", "a*b?c"},
		{"100%", "", "100%"}, // only wildcard metacharacters are escaped
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			if got := Escape(tc.pattern, tc.skip); got != tc.want {
				t.Errorf("Escape(%q, %q) = %q, want %q", tc.pattern, tc.skip, got, tc.want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"", ""},
		{"abc", "abc"},
		{"a`*b`?c", "a*b?c"},
		{"`[ab`]", "[ab]"},
		{"`x", "`x"}, // escape before a non-metacharacter is kept
		{"a`bc", "a`bc"},
		{"````", "``"}, // doubled escapes collapse pairwise
		{"``", "`"},
		{"a`", "a`"}, // trailing unpaired escape is preserved
		{"``*", "`*"},
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			if got := Unescape(tc.pattern); got != tc.want {
				t.Errorf("Unescape(%q) = %q, want %q", tc.pattern, got, tc.want)
			}
		})
	}
}

// TestEscapeRoundTrip checks Unescape(Escape(s)) == s for inputs without
// literal escape characters.
func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{"", "abc", "a*b?c", "[a-z]*", "Get-*", "??[]**", "plain text"}
	for _, s := range inputs {
		if got := Unescape(Escape(s, "")); got != s {
			t.Errorf("Unescape(Escape(%q)) = %q", s, got)
		}
	}
}

func TestContainsWildcardCharacters(t *testing.T) {
	cases := []struct {
		pattern string
		want    bool
	}{
		{"", false},
		{"abc", false},
		{"a*b", true},
		{"a?b", true},
		{"a[b", true},
		{"a]b", false}, // bare "]" opens nothing
		{"a`*b", false},
		{"a`?b", false},
		{"a`[b", false},
		{"a``*b", true}, // escaped escape, then a live "*"
		{"`", false},
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			if got := ContainsWildcardCharacters(tc.pattern); got != tc.want {
				t.Errorf("ContainsWildcardCharacters(%q) = %v, want %v", tc.pattern, got, tc.want)
			}
		})
	}
}
