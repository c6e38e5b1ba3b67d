package wildcard

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer folds a single rune according to the pattern's case options.
// It is chosen once at compile time and applied to every pattern character
// during compilation and to every input character during matching, so both
// sides always agree on the folding policy.
type Normalizer func(rune) rune

func identity(r rune) rune { return r }

// NewNormalizer selects the folding policy. Case-sensitive matching uses the
// identity. Case-insensitive matching lower-cases through unicode.ToLower,
// unless a specific culture is given and the invariant flag is off, in which
// case the x/text lowercaser for that language is used (e.g. Turkish dotless
// i).
func NewNormalizer(ignoreCase, invariant bool, culture language.Tag) Normalizer {
	if !ignoreCase {
		return identity
	}
	if invariant || culture == language.Und {
		return unicode.ToLower
	}

	// cases.Caser carries internal scratch state and is not safe for
	// concurrent use. Concurrent IsMatch calls against one compiled pattern
	// share this Normalizer, so each call borrows a caser from a pool
	// instead of closing over a single instance.
	pool := &sync.Pool{New: func() any {
		c := cases.Lower(culture)
		return &c
	}}
	return func(r rune) rune {
		lower := pool.Get().(*cases.Caser)
		folded := lower.String(string(r))
		pool.Put(lower)
		f, _ := utf8.DecodeRuneInString(folded)
		if f == utf8.RuneError {
			return r
		}
		return f
	}
}
