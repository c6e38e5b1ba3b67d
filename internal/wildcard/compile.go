package wildcard

// element is one compiled pattern position. An element only knows how to
// transition: given its own index and a normalized input rune (or end of
// string) it adds the successor positions to the appropriate frontier.
type element interface {
	// step processes one input rune. Successors that have consumed the rune
	// go into next; successors reached without consuming anything go into
	// same, the frontier currently being drained.
	step(r rune, pos int, same, next *frontier)

	// stepEnd fires once the input is exhausted, for elements that can
	// complete by consuming zero further characters.
	stepEnd(pos int, f *frontier)
}

// literalElement matches exactly one normalized character.
type literalElement rune

func (e literalElement) step(r rune, pos int, _, next *frontier) {
	if r == rune(e) {
		next.add(pos + 1)
	}
}

func (literalElement) stepEnd(int, *frontier) {}

// anyOneElement matches exactly one arbitrary character ("?").
type anyOneElement struct{}

func (anyOneElement) step(_ rune, pos int, _, next *frontier) {
	next.add(pos + 1)
}

func (anyOneElement) stepEnd(int, *frontier) {}

// anySequenceElement matches zero or more arbitrary characters ("*").
type anySequenceElement struct{}

func (anySequenceElement) step(_ rune, pos int, same, next *frontier) {
	// Consume nothing: hand the current character to the rest of the
	// pattern at this same string offset.
	same.add(pos + 1)
	// Consume this character and stay on the wildcard.
	next.add(pos)
}

func (anySequenceElement) stepEnd(pos int, f *frontier) {
	// A trailing "*" closes out with zero remaining characters.
	f.add(pos + 1)
}

// charRange is one lo-hi entry of a bracket expression. lo <= hi is
// guaranteed by the tokenizer.
type charRange struct {
	lo, hi rune
}

// bracketElement matches exactly one character contained in the set ("[...]").
type bracketElement struct {
	chars  []rune
	ranges []charRange
}

func (e *bracketElement) contains(r rune) bool {
	for _, c := range e.chars {
		if c == r {
			return true
		}
	}
	for _, cr := range e.ranges {
		if r >= cr.lo && r <= cr.hi {
			return true
		}
	}
	return false
}

func (e *bracketElement) step(r rune, pos int, _, next *frontier) {
	if e.contains(r) {
		next.add(pos + 1)
	}
}

func (*bracketElement) stepEnd(int, *frontier) {}

// Compiled is the immutable compiled form of a pattern: the element array
// plus the normalizer it was compiled under. It holds no reference to the
// original pattern string and is safe for concurrent IsMatch calls.
type Compiled struct {
	elements []element
	norm     Normalizer
	matchAll bool
}

// Compile tokenizes pattern and builds its compiled form, folding every
// pattern character through norm. The single-character pattern "*" compiles
// to a trivial always-match predicate without building any elements.
func Compile(pattern string, norm Normalizer) (*Compiled, error) {
	if pattern == string(wildcardStar) {
		return &Compiled{norm: norm, matchAll: true}, nil
	}

	b := builder{norm: norm}
	if err := Parse(pattern, &b); err != nil {
		return nil, err
	}
	return &Compiled{elements: b.elements, norm: norm}, nil
}

// builder is the Visitor that turns tokenizer events into pattern elements.
// A whole bracket expression collapses into a single bracketElement.
type builder struct {
	norm     Normalizer
	elements []element
	bracket  *bracketElement // non-nil while inside a bracket expression
}

func (b *builder) BeginPattern() {}

func (b *builder) Literal(r rune) {
	b.elements = append(b.elements, literalElement(b.norm(r)))
}

func (b *builder) AnySequence() {
	b.elements = append(b.elements, anySequenceElement{})
}

func (b *builder) AnyOne() {
	b.elements = append(b.elements, anyOneElement{})
}

func (b *builder) BeginBracket() {
	b.bracket = &bracketElement{}
}

func (b *builder) BracketLiteral(r rune) {
	b.bracket.chars = append(b.bracket.chars, b.norm(r))
}

func (b *builder) BracketRange(lo, hi rune) {
	b.bracket.ranges = append(b.bracket.ranges, charRange{lo: b.norm(lo), hi: b.norm(hi)})
}

func (b *builder) EndBracket() {
	b.elements = append(b.elements, b.bracket)
	b.bracket = nil
}

func (b *builder) EndPattern() {}
