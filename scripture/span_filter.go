package scripture

// PVerseSpanFilter wraps a PVerseFilter and joins `VERSE '-' VERSE` into a
// single SPAN token. A lone VERSE (not followed by a dash and a closing
// verse) becomes a degenerate SPAN(first, first); any tokens consumed while
// looking ahead and not used are pushed back for the next call.
type PVerseSpanFilter struct {
	src     *PVerseFilter
	pending []Token
	seed    PartialVerse
	hasSeed bool
}

// NewPVerseSpanFilter wraps src.
func NewPVerseSpanFilter(src *PVerseFilter) *PVerseSpanFilter {
	return &PVerseSpanFilter{src: src}
}

func (f *PVerseSpanFilter) pushback(toks ...Token) {
	f.pending = append(toks, f.pending...)
}

func (f *PVerseSpanFilter) nextRaw() (Token, bool) {
	if len(f.pending) > 0 {
		t := f.pending[0]
		f.pending = f.pending[1:]
		return t, true
	}
	return f.src.SeededNext(f.seed, f.hasSeed)
}

func isDash(t Token) bool {
	return t.Kind == SYMBOL && t.Value == "-"
}

func degenerateSpan(first PartialVerse, t1 Token) Token {
	return Token{Kind: SPAN, Span: PartialSpan{First: first, Last: first}, Start: t1.Start, End: t1.End, Row: t1.Row, Col: t1.Col}
}

// Next returns the next SPAN token, or a pass-through token when the head
// of the stream is not a VERSE.
func (f *PVerseSpanFilter) Next() (Token, bool) {
	t1, ok := f.nextRaw()
	if !ok {
		return Token{}, false
	}
	if t1.Kind != VERSE {
		return t1, true
	}

	first := t1.Verse
	f.seed, f.hasSeed = first, true

	t2, ok2 := f.nextRaw()
	if !ok2 {
		return degenerateSpan(first, t1), true
	}
	if !isDash(t2) {
		f.pushback(t2)
		return degenerateSpan(first, t1), true
	}

	t3, ok3 := f.nextRaw()
	if !ok3 {
		f.pushback(t2)
		return degenerateSpan(first, t1), true
	}
	if t3.Kind != VERSE {
		f.pushback(t2, t3)
		return degenerateSpan(first, t1), true
	}

	last := t3.Verse
	f.seed, f.hasSeed = first, true
	return Token{Kind: SPAN, Span: PartialSpan{First: first, Last: last}, Start: t1.Start, End: t3.End, Row: t1.Row, Col: t1.Col}, true
}
