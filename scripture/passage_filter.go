package scripture

// PPassageFilter wraps a PVerseSpanFilter and joins SPAN tokens separated
// by `,` or `;` into a single PASSAGE token. The seed carried into the
// inner stage between spans is the last verse of the most recently
// accumulated span, so "John 3:16, 17" reads "17" as John 3:17.
type PPassageFilter struct {
	src     *PVerseSpanFilter
	pending []Token
	seed    PartialVerse
	hasSeed bool
}

// NewPPassageFilter wraps src.
func NewPPassageFilter(src *PVerseSpanFilter) *PPassageFilter {
	return &PPassageFilter{src: src}
}

func (f *PPassageFilter) pushback(toks ...Token) {
	f.pending = append(toks, f.pending...)
}

func (f *PPassageFilter) nextRaw() (Token, bool) {
	if len(f.pending) > 0 {
		t := f.pending[0]
		f.pending = f.pending[1:]
		return t, true
	}
	f.src.seed, f.src.hasSeed = f.seed, f.hasSeed
	return f.src.Next()
}

func isSeparator(t Token) bool {
	return t.Kind == SYMBOL && (t.Value == "," || t.Value == ";")
}

func makePassage(spans []PartialSpan, start, end, row, col int) Token {
	return Token{Kind: PASSAGE, Passage: PartialPassage{Spans: spans}, Start: start, End: end, Row: row, Col: col}
}

// Next returns the next PASSAGE token, or a pass-through token when no
// span has started.
func (f *PPassageFilter) Next() (Token, bool) {
	var spans []PartialSpan
	var start, end, row, col int
	haveStart := false

	for {
		t, ok := f.nextRaw()
		if !ok {
			if len(spans) == 0 {
				return Token{}, false
			}
			return makePassage(spans, start, end, row, col), true
		}

		if t.Kind == SPAN {
			if !haveStart {
				start, row, col = t.Start, t.Row, t.Col
				haveStart = true
			}
			end = t.End
			spans = append(spans, t.Span)
			f.seed, f.hasSeed = t.Span.Last, true

			sep, sepOk := f.nextRaw()
			if !sepOk {
				return makePassage(spans, start, end, row, col), true
			}
			if isSeparator(sep) {
				continue
			}
			f.pushback(sep)
			return makePassage(spans, start, end, row, col), true
		}

		if len(spans) > 0 {
			f.pushback(t)
			return makePassage(spans, start, end, row, col), true
		}
		return t, true
	}
}
