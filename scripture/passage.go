package scripture

import "iter"

// Passage is an ordered, non-overlapping sequence of VerseSpan, the result
// of a successful match or a manual fusion of spans.
type Passage struct {
	model *BibleModel
	spans []VerseSpan
}

// Spans returns a copy of the passage's spans, in order.
func (p Passage) Spans() []VerseSpan {
	out := make([]VerseSpan, len(p.spans))
	copy(out, p.spans)
	return out
}

// Len sums the verse count of every span in p.
func (p Passage) Len() int {
	total := 0
	for _, s := range p.spans {
		total += s.Len()
	}
	return total
}

// Verses lazily yields every verse covered by p, span by span, in order.
func (p Passage) Verses() iter.Seq[Verse] {
	return func(yield func(Verse) bool) {
		for _, s := range p.spans {
			for v := range s.Verses() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Includes is a convenience wrapper around IsSuperset for a single verse.
func (p Passage) Includes(v Verse) bool {
	ok, _ := p.IsSuperset(v)
	return ok
}

// IsSuperset reports whether p fully covers other, which must be a Verse,
// VerseSpan, or Passage. Every span implied by other must fit entirely
// within a single span of p; coverage split across two of p's spans does
// not count.
func (p Passage) IsSuperset(other any) (bool, error) {
	var want []VerseSpan
	switch o := other.(type) {
	case Verse:
		want = []VerseSpan{o.Span()}
	case VerseSpan:
		want = []VerseSpan{o}
	case Passage:
		want = o.spans
	default:
		return false, &TypeError{Op: "IsSuperset", Detail: "unsupported operand"}
	}

	for _, w := range want {
		covered := false
		for _, have := range p.spans {
			ok, _ := have.IsSuperset(w)
			if ok {
				covered = true
				break
			}
		}
		if !covered {
			return false, nil
		}
	}
	return true, nil
}

// String renders p by joining each span's canonical form with ", ".
func (p Passage) String() string {
	out := ""
	for i, s := range p.spans {
		if i > 0 {
			out += ", "
		}
		out += s.String()
	}
	return out
}

// Format applies layout to each span in turn (see VerseSpan.Format),
// joining the results with ", ".
func (p Passage) Format(layout string) string {
	out := ""
	for i, s := range p.spans {
		if i > 0 {
			out += ", "
		}
		out += s.Format(layout)
	}
	return out
}
