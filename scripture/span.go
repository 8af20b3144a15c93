package scripture

import "iter"

// VerseSpan is a fully resolved, inclusive verse range bound to a
// BibleModel. First never orders after Last.
type VerseSpan struct {
	model *BibleModel
	first Verse
	last  Verse
}

// First returns the span's first verse.
func (s VerseSpan) First() Verse { return s.first }

// Last returns the span's last verse.
func (s VerseSpan) Last() Verse { return s.last }

// Len counts the verses covered by s by walking chapter boundaries, never
// a constant: a span crossing N chapters sums each chapter's verse count.
func (s VerseSpan) Len() int {
	info := s.model.info
	first, last := s.first.key(), s.last.key()

	if first.book == last.book && first.chapter == last.chapter {
		return last.verse - first.verse + 1
	}

	count := info.VerseCount(first.book, first.chapter) - first.verse + 1

	if first.book == last.book {
		for c := first.chapter + 1; c < last.chapter; c++ {
			count += info.VerseCount(first.book, c)
		}
		return count + last.verse
	}

	for c := first.chapter + 1; c <= info.ChapterCount(first.book); c++ {
		count += info.VerseCount(first.book, c)
	}
	for b := first.book + 1; b < last.book; b++ {
		for c := 1; c <= info.ChapterCount(b); c++ {
			count += info.VerseCount(b, c)
		}
	}
	for c := 1; c < last.chapter; c++ {
		count += info.VerseCount(last.book, c)
	}
	return count + last.verse
}

// Verses lazily yields every verse in s, in canonical reading order.
func (s VerseSpan) Verses() iter.Seq[Verse] {
	return func(yield func(Verse) bool) {
		info := s.model.info
		last := s.last.key()
		cur := s.first.key()
		for {
			if !yield(Verse{model: s.model, book: cur.book, chapter: cur.chapter, verse: cur.verse}) {
				return
			}
			if cur == last {
				return
			}
			next, ok := nextVerse(info, cur)
			if !ok {
				return
			}
			cur = next
		}
	}
}

// Includes is a convenience wrapper around IsSuperset for a single verse.
func (s VerseSpan) Includes(v Verse) bool {
	ok, _ := s.IsSuperset(v)
	return ok
}

// IsSuperset reports whether s fully covers other, which must be a Verse,
// VerseSpan, or Passage. A Passage is covered only when every one of its
// spans individually fits within s.
func (s VerseSpan) IsSuperset(other any) (bool, error) {
	first, last := s.first.key(), s.last.key()
	switch o := other.(type) {
	case Verse:
		k := o.key()
		return compareVkey(first, k) <= 0 && compareVkey(k, last) <= 0, nil
	case VerseSpan:
		of, ol := o.first.key(), o.last.key()
		return compareVkey(first, of) <= 0 && compareVkey(ol, last) <= 0, nil
	case Passage:
		for _, sp := range o.spans {
			ok, _ := s.IsSuperset(sp)
			if !ok {
				return false, nil
			}
		}
		return true, nil
	default:
		return false, &TypeError{Op: "IsSuperset", Detail: "unsupported operand"}
	}
}

// String renders s using the model's canonical priority-ordered form.
func (s VerseSpan) String() string {
	return s.model.formatter.FormatSpan(s.model.info, s.first.key(), s.last.key())
}

// Format renders s according to layout's mini-language: uppercase letters
// (B, A, C, V) refer to the first verse, lowercase letters to the last
// verse, P expands to s's canonical String form, and any other character
// passes through unchanged.
func (s VerseSpan) Format(layout string) string {
	var out []byte
	first, last := s.first.key(), s.last.key()
	for _, c := range layout {
		if c == 'P' {
			out = append(out, s.String()...)
			continue
		}
		if c == 'b' || c == 'a' || c == 'c' || c == 'v' {
			out = append(out, s.model.formatter.char(last, c-'a'+'A')...)
			continue
		}
		out = append(out, s.model.formatter.char(first, c)...)
	}
	return string(out)
}
