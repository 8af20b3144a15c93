package scripture

import "strconv"

// Verse is a single, fully resolved scripture reference bound to the
// BibleModel that produced it. The zero value is not useful; construct one
// through a BibleModel factory method.
type Verse struct {
	model   *BibleModel
	book    int
	chapter int
	verse   int
}

// Book returns the 0-based book index.
func (v Verse) Book() int { return v.book }

// Chapter returns the 1-based chapter number.
func (v Verse) Chapter() int { return v.chapter }

// Number returns the 1-based verse number.
func (v Verse) Number() int { return v.verse }

func (v Verse) key() vkey { return vkey{v.book, v.chapter, v.verse} }

// Compare returns -1, 0, or 1 as v orders before, at, or after other under
// the total (book, chapter, verse) ordering.
func (v Verse) Compare(other Verse) int { return compareVkey(v.key(), other.key()) }

// Equal reports whether v and other denote the same verse.
func (v Verse) Equal(other Verse) bool { return v.key() == other.key() }

// Key returns a stable, round-trippable string identifying v, independent
// of display formatting ("book-chapter-verse").
func (v Verse) Key() string {
	return strconv.Itoa(v.book) + "-" + strconv.Itoa(v.chapter) + "-" + strconv.Itoa(v.verse)
}

// String renders v using the model's canonical "Book C:V" form.
func (v Verse) String() string {
	return v.model.formatter.FormatSpan(v.model.info, v.key(), v.key())
}

// Format renders v according to layout's mini-language: B is the book's
// full title, A its abbreviation, C the chapter, V the verse number, and
// any other character passes through unchanged.
func (v Verse) Format(layout string) string {
	var out []byte
	for _, c := range layout {
		out = append(out, v.model.formatter.char(v.key(), c)...)
	}
	return string(out)
}

// Span returns the degenerate one-verse span [v, v].
func (v Verse) Span() VerseSpan {
	return VerseSpan{model: v.model, first: v, last: v}
}
