package scripture

// PartialVerse is the pipeline-internal verse reference: book is always
// known once recognized, but chapter and verse may be absent (nil) pending
// rectification. Invariant while inside the pipeline: if Chapter is nil,
// Verse must be nil too.
type PartialVerse struct {
	Book    int
	Chapter *int
	Verse   *int
}

// HasChapter reports whether the chapter component is specified.
func (v PartialVerse) HasChapter() bool { return v.Chapter != nil }

// HasVerse reports whether the verse component is specified.
func (v PartialVerse) HasVerse() bool { return v.Verse != nil }

func intPtr(n int) *int { return &n }

func bookOnly(book int) PartialVerse {
	return PartialVerse{Book: book}
}

func bookChapter(book, chapter int) PartialVerse {
	return PartialVerse{Book: book, Chapter: intPtr(chapter)}
}

func full(book, chapter, verse int) PartialVerse {
	return PartialVerse{Book: book, Chapter: intPtr(chapter), Verse: intPtr(verse)}
}

// partialCompare orders two PartialVerse values lexicographically on
// (Book, Chapter, Verse), treating an absent component as equal to any
// value in that position.
func partialCompare(a, b PartialVerse) int {
	if a.Book != b.Book {
		if a.Book < b.Book {
			return -1
		}
		return 1
	}
	if a.Chapter != nil && b.Chapter != nil {
		if *a.Chapter != *b.Chapter {
			if *a.Chapter < *b.Chapter {
				return -1
			}
			return 1
		}
	} else {
		return 0
	}
	if a.Verse != nil && b.Verse != nil {
		if *a.Verse != *b.Verse {
			if *a.Verse < *b.Verse {
				return -1
			}
			return 1
		}
	}
	return 0
}

// PartialSpan is a pipeline-internal verse range; pre-rectification it may
// be inverted or out of range against BibleInfo.
type PartialSpan struct {
	First, Last PartialVerse
}

// PartialPassage is an ordered sequence of PartialSpan, pre-rectification.
type PartialPassage struct {
	Spans []PartialSpan
}
