package scripture

// BibleInfo is the immutable cardinality table every Verse/VerseSpan/Passage
// is validated and rectified against: for each book, the verse count of
// each of its chapters. Books are indexed 0-based; chapters and verses are
// indexed 1-based everywhere else.
type BibleInfo struct {
	chapters [][]int
}

// NewBibleInfo validates and wraps a per-book, per-chapter verse-count
// table. Every book must have at least one chapter, and every chapter at
// least one verse.
func NewBibleInfo(chapters [][]int) (*BibleInfo, error) {
	if len(chapters) == 0 {
		return nil, &RangeError{Detail: "bible must have at least one book"}
	}
	for book, verseCounts := range chapters {
		if len(verseCounts) == 0 {
			return nil, &RangeError{Detail: "book has no chapters"}
		}
		for _, count := range verseCounts {
			if count < 1 {
				return nil, &RangeError{Detail: "chapter must have at least one verse"}
			}
		}
		_ = book
	}
	return &BibleInfo{chapters: chapters}, nil
}

// BookCount returns the number of books.
func (b *BibleInfo) BookCount() int { return len(b.chapters) }

// ChapterCount returns the number of chapters in book.
func (b *BibleInfo) ChapterCount(book int) int { return len(b.chapters[book]) }

// VerseCount returns the number of verses in book's chapter.
func (b *BibleInfo) VerseCount(book, chapter int) int { return b.chapters[book][chapter-1] }

// InRange reports whether book is a valid book index.
func (b *BibleInfo) InRange(book int) bool { return book >= 0 && book < len(b.chapters) }

func clampChapter(info *BibleInfo, book, chapter int) int {
	max := info.ChapterCount(book)
	if chapter < 1 {
		return 1
	}
	if chapter > max {
		return max
	}
	return chapter
}

func clampVerse(info *BibleInfo, book, chapter, verse int) int {
	max := info.VerseCount(book, chapter)
	if verse < 1 {
		return 1
	}
	if verse > max {
		return max
	}
	return verse
}

// vkey is a fully specified (book, chapter, verse) triple used internally
// by the rectifier and the value model for ordering and successor math.
type vkey struct {
	book, chapter, verse int
}

func compareVkey(a, b vkey) int {
	if a.book != b.book {
		if a.book < b.book {
			return -1
		}
		return 1
	}
	if a.chapter != b.chapter {
		if a.chapter < b.chapter {
			return -1
		}
		return 1
	}
	if a.verse != b.verse {
		if a.verse < b.verse {
			return -1
		}
		return 1
	}
	return 0
}

// nextVerse returns the successor of v in canonical reading order,
// crossing chapter and book boundaries as needed. ok is false when v is the
// last verse of the last book in info.
func nextVerse(info *BibleInfo, v vkey) (vkey, bool) {
	if v.verse < info.VerseCount(v.book, v.chapter) {
		return vkey{v.book, v.chapter, v.verse + 1}, true
	}
	if v.chapter < info.ChapterCount(v.book) {
		return vkey{v.book, v.chapter + 1, 1}, true
	}
	if v.book < info.BookCount()-1 {
		return vkey{v.book + 1, 1, 1}, true
	}
	return vkey{}, false
}
