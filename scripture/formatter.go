package scripture

import (
	"fmt"
	"strconv"
)

// Formatter renders book indices to display titles/abbreviations and
// implements the canonical, priority-ordered span/passage rendering rules.
type Formatter struct {
	titles []string
	abbrs  []string
}

// NewFormatter builds a Formatter from a canonical title and an
// abbreviation per book, both indexed by book.
func NewFormatter(titles, abbrs []string) *Formatter {
	return &Formatter{titles: titles, abbrs: abbrs}
}

// Title returns the canonical display title for book.
func (f *Formatter) Title(book int) string { return f.titles[book] }

// Abbr returns the display abbreviation for book.
func (f *Formatter) Abbr(book int) string { return f.abbrs[book] }

func isBookStart(v vkey) bool {
	return v.chapter == 1 && v.verse == 1
}

func isBookEnd(info *BibleInfo, v vkey) bool {
	lastChapter := info.ChapterCount(v.book)
	return v.chapter == lastChapter && v.verse == info.VerseCount(v.book, lastChapter)
}

// FormatSpan renders a fully-specified span in priority order: whole book,
// single verse, whole-book range, whole chapter, same-chapter range,
// same-book range, cross-book range.
func (f *Formatter) FormatSpan(info *BibleInfo, first, last vkey) string {
	sameBook := first.book == last.book

	if sameBook && isBookStart(first) && isBookEnd(info, last) {
		return f.titles[first.book]
	}
	if first == last {
		return fmt.Sprintf("%s %d:%d", f.titles[first.book], first.chapter, first.verse)
	}
	if isBookStart(first) && isBookEnd(info, last) {
		return fmt.Sprintf("%s - %s", f.titles[first.book], f.titles[last.book])
	}
	if sameBook && first.chapter == last.chapter {
		if first.verse == 1 && last.verse == info.VerseCount(first.book, first.chapter) {
			return fmt.Sprintf("%s %d", f.titles[first.book], first.chapter)
		}
		return fmt.Sprintf("%s %d:%d - %d", f.titles[first.book], first.chapter, first.verse, last.verse)
	}
	if sameBook {
		return fmt.Sprintf("%s %d:%d - %d:%d", f.titles[first.book], first.chapter, first.verse, last.chapter, last.verse)
	}
	return fmt.Sprintf("%s %d:%d - %s %d:%d", f.titles[first.book], first.chapter, first.verse, f.titles[last.book], last.chapter, last.verse)
}

// FormatPassage joins each span's FormatSpan rendering with ", ".
func (f *Formatter) FormatPassage(info *BibleInfo, spans []vkeySpan) string {
	out := ""
	for i, s := range spans {
		if i > 0 {
			out += ", "
		}
		out += f.FormatSpan(info, s.first, s.last)
	}
	return out
}

// char renders a single Format mini-language directive: B full title,
// A abbreviation, C chapter, V verse, anything else passes through
// literally.
func (f *Formatter) char(v vkey, c rune) string {
	switch c {
	case 'B':
		return f.titles[v.book]
	case 'A':
		return f.abbrs[v.book]
	case 'C':
		return strconv.Itoa(v.chapter)
	case 'V':
		return strconv.Itoa(v.verse)
	default:
		return string(c)
	}
}

// vkeySpan is the fully-specified span shape formatting operates over.
type vkeySpan struct {
	first, last vkey
}
