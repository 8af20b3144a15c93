package scripture

import "sort"

// PPassageRectifier is the terminal pipeline stage. It clamps out-of-range
// endpoints, swaps reversed spans, fills absent chapter/verse, sorts spans
// by first endpoint, and fuses overlapping or adjacent spans. Unlike the
// earlier stages it can fail: a span lacking a valid book is fatal.
type PPassageRectifier struct {
	src  *PPassageFilter
	info *BibleInfo
}

// NewPPassageRectifier wraps src, rectifying against info.
func NewPPassageRectifier(src *PPassageFilter, info *BibleInfo) *PPassageRectifier {
	return &PPassageRectifier{src: src, info: info}
}

// Next returns the next rectified token. Non-PASSAGE tokens (raw tokens
// left over from grammar that never formed a passage) pass through
// unchanged. A PASSAGE token is rectified in place; if any of its spans
// lacks a book within BibleInfo bounds, Next returns a ParseError.
func (r *PPassageRectifier) Next() (Token, bool, error) {
	t, ok := r.src.Next()
	if !ok {
		return Token{}, false, nil
	}
	if t.Kind != PASSAGE {
		return t, true, nil
	}

	rectified, err := r.rectify(t.Passage)
	if err != nil {
		return Token{}, false, err
	}
	t.Passage = rectified
	return t, true, nil
}

func (r *PPassageRectifier) rectify(pp PartialPassage) (PartialPassage, error) {
	spans := make([]PartialSpan, 0, len(pp.Spans))
	for _, s := range pp.Spans {
		rectified, err := r.rectifySpan(s)
		if err != nil {
			return PartialPassage{}, err
		}
		spans = append(spans, rectified)
	}

	sort.Slice(spans, func(i, j int) bool {
		return compareVkey(toVkey(spans[i].First), toVkey(spans[j].First)) < 0
	})

	return PartialPassage{Spans: r.fuse(spans)}, nil
}

func (r *PPassageRectifier) rectifySpan(s PartialSpan) (PartialSpan, error) {
	info := r.info
	if !info.InRange(s.First.Book) || !info.InRange(s.Last.Book) {
		return PartialSpan{}, &ParseError{Detail: "span has no book"}
	}

	first := clampEndpoint(info, s.First)
	last := clampEndpoint(info, s.Last)

	if partialCompare(first, last) > 0 {
		first, last = last, first
	}

	first = fillFirst(first)
	last = fillLast(info, last)

	return PartialSpan{First: first, Last: last}, nil
}

func clampEndpoint(info *BibleInfo, v PartialVerse) PartialVerse {
	var chapter *int
	if v.Chapter != nil {
		c := clampChapter(info, v.Book, *v.Chapter)
		chapter = &c
	}
	var verse *int
	if v.Verse != nil && chapter != nil {
		vv := clampVerse(info, v.Book, *chapter, *v.Verse)
		verse = &vv
	}
	return PartialVerse{Book: v.Book, Chapter: chapter, Verse: verse}
}

func fillFirst(v PartialVerse) PartialVerse {
	chapter := 1
	if v.Chapter != nil {
		chapter = *v.Chapter
	}
	verse := 1
	if v.Verse != nil {
		verse = *v.Verse
	}
	return full(v.Book, chapter, verse)
}

func fillLast(info *BibleInfo, v PartialVerse) PartialVerse {
	chapter := info.ChapterCount(v.Book)
	if v.Chapter != nil {
		chapter = *v.Chapter
	}
	verse := info.VerseCount(v.Book, chapter)
	if v.Verse != nil {
		verse = *v.Verse
	}
	return full(v.Book, chapter, verse)
}

func toVkey(v PartialVerse) vkey {
	return vkey{book: v.Book, chapter: *v.Chapter, verse: *v.Verse}
}

// fuse performs a single O(n) forward sweep over sorted, fully-specified
// spans, merging a span into the running one when it overlaps or is
// contiguous with it under nextVerse.
func (r *PPassageRectifier) fuse(spans []PartialSpan) []PartialSpan {
	return fuseSpans(r.info, spans)
}

// fuseSpans is the free-standing form of the fusion sweep, reused by
// BibleModel.PassageFromSpans to fuse spans supplied directly rather than
// discovered by the pipeline.
func fuseSpans(info *BibleInfo, spans []PartialSpan) []PartialSpan {
	if len(spans) == 0 {
		return spans
	}

	out := make([]PartialSpan, 0, len(spans))
	cur := spans[0]

	for _, next := range spans[1:] {
		curLast := toVkey(cur.Last)
		nextFirst := toVkey(next.First)

		contiguous := compareVkey(curLast, nextFirst) >= 0
		if !contiguous {
			if nv, ok := nextVerse(info, curLast); ok {
				contiguous = compareVkey(nv, nextFirst) >= 0
			}
		}

		if contiguous {
			if compareVkey(toVkey(next.Last), curLast) > 0 {
				cur.Last = next.Last
			}
			continue
		}

		out = append(out, cur)
		cur = next
	}

	return append(out, cur)
}
