package scripture

import (
	"time"

	"github.com/FocuswithJustin/citerefs/internal/logging"
	"github.com/FocuswithJustin/citerefs/internal/validation"
)

// BibleModel is the facade tying a BibleInfo cardinality table, a
// BookMatcher name index, and a Formatter together. Every Verse, VerseSpan,
// and Passage produced by a model is only meaningfully compared against
// values from that same model.
type BibleModel struct {
	info      *BibleInfo
	matcher   *BookMatcher
	formatter *Formatter
	cache     *matchCache
}

// ModelOption configures optional BibleModel behavior.
type ModelOption func(*BibleModel)

// WithMatchCache enables memoization of Match results. The cache keeps one
// expiry time for all entries: every entry expires ttl after the most
// recent insertion.
func WithMatchCache(ttl time.Duration) ModelOption {
	return func(m *BibleModel) {
		m.cache = newMatchCache(ttl)
	}
}

// NewModel builds a BibleModel from its three components.
func NewModel(info *BibleInfo, matcher *BookMatcher, formatter *Formatter, opts ...ModelOption) (*BibleModel, error) {
	if info == nil || matcher == nil || formatter == nil {
		return nil, &TypeError{Op: "NewModel", Detail: "info, matcher, and formatter are required"}
	}
	m := &BibleModel{info: info, matcher: matcher, formatter: formatter}
	for _, opt := range opts {
		opt(m)
	}
	logging.ModelLoaded(info.BookCount(), m.cache != nil)
	return m, nil
}

func (m *BibleModel) pipeline(s string) *PPassageRectifier {
	var src TokenSource = NewTokenizer(s)
	src = NewWhitespaceFilter(src)
	bookFilter := NewBookFilter(src, m.matcher)
	verseFilter := NewPVerseFilter(bookFilter)
	spanFilter := NewPVerseSpanFilter(verseFilter)
	passageFilter := NewPPassageFilter(spanFilter)
	return NewPPassageRectifier(passageFilter, m.info)
}

// TokenStream exposes the fully rectified token pipeline for a piece of
// input text, for callers that want lower-level access than Match/Search.
type TokenStream struct {
	rect *PPassageRectifier
	err  error
}

// Next returns the next rectified token.
func (ts *TokenStream) Next() (Token, bool, error) {
	if ts.err != nil {
		return Token{}, false, ts.err
	}
	return ts.rect.Next()
}

// Tokens returns a TokenStream over s.
func (m *BibleModel) Tokens(s string) *TokenStream {
	if err := validation.ValidateInputLength(s); err != nil {
		return &TokenStream{err: &ParseError{Detail: err.Error()}}
	}
	return &TokenStream{rect: m.pipeline(s)}
}

func (m *BibleModel) toSpan(ps PartialSpan) VerseSpan {
	first := Verse{model: m, book: ps.First.Book, chapter: *ps.First.Chapter, verse: *ps.First.Verse}
	last := Verse{model: m, book: ps.Last.Book, chapter: *ps.Last.Chapter, verse: *ps.Last.Verse}
	return VerseSpan{model: m, first: first, last: last}
}

func (m *BibleModel) toPassage(pp PartialPassage) Passage {
	spans := make([]VerseSpan, len(pp.Spans))
	for i, s := range pp.Spans {
		spans[i] = m.toSpan(s)
	}
	return Passage{model: m, spans: spans}
}

// Match parses s and requires it to resolve to exactly one passage with no
// leftover non-passage tokens; any stray text is a ParseError.
func (m *BibleModel) Match(s string) (Passage, error) {
	if err := validation.ValidateInputLength(s); err != nil {
		return Passage{}, &ParseError{Detail: err.Error()}
	}
	if m.cache != nil {
		if p, ok := m.cache.get(s); ok {
			return p, nil
		}
	}

	rect := m.pipeline(s)
	var found *Passage
	for {
		tok, ok, err := rect.Next()
		if err != nil {
			return Passage{}, err
		}
		if !ok {
			break
		}
		if tok.Kind != PASSAGE {
			return Passage{}, &ParseError{Input: s, Detail: "unrecognized text"}
		}
		if found != nil {
			return Passage{}, &ParseError{Input: s, Detail: "more than one passage"}
		}
		p := m.toPassage(tok.Passage)
		found = &p
	}
	if found == nil {
		return Passage{}, &ParseError{Input: s, Detail: "no passage found"}
	}

	if m.cache != nil {
		m.cache.set(s, *found)
	}
	return *found, nil
}

// Passage is an alias for Match, provided for callers that prefer a
// noun-shaped factory name.
func (m *BibleModel) Passage(s string) (Passage, error) { return m.Match(s) }

// Span requires s to resolve to a Passage with exactly one span and returns
// it directly.
func (m *BibleModel) Span(s string) (VerseSpan, error) {
	p, err := m.Match(s)
	if err != nil {
		return VerseSpan{}, err
	}
	if len(p.spans) != 1 {
		return VerseSpan{}, &ParseError{Input: s, Detail: "expected a single span"}
	}
	return p.spans[0], nil
}

// PassageStream lazily yields every Passage recognized in s, skipping over
// any non-passage text in between.
type PassageStream struct {
	rect *PPassageRectifier
	m    *BibleModel
	err  error
}

// Next returns the next recognized Passage.
func (ps *PassageStream) Next() (Passage, bool, error) {
	if ps.err != nil {
		return Passage{}, false, ps.err
	}
	for {
		tok, ok, err := ps.rect.Next()
		if err != nil {
			return Passage{}, false, err
		}
		if !ok {
			return Passage{}, false, nil
		}
		if tok.Kind == PASSAGE {
			return ps.m.toPassage(tok.Passage), true, nil
		}
	}
}

// Search returns a PassageStream over every passage recognized in s.
func (m *BibleModel) Search(s string) *PassageStream {
	if err := validation.ValidateInputLength(s); err != nil {
		return &PassageStream{m: m, err: &ParseError{Detail: err.Error()}}
	}
	return &PassageStream{rect: m.pipeline(s), m: m}
}

// VerseFromInts constructs a Verse directly from a book index, chapter,
// and verse number, returning a RangeError if any falls outside BibleInfo's
// bounds.
func (m *BibleModel) VerseFromInts(book, chapter, verse int) (Verse, error) {
	if !m.info.InRange(book) {
		return Verse{}, &RangeError{Book: book, Detail: "book out of range"}
	}
	if chapter < 1 || chapter > m.info.ChapterCount(book) {
		return Verse{}, &RangeError{Book: book, Chapter: chapter, Detail: "chapter out of range"}
	}
	if verse < 1 || verse > m.info.VerseCount(book, chapter) {
		return Verse{}, &RangeError{Book: book, Chapter: chapter, Verse: verse, Detail: "verse out of range"}
	}
	return Verse{model: m, book: book, chapter: chapter, verse: verse}, nil
}

// VerseFromBookName resolves bookName through the model's BookMatcher
// before constructing the verse.
func (m *BibleModel) VerseFromBookName(bookName string, chapter, verse int) (Verse, error) {
	book, ok := m.matcher.Match(bookName)
	if !ok {
		return Verse{}, &ParseError{Input: bookName, Detail: "unrecognized book name"}
	}
	return m.VerseFromInts(book, chapter, verse)
}

// VerseFromString parses s as a single verse reference.
func (m *BibleModel) VerseFromString(s string) (Verse, error) {
	span, err := m.Span(s)
	if err != nil {
		return Verse{}, err
	}
	if !span.first.Equal(span.last) {
		return Verse{}, &ParseError{Input: s, Detail: "expected a single verse"}
	}
	return span.first, nil
}

// Book returns the span covering the entirety of book.
func (m *BibleModel) Book(book int) (VerseSpan, error) {
	if !m.info.InRange(book) {
		return VerseSpan{}, &RangeError{Book: book, Detail: "book out of range"}
	}
	lastChapter := m.info.ChapterCount(book)
	first := Verse{model: m, book: book, chapter: 1, verse: 1}
	last := Verse{model: m, book: book, chapter: lastChapter, verse: m.info.VerseCount(book, lastChapter)}
	return VerseSpan{model: m, first: first, last: last}, nil
}

// Chapter returns the span covering the entirety of book's chapter.
func (m *BibleModel) Chapter(book, chapter int) (VerseSpan, error) {
	if !m.info.InRange(book) {
		return VerseSpan{}, &RangeError{Book: book, Detail: "book out of range"}
	}
	if chapter < 1 || chapter > m.info.ChapterCount(book) {
		return VerseSpan{}, &RangeError{Book: book, Chapter: chapter, Detail: "chapter out of range"}
	}
	first := Verse{model: m, book: book, chapter: chapter, verse: 1}
	last := Verse{model: m, book: book, chapter: chapter, verse: m.info.VerseCount(book, chapter)}
	return VerseSpan{model: m, first: first, last: last}, nil
}

// PassageFromSpans fuses the given spans using the same sort-then-sweep
// algorithm the pipeline's rectifier uses, producing a single normalized
// Passage.
func (m *BibleModel) PassageFromSpans(spans []VerseSpan) (Passage, error) {
	if len(spans) == 0 {
		return Passage{}, &ParseError{Detail: "no spans given"}
	}
	partials := make([]PartialSpan, len(spans))
	for i, s := range spans {
		partials[i] = PartialSpan{
			First: full(s.first.book, s.first.chapter, s.first.verse),
			Last:  full(s.last.book, s.last.chapter, s.last.verse),
		}
	}
	sortPartialSpans(partials)
	fused := fuseSpans(m.info, partials)
	return m.toPassage(PartialPassage{Spans: fused}), nil
}

func sortPartialSpans(spans []PartialSpan) {
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && compareVkey(toVkey(spans[j].First), toVkey(spans[j-1].First)) < 0; j-- {
			spans[j], spans[j-1] = spans[j-1], spans[j]
		}
	}
}
