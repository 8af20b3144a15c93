package scripture

import (
	"strings"
	"testing"
	"time"

	"github.com/FocuswithJustin/citerefs/internal/validation"
)

func TestNewModelRejectsNilComponents(t *testing.T) {
	if _, err := NewModel(nil, nil, nil); err == nil {
		t.Fatal("expected an error when info/matcher/formatter are nil")
	}
}

func TestModelBookReturnsWholeBookSpan(t *testing.T) {
	m := newToyModel(t)
	span, err := m.Book(2) // Gamma: 3 chapters, 10 verses each
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if span.Len() != 30 {
		t.Errorf("Len() = %d, want 30", span.Len())
	}
}

func TestModelBookRejectsOutOfRange(t *testing.T) {
	m := newToyModel(t)
	if _, err := m.Book(99); err == nil {
		t.Fatal("expected an error for an out-of-range book")
	}
}

func TestModelChapterRejectsOutOfRange(t *testing.T) {
	m := newToyModel(t)
	if _, err := m.Chapter(0, 99); err == nil {
		t.Fatal("expected an error for an out-of-range chapter")
	}
}

func TestModelSpanRejectsMultiSpanPassage(t *testing.T) {
	m := newToyModel(t)
	if _, err := m.Span("Alpha 1, Gamma 1"); err == nil {
		t.Fatal("expected an error when the passage has more than one span")
	}
}

func TestModelPassageFromSpansFuses(t *testing.T) {
	m := newToyModel(t)
	a, _ := m.VerseFromInts(0, 1, 1)
	b, _ := m.VerseFromInts(0, 1, 3)
	c, _ := m.VerseFromInts(0, 1, 2)
	d, _ := m.VerseFromInts(0, 1, 5)

	p, err := m.PassageFromSpans([]VerseSpan{
		{model: m, first: a, last: b},
		{model: m, first: c, last: d},
	})
	if err != nil {
		t.Fatalf("PassageFromSpans: %v", err)
	}
	if len(p.Spans()) != 1 {
		t.Fatalf("expected overlapping spans to fuse into one, got %d", len(p.Spans()))
	}
}

func TestModelMatchCacheReturnsEqualResult(t *testing.T) {
	info, matcher, formatter := toyComponents(t)
	m, err := NewModel(info, matcher, formatter, WithMatchCache(time.Minute))
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	first, err := m.Match("Alpha 1:1")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	second, err := m.Match("Alpha 1:1")
	if err != nil {
		t.Fatalf("Match (cached): %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("cached result %q differs from original %q", second, first)
	}
}

func TestModelMatchRejectsOversizedInput(t *testing.T) {
	m := newToyModel(t)
	huge := strings.Repeat("a", validation.MaxInputLength+1)
	if _, err := m.Match(huge); err == nil {
		t.Fatal("expected an error for oversized input")
	}
}

func TestModelSearchRejectsOversizedInput(t *testing.T) {
	m := newToyModel(t)
	huge := strings.Repeat("a", validation.MaxInputLength+1)
	stream := m.Search(huge)
	if _, _, err := stream.Next(); err == nil {
		t.Fatal("expected an error for oversized input")
	}
}
