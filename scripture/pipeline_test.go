package scripture

import "testing"

func mustMatch(t *testing.T, m *BibleModel, s string) Passage {
	t.Helper()
	p, err := m.Match(s)
	if err != nil {
		t.Fatalf("Match(%q): %v", s, err)
	}
	return p
}

func TestMatchBookOnly(t *testing.T) {
	m := newToyModel(t)
	p := mustMatch(t, m, "Alpha")
	if got, want := p.String(), "Alpha"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMatchBookChapter(t *testing.T) {
	m := newToyModel(t)
	p := mustMatch(t, m, "Beta 2")
	if got, want := p.String(), "Beta 2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMatchBookChapterVerse(t *testing.T) {
	m := newToyModel(t)
	p := mustMatch(t, m, "Gamma 2:5")
	if got, want := p.String(), "Gamma 2:5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMatchSpanWithinChapter(t *testing.T) {
	m := newToyModel(t)
	p := mustMatch(t, m, "Gamma 2:3-7")
	if got, want := p.String(), "Gamma 2:3 - 7"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMatchSpanAcrossChapters(t *testing.T) {
	m := newToyModel(t)
	p := mustMatch(t, m, "Gamma 2:5-3:1")
	if got, want := p.String(), "Gamma 2:5 - 3:1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMatchSeededContinuation(t *testing.T) {
	m := newToyModel(t)
	p := mustMatch(t, m, "Beta 1:1, 2")
	spans := p.Spans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %v", len(spans), p)
	}
	if spans[0].First().Number() != 1 || spans[0].Last().Number() != 2 {
		t.Errorf("span = %s, want Beta 1:1 - 2", p)
	}
}

func TestMatchFusesAdjacentSpansAcrossBookBoundary(t *testing.T) {
	m := newToyModel(t)
	// Alpha has 5 verses in its only chapter; Alpha 1:5 is immediately
	// followed by Beta 1:1, so these two spans should fuse into one.
	p := mustMatch(t, m, "Alpha 1:5, Beta 1:1")
	spans := p.Spans()
	if len(spans) != 1 {
		t.Fatalf("expected adjacent spans to fuse into one, got %d: %v", len(spans), p)
	}
	if spans[0].First().Book() != 0 || spans[0].Last().Book() != 1 {
		t.Errorf("fused span = %s, want Alpha 1:5 - Beta 1:1", p)
	}
}

func TestMatchClampsOutOfRangeVerse(t *testing.T) {
	m := newToyModel(t)
	// Alpha's only chapter has 5 verses; verse 99 clamps to 5.
	p := mustMatch(t, m, "Alpha 1:99")
	spans := p.Spans()
	if spans[0].Last().Number() != 5 {
		t.Errorf("clamped verse = %d, want 5", spans[0].Last().Number())
	}
}

func TestMatchSwapsReversedSpan(t *testing.T) {
	m := newToyModel(t)
	p := mustMatch(t, m, "Gamma 2:7-2:3")
	spans := p.Spans()
	if spans[0].First().Number() != 3 || spans[0].Last().Number() != 7 {
		t.Errorf("span = %s, want endpoints swapped to 3-7", p)
	}
}

func TestMatchRejectsLeftoverText(t *testing.T) {
	m := newToyModel(t)
	if _, err := m.Match("see Alpha 1 please"); err == nil {
		t.Fatal("expected a ParseError for leftover non-passage text")
	}
}

func TestMatchRejectsNoPassage(t *testing.T) {
	m := newToyModel(t)
	if _, err := m.Match("no references here"); err == nil {
		t.Fatal("expected a ParseError when no passage is found")
	}
}

func TestSearchSkipsSurroundingText(t *testing.T) {
	m := newToyModel(t)
	stream := m.Search("please read Alpha 1 and also Beta 2:1 today")

	var got []string
	for {
		p, ok, err := stream.Next()
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, p.String())
	}

	want := []string{"Alpha", "Beta 2:1"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("passage %d = %q, want %q", i, got[i], want[i])
		}
	}
}
