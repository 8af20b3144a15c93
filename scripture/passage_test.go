package scripture

import "testing"

func TestPassageLenSumsSpans(t *testing.T) {
	m := newToyModel(t)
	p := mustMatch(t, m, "Alpha 1:1-2, Beta 1:1-3")
	if got, want := p.Len(), 5; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestPassageVersesConcatenatesSpans(t *testing.T) {
	m := newToyModel(t)
	p := mustMatch(t, m, "Alpha 1:4-5, Beta 1:1-2")

	var got []string
	for v := range p.Verses() {
		got = append(got, v.String())
	}
	want := []string{"Alpha 1:4", "Alpha 1:5", "Beta 1:1", "Beta 1:2"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("verse %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPassageIsSupersetRequiresSingleSpanCoverage(t *testing.T) {
	m := newToyModel(t)
	p := mustMatch(t, m, "Gamma 1, Gamma 3")
	straddling, _ := m.Span("Gamma 1:5-3:5")

	ok, err := p.IsSuperset(straddling)
	if err != nil {
		t.Fatalf("IsSuperset: %v", err)
	}
	if ok {
		t.Error("a passage with a gap should not be a superset of a span straddling that gap")
	}
}

func TestPassageIncludesVerse(t *testing.T) {
	m := newToyModel(t)
	p := mustMatch(t, m, "Alpha 1:1-3")
	v, _ := m.VerseFromInts(0, 1, 2)
	if !p.Includes(v) {
		t.Error("Includes should be true for a verse within the passage")
	}
}

func TestPassageFormatJoinsSpans(t *testing.T) {
	m := newToyModel(t)
	p := mustMatch(t, m, "Alpha 1:1, Gamma 2:5")
	if got, want := p.Format("B V"), "Alpha 1, Gamma 5"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}
