package scripture

import "testing"

func TestNewBibleInfoRejectsEmpty(t *testing.T) {
	if _, err := NewBibleInfo(nil); err == nil {
		t.Fatal("expected an error for an empty bible")
	}
	if _, err := NewBibleInfo([][]int{{}}); err == nil {
		t.Fatal("expected an error for a book with no chapters")
	}
	if _, err := NewBibleInfo([][]int{{0}}); err == nil {
		t.Fatal("expected an error for a chapter with zero verses")
	}
}

func TestNextVerseWithinChapter(t *testing.T) {
	info, _ := NewBibleInfo([][]int{{3, 2}})
	got, ok := nextVerse(info, vkey{0, 1, 1})
	if !ok || got != (vkey{0, 1, 2}) {
		t.Errorf("nextVerse = %+v, %v, want {0 1 2}, true", got, ok)
	}
}

func TestNextVerseCrossesChapter(t *testing.T) {
	info, _ := NewBibleInfo([][]int{{3, 2}})
	got, ok := nextVerse(info, vkey{0, 1, 3})
	if !ok || got != (vkey{0, 2, 1}) {
		t.Errorf("nextVerse = %+v, %v, want {0 2 1}, true", got, ok)
	}
}

func TestNextVerseCrossesBook(t *testing.T) {
	info, _ := NewBibleInfo([][]int{{2}, {1}})
	got, ok := nextVerse(info, vkey{0, 1, 2})
	if !ok || got != (vkey{1, 1, 1}) {
		t.Errorf("nextVerse = %+v, %v, want {1 1 1}, true", got, ok)
	}
}

func TestNextVerseFailsAtLastVerse(t *testing.T) {
	info, _ := NewBibleInfo([][]int{{1}})
	_, ok := nextVerse(info, vkey{0, 1, 1})
	if ok {
		t.Error("nextVerse at the last verse of the last book should fail")
	}
}
