package scripture

import "testing"

// newToyModel builds a small, deterministic six-book bible used across this
// package's tests so each test doesn't have to restate the same fixture.
//
//	0 Alpha    1 chapter:  5
//	1 Beta     2 chapters: 3, 4
//	2 Gamma    3 chapters: 10, 10, 10
//	3 Delta    1 chapter:  1
//	4 Epsilon  2 chapters: 7, 7
//	5 Zeta     4 chapters: 2, 2, 2, 2
func toyComponents(t *testing.T) (*BibleInfo, *BookMatcher, *Formatter) {
	t.Helper()

	chapters := [][]int{
		{5},
		{3, 4},
		{10, 10, 10},
		{1},
		{7, 7},
		{2, 2, 2, 2},
	}
	names := [][]string{
		{"Alpha", "al"},
		{"Beta", "be"},
		{"Gamma", "ga"},
		{"Delta", "de"},
		{"Epsilon", "ep"},
		{"Zeta", "ze"},
	}
	titles := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta"}
	abbrs := []string{"Al", "Be", "Ga", "De", "Ep", "Ze"}

	info, err := NewBibleInfo(chapters)
	if err != nil {
		t.Fatalf("NewBibleInfo: %v", err)
	}
	matcher, err := NewBookMatcher(names)
	if err != nil {
		t.Fatalf("NewBookMatcher: %v", err)
	}
	return info, matcher, NewFormatter(titles, abbrs)
}

func newToyModel(t *testing.T) *BibleModel {
	t.Helper()
	info, matcher, formatter := toyComponents(t)
	m, err := NewModel(info, matcher, formatter)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}
