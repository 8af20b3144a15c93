package scripture

import "strings"

// BookMatcher maps normalized book titles and aliases to a 0-based book
// index. Construction fails if two books share a normalized alias.
type BookMatcher struct {
	byAlias map[string]int
}

// normalizeBookName strips spaces, lowercases, and trims the candidate so
// that "1 Cor", "1cor", and " 1 COR " all resolve to the same key.
func normalizeBookName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	return strings.ToLower(s)
}

// NewBookMatcher builds a BookMatcher from one name list per book (book
// order gives the book index); the first name in each list is treated as
// the canonical title but is indexed the same as any other alias. Blank
// names are ignored.
func NewBookMatcher(namesByBook [][]string) (*BookMatcher, error) {
	m := &BookMatcher{byAlias: make(map[string]int)}
	for book, names := range namesByBook {
		for _, name := range names {
			key := normalizeBookName(name)
			if key == "" {
				continue
			}
			if existing, ok := m.byAlias[key]; ok && existing != book {
				return nil, &TypeError{Op: "NewBookMatcher", Detail: "duplicate alias " + key + " across books"}
			}
			m.byAlias[key] = book
		}
	}
	return m, nil
}

// Match normalizes candidate and looks it up, returning the book index and
// whether it was found.
func (m *BookMatcher) Match(candidate string) (int, bool) {
	key := normalizeBookName(candidate)
	if key == "" {
		return 0, false
	}
	idx, ok := m.byAlias[key]
	return idx, ok
}
