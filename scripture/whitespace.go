package scripture

// WhitespaceFilter drops WHITESPACE tokens from its upstream, passing
// everything else through unchanged.
type WhitespaceFilter struct {
	src TokenSource
}

// NewWhitespaceFilter wraps src, dropping its WHITESPACE tokens.
func NewWhitespaceFilter(src TokenSource) *WhitespaceFilter {
	return &WhitespaceFilter{src: src}
}

// Next returns the next non-whitespace token.
func (f *WhitespaceFilter) Next() (Token, bool) {
	for {
		tok, ok := f.src.Next()
		if !ok {
			return Token{}, false
		}
		if tok.Kind != WHITESPACE {
			return tok, true
		}
	}
}
