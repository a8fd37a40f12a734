package matcha

import "unicode/utf8"

// Source is a minimal forward-only cursor over the input text. It tracks the
// byte offset of the next rune and a checkpoint from which PopLexeme extracts
// the consumed substring. Input is treated as a sequence of Unicode scalar
// values; no normalization is applied. Line/column accounting is the
// Scanner's job, not ours.
type Source struct {
	src   string
	cur   int // byte offset of the next unread rune
	start int // checkpoint: byte offset where the current lexeme began
}

// NewSource creates a cursor positioned at the beginning of src.
func NewSource(src string) *Source {
	return &Source{src: src}
}

// AtEnd reports whether the cursor has consumed the entire input.
func (s *Source) AtEnd() bool { return s.cur >= len(s.src) }

// Peek returns the next rune without consuming it.
func (s *Source) Peek() (rune, bool) {
	if s.AtEnd() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.cur:])
	return r, true
}

// Next consumes and returns the next rune.
func (s *Source) Next() (rune, bool) {
	if s.AtEnd() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.src[s.cur:])
	s.cur += size
	return r, true
}

// PopLexeme returns the exact substring consumed since the previous
// checkpoint and resets the checkpoint to the current offset.
func (s *Source) PopLexeme() string {
	lex := s.src[s.start:s.cur]
	s.start = s.cur
	return lex
}
