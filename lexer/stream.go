package lexer

import "github.com/takoeight0821/oporder/token"

// Stream is a single-pass token stream with one token of lookahead.
// It cannot be rewound; every evaluation creates its own.
type Stream struct {
	lexer *Lexer

	peeked  token.Token
	peekCol int
	hasPeek bool
	ended   bool

	col int
}

func NewStream(source string) *Stream {
	return &Stream{lexer: New(source), col: 1}
}

func (s *Stream) fill() {
	if s.hasPeek || s.ended {
		return
	}
	t, ok := s.lexer.Next()
	s.peekCol = s.lexer.Col()
	if !ok {
		s.ended = true

		return
	}
	s.peeked = t
	s.hasPeek = true
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() (token.Token, bool) {
	s.fill()
	if !s.hasPeek {
		return token.Token{}, false
	}

	return s.peeked, true
}

// Next consumes and returns the next token.
func (s *Stream) Next() (token.Token, bool) {
	s.fill()
	s.col = s.peekCol
	if !s.hasPeek {
		return token.Token{}, false
	}
	s.hasPeek = false

	return s.peeked, true
}

// Col returns the column of the token last returned by Next.
// After Next reported the end of the stream it is the end-of-input column.
func (s *Stream) Col() int {
	return s.col
}

func (s *Stream) Err() error {
	return s.lexer.Err()
}
