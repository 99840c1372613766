package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/takoeight0821/oporder/token"
)

// Lex scans the whole source and returns its tokens.
func Lex(source string) ([]token.Token, error) {
	lexer := New(source)
	tokens := []token.Token{}
	for {
		t, ok := lexer.Next()
		if !ok {
			break
		}
		tokens = append(tokens, t)
	}

	return tokens, lexer.Err()
}

// Lexer produces tokens on demand. Characters that do not start a token are skipped.
type Lexer struct {
	source string

	start   int // start of current lexeme
	current int // current position in source
	err     error
	done    bool
}

func New(source string) *Lexer {
	return &Lexer{source: source}
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return '\x00'
	}
	runeValue, _ := utf8.DecodeRuneInString(l.source[l.current:])

	return runeValue
}

func (l *Lexer) advance() rune {
	runeValue, width := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += width

	return runeValue
}

// Next returns the next token. It returns false once the source is exhausted
// or an integer literal could not be converted; see Err.
func (l *Lexer) Next() (token.Token, bool) {
	if l.done {
		return token.Token{}, false
	}
	for !l.isAtEnd() {
		l.start = l.current
		switch char := l.advance(); {
		case char == '+':
			return token.Add, true
		case char == '*':
			return token.Mul, true
		case char == '(':
			return token.LParen, true
		case char == ')':
			return token.RParen, true
		case isDigit(char):
			t, err := l.integer()
			if err != nil {
				l.err = err
				l.done = true

				return token.Token{}, false
			}

			return t, true
		}
	}
	l.start = l.current
	l.done = true

	return token.Token{}, false
}

// Col returns the 1-based column of the last token returned by Next, or of the
// end of input once the lexer is exhausted.
func (l *Lexer) Col() int {
	return l.start + 1
}

// Err returns the error that stopped the lexer, if any.
func (l *Lexer) Err() error {
	return l.err
}

type IntegerRangeError struct {
	Col    int
	Lexeme string
	Err    error
}

func (e *IntegerRangeError) Error() string {
	return fmt.Sprintf("at %d: `%s`, invalid integer: %v", e.Col, e.Lexeme, e.Err)
}

func (e *IntegerRangeError) Unwrap() error {
	return e.Err
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (l *Lexer) integer() (token.Token, error) {
	for isDigit(l.peek()) {
		l.advance()
	}

	lexeme := l.source[l.start:l.current]
	value, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return token.Token{}, &IntegerRangeError{Col: l.Col(), Lexeme: lexeme, Err: err}
	}

	return token.Int(value), nil
}
