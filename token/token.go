package token

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	INTEGER Kind = iota

	// Operators.
	PLUS
	STAR

	// Grouping.
	LEFTPAREN
	RIGHTPAREN
)

func (k Kind) String() string {
	switch k {
	case INTEGER:
		return "INTEGER"
	case PLUS:
		return "PLUS"
	case STAR:
		return "STAR"
	case LEFTPAREN:
		return "LEFTPAREN"
	case RIGHTPAREN:
		return "RIGHTPAREN"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a lexical unit of an expression. Value is only meaningful for INTEGER.
type Token struct {
	Kind  Kind
	Value int64
}

var (
	Add    = Token{Kind: PLUS}
	Mul    = Token{Kind: STAR}
	LParen = Token{Kind: LEFTPAREN}
	RParen = Token{Kind: RIGHTPAREN}
)

func Int(n int64) Token {
	return Token{Kind: INTEGER, Value: n}
}

// Lexeme returns the source spelling of t.
func (t Token) Lexeme() string {
	switch t.Kind {
	case INTEGER:
		return strconv.FormatInt(t.Value, 10)
	case PLUS:
		return "+"
	case STAR:
		return "*"
	case LEFTPAREN:
		return "("
	case RIGHTPAREN:
		return ")"
	}
	return "?"
}

func (t Token) String() string {
	if t.Kind == INTEGER {
		return fmt.Sprintf("{%v, %d}", t.Kind, t.Value)
	}
	return fmt.Sprintf("{%v}", t.Kind)
}
