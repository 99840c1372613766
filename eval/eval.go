// Package eval evaluates arithmetic expressions made of integers, `+`, `*` and
// parentheses under two precedence regimes.
//
// Flat evaluation gives `+` and `*` equal precedence and folds strictly left to
// right. Precedence evaluation makes `+` bind tighter than `*`.
package eval

import (
	"fmt"
	"math"
	"strings"

	"github.com/takoeight0821/oporder/lexer"
	"github.com/takoeight0821/oporder/token"
)

type Mode int

const (
	FlatMode Mode = iota
	PrecedenceMode
)

func (m Mode) String() string {
	switch m {
	case FlatMode:
		return "flat"
	case PrecedenceMode:
		return "precedence"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name ("flat" or "precedence") to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "flat":
		return FlatMode, nil
	case "precedence":
		return PrecedenceMode, nil
	}
	return 0, fmt.Errorf("unknown mode %q", name)
}

// Evaluator evaluates single-line expressions.
//
// By default a parenthesized group must be closed before the end of input.
// With Lenient set, the end of input silently closes every open group.
type Evaluator struct {
	Mode    Mode
	Lenient bool
}

// Eval tokenizes and evaluates source. The token stream is private to this call.
func (e Evaluator) Eval(source string) (int64, error) {
	tokens := lexer.NewStream(source)
	switch e.Mode {
	case FlatMode:
		f := &flat{tokens: tokens, lenient: e.Lenient}
		return f.expr()
	case PrecedenceMode:
		p := &precedence{tokens: tokens, lenient: e.Lenient}
		return p.expr()
	}
	return 0, fmt.Errorf("unknown mode %v", e.Mode)
}

// Flat evaluates source with `+` and `*` at equal precedence, left to right.
func Flat(source string) (int64, error) {
	return Evaluator{Mode: FlatMode}.Eval(source)
}

// Precedence evaluates source with `+` binding tighter than `*`.
func Precedence(source string) (int64, error) {
	return Evaluator{Mode: PrecedenceMode}.Eval(source)
}

// operator consumes the token in operator position.
func operator(tokens *lexer.Stream) (token.Token, int, error) {
	op, ok := tokens.Next()
	if !ok {
		return op, tokens.Col(), unexpectedEnd(tokens)
	}
	switch op.Kind {
	case token.PLUS, token.STAR:
		return op, tokens.Col(), nil
	}
	return op, tokens.Col(), &IllegalOperatorError{Col: tokens.Col(), Token: op}
}

func apply(op token.Token, col int, left, right int64) (int64, error) {
	switch op.Kind {
	case token.PLUS:
		if (right > 0 && left > math.MaxInt64-right) || (right < 0 && left < math.MinInt64-right) {
			return 0, &OverflowError{Col: col, Op: op, Left: left, Right: right}
		}
		return left + right, nil
	case token.STAR:
		if left == 0 || right == 0 {
			return 0, nil
		}
		product := left * right
		if product/right != left || (left == -1 && right == math.MinInt64) || (right == -1 && left == math.MinInt64) {
			return 0, &OverflowError{Col: col, Op: op, Left: left, Right: right}
		}
		return product, nil
	}
	return 0, &IllegalOperatorError{Col: col, Token: op}
}

// unexpectedEnd prefers the lexer's own failure, which is what cut the stream short.
func unexpectedEnd(tokens *lexer.Stream) error {
	if err := tokens.Err(); err != nil {
		return err
	}
	return &UnexpectedEndError{Col: tokens.Col()}
}

// closeAtEnd handles the end of input inside a group opened at col open.
func closeAtEnd(tokens *lexer.Stream, open int, current int64, lenient bool) (int64, error) {
	if err := tokens.Err(); err != nil {
		return 0, err
	}
	if lenient {
		return current, nil
	}
	return 0, &UnclosedParenError{Col: open}
}
