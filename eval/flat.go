package eval

import (
	"github.com/takoeight0821/oporder/lexer"
	"github.com/takoeight0821/oporder/token"
)

// expr = operand (operator operand)* ;
// operand = INTEGER | "(" expr ")" ;
// operator = "+" | "*" ;
type flat struct {
	tokens  *lexer.Stream
	lenient bool
}

func (f *flat) expr() (int64, error) {
	current, err := f.operand()
	if err != nil {
		return 0, err
	}
	for {
		if _, ok := f.tokens.Peek(); !ok {
			break
		}
		current, err = f.operation(current)
		if err != nil {
			return 0, err
		}
	}

	return current, f.tokens.Err()
}

func (f *flat) subexpr(open int) (int64, error) {
	current, err := f.operand()
	if err != nil {
		return 0, err
	}
	for {
		peeked, ok := f.tokens.Peek()
		if !ok {
			return closeAtEnd(f.tokens, open, current, f.lenient)
		}
		if peeked.Kind == token.RIGHTPAREN {
			f.tokens.Next()

			return current, nil
		}
		current, err = f.operation(current)
		if err != nil {
			return 0, err
		}
	}
}

func (f *flat) operand() (int64, error) {
	t, ok := f.tokens.Next()
	if !ok {
		return 0, unexpectedEnd(f.tokens)
	}
	switch t.Kind {
	case token.INTEGER:
		return t.Value, nil
	case token.LEFTPAREN:
		return f.subexpr(f.tokens.Col())
	}

	return 0, &IllegalOperandError{Col: f.tokens.Col(), Token: t}
}

func (f *flat) operation(left int64) (int64, error) {
	op, col, err := operator(f.tokens)
	if err != nil {
		return 0, err
	}
	right, err := f.operand()
	if err != nil {
		return 0, err
	}

	return apply(op, col, left, right)
}
