package eval

import (
	"github.com/takoeight0821/oporder/lexer"
	"github.com/takoeight0821/oporder/token"
)

// expr = loperand (operator roperand)* ;
// loperand = INTEGER | "(" expr ")" ;
// roperand = loperand ("+" roperand)? ;
//
// roperand swallows a whole chain of additions before returning, so a
// multiplication only ever sees the reduced sum on its right.
type precedence struct {
	tokens  *lexer.Stream
	lenient bool
}

func (p *precedence) expr() (int64, error) {
	current, err := p.loperand()
	if err != nil {
		return 0, err
	}
	for {
		if _, ok := p.tokens.Peek(); !ok {
			break
		}
		current, err = p.operation(current)
		if err != nil {
			return 0, err
		}
	}

	return current, p.tokens.Err()
}

func (p *precedence) subexpr(open int) (int64, error) {
	current, err := p.loperand()
	if err != nil {
		return 0, err
	}
	for {
		peeked, ok := p.tokens.Peek()
		if !ok {
			return closeAtEnd(p.tokens, open, current, p.lenient)
		}
		if peeked.Kind == token.RIGHTPAREN {
			p.tokens.Next()

			return current, nil
		}
		current, err = p.operation(current)
		if err != nil {
			return 0, err
		}
	}
}

func (p *precedence) loperand() (int64, error) {
	t, ok := p.tokens.Next()
	if !ok {
		return 0, unexpectedEnd(p.tokens)
	}
	switch t.Kind {
	case token.INTEGER:
		return t.Value, nil
	case token.LEFTPAREN:
		return p.subexpr(p.tokens.Col())
	}

	return 0, &IllegalOperandError{Col: p.tokens.Col(), Token: t}
}

func (p *precedence) roperand() (int64, error) {
	left, err := p.loperand()
	if err != nil {
		return 0, err
	}
	if peeked, ok := p.tokens.Peek(); !ok || peeked.Kind != token.PLUS {
		return left, nil
	}
	p.tokens.Next()
	col := p.tokens.Col()

	right, err := p.roperand()
	if err != nil {
		return 0, err
	}

	return apply(token.Add, col, left, right)
}

func (p *precedence) operation(left int64) (int64, error) {
	op, col, err := operator(p.tokens)
	if err != nil {
		return 0, err
	}
	right, err := p.roperand()
	if err != nil {
		return 0, err
	}

	return apply(op, col, left, right)
}
