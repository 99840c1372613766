package eval

import (
	"errors"
	"fmt"

	"github.com/takoeight0821/oporder/token"
)

var (
	ErrUnexpectedEnd   = errors.New("unexpected end of tokens")
	ErrIllegalOperand  = errors.New("illegal token in operand position")
	ErrIllegalOperator = errors.New("illegal token in operator position")
	ErrUnclosedParen   = errors.New("unclosed parenthesis")
	ErrOverflow        = errors.New("integer overflow")
)

// UnexpectedEndError reports that the tokens ran out where an operand was required.
type UnexpectedEndError struct {
	Col int
}

func (e *UnexpectedEndError) Error() string {
	return fmt.Sprintf("at end: %v evaluating operand", ErrUnexpectedEnd)
}

func (e *UnexpectedEndError) Unwrap() error {
	return ErrUnexpectedEnd
}

type IllegalOperandError struct {
	Col   int
	Token token.Token
}

func (e *IllegalOperandError) Error() string {
	return errorAt(e.Col, e.Token, ErrIllegalOperand.Error())
}

func (e *IllegalOperandError) Unwrap() error {
	return ErrIllegalOperand
}

type IllegalOperatorError struct {
	Col   int
	Token token.Token
}

func (e *IllegalOperatorError) Error() string {
	return errorAt(e.Col, e.Token, fmt.Sprintf("%v is not an operation", e.Token.Kind))
}

func (e *IllegalOperatorError) Unwrap() error {
	return ErrIllegalOperator
}

// UnclosedParenError reports a group whose closing parenthesis never came.
// Col points at the opening parenthesis.
type UnclosedParenError struct {
	Col int
}

func (e *UnclosedParenError) Error() string {
	return errorAt(e.Col, token.LParen, ErrUnclosedParen.Error())
}

func (e *UnclosedParenError) Unwrap() error {
	return ErrUnclosedParen
}

type OverflowError struct {
	Col         int
	Op          token.Token
	Left, Right int64
}

func (e *OverflowError) Error() string {
	return errorAt(e.Col, e.Op, fmt.Sprintf("%v: %d %s %d", ErrOverflow, e.Left, e.Op.Lexeme(), e.Right))
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}

func errorAt(col int, where token.Token, msg string) string {
	return fmt.Sprintf("at %d: `%s`, %s", col, where.Lexeme(), msg)
}
