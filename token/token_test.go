package token_test

import (
	"testing"

	"github.com/takoeight0821/oporder/token"
)

func TestString(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		token  token.Token
		str    string
		lexeme string
	}{
		{token.Int(42), "{INTEGER, 42}", "42"},
		{token.Add, "{PLUS}", "+"},
		{token.Mul, "{STAR}", "*"},
		{token.LParen, "{LEFTPAREN}", "("},
		{token.RParen, "{RIGHTPAREN}", ")"},
	}

	for _, testcase := range testcases {
		if actual := testcase.token.String(); actual != testcase.str {
			t.Errorf("String returned %q, expected %q", actual, testcase.str)
		}
		if actual := testcase.token.Lexeme(); actual != testcase.lexeme {
			t.Errorf("Lexeme returned %q, expected %q", actual, testcase.lexeme)
		}
	}
}

func TestEquality(t *testing.T) {
	t.Parallel()

	if token.Int(1) != token.Int(1) {
		t.Errorf("equal integers compare unequal")
	}
	if token.Int(1) == token.Int(2) {
		t.Errorf("different integers compare equal")
	}
	if token.Add == token.Mul {
		t.Errorf("different kinds compare equal")
	}
}
