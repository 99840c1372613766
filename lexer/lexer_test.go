package lexer_test

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
	"github.com/takoeight0821/oporder/lexer"
	"github.com/takoeight0821/oporder/token"
)

func TestLex(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		input    string
		expected []token.Token
	}{
		{"1()+*", []token.Token{token.Int(1), token.LParen, token.RParen, token.Add, token.Mul}},
		{"", []token.Token{}},
		{"   \t ", []token.Token{}},
		{"123", []token.Token{token.Int(123)}},
		{"10 + 11", []token.Token{token.Int(10), token.Add, token.Int(11)}},
		{"(10)*(11)", []token.Token{token.LParen, token.Int(10), token.RParen, token.Mul, token.LParen, token.Int(11), token.RParen}},
		{"1 2", []token.Token{token.Int(1), token.Int(2)}},
		{"007", []token.Token{token.Int(7)}},
		{"a1-b2/c", []token.Token{token.Int(1), token.Int(2)}},
		{"1 × 2 ＋ 3", []token.Token{token.Int(1), token.Int(2), token.Int(3)}},
		{"9223372036854775807", []token.Token{token.Int(9223372036854775807)}},
	}

	for _, testcase := range testcases {
		actual, err := lexer.Lex(testcase.input)
		if err != nil {
			t.Errorf("Lex(%q) returned error: %v", testcase.input, err)

			continue
		}
		if diff := cmp.Diff(testcase.expected, actual); diff != "" {
			t.Errorf("Lex(%q) mismatch (-want +got):\n%s", testcase.input, diff)
		}
	}
}

func TestNextAfterEnd(t *testing.T) {
	t.Parallel()

	lx := lexer.New("1")
	if tok, ok := lx.Next(); !ok || tok != token.Int(1) {
		t.Fatalf("Next returned %v, %v", tok, ok)
	}
	for range 3 {
		if tok, ok := lx.Next(); ok {
			t.Errorf("Next returned %v after end of input", tok)
		}
	}
	if err := lx.Err(); err != nil {
		t.Errorf("Err returned %v", err)
	}
}

func TestCol(t *testing.T) {
	t.Parallel()

	lx := lexer.New(" 12 + (3)")
	expected := []int{2, 5, 7, 8, 9}
	for _, col := range expected {
		if _, ok := lx.Next(); !ok {
			t.Fatalf("unexpected end of tokens")
		}
		if lx.Col() != col {
			t.Errorf("Col returned %d, expected %d", lx.Col(), col)
		}
	}
	if _, ok := lx.Next(); ok {
		t.Fatalf("expected end of tokens")
	}
	if lx.Col() != 10 {
		t.Errorf("Col at end returned %d, expected 10", lx.Col())
	}
}

func TestIntegerRange(t *testing.T) {
	t.Parallel()

	tokens, err := lexer.Lex("1 + 9223372036854775808 * 2")

	var rangeErr *lexer.IntegerRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected IntegerRangeError, got %v", err)
	}
	if rangeErr.Col != 5 || rangeErr.Lexeme != "9223372036854775808" {
		t.Errorf("unexpected error fields: %+v", rangeErr)
	}
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("expected error to wrap strconv.ErrRange, got %v", err)
	}
	if diff := cmp.Diff([]token.Token{token.Int(1), token.Add}, tokens); diff != "" {
		t.Errorf("tokens before the error mismatch (-want +got):\n%s", diff)
	}
}

func TestStream(t *testing.T) {
	t.Parallel()

	s := lexer.NewStream("(1 +2)")

	expected := []token.Token{token.LParen, token.Int(1), token.Add, token.Int(2), token.RParen}
	for _, want := range expected {
		peeked, ok := s.Peek()
		if !ok || peeked != want {
			t.Fatalf("Peek returned %v, %v, expected %v", peeked, ok, want)
		}
		again, _ := s.Peek()
		if again != peeked {
			t.Fatalf("second Peek returned %v, expected %v", again, peeked)
		}
		got, ok := s.Next()
		if !ok || got != want {
			t.Fatalf("Next returned %v, %v, expected %v", got, ok, want)
		}
	}

	if tok, ok := s.Peek(); ok {
		t.Errorf("Peek returned %v at end of stream", tok)
	}
	if tok, ok := s.Next(); ok {
		t.Errorf("Next returned %v at end of stream", tok)
	}
	if s.Col() != 7 {
		t.Errorf("Col at end returned %d, expected 7", s.Col())
	}
}

func TestGolden(t *testing.T) {
	t.Parallel()

	source, err := os.ReadFile("../testdata/homework.txt")
	if err != nil {
		t.Fatalf("failed to read homework.txt: %v", err)
	}

	var builder strings.Builder
	for _, line := range strings.Split(strings.TrimRight(string(source), "\n"), "\n") {
		tokens, err := lexer.Lex(line)
		if err != nil {
			t.Fatalf("%q returned error: %v", line, err)
		}
		for _, tok := range tokens {
			builder.WriteString(tok.String())
			builder.WriteString(" ")
		}
		builder.WriteString("\n")
	}

	g := goldie.New(t, goldie.WithFixtureDir("../testdata"))
	g.Assert(t, "homework", []byte(builder.String()))
}
