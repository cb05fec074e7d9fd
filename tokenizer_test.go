package jsonstream

import (
	"io"
	"strings"
	"testing"
)

func tokenize(t *testing.T, src string) []Token {
	t.Helper()
	tok := NewTokenizer(strings.NewReader(src), -1, false)
	var toks []Token
	for {
		tt, err := tok.Next()
		if err == io.EOF {
			return toks
		}
		if err != nil {
			t.Fatalf("Next() error on %q: %v", src, err)
		}
		toks = append(toks, tt)
	}
}

func TestTokenizerScalars(t *testing.T) {
	cases := []struct {
		src  string
		kind TokenKind
	}{
		{"true", TokenBoolean},
		{"false", TokenBoolean},
		{"null", TokenNull},
		{`"hello"`, TokenString},
		{"42", TokenNumber},
		{"-17", TokenNumber},
		{"3.14", TokenNumber},
		{"1e10", TokenNumber},
		{"0", TokenNumber},
		{"0.5", TokenNumber},
	}
	for _, c := range cases {
		toks := tokenize(t, c.src)
		if len(toks) != 1 {
			t.Fatalf("%q: expected 1 token, got %d", c.src, len(toks))
		}
		if toks[0].Kind != c.kind {
			t.Errorf("%q: expected kind %v, got %v", c.src, c.kind, toks[0].Kind)
		}
	}
}

func TestTokenizerIntegerIsBigInt(t *testing.T) {
	toks := tokenize(t, "123456789012345678901234567890")
	if len(toks) != 1 || toks[0].Kind != TokenNumber {
		t.Fatalf("expected single number token, got %+v", toks)
	}
	if toks[0].Num.IsFloat {
		t.Fatalf("expected integer classification")
	}
	if got := toks[0].Num.Int.String(); got != "123456789012345678901234567890" {
		t.Errorf("got %s", got)
	}
}

func TestTokenizerRejectsLeadingZero(t *testing.T) {
	tok := NewTokenizer(strings.NewReader("01"), -1, false)
	if _, err := tok.Next(); err == nil {
		t.Fatalf("expected error for leading zero")
	}
}

func TestTokenizerRejectsBareDot(t *testing.T) {
	tok := NewTokenizer(strings.NewReader("1."), -1, false)
	if _, err := tok.Next(); err == nil {
		t.Fatalf("expected error for '1.' with no fractional digit")
	}
}

func TestTokenizerOperators(t *testing.T) {
	toks := tokenize(t, "{}[]:,")
	want := []byte{'{', '}', '[', ']', ':', ','}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(toks))
	}
	for i, op := range want {
		if toks[i].Kind != TokenOperator || toks[i].Op != op {
			t.Errorf("token %d: expected operator %q, got %+v", i, op, toks[i])
		}
	}
}

func TestTokenizerObjectSequence(t *testing.T) {
	toks := tokenize(t, `{"a": 1, "b": [true, null]}`)
	var kinds []TokenKind
	for _, tt := range toks {
		kinds = append(kinds, tt.Kind)
	}
	want := []TokenKind{
		TokenOperator, TokenString, TokenOperator, TokenNumber, TokenOperator,
		TokenString, TokenOperator, TokenOperator, TokenBoolean, TokenOperator,
		TokenNull, TokenOperator, TokenOperator,
	}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(kinds), toks)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], kinds[i])
		}
	}
}

func TestTokenizerIndexSkipsLeadingWhitespace(t *testing.T) {
	tok := NewTokenizer(strings.NewReader("   42"), -1, false)
	tt, err := tok.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tt.Index != 3 {
		t.Errorf("expected token index 3 (after 3 spaces), got %d", tt.Index)
	}
}

func TestTokenizerStreamingString(t *testing.T) {
	tok := NewTokenizer(strings.NewReader(`"hello world"`), -1, true)
	tt, err := tok.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tt.Kind != TokenString || tt.StrR == nil {
		t.Fatalf("expected a streaming string token, got %+v", tt)
	}
	b, err := io.ReadAll(tt.StrR)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "hello world" {
		t.Errorf("got %q", b)
	}
}
