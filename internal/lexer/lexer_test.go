package lexer

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestBasicTokens(t *testing.T) {
	input := `fn main(): i32 {
	print("Hello, seam!");
}`

	tests := []struct {
		expectedType  TokenType
		expectedValue string
	}{
		{TokenFn, "fn"},
		{TokenIdentifier, "main"},
		{TokenLParen, "("},
		{TokenRParen, ")"},
		{TokenColon, ":"},
		{TokenIdentifier, "i32"},
		{TokenLBrace, "{"},
		{TokenIdentifier, "print"},
		{TokenLParen, "("},
		{TokenString, "Hello, seam!"},
		{TokenRParen, ")"},
		{TokenSemicolon, ";"},
		{TokenRBrace, "}"},
		{TokenEOF, ""},
	}

	l := New("test.seam", input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedValue {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedValue, tok.Literal)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `fn extern type let return if else while for true false fnord`

	expected := []TokenType{
		TokenFn, TokenExtern, TokenTypeDef, TokenLet, TokenReturn, TokenIf,
		TokenElse, TokenWhile, TokenFor, TokenTrue, TokenFalse, TokenIdentifier, TokenEOF,
	}

	l := New("", input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - expected %s, got %s", i, want, tok.Type)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `+ - * / % = == != < <= > >= && || ! . , : ;`

	expected := []TokenType{
		TokenPlus, TokenMinus, TokenMul, TokenDiv, TokenMod, TokenAssign, TokenEq,
		TokenNe, TokenLt, TokenLe, TokenGt, TokenGe, TokenAnd, TokenOr, TokenNot,
		TokenDot, TokenComma, TokenColon, TokenSemicolon, TokenEOF,
	}

	l := New("", input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - expected %s, got %s (%q)", i, want, tok.Type, tok.Literal)
		}
	}
}

func TestNumbersAndComments(t *testing.T) {
	l := New("", "42 // line comment\n/* block\ncomment */ 3.25 7.x")

	tok := l.NextToken()
	be.Equal(t, tok.Type, TokenNumber)
	be.Equal(t, tok.Literal, "42")

	tok = l.NextToken()
	be.Equal(t, tok.Type, TokenNumber)
	be.Equal(t, tok.Literal, "3.25")

	// "7." is not a decimal without a following digit
	tok = l.NextToken()
	be.Equal(t, tok.Literal, "7")
	be.Equal(t, l.NextToken().Type, TokenDot)
	be.Equal(t, l.NextToken().Literal, "x")
}

func TestTokenSpans(t *testing.T) {
	l := New("a.seam", "let x\n  = 10")

	let := l.NextToken()
	be.Equal(t, let.Span.Start.Line, 1)
	be.Equal(t, let.Span.Start.Column, 1)
	be.Equal(t, let.Span.End.Column, 4)
	be.Equal(t, let.Span.Start.Filename, "a.seam")

	x := l.NextToken()
	be.Equal(t, x.Span.Start.Column, 5)
	be.Equal(t, x.Span.Start.Offset, 4)

	assign := l.NextToken()
	be.Equal(t, assign.Span.Start.Line, 2)
	be.Equal(t, assign.Span.Start.Column, 3)

	ten := l.NextToken()
	be.Equal(t, ten.Span.Start.Column, 5)
	be.Equal(t, ten.Span.End.Column, 7)
	be.Equal(t, ten.Span.End.Offset, 12)
}

func TestErrorTokens(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"unterminated string", `"abc`, "unterminated string literal"},
		{"string across newline", "\"abc\n\"", "unterminated string literal"},
		{"malformed number", "12abc", `malformed number "12abc"`},
		{"single ampersand", "&", "unexpected character '&'"},
		{"unknown character", "@", "unexpected character '@'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := New("", tt.input).NextToken()
			be.Equal(t, tok.Type, TokenError)
			be.Equal(t, tok.Literal, tt.message)
		})
	}
}

func TestStringEscapes(t *testing.T) {
	tok := New("", `"a\tb\"c"`).NextToken()
	be.Equal(t, tok.Type, TokenString)
	be.Equal(t, tok.Literal, "a\tb\"c")
}

func TestEOFIsSticky(t *testing.T) {
	l := New("", "x")
	l.NextToken()
	be.Equal(t, l.NextToken().Type, TokenEOF)
	be.Equal(t, l.NextToken().Type, TokenEOF)
}

func TestDescribe(t *testing.T) {
	be.Equal(t, Token{Type: TokenIdentifier, Literal: "foo"}.Describe(), `identifier "foo"`)
	be.Equal(t, Token{Type: TokenRParen, Literal: ")"}.Describe(), "')'")
}
