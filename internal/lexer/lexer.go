// Package lexer implements the seam lexical analyzer.
// It turns source text into a stream of classified tokens carrying spans;
// the parser consumes the stream strictly in order.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/seam-lang/seam/internal/position"
)

// TokenType represents the type of a token
type TokenType int

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tt))
}

// Token types
const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Literals
	TokenIdentifier
	TokenNumber
	TokenString

	// Keywords
	TokenFn
	TokenExtern
	TokenTypeDef
	TokenLet
	TokenReturn
	TokenIf
	TokenElse
	TokenWhile
	TokenFor
	TokenTrue
	TokenFalse

	// Operators
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv
	TokenMod
	TokenAssign
	TokenEq
	TokenNe
	TokenLt
	TokenLe
	TokenGt
	TokenGe
	TokenAnd
	TokenOr
	TokenNot

	// Punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenComma
	TokenDot
	TokenColon
	TokenSemicolon
)

// tokenNames provides string representations for token types.
// They are phrased for diagnostics: "expected ')', got identifier".
var tokenNames = map[TokenType]string{
	TokenEOF:   "end of file",
	TokenError: "invalid token",

	TokenIdentifier: "identifier",
	TokenNumber:     "number",
	TokenString:     "string",

	TokenFn:      "'fn'",
	TokenExtern:  "'extern'",
	TokenTypeDef: "'type'",
	TokenLet:     "'let'",
	TokenReturn:  "'return'",
	TokenIf:      "'if'",
	TokenElse:    "'else'",
	TokenWhile:   "'while'",
	TokenFor:     "'for'",
	TokenTrue:    "'true'",
	TokenFalse:   "'false'",

	TokenPlus:   "'+'",
	TokenMinus:  "'-'",
	TokenMul:    "'*'",
	TokenDiv:    "'/'",
	TokenMod:    "'%'",
	TokenAssign: "'='",
	TokenEq:     "'=='",
	TokenNe:     "'!='",
	TokenLt:     "'<'",
	TokenLe:     "'<='",
	TokenGt:     "'>'",
	TokenGe:     "'>='",
	TokenAnd:    "'&&'",
	TokenOr:     "'||'",
	TokenNot:    "'!'",

	TokenLParen:    "'('",
	TokenRParen:    "')'",
	TokenLBrace:    "'{'",
	TokenRBrace:    "'}'",
	TokenComma:     "','",
	TokenDot:       "'.'",
	TokenColon:     "':'",
	TokenSemicolon: "';'",
}

// keywords maps string keywords to their token types
var keywords = map[string]TokenType{
	"fn":     TokenFn,
	"extern": TokenExtern,
	"type":   TokenTypeDef,
	"let":    TokenLet,
	"return": TokenReturn,
	"if":     TokenIf,
	"else":   TokenElse,
	"while":  TokenWhile,
	"for":    TokenFor,
	"true":   TokenTrue,
	"false":  TokenFalse,
}

// Token represents a lexical token with position information.
// For TokenString, Literal holds the unescaped value; for TokenError it
// holds the error message.
type Token struct {
	Type    TokenType
	Literal string
	Span    position.Span
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Literal: %q, Span: %s}", t.Type, t.Literal, t.Span)
}

// Describe renders the token for use in a diagnostic message.
func (t Token) Describe() string {
	switch t.Type {
	case TokenIdentifier, TokenNumber:
		return fmt.Sprintf("%s %q", t.Type, t.Literal)
	default:
		return t.Type.String()
	}
}

// Lexer represents the lexical analyzer
type Lexer struct {
	input        string
	filename     string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // line of ch
	column       int  // column of ch
}

// New creates a new lexer instance
func New(filename, input string) *Lexer {
	l := &Lexer{
		input:    input,
		filename: filename,
		line:     1,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents "EOF"
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	if l.readPosition <= len(l.input) {
		l.readPosition++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

// getCurrentPosition returns current position in source
func (l *Lexer) getCurrentPosition() position.Position {
	return position.Position{
		Filename: l.filename,
		Line:     l.line,
		Column:   l.column,
		Offset:   l.position,
	}
}

// skipTrivia skips whitespace, newlines and comments.
// An unterminated block comment runs to the end of input.
func (l *Lexer) skipTrivia() {
	for !l.atEOF() {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for !l.atEOF() && l.ch != '\n' {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			l.readChar()
			l.readChar()
			for !l.atEOF() && !(l.ch == '*' && l.peekChar() == '/') {
				l.readChar()
			}
			if !l.atEOF() {
				l.readChar()
				l.readChar()
			}
		default:
			return
		}
	}
}

// NextToken scans the input and returns the next token.
// After the end of input it keeps returning TokenEOF.
func (l *Lexer) NextToken() Token {
	l.skipTrivia()

	start := l.getCurrentPosition()
	if l.atEOF() {
		return l.token(TokenEOF, "", start)
	}

	switch l.ch {
	case '+':
		return l.single(TokenPlus, start)
	case '-':
		return l.single(TokenMinus, start)
	case '*':
		return l.single(TokenMul, start)
	case '/':
		return l.single(TokenDiv, start)
	case '%':
		return l.single(TokenMod, start)
	case '(':
		return l.single(TokenLParen, start)
	case ')':
		return l.single(TokenRParen, start)
	case '{':
		return l.single(TokenLBrace, start)
	case '}':
		return l.single(TokenRBrace, start)
	case ',':
		return l.single(TokenComma, start)
	case '.':
		return l.single(TokenDot, start)
	case ':':
		return l.single(TokenColon, start)
	case ';':
		return l.single(TokenSemicolon, start)
	case '=':
		return l.either('=', TokenEq, TokenAssign, start)
	case '!':
		return l.either('=', TokenNe, TokenNot, start)
	case '<':
		return l.either('=', TokenLe, TokenLt, start)
	case '>':
		return l.either('=', TokenGe, TokenGt, start)
	case '&':
		if l.peekChar() == '&' {
			return l.double(TokenAnd, start)
		}
		return l.invalid(start, "unexpected character '&'")
	case '|':
		if l.peekChar() == '|' {
			return l.double(TokenOr, start)
		}
		return l.invalid(start, "unexpected character '|'")
	case '"':
		return l.readString(start)
	}

	switch {
	case isLetter(l.ch) || l.ch == '_':
		ident := l.readIdentifier()
		return l.token(lookupIdent(ident), ident, start)
	case isDigit(l.ch):
		return l.readNumber(start)
	default:
		return l.invalid(start, fmt.Sprintf("unexpected character %q", rune(l.ch)))
	}
}

func (l *Lexer) token(tokenType TokenType, literal string, start position.Position) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Span:    position.Span{Start: start, End: l.getCurrentPosition()},
	}
}

func (l *Lexer) single(tokenType TokenType, start position.Position) Token {
	literal := string(l.ch)
	l.readChar()
	return l.token(tokenType, literal, start)
}

func (l *Lexer) double(tokenType TokenType, start position.Position) Token {
	literal := l.input[l.position : l.position+2]
	l.readChar()
	l.readChar()
	return l.token(tokenType, literal, start)
}

// either returns the two-character token when the next char is next,
// otherwise the one-character token.
func (l *Lexer) either(next byte, two, one TokenType, start position.Position) Token {
	if l.peekChar() == next {
		return l.double(two, start)
	}
	return l.single(one, start)
}

func (l *Lexer) invalid(start position.Position, message string) Token {
	l.readChar()
	return l.token(TokenError, message, start)
}

func (l *Lexer) readIdentifier() string {
	begin := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[begin:l.position]
}

func (l *Lexer) readNumber(start position.Position) Token {
	begin := l.position
	for isDigit(l.ch) {
		l.readChar()
	}

	// Handle decimal point
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	// Check for malformed number (letters after digits)
	if isLetter(l.ch) || l.ch == '_' {
		for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		return l.token(TokenError, fmt.Sprintf("malformed number %q", l.input[begin:l.position]), start)
	}

	return l.token(TokenNumber, l.input[begin:l.position], start)
}

func (l *Lexer) readString(start position.Position) Token {
	begin := l.position
	l.readChar() // opening quote

	for !l.atEOF() && l.ch != '"' && l.ch != '\n' {
		if l.ch == '\\' && l.readPosition < len(l.input) {
			l.readChar()
		}
		l.readChar()
	}

	if l.ch != '"' {
		return l.token(TokenError, "unterminated string literal", start)
	}
	l.readChar() // closing quote

	value, err := strconv.Unquote(l.input[begin:l.position])
	if err != nil {
		return l.token(TokenError, "invalid escape sequence in string literal", start)
	}
	return l.token(TokenString, value, start)
}

// isLetter checks if character is ASCII letter
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isDigit checks if character is ASCII digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// lookupIdent checks if identifier is keyword
func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdentifier
}
