// Package parser implements the seam recursive descent parser.
//
// The parser reads tokens strictly in order with one token of lookahead and
// never backtracks. Statements are parsed by recursive descent; expressions
// by precedence climbing. The first mismatch aborts the parse with a syntax
// error; there is no recovery.
package parser

import (
	"github.com/seam-lang/seam/internal/ast"
	cerrors "github.com/seam-lang/seam/internal/errors"
	"github.com/seam-lang/seam/internal/lexer"
	"github.com/seam-lang/seam/internal/position"
	"github.com/seam-lang/seam/internal/types"
)

// TokenSource yields classified tokens in source order, ending with an
// endless run of TokenEOF.
type TokenSource interface {
	NextToken() lexer.Token
}

// Parser represents the recursive descent parser
type Parser struct {
	module   *types.Module
	tokens   TokenSource
	filename string

	current lexer.Token
	peek    lexer.Token
}

// New creates a parser over source, lexed with the seam lexer.
func New(module *types.Module, filename, source string) *Parser {
	return NewFromTokens(module, filename, lexer.New(filename, source))
}

// NewFromTokens creates a parser reading from an arbitrary token source.
func NewFromTokens(module *types.Module, filename string, tokens TokenSource) *Parser {
	p := &Parser{
		module:   module,
		tokens:   tokens,
		filename: filename,
	}
	// Read two tokens, so current and peek are both set
	p.nextToken()
	p.nextToken()
	return p
}

// Module returns the module this unit is parsed for.
func (p *Parser) Module() *types.Module { return p.module }

// Filename returns the name used in diagnostics.
func (p *Parser) Filename() string { return p.filename }

// Parse parses the whole unit and returns its root block.
func (p *Parser) Parse() (*ast.RestrictedBlock, error) {
	start := p.current.Span
	body, err := p.parseRestrictedStatements()
	if err != nil {
		return nil, err
	}
	if !p.currentTokenIs(lexer.TokenEOF) {
		return nil, p.restrictedContextError()
	}
	return &ast.RestrictedBlock{
		Span: position.Between(start, p.current.Span),
		Body: body,
	}, nil
}

// ParseExpression parses a source consisting of a single expression.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.currentTokenIs(lexer.TokenEOF) {
		return nil, p.unexpected(lexer.TokenEOF.String())
	}
	return expr, nil
}

// nextToken advances the parser to the next token
func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.tokens.NextToken()
}

// currentTokenIs checks if the current token is of the given type
func (p *Parser) currentTokenIs(tokenType lexer.TokenType) bool {
	return p.current.Type == tokenType
}

// peekTokenIs checks if the peek token is of the given type
func (p *Parser) peekTokenIs(tokenType lexer.TokenType) bool {
	return p.peek.Type == tokenType
}

// expect consumes the current token if it has the given type.
func (p *Parser) expect(tokenType lexer.TokenType) (lexer.Token, error) {
	if !p.currentTokenIs(tokenType) {
		return p.current, p.unexpected(tokenType.String())
	}
	tok := p.current
	p.nextToken()
	return tok, nil
}

// skipSemicolon consumes an optional statement terminator.
func (p *Parser) skipSemicolon() {
	if p.currentTokenIs(lexer.TokenSemicolon) {
		p.nextToken()
	}
}

// unexpected reports the current token as not matching want. A lexer error
// token is reported with its own message instead.
func (p *Parser) unexpected(want string) error {
	if p.currentTokenIs(lexer.TokenError) {
		return cerrors.Syntax(p.current.Span, cerrors.CodeInvalidToken, "%s", p.current.Literal)
	}
	return cerrors.Syntax(p.current.Span, cerrors.CodeUnexpectedToken,
		"expected %s, got %s", want, p.current.Describe())
}

// closeBlock consumes the '}' matching open.
func (p *Parser) closeBlock(open lexer.Token) (lexer.Token, error) {
	if p.currentTokenIs(lexer.TokenEOF) {
		return p.current, cerrors.Syntax(p.current.Span, cerrors.CodeUnclosedBlock,
			"expected '}' to close block opened at %s, got end of file", open.Span.Start)
	}
	return p.expect(lexer.TokenRBrace)
}
