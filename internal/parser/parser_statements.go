package parser

import (
	"github.com/seam-lang/seam/internal/ast"
	cerrors "github.com/seam-lang/seam/internal/errors"
	"github.com/seam-lang/seam/internal/lexer"
	"github.com/seam-lang/seam/internal/position"
)

// parseNormalBlock parses: '{' statement* '}'
func (p *Parser) parseNormalBlock() (*ast.NormalBlock, error) {
	open, err := p.expect(lexer.TokenLBrace)
	if err != nil {
		return nil, err
	}

	block := &ast.NormalBlock{}
	for !p.currentTokenIs(lexer.TokenRBrace) && !p.currentTokenIs(lexer.TokenEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Body = append(block.Body, stmt)
		p.skipSemicolon()
	}

	closing, err := p.closeBlock(open)
	if err != nil {
		return nil, err
	}
	block.Span = position.Between(open.Span, closing.Span)
	return block, nil
}

// parseStatement parses a statement inside an ordinary block.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.current.Type {
	case lexer.TokenLet:
		return p.parseVariableDeclaration()
	case lexer.TokenReturn:
		return p.parseReturnStatement()
	case lexer.TokenIf:
		return p.parseIfStatement()
	case lexer.TokenWhile:
		return p.parseWhileStatement()
	case lexer.TokenFor:
		return p.parseForStatement()
	case lexer.TokenLBrace:
		return p.parseNormalBlock()
	case lexer.TokenFn, lexer.TokenExtern, lexer.TokenTypeDef:
		return nil, cerrors.Syntax(p.current.Span, cerrors.CodeRestrictedContext,
			"%s is only allowed at module level or in a type body", p.current.Describe())
	case lexer.TokenIdentifier:
		if p.peekTokenIs(lexer.TokenAssign) {
			return p.parseAssignment()
		}
	}
	return p.parseExpressionStatement()
}

// parseVariableDeclaration parses: let NAME [':' type] '=' expr
func (p *Parser) parseVariableDeclaration() (*ast.VariableDeclaration, error) {
	start := p.current.Span
	p.nextToken()

	name, err := p.expect(lexer.TokenIdentifier)
	if err != nil {
		return nil, err
	}

	typ := &ast.TypeWrapper{Span: name.Span, Value: ast.AutoType()}
	if p.currentTokenIs(lexer.TokenColon) {
		p.nextToken()
		if typ, err = p.parseType(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lexer.TokenAssign); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.VariableDeclaration{
		Span:  position.Between(start, value.GetSpan()),
		Name:  name.Literal,
		Type:  typ,
		Value: value,
	}, nil
}

// parseReturnStatement parses: return [expr]
func (p *Parser) parseReturnStatement() (*ast.Return, error) {
	ret := &ast.Return{Span: p.current.Span}
	p.nextToken()

	switch p.current.Type {
	case lexer.TokenRBrace, lexer.TokenSemicolon, lexer.TokenEOF:
		return ret, nil
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	ret.Value = value
	ret.Span = position.Between(ret.Span, value.GetSpan())
	return ret, nil
}

// parseIfStatement parses: if expr block [else (block | if ...)]
func (p *Parser) parseIfStatement() (*ast.IfStat, error) {
	start := p.current.Span
	p.nextToken()

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	main, err := p.parseNormalBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStat{
		Span:      position.Between(start, main.Span),
		Condition: cond,
		MainBody:  main,
	}
	if !p.currentTokenIs(lexer.TokenElse) {
		return stmt, nil
	}
	p.nextToken()

	if p.currentTokenIs(lexer.TokenIf) {
		nested, err := p.parseIfStatement()
		if err != nil {
			return nil, err
		}
		stmt.ElseBody = &ast.NormalBlock{Span: nested.Span, Body: []ast.Statement{nested}}
	} else {
		if stmt.ElseBody, err = p.parseNormalBlock(); err != nil {
			return nil, err
		}
	}
	stmt.Span = position.Between(start, stmt.ElseBody.Span)
	return stmt, nil
}

// parseWhileStatement parses: while expr block
func (p *Parser) parseWhileStatement() (*ast.WhileLoop, error) {
	start := p.current.Span
	p.nextToken()

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseNormalBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileLoop{
		Span:      position.Between(start, body.Span),
		Condition: cond,
		Body:      body,
	}, nil
}

// parseForStatement parses: for NAME '=' expr ',' expr [',' expr] block
// Without an explicit step the loop counts by 1.
func (p *Parser) parseForStatement() (*ast.NumericalForLoop, error) {
	start := p.current.Span
	p.nextToken()

	name, err := p.expect(lexer.TokenIdentifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenAssign); err != nil {
		return nil, err
	}
	initial, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenComma); err != nil {
		return nil, err
	}
	final, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	var step ast.Expression
	if p.currentTokenIs(lexer.TokenComma) {
		p.nextToken()
		if step, err = p.parseExpression(); err != nil {
			return nil, err
		}
	} else {
		end := final.GetSpan().End
		step = ast.NewNumberWrapper(position.Span{Start: end, End: end}, "1")
	}

	body, err := p.parseNormalBlock()
	if err != nil {
		return nil, err
	}
	return &ast.NumericalForLoop{
		Span:     position.Between(start, body.Span),
		Variable: name.Literal,
		Initial:  initial,
		Final:    final,
		Step:     step,
		Body:     body,
	}, nil
}

// parseAssignment parses: NAME '=' expr
func (p *Parser) parseAssignment() (*ast.VariableAssignment, error) {
	name := p.current
	p.nextToken()
	p.nextToken()

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.VariableAssignment{
		Span:  position.Between(name.Span, value.GetSpan()),
		Name:  name.Literal,
		Value: value,
	}, nil
}

func (p *Parser) parseExpressionStatement() (*ast.ExpressionStatement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Span: expr.GetSpan(), Expression: expr}, nil
}
