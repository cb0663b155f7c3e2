package parser

import (
	"github.com/seam-lang/seam/internal/ast"
	cerrors "github.com/seam-lang/seam/internal/errors"
	"github.com/seam-lang/seam/internal/lexer"
	"github.com/seam-lang/seam/internal/position"
	"github.com/seam-lang/seam/internal/types"
)

// parseRestrictedStatements parses restricted statements up to '}' or EOF.
func (p *Parser) parseRestrictedStatements() ([]ast.RestrictedStatement, error) {
	var body []ast.RestrictedStatement
	for !p.currentTokenIs(lexer.TokenRBrace) && !p.currentTokenIs(lexer.TokenEOF) {
		stmt, err := p.parseRestrictedStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
		p.skipSemicolon()
	}
	return body, nil
}

// parseRestrictedStatement parses a statement legal at module or type-body
// top level.
func (p *Parser) parseRestrictedStatement() (ast.RestrictedStatement, error) {
	switch p.current.Type {
	case lexer.TokenFn:
		return p.parseFunctionDefinition()
	case lexer.TokenExtern:
		return p.parseExternFunctionDefinition()
	case lexer.TokenTypeDef:
		return p.parseTypeDefinition()
	default:
		return nil, p.restrictedContextError()
	}
}

func (p *Parser) restrictedContextError() error {
	if p.currentTokenIs(lexer.TokenError) {
		return p.unexpected("")
	}
	return cerrors.Syntax(p.current.Span, cerrors.CodeRestrictedContext,
		"%s is not allowed here: only fn, extern fn and type definitions may appear at this level",
		p.current.Describe())
}

// parseFunctionDefinition parses: fn signature block
func (p *Parser) parseFunctionDefinition() (*ast.FunctionDefinition, error) {
	start := p.current.Span
	p.nextToken()

	sig, err := p.parseSignature(ast.AutoType())
	if err != nil {
		return nil, err
	}
	body, err := p.parseNormalBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDefinition{
		Span:      position.Between(start, body.Span),
		Signature: sig,
		Body:      body,
	}, nil
}

// parseExternFunctionDefinition parses: extern fn signature
func (p *Parser) parseExternFunctionDefinition() (*ast.ExternFunctionDefinition, error) {
	start := p.current.Span
	p.nextToken()
	if _, err := p.expect(lexer.TokenFn); err != nil {
		return nil, err
	}

	sig, err := p.parseSignature(&ast.UnresolvedType{Name: types.Void.String()})
	if err != nil {
		return nil, err
	}
	return &ast.ExternFunctionDefinition{
		Span:      position.Between(start, sig.Span),
		Signature: sig,
	}, nil
}

// parseSignature parses: NAME '(' params ')' [':' type]
// omitted fills the return type slot when no annotation is given.
func (p *Parser) parseSignature(omitted ast.TypeValue) (*ast.FunctionSignature, error) {
	name, err := p.expect(lexer.TokenIdentifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	rparen, err := p.expect(lexer.TokenRParen)
	if err != nil {
		return nil, err
	}

	sig := &ast.FunctionSignature{Name: name.Literal, Parameters: params}
	if p.currentTokenIs(lexer.TokenColon) {
		p.nextToken()
		if sig.ReturnType, err = p.parseType(); err != nil {
			return nil, err
		}
	} else {
		sig.ReturnType = &ast.TypeWrapper{Span: rparen.Span, Value: omitted}
	}
	sig.Span = position.Between(name.Span, sig.ReturnType.Span)
	return sig, nil
}

// parseParameterList parses a possibly empty, comma separated parameter list.
// The closing ')' is left for the caller.
func (p *Parser) parseParameterList() (ast.ParameterList, error) {
	params := ast.ParameterList{}
	if p.currentTokenIs(lexer.TokenRParen) {
		return params, nil
	}
	for {
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.currentTokenIs(lexer.TokenComma) {
			return params, nil
		}
		p.nextToken()
	}
}

// parseParameter parses: NAME ':' type
func (p *Parser) parseParameter() (*ast.Parameter, error) {
	name, err := p.expect(lexer.TokenIdentifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenColon); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.Parameter{
		Span: position.Between(name.Span, typ.Span),
		Name: name.Literal,
		Type: typ,
	}, nil
}

// parseType parses a type annotation into an unresolved wrapper.
func (p *Parser) parseType() (*ast.TypeWrapper, error) {
	if !p.currentTokenIs(lexer.TokenIdentifier) {
		return nil, p.unexpected("type name")
	}
	tok := p.current
	p.nextToken()
	return ast.NewTypeWrapper(tok.Span, tok.Literal), nil
}

// parseTypeDefinition parses: type NAME '=' type | type NAME '{' restricted* '}'
func (p *Parser) parseTypeDefinition() (ast.TypeDefinition, error) {
	start := p.current.Span
	p.nextToken()

	name, err := p.expect(lexer.TokenIdentifier)
	if err != nil {
		return nil, err
	}

	switch p.current.Type {
	case lexer.TokenAssign:
		p.nextToken()
		target, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.AliasTypeDefinition{
			Span:   position.Between(start, target.Span),
			Name:   name.Literal,
			Target: target,
		}, nil
	case lexer.TokenLBrace:
		body, err := p.parseTypeScope()
		if err != nil {
			return nil, err
		}
		return &ast.ClassTypeDefinition{
			Span: position.Between(start, body.Span),
			Name: name.Literal,
			Body: body,
		}, nil
	default:
		return nil, p.unexpected("'=' or '{'")
	}
}

// parseTypeScope parses the member block of a class type.
func (p *Parser) parseTypeScope() (*ast.RestrictedBlock, error) {
	open, err := p.expect(lexer.TokenLBrace)
	if err != nil {
		return nil, err
	}
	body, err := p.parseRestrictedStatements()
	if err != nil {
		return nil, err
	}
	closing, err := p.closeBlock(open)
	if err != nil {
		return nil, err
	}
	return &ast.RestrictedBlock{
		Span:        position.Between(open.Span, closing.Span),
		Body:        body,
		IsTypeScope: true,
	}, nil
}
