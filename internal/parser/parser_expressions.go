package parser

import (
	"github.com/seam-lang/seam/internal/ast"
	cerrors "github.com/seam-lang/seam/internal/errors"
	"github.com/seam-lang/seam/internal/lexer"
	"github.com/seam-lang/seam/internal/position"
)

// Precedence represents operator binding strength; higher binds tighter.
type Precedence int

const (
	LOWEST Precedence = iota
	LOGICAL_OR
	LOGICAL_AND
	EQUALS
	SUM
	PRODUCT
	PREFIX
)

// binaryPrecedences maps infix operator tokens to their precedence.
// All binary operators are left associative.
var binaryPrecedences = map[lexer.TokenType]Precedence{
	lexer.TokenOr:    LOGICAL_OR,
	lexer.TokenAnd:   LOGICAL_AND,
	lexer.TokenEq:    EQUALS,
	lexer.TokenNe:    EQUALS,
	lexer.TokenLt:    EQUALS,
	lexer.TokenLe:    EQUALS,
	lexer.TokenGt:    EQUALS,
	lexer.TokenGe:    EQUALS,
	lexer.TokenPlus:  SUM,
	lexer.TokenMinus: SUM,
	lexer.TokenMul:   PRODUCT,
	lexer.TokenDiv:   PRODUCT,
	lexer.TokenMod:   PRODUCT,
}

func isUnaryOperator(tt lexer.TokenType) bool {
	return tt == lexer.TokenMinus || tt == lexer.TokenNot
}

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseSubExpression(LOWEST)
}

// parseSubExpression parses an expression whose binary operators all bind
// tighter than limit. An operator of equal precedence is left for the
// caller, which makes every binary operator left associative.
func (p *Parser) parseSubExpression(limit Precedence) (ast.Expression, error) {
	var left ast.Expression
	if isUnaryOperator(p.current.Type) {
		op := p.current
		p.nextToken()
		operand, err := p.parseSubExpression(PREFIX)
		if err != nil {
			return nil, err
		}
		left = &ast.Unary{
			Span:     position.Between(op.Span, operand.GetSpan()),
			Operator: op.Literal,
			Operand:  operand,
		}
	} else {
		var err error
		if left, err = p.parseSimpleExpression(); err != nil {
			return nil, err
		}
	}

	for {
		prec, ok := binaryPrecedences[p.current.Type]
		if !ok || prec <= limit {
			return left, nil
		}
		op := p.current
		p.nextToken()

		right, err := p.parseSubExpression(prec)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{
			Span:     position.Between(left.GetSpan(), right.GetSpan()),
			Operator: op.Literal,
			Left:     left,
			Right:    right,
		}
	}
}

// parseSimpleExpression parses literals, falling through to primary
// expressions.
func (p *Parser) parseSimpleExpression() (ast.Expression, error) {
	tok := p.current
	switch tok.Type {
	case lexer.TokenNumber:
		p.nextToken()
		return ast.NewNumberWrapper(tok.Span, tok.Literal), nil
	case lexer.TokenString:
		p.nextToken()
		return &ast.StringLiteral{Span: tok.Span, Value: tok.Literal}, nil
	case lexer.TokenTrue, lexer.TokenFalse:
		p.nextToken()
		return &ast.BooleanLiteral{Span: tok.Span, Value: tok.Type == lexer.TokenTrue}, nil
	default:
		return p.parsePrimaryExpression()
	}
}

// parsePrimaryExpression parses a prefix followed by any number of member
// accesses and calls.
func (p *Parser) parsePrimaryExpression() (ast.Expression, error) {
	expr, err := p.parsePrefixExpression()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current.Type {
		case lexer.TokenDot:
			p.nextToken()
			name, err := p.expect(lexer.TokenIdentifier)
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberAccess{
				Span:   position.Between(expr.GetSpan(), name.Span),
				Object: expr,
				Name:   name.Literal,
			}
		case lexer.TokenLParen:
			p.nextToken()
			args, err := p.parseExpressionList()
			if err != nil {
				return nil, err
			}
			rparen, err := p.expect(lexer.TokenRParen)
			if err != nil {
				return nil, err
			}
			expr = &ast.Call{
				Span:      position.Between(expr.GetSpan(), rparen.Span),
				Function:  expr,
				Arguments: args,
			}
		default:
			return expr, nil
		}
	}
}

// parsePrefixExpression parses: NAME | '(' expr ')'
func (p *Parser) parsePrefixExpression() (ast.Expression, error) {
	switch p.current.Type {
	case lexer.TokenIdentifier:
		tok := p.current
		p.nextToken()
		return &ast.Identifier{Span: tok.Span, Name: tok.Literal}, nil
	case lexer.TokenLParen:
		p.nextToken()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.TokenError:
		return nil, p.unexpected("")
	default:
		return nil, cerrors.Syntax(p.current.Span, cerrors.CodeInvalidExpression,
			"expected expression, got %s", p.current.Describe())
	}
}

// parseExpressionList parses a possibly empty, comma separated argument
// list. The closing ')' is left for the caller.
func (p *Parser) parseExpressionList() (ast.ExpressionList, error) {
	list := ast.ExpressionList{}
	if p.currentTokenIs(lexer.TokenRParen) {
		return list, nil
	}
	for {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
		if !p.currentTokenIs(lexer.TokenComma) {
			return list, nil
		}
		p.nextToken()
	}
}
