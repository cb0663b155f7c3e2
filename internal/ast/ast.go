// Package ast defines the abstract syntax tree of the seam language.
//
// The tree is a strict ownership tree rooted at a *RestrictedBlock. Nodes are
// created once by the parser; later passes only replace the value slots of
// *TypeWrapper and *NumberWrapper nodes and never restructure the tree.
//
// Every node implements Accept, which dispatches the visitor handler for the
// node's own kind (falling back to ancestor kinds, see visitor.go) and then,
// if the handler asks for it, accepts the node's children in source order.
package ast

import (
	"github.com/seam-lang/seam/internal/position"
)

// Node is the base interface for all AST nodes
type Node interface {
	// GetSpan returns the source span covered by this node
	GetSpan() position.Span
	// Accept runs v over this node and, if v asks for it, its children
	Accept(v Visitor) error
}

// Statement represents all statement nodes in the AST
type Statement interface {
	Node
	statementNode()
}

// RestrictedStatement is a statement legal only at module or type-body top
// level: function definitions, extern declarations and type definitions.
type RestrictedStatement interface {
	Statement
	restrictedNode()
}

// TypeDefinition is a restricted statement introducing a named type.
type TypeDefinition interface {
	RestrictedStatement
	DefinedName() string
}

// Block is a statement holding an ordered statement sequence.
type Block interface {
	Statement
	Len() int
}

// Loop is a looping statement; every loop owns its body.
type Loop interface {
	Statement
	LoopBody() *NormalBlock
}

// Expression represents all expression nodes in the AST
type Expression interface {
	Node
	expressionNode()
}

// ParameterList is the ordered parameter list of a signature.
type ParameterList []*Parameter

// ExpressionList is the ordered argument list of a call.
type ExpressionList []Expression

// ===== Blocks =====

// RestrictedBlock is a sequence of restricted statements. It is the root of
// every tree and the body of class types (IsTypeScope).
type RestrictedBlock struct {
	Span        position.Span
	Body        []RestrictedStatement
	IsTypeScope bool
}

func (b *RestrictedBlock) GetSpan() position.Span { return b.Span }
func (b *RestrictedBlock) statementNode()         {}
func (b *RestrictedBlock) Len() int               { return len(b.Body) }
func (b *RestrictedBlock) Accept(v Visitor) error {
	if ok, err := visitRestrictedBlock(v, b); !ok || err != nil {
		return err
	}
	return acceptEach(v, b.Body)
}

// NormalBlock is a sequence of general statements.
type NormalBlock struct {
	Span position.Span
	Body []Statement
}

func (b *NormalBlock) GetSpan() position.Span { return b.Span }
func (b *NormalBlock) statementNode()         {}
func (b *NormalBlock) Len() int               { return len(b.Body) }
func (b *NormalBlock) Accept(v Visitor) error {
	if ok, err := visitNormalBlock(v, b); !ok || err != nil {
		return err
	}
	return acceptEach(v, b.Body)
}

// ===== Restricted statements =====

// FunctionDefinition is a function with a body.
type FunctionDefinition struct {
	Span      position.Span
	Signature *FunctionSignature
	Body      *NormalBlock
}

func (f *FunctionDefinition) GetSpan() position.Span { return f.Span }
func (f *FunctionDefinition) statementNode()         {}
func (f *FunctionDefinition) restrictedNode()        {}
func (f *FunctionDefinition) Accept(v Visitor) error {
	if ok, err := visitFunctionDefinition(v, f); !ok || err != nil {
		return err
	}
	if err := f.Signature.Accept(v); err != nil {
		return err
	}
	return f.Body.Accept(v)
}

// ExternFunctionDefinition declares an externally linked function.
type ExternFunctionDefinition struct {
	Span      position.Span
	Signature *FunctionSignature
}

func (f *ExternFunctionDefinition) GetSpan() position.Span { return f.Span }
func (f *ExternFunctionDefinition) statementNode()         {}
func (f *ExternFunctionDefinition) restrictedNode()        {}
func (f *ExternFunctionDefinition) Accept(v Visitor) error {
	if ok, err := visitExternFunctionDefinition(v, f); !ok || err != nil {
		return err
	}
	return f.Signature.Accept(v)
}

// AliasTypeDefinition binds a name directly to another type. It is a leaf:
// Accept never descends into Target, which the declaration pass reads
// directly.
type AliasTypeDefinition struct {
	Span   position.Span
	Name   string
	Target *TypeWrapper
}

func (t *AliasTypeDefinition) GetSpan() position.Span { return t.Span }
func (t *AliasTypeDefinition) statementNode()         {}
func (t *AliasTypeDefinition) restrictedNode()        {}
func (t *AliasTypeDefinition) DefinedName() string    { return t.Name }
func (t *AliasTypeDefinition) Accept(v Visitor) error {
	_, err := visitAliasTypeDefinition(v, t)
	return err
}

// ClassTypeDefinition binds a name to a class whose members live in a
// type-scope restricted block.
type ClassTypeDefinition struct {
	Span position.Span
	Name string
	Body *RestrictedBlock
}

func (t *ClassTypeDefinition) GetSpan() position.Span { return t.Span }
func (t *ClassTypeDefinition) statementNode()         {}
func (t *ClassTypeDefinition) restrictedNode()        {}
func (t *ClassTypeDefinition) DefinedName() string    { return t.Name }
func (t *ClassTypeDefinition) Accept(v Visitor) error {
	if ok, err := visitClassTypeDefinition(v, t); !ok || err != nil {
		return err
	}
	return t.Body.Accept(v)
}

// ===== General statements =====

// Return exits the enclosing function, optionally with a value.
type Return struct {
	Span  position.Span
	Value Expression // nil for a bare return
}

func (r *Return) GetSpan() position.Span { return r.Span }
func (r *Return) statementNode()         {}
func (r *Return) Accept(v Visitor) error {
	if ok, err := visitReturn(v, r); !ok || err != nil {
		return err
	}
	if r.Value != nil {
		return r.Value.Accept(v)
	}
	return nil
}

// VariableDeclaration introduces a name. Type is always populated: either
// the declared type or the auto placeholder.
type VariableDeclaration struct {
	Span  position.Span
	Name  string
	Type  *TypeWrapper
	Value Expression
}

func (d *VariableDeclaration) GetSpan() position.Span { return d.Span }
func (d *VariableDeclaration) statementNode()         {}
func (d *VariableDeclaration) Accept(v Visitor) error {
	if ok, err := visitVariableDeclaration(v, d); !ok || err != nil {
		return err
	}
	if err := d.Type.Accept(v); err != nil {
		return err
	}
	return d.Value.Accept(v)
}

// VariableAssignment stores a new value into a previously declared name.
type VariableAssignment struct {
	Span  position.Span
	Name  string
	Value Expression
}

func (a *VariableAssignment) GetSpan() position.Span { return a.Span }
func (a *VariableAssignment) statementNode()         {}
func (a *VariableAssignment) Accept(v Visitor) error {
	if ok, err := visitVariableAssignment(v, a); !ok || err != nil {
		return err
	}
	return a.Value.Accept(v)
}

// IfStat is a conditional with an optional else body. An "else if" chain is
// an else body holding a single nested IfStat.
type IfStat struct {
	Span      position.Span
	Condition Expression
	MainBody  *NormalBlock
	ElseBody  *NormalBlock // nil when there is no else
}

func (s *IfStat) GetSpan() position.Span { return s.Span }
func (s *IfStat) statementNode()         {}
func (s *IfStat) Accept(v Visitor) error {
	if ok, err := visitIfStat(v, s); !ok || err != nil {
		return err
	}
	if err := s.Condition.Accept(v); err != nil {
		return err
	}
	if err := s.MainBody.Accept(v); err != nil {
		return err
	}
	if s.ElseBody != nil {
		return s.ElseBody.Accept(v)
	}
	return nil
}

// WhileLoop repeats its body while the condition holds; the condition is
// re-evaluated before each iteration.
type WhileLoop struct {
	Span      position.Span
	Condition Expression
	Body      *NormalBlock
}

func (l *WhileLoop) GetSpan() position.Span { return l.Span }
func (l *WhileLoop) statementNode()         {}
func (l *WhileLoop) LoopBody() *NormalBlock { return l.Body }
func (l *WhileLoop) Accept(v Visitor) error {
	if ok, err := visitWhileLoop(v, l); !ok || err != nil {
		return err
	}
	if err := l.Condition.Accept(v); err != nil {
		return err
	}
	return l.Body.Accept(v)
}

// NumericalForLoop counts Variable from Initial to Final by Step.
type NumericalForLoop struct {
	Span     position.Span
	Variable string
	Initial  Expression
	Final    Expression
	Step     Expression
	Body     *NormalBlock
}

func (l *NumericalForLoop) GetSpan() position.Span { return l.Span }
func (l *NumericalForLoop) statementNode()         {}
func (l *NumericalForLoop) LoopBody() *NormalBlock { return l.Body }
func (l *NumericalForLoop) Accept(v Visitor) error {
	if ok, err := visitNumericalForLoop(v, l); !ok || err != nil {
		return err
	}
	for _, e := range []Expression{l.Initial, l.Final, l.Step} {
		if err := e.Accept(v); err != nil {
			return err
		}
	}
	return l.Body.Accept(v)
}

// ExpressionStatement evaluates an expression for its effect.
type ExpressionStatement struct {
	Span       position.Span
	Expression Expression
}

func (s *ExpressionStatement) GetSpan() position.Span { return s.Span }
func (s *ExpressionStatement) statementNode()         {}
func (s *ExpressionStatement) Accept(v Visitor) error {
	if ok, err := visitExpressionStatement(v, s); !ok || err != nil {
		return err
	}
	return s.Expression.Accept(v)
}

// ===== Expressions =====

// FunctionSignature is the name, parameters and return type of a function.
type FunctionSignature struct {
	Span       position.Span
	Name       string
	Parameters ParameterList
	ReturnType *TypeWrapper
}

func (s *FunctionSignature) GetSpan() position.Span { return s.Span }
func (s *FunctionSignature) expressionNode()        {}
func (s *FunctionSignature) Accept(v Visitor) error {
	if ok, err := visitFunctionSignature(v, s); !ok || err != nil {
		return err
	}
	if err := acceptEach(v, s.Parameters); err != nil {
		return err
	}
	return s.ReturnType.Accept(v)
}

// Parameter is a single (name, type) pair of a signature.
type Parameter struct {
	Span position.Span
	Name string
	Type *TypeWrapper
}

func (p *Parameter) GetSpan() position.Span { return p.Span }
func (p *Parameter) expressionNode()        {}
func (p *Parameter) Accept(v Visitor) error {
	if ok, err := visitParameter(v, p); !ok || err != nil {
		return err
	}
	return p.Type.Accept(v)
}

// Call applies Function to Arguments.
type Call struct {
	Span      position.Span
	Function  Expression
	Arguments ExpressionList
}

func (c *Call) GetSpan() position.Span { return c.Span }
func (c *Call) expressionNode()        {}
func (c *Call) Accept(v Visitor) error {
	if ok, err := visitCall(v, c); !ok || err != nil {
		return err
	}
	if err := c.Function.Accept(v); err != nil {
		return err
	}
	return acceptEach(v, c.Arguments)
}

// MemberAccess selects Name from Object.
type MemberAccess struct {
	Span   position.Span
	Object Expression
	Name   string
}

func (m *MemberAccess) GetSpan() position.Span { return m.Span }
func (m *MemberAccess) expressionNode()        {}
func (m *MemberAccess) Accept(v Visitor) error {
	if ok, err := visitMemberAccess(v, m); !ok || err != nil {
		return err
	}
	return m.Object.Accept(v)
}

// Binary is an infix operation.
type Binary struct {
	Span     position.Span
	Operator string
	Left     Expression
	Right    Expression
}

func (b *Binary) GetSpan() position.Span { return b.Span }
func (b *Binary) expressionNode()        {}
func (b *Binary) Accept(v Visitor) error {
	if ok, err := visitBinary(v, b); !ok || err != nil {
		return err
	}
	if err := b.Left.Accept(v); err != nil {
		return err
	}
	return b.Right.Accept(v)
}

// Unary is a prefix operation.
type Unary struct {
	Span     position.Span
	Operator string
	Operand  Expression
}

func (u *Unary) GetSpan() position.Span { return u.Span }
func (u *Unary) expressionNode()        {}
func (u *Unary) Accept(v Visitor) error {
	if ok, err := visitUnary(v, u); !ok || err != nil {
		return err
	}
	return u.Operand.Accept(v)
}

// Identifier references a name.
type Identifier struct {
	Span position.Span
	Name string
}

func (i *Identifier) GetSpan() position.Span { return i.Span }
func (i *Identifier) expressionNode()        {}
func (i *Identifier) Accept(v Visitor) error {
	_, err := visitIdentifier(v, i)
	return err
}

// BooleanLiteral is true or false.
type BooleanLiteral struct {
	Span  position.Span
	Value bool
}

func (l *BooleanLiteral) GetSpan() position.Span { return l.Span }
func (l *BooleanLiteral) expressionNode()        {}
func (l *BooleanLiteral) Accept(v Visitor) error {
	_, err := visitBooleanLiteral(v, l)
	return err
}

// StringLiteral holds an unescaped string value.
type StringLiteral struct {
	Span  position.Span
	Value string
}

func (l *StringLiteral) GetSpan() position.Span { return l.Span }
func (l *StringLiteral) expressionNode()        {}
func (l *StringLiteral) Accept(v Visitor) error {
	_, err := visitStringLiteral(v, l)
	return err
}

func acceptEach[T Node](v Visitor, nodes []T) error {
	for _, n := range nodes {
		if err := n.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
