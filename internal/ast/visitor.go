package ast

// Visitor is the root handler every traversal must provide. The returned
// bool tells the node whether to descend into its children; a non-nil error
// aborts the whole traversal and is returned from Accept unchanged.
//
// A visitor may additionally implement any of the per-kind handler
// interfaces below. When a node is dispatched, the handler for its own kind
// runs if implemented; otherwise dispatch falls back to the nearest ancestor
// kind the visitor handles, ending at VisitNode. For example an *IfStat goes
// to VisitIfStat, else VisitStatement, else VisitNode.
type Visitor interface {
	VisitNode(n Node) (bool, error)
}

// BaseVisitor descends everywhere and does nothing else. Embed it to
// override only the kinds a pass cares about.
type BaseVisitor struct{}

func (BaseVisitor) VisitNode(Node) (bool, error) { return true, nil }

// Abstract kinds.

type StatementVisitor interface {
	VisitStatement(s Statement) (bool, error)
}

type RestrictedStatementVisitor interface {
	VisitRestrictedStatement(s RestrictedStatement) (bool, error)
}

type TypeDefinitionVisitor interface {
	VisitTypeDefinition(d TypeDefinition) (bool, error)
}

type BlockVisitor interface {
	VisitBlock(b Block) (bool, error)
}

type LoopVisitor interface {
	VisitLoop(l Loop) (bool, error)
}

type ExpressionVisitor interface {
	VisitExpression(e Expression) (bool, error)
}

// Concrete kinds.

type RestrictedBlockVisitor interface {
	VisitRestrictedBlock(b *RestrictedBlock) (bool, error)
}

type NormalBlockVisitor interface {
	VisitNormalBlock(b *NormalBlock) (bool, error)
}

type FunctionDefinitionVisitor interface {
	VisitFunctionDefinition(f *FunctionDefinition) (bool, error)
}

type ExternFunctionDefinitionVisitor interface {
	VisitExternFunctionDefinition(f *ExternFunctionDefinition) (bool, error)
}

type AliasTypeDefinitionVisitor interface {
	VisitAliasTypeDefinition(d *AliasTypeDefinition) (bool, error)
}

type ClassTypeDefinitionVisitor interface {
	VisitClassTypeDefinition(d *ClassTypeDefinition) (bool, error)
}

type ReturnVisitor interface {
	VisitReturn(r *Return) (bool, error)
}

type VariableDeclarationVisitor interface {
	VisitVariableDeclaration(d *VariableDeclaration) (bool, error)
}

type VariableAssignmentVisitor interface {
	VisitVariableAssignment(a *VariableAssignment) (bool, error)
}

type IfStatVisitor interface {
	VisitIfStat(s *IfStat) (bool, error)
}

type WhileLoopVisitor interface {
	VisitWhileLoop(l *WhileLoop) (bool, error)
}

type NumericalForLoopVisitor interface {
	VisitNumericalForLoop(l *NumericalForLoop) (bool, error)
}

type ExpressionStatementVisitor interface {
	VisitExpressionStatement(s *ExpressionStatement) (bool, error)
}

type FunctionSignatureVisitor interface {
	VisitFunctionSignature(s *FunctionSignature) (bool, error)
}

type ParameterVisitor interface {
	VisitParameter(p *Parameter) (bool, error)
}

type CallVisitor interface {
	VisitCall(c *Call) (bool, error)
}

type MemberAccessVisitor interface {
	VisitMemberAccess(m *MemberAccess) (bool, error)
}

type BinaryVisitor interface {
	VisitBinary(b *Binary) (bool, error)
}

type UnaryVisitor interface {
	VisitUnary(u *Unary) (bool, error)
}

type IdentifierVisitor interface {
	VisitIdentifier(i *Identifier) (bool, error)
}

type BooleanLiteralVisitor interface {
	VisitBooleanLiteral(l *BooleanLiteral) (bool, error)
}

type StringLiteralVisitor interface {
	VisitStringLiteral(l *StringLiteral) (bool, error)
}

type NumberWrapperVisitor interface {
	VisitNumberWrapper(w *NumberWrapper) (bool, error)
}

type TypeWrapperVisitor interface {
	VisitTypeWrapper(w *TypeWrapper) (bool, error)
}

// Dispatch. Each function tries its own kind and falls back to the parent.

func visitNode(v Visitor, n Node) (bool, error) {
	return v.VisitNode(n)
}

func visitStatement(v Visitor, s Statement) (bool, error) {
	if h, ok := v.(StatementVisitor); ok {
		return h.VisitStatement(s)
	}
	return visitNode(v, s)
}

func visitRestrictedStatement(v Visitor, s RestrictedStatement) (bool, error) {
	if h, ok := v.(RestrictedStatementVisitor); ok {
		return h.VisitRestrictedStatement(s)
	}
	return visitStatement(v, s)
}

func visitTypeDefinition(v Visitor, d TypeDefinition) (bool, error) {
	if h, ok := v.(TypeDefinitionVisitor); ok {
		return h.VisitTypeDefinition(d)
	}
	return visitRestrictedStatement(v, d)
}

func visitBlock(v Visitor, b Block) (bool, error) {
	if h, ok := v.(BlockVisitor); ok {
		return h.VisitBlock(b)
	}
	return visitStatement(v, b)
}

func visitLoop(v Visitor, l Loop) (bool, error) {
	if h, ok := v.(LoopVisitor); ok {
		return h.VisitLoop(l)
	}
	return visitStatement(v, l)
}

func visitExpression(v Visitor, e Expression) (bool, error) {
	if h, ok := v.(ExpressionVisitor); ok {
		return h.VisitExpression(e)
	}
	return visitNode(v, e)
}

func visitRestrictedBlock(v Visitor, b *RestrictedBlock) (bool, error) {
	if h, ok := v.(RestrictedBlockVisitor); ok {
		return h.VisitRestrictedBlock(b)
	}
	return visitBlock(v, b)
}

func visitNormalBlock(v Visitor, b *NormalBlock) (bool, error) {
	if h, ok := v.(NormalBlockVisitor); ok {
		return h.VisitNormalBlock(b)
	}
	return visitBlock(v, b)
}

func visitFunctionDefinition(v Visitor, f *FunctionDefinition) (bool, error) {
	if h, ok := v.(FunctionDefinitionVisitor); ok {
		return h.VisitFunctionDefinition(f)
	}
	return visitRestrictedStatement(v, f)
}

func visitExternFunctionDefinition(v Visitor, f *ExternFunctionDefinition) (bool, error) {
	if h, ok := v.(ExternFunctionDefinitionVisitor); ok {
		return h.VisitExternFunctionDefinition(f)
	}
	return visitRestrictedStatement(v, f)
}

func visitAliasTypeDefinition(v Visitor, d *AliasTypeDefinition) (bool, error) {
	if h, ok := v.(AliasTypeDefinitionVisitor); ok {
		return h.VisitAliasTypeDefinition(d)
	}
	return visitTypeDefinition(v, d)
}

func visitClassTypeDefinition(v Visitor, d *ClassTypeDefinition) (bool, error) {
	if h, ok := v.(ClassTypeDefinitionVisitor); ok {
		return h.VisitClassTypeDefinition(d)
	}
	return visitTypeDefinition(v, d)
}

func visitReturn(v Visitor, r *Return) (bool, error) {
	if h, ok := v.(ReturnVisitor); ok {
		return h.VisitReturn(r)
	}
	return visitStatement(v, r)
}

func visitVariableDeclaration(v Visitor, d *VariableDeclaration) (bool, error) {
	if h, ok := v.(VariableDeclarationVisitor); ok {
		return h.VisitVariableDeclaration(d)
	}
	return visitStatement(v, d)
}

func visitVariableAssignment(v Visitor, a *VariableAssignment) (bool, error) {
	if h, ok := v.(VariableAssignmentVisitor); ok {
		return h.VisitVariableAssignment(a)
	}
	return visitStatement(v, a)
}

func visitIfStat(v Visitor, s *IfStat) (bool, error) {
	if h, ok := v.(IfStatVisitor); ok {
		return h.VisitIfStat(s)
	}
	return visitStatement(v, s)
}

func visitWhileLoop(v Visitor, l *WhileLoop) (bool, error) {
	if h, ok := v.(WhileLoopVisitor); ok {
		return h.VisitWhileLoop(l)
	}
	return visitLoop(v, l)
}

func visitNumericalForLoop(v Visitor, l *NumericalForLoop) (bool, error) {
	if h, ok := v.(NumericalForLoopVisitor); ok {
		return h.VisitNumericalForLoop(l)
	}
	return visitLoop(v, l)
}

func visitExpressionStatement(v Visitor, s *ExpressionStatement) (bool, error) {
	if h, ok := v.(ExpressionStatementVisitor); ok {
		return h.VisitExpressionStatement(s)
	}
	return visitStatement(v, s)
}

func visitFunctionSignature(v Visitor, s *FunctionSignature) (bool, error) {
	if h, ok := v.(FunctionSignatureVisitor); ok {
		return h.VisitFunctionSignature(s)
	}
	return visitExpression(v, s)
}

func visitParameter(v Visitor, p *Parameter) (bool, error) {
	if h, ok := v.(ParameterVisitor); ok {
		return h.VisitParameter(p)
	}
	return visitExpression(v, p)
}

func visitCall(v Visitor, c *Call) (bool, error) {
	if h, ok := v.(CallVisitor); ok {
		return h.VisitCall(c)
	}
	return visitExpression(v, c)
}

func visitMemberAccess(v Visitor, m *MemberAccess) (bool, error) {
	if h, ok := v.(MemberAccessVisitor); ok {
		return h.VisitMemberAccess(m)
	}
	return visitExpression(v, m)
}

func visitBinary(v Visitor, b *Binary) (bool, error) {
	if h, ok := v.(BinaryVisitor); ok {
		return h.VisitBinary(b)
	}
	return visitExpression(v, b)
}

func visitUnary(v Visitor, u *Unary) (bool, error) {
	if h, ok := v.(UnaryVisitor); ok {
		return h.VisitUnary(u)
	}
	return visitExpression(v, u)
}

func visitIdentifier(v Visitor, i *Identifier) (bool, error) {
	if h, ok := v.(IdentifierVisitor); ok {
		return h.VisitIdentifier(i)
	}
	return visitExpression(v, i)
}

func visitBooleanLiteral(v Visitor, l *BooleanLiteral) (bool, error) {
	if h, ok := v.(BooleanLiteralVisitor); ok {
		return h.VisitBooleanLiteral(l)
	}
	return visitExpression(v, l)
}

func visitStringLiteral(v Visitor, l *StringLiteral) (bool, error) {
	if h, ok := v.(StringLiteralVisitor); ok {
		return h.VisitStringLiteral(l)
	}
	return visitExpression(v, l)
}

func visitNumberWrapper(v Visitor, w *NumberWrapper) (bool, error) {
	if h, ok := v.(NumberWrapperVisitor); ok {
		return h.VisitNumberWrapper(w)
	}
	return visitExpression(v, w)
}

func visitTypeWrapper(v Visitor, w *TypeWrapper) (bool, error) {
	if h, ok := v.(TypeWrapperVisitor); ok {
		return h.VisitTypeWrapper(w)
	}
	return visitNode(v, w)
}
