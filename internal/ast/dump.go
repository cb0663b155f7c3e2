package ast

import (
	"fmt"
	"strings"
)

// Dump renders the tree rooted at n as an indented s-expression. Unresolved
// type slots print as (unresolved NAME), resolved ones as (type NAME).
func Dump(n Node) string {
	var b strings.Builder
	d := dumper{b: &b}
	d.node(n, 0)
	return b.String()
}

type dumper struct {
	b *strings.Builder
}

func (d dumper) open(depth int, format string, args ...any) {
	if depth > 0 {
		d.b.WriteByte('\n')
		d.b.WriteString(strings.Repeat("  ", depth))
	}
	d.b.WriteByte('(')
	fmt.Fprintf(d.b, format, args...)
}

func (d dumper) close() { d.b.WriteByte(')') }

func (d dumper) node(n Node, depth int) {
	switch n := n.(type) {
	case nil:
		d.open(depth, "nil")
	case *RestrictedBlock:
		if n.IsTypeScope {
			d.open(depth, "members")
		} else {
			d.open(depth, "unit")
		}
		for _, s := range n.Body {
			d.node(s, depth+1)
		}
	case *NormalBlock:
		d.open(depth, "block")
		for _, s := range n.Body {
			d.node(s, depth+1)
		}
	case *FunctionDefinition:
		d.open(depth, "fn")
		d.node(n.Signature, depth+1)
		d.node(n.Body, depth+1)
	case *ExternFunctionDefinition:
		d.open(depth, "extern")
		d.node(n.Signature, depth+1)
	case *AliasTypeDefinition:
		d.open(depth, "alias %q", n.Name)
		d.node(n.Target, depth+1)
	case *ClassTypeDefinition:
		d.open(depth, "class %q", n.Name)
		d.node(n.Body, depth+1)
	case *Return:
		d.open(depth, "return")
		if n.Value != nil {
			d.node(n.Value, depth+1)
		}
	case *VariableDeclaration:
		d.open(depth, "let %q", n.Name)
		d.node(n.Type, depth+1)
		d.node(n.Value, depth+1)
	case *VariableAssignment:
		d.open(depth, "assign %q", n.Name)
		d.node(n.Value, depth+1)
	case *IfStat:
		d.open(depth, "if")
		d.node(n.Condition, depth+1)
		d.node(n.MainBody, depth+1)
		if n.ElseBody != nil {
			d.node(n.ElseBody, depth+1)
		}
	case *WhileLoop:
		d.open(depth, "while")
		d.node(n.Condition, depth+1)
		d.node(n.Body, depth+1)
	case *NumericalForLoop:
		d.open(depth, "for %q", n.Variable)
		d.node(n.Initial, depth+1)
		d.node(n.Final, depth+1)
		d.node(n.Step, depth+1)
		d.node(n.Body, depth+1)
	case *ExpressionStatement:
		d.open(depth, "expr")
		d.node(n.Expression, depth+1)
	case *FunctionSignature:
		d.open(depth, "signature %q", n.Name)
		for _, p := range n.Parameters {
			d.node(p, depth+1)
		}
		d.node(n.ReturnType, depth+1)
	case *Parameter:
		d.open(depth, "param %q", n.Name)
		d.node(n.Type, depth+1)
	case *Call:
		d.open(depth, "call")
		d.node(n.Function, depth+1)
		for _, a := range n.Arguments {
			d.node(a, depth+1)
		}
	case *MemberAccess:
		d.open(depth, "member %q", n.Name)
		d.node(n.Object, depth+1)
	case *Binary:
		d.open(depth, "binary %q", n.Operator)
		d.node(n.Left, depth+1)
		d.node(n.Right, depth+1)
	case *Unary:
		d.open(depth, "unary %q", n.Operator)
		d.node(n.Operand, depth+1)
	case *Identifier:
		d.open(depth, "ident %q", n.Name)
	case *BooleanLiteral:
		d.open(depth, "bool %t", n.Value)
	case *StringLiteral:
		d.open(depth, "string %q", n.Value)
	case *NumberWrapper:
		d.open(depth, "number %s", n.Value)
	case *TypeWrapper:
		if _, ok := n.Unresolved(); ok {
			d.open(depth, "unresolved %s", n.Value)
		} else {
			d.open(depth, "type %s", n.Value)
		}
	default:
		d.open(depth, "%T", n)
	}
	d.close()
}
