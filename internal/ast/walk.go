package ast

// Walk runs v over the tree rooted at n. A nil root is a no-op.
func Walk(v Visitor, n Node) error {
	if n == nil {
		return nil
	}
	return n.Accept(v)
}

type inspector func(Node) bool

func (f inspector) VisitNode(n Node) (bool, error) { return f(n), nil }

// Inspect traverses the tree in pre-order calling f for every node. If f
// returns false the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	_ = Walk(inspector(f), n)
}

// Collect returns every node under root (root included) in pre-order for
// which keep reports true.
func Collect(root Node, keep func(Node) bool) []Node {
	var out []Node
	Inspect(root, func(n Node) bool {
		if keep(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// TypeWrappers returns every type wrapper under root in source order.
func TypeWrappers(root Node) []*TypeWrapper {
	var out []*TypeWrapper
	Inspect(root, func(n Node) bool {
		if w, ok := n.(*TypeWrapper); ok {
			out = append(out, w)
		}
		return true
	})
	return out
}
