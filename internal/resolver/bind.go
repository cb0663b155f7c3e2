package resolver

import (
	"github.com/seam-lang/seam/internal/ast"
	cerrors "github.com/seam-lang/seam/internal/errors"
	"github.com/seam-lang/seam/internal/types"
)

// Bind checks that every unresolved type name under root is defined in
// module. It reports the first unknown name as a semantic error at the
// reference and does not modify the tree.
func Bind(module *types.Module, root ast.Node) error {
	return ast.Walk(&binder{module: module}, root)
}

type binder struct {
	ast.BaseVisitor
	module *types.Module
}

func (b *binder) VisitTypeWrapper(w *ast.TypeWrapper) (bool, error) {
	u, ok := w.Unresolved()
	if !ok {
		return false, nil
	}
	if _, found := b.module.Lookup(u.Name); !found {
		return false, cerrors.Semantic(w.Span, cerrors.CodeUndefinedType, "undefined type %q", u.Name)
	}
	return false, nil
}
