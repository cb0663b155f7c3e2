// Package resolver implements the type passes that run over a parsed unit:
// Collect registers the unit's type definitions, Bind checks that every
// referenced type name exists, and TypeResolver replaces every unresolved
// type slot with the interned type it names.
package resolver

import (
	"github.com/seam-lang/seam/internal/ast"
	"github.com/seam-lang/seam/internal/cli"
	cerrors "github.com/seam-lang/seam/internal/errors"
	"github.com/seam-lang/seam/internal/types"
)

// TypeMap is the complete, read-only name→type table a resolution run
// consumes. The types in it are interned: equal names give equal pointers.
type TypeMap map[string]types.Type

// TypeResolver replaces unresolved type slots with interned types. It only
// handles type and number wrappers; every other node falls back to the
// base handler and is descended into.
type TypeResolver struct {
	ast.BaseVisitor
	types  TypeMap
	logger *cli.Logger
}

// NewTypeResolver creates a resolver over typeMap. logger may be nil.
func NewTypeResolver(typeMap TypeMap, logger *cli.Logger) *TypeResolver {
	return &TypeResolver{types: typeMap, logger: logger}
}

// Run resolves every type slot reachable from root. Slots that already
// hold a resolved type are left alone, so running twice is a no-op.
//
// A name missing from the map is an internal compiler error: Bind has
// already rejected unknown names, so a miss here means the map handed to
// the resolver is incomplete. The run stops at the first miss; wrappers
// after it in source order stay unresolved.
func (r *TypeResolver) Run(root ast.Node) error {
	return ast.Walk(r, root)
}

func (r *TypeResolver) VisitTypeWrapper(w *ast.TypeWrapper) (bool, error) {
	u, ok := w.Unresolved()
	if !ok {
		return false, nil
	}
	t, found := r.types[u.Name]
	if !found {
		return false, cerrors.Internal(w.Span, cerrors.CodeUnresolvedType, "cannot resolve type %q", u.Name)
	}
	w.Value = t
	return false, nil
}

func (r *TypeResolver) VisitNumberWrapper(w *ast.NumberWrapper) (bool, error) {
	if n, ok := w.Unresolved(); ok {
		_, err := n.Int64()
		r.logger.Debug("number literal %s at %s left for inference (fits i64: %t)", n.Raw, w.Span.Start, err == nil)
	}
	return false, nil
}

// Resolve runs Collect, Bind and type resolution over root in order.
func Resolve(module *types.Module, root ast.Node, logger *cli.Logger) error {
	if err := Collect(module, root); err != nil {
		return err
	}
	if err := Bind(module, root); err != nil {
		return err
	}
	logger.Debug("resolving %d types in module %s", len(module.Names()), module)
	return NewTypeResolver(module.TypeMap(), logger).Run(root)
}
