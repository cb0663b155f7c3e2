package resolver

import (
	"errors"
	"strings"

	"github.com/seam-lang/seam/internal/ast"
	cerrors "github.com/seam-lang/seam/internal/errors"
	"github.com/seam-lang/seam/internal/types"
)

// Collect registers every class and alias definition under root in module.
// Class bodies do not open a new namespace: a type nested in a class is
// registered under its own name.
//
// Alias targets are bound once every name is known, so an alias may refer
// to a type defined later in the unit. The alias's target wrapper is
// resolved in place. Duplicate names, unknown targets and alias cycles are
// semantic errors.
func Collect(module *types.Module, root ast.Node) error {
	c := &collector{module: module}
	if err := ast.Walk(c, root); err != nil {
		return err
	}
	return c.bindAliases()
}

type pendingAlias struct {
	def   *ast.AliasTypeDefinition
	alias *types.Alias
}

type collector struct {
	ast.BaseVisitor
	module  *types.Module
	aliases []pendingAlias
}

// VisitRestrictedStatement catches functions and externs; type definitions
// cannot appear inside them.
func (c *collector) VisitRestrictedStatement(ast.RestrictedStatement) (bool, error) {
	return false, nil
}

func (c *collector) VisitClassTypeDefinition(d *ast.ClassTypeDefinition) (bool, error) {
	class := &types.Class{Name: d.Name}
	for _, member := range d.Body.Body {
		switch m := member.(type) {
		case *ast.FunctionDefinition:
			class.Methods = append(class.Methods, m.Signature.Name)
		case *ast.ExternFunctionDefinition:
			class.Methods = append(class.Methods, m.Signature.Name)
		}
	}
	if err := c.define(d, class); err != nil {
		return false, err
	}
	return true, nil
}

func (c *collector) VisitAliasTypeDefinition(d *ast.AliasTypeDefinition) (bool, error) {
	alias := &types.Alias{Name: d.Name}
	if err := c.define(d, alias); err != nil {
		return false, err
	}
	c.aliases = append(c.aliases, pendingAlias{def: d, alias: alias})
	return false, nil
}

func (c *collector) define(d ast.TypeDefinition, t types.Type) error {
	err := c.module.Define(d.DefinedName(), t)
	if errors.Is(err, types.ErrDuplicateType) {
		return cerrors.Semantic(d.GetSpan(), cerrors.CodeDuplicateType, "type %q already defined", d.DefinedName())
	}
	return err
}

func (c *collector) bindAliases() error {
	for _, p := range c.aliases {
		name := p.def.Target.Value.String()
		target, ok := c.module.Lookup(name)
		if !ok {
			return cerrors.Semantic(p.def.Target.Span, cerrors.CodeUndefinedType, "undefined type %q", name)
		}
		p.alias.Target = target
		p.def.Target.Value = target
	}
	for _, p := range c.aliases {
		if cycle := aliasCycle(p.alias); cycle != nil {
			return cerrors.Semantic(p.def.Span, cerrors.CodeAliasCycle, "alias cycle %s", strings.Join(cycle, " -> "))
		}
	}
	return nil
}

// aliasCycle returns the names along the cycle from a back to a, or nil
// when following a's targets does not return to a. Aliases that only lead
// into a cycle are left to the aliases on it.
func aliasCycle(a *types.Alias) []string {
	names := []string{a.Name}
	seen := map[*types.Alias]bool{a: true}
	for t := a.Target; ; {
		next, ok := t.(*types.Alias)
		if !ok {
			return nil
		}
		names = append(names, next.Name)
		if next == a {
			return names
		}
		if seen[next] {
			return nil
		}
		seen[next] = true
		t = next.Target
	}
}
