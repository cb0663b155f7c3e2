package types

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// ErrDuplicateType is returned by Define when the name is already taken.
var ErrDuplicateType = errors.New("type already defined")

// Module is the compilation-unit handle the parser is constructed with.
// It owns the interned name→type table the resolver consumes.
type Module struct {
	Name    string
	Version *semver.Version

	types map[string]Type
}

// NewModule creates a module with every builtin registered. An empty
// version means 0.0.0.
func NewModule(name, version string) (*Module, error) {
	if version == "" {
		version = "0.0.0"
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("module %s: invalid version %q: %w", name, version, err)
	}

	m := &Module{
		Name:    name,
		Version: v,
		types:   make(map[string]Type, len(Builtins)),
	}
	for _, b := range Builtins {
		m.types[b.String()] = b
	}
	return m, nil
}

// String returns name@version.
func (m *Module) String() string {
	return fmt.Sprintf("%s@%s", m.Name, m.Version)
}

// Define interns t under name.
func (m *Module) Define(name string, t Type) error {
	if _, exists := m.types[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateType, name)
	}
	m.types[name] = t
	return nil
}

// Lookup returns the interned type registered under name.
func (m *Module) Lookup(name string) (Type, bool) {
	t, ok := m.types[name]
	return t, ok
}

// TypeMap returns a snapshot of the name→type table. The map is a copy;
// the types in it are the interned instances.
func (m *Module) TypeMap() map[string]Type {
	out := make(map[string]Type, len(m.types))
	for k, v := range m.types {
		out[k] = v
	}
	return out
}

// Names returns the registered type names in sorted order.
func (m *Module) Names() []string {
	names := make([]string, 0, len(m.types))
	for k := range m.types {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Compatible reports whether the module version satisfies constraint,
// e.g. ">=0.2.0, <1.0.0".
func (m *Module) Compatible(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid constraint %q: %w", constraint, err)
	}
	return c.Check(m.Version), nil
}
