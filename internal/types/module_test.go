package types

import (
	"errors"
	"testing"

	"github.com/nalgeon/be"
)

func TestNewModuleRegistersBuiltins(t *testing.T) {
	m, err := NewModule("main", "1.2.3")
	be.Err(t, err, nil)
	be.Equal(t, m.String(), "main@1.2.3")

	for _, b := range Builtins {
		got, ok := m.Lookup(b.String())
		be.True(t, ok)
		be.True(t, got == Type(b))
	}
}

func TestNewModuleVersion(t *testing.T) {
	m, err := NewModule("main", "")
	be.Err(t, err, nil)
	be.Equal(t, m.Version.String(), "0.0.0")

	_, err = NewModule("main", "not-a-version")
	be.Err(t, err, "invalid version")
}

func TestDefineAndLookup(t *testing.T) {
	m, _ := NewModule("main", "")

	vec := &Class{Name: "Vec"}
	be.Err(t, m.Define("Vec", vec), nil)

	got, ok := m.Lookup("Vec")
	be.True(t, ok)
	be.True(t, got == Type(vec))

	err := m.Define("Vec", &Class{Name: "Vec"})
	be.True(t, errors.Is(err, ErrDuplicateType))

	err = m.Define("i32", &Class{Name: "i32"})
	be.True(t, errors.Is(err, ErrDuplicateType))

	_, ok = m.Lookup("Missing")
	be.True(t, !ok)
}

func TestTypeMapIsSnapshot(t *testing.T) {
	m, _ := NewModule("main", "")
	tm := m.TypeMap()
	tm["Extra"] = Bool

	_, ok := m.Lookup("Extra")
	be.True(t, !ok)
	be.True(t, tm["i64"] == Type(I64))
}

func TestCompatible(t *testing.T) {
	m, _ := NewModule("main", "0.3.1")

	ok, err := m.Compatible(">=0.2.0, <1.0.0")
	be.Err(t, err, nil)
	be.True(t, ok)

	ok, err = m.Compatible("^1.0.0")
	be.Err(t, err, nil)
	be.True(t, !ok)

	_, err = m.Compatible("?!")
	be.Err(t, err, "invalid constraint")
}

func TestUnderlying(t *testing.T) {
	meters := &Alias{Name: "Meters", Target: F64}
	distance := &Alias{Name: "Distance", Target: meters}

	be.True(t, Underlying(distance) == Type(F64))
	be.True(t, Underlying(I32) == Type(I32))
	be.True(t, Underlying(&Alias{Name: "Unbound"}) == nil)

	loop := &Alias{Name: "A"}
	loop.Target = loop
	be.True(t, Underlying(loop) == nil)
}

func TestKindString(t *testing.T) {
	be.Equal(t, TypeKindInt32.String(), "int32")
	be.Equal(t, TypeKind(99).String(), "TypeKind(99)")
	be.True(t, TypeKindFloat32.IsNumeric())
	be.True(t, !TypeKindString.IsNumeric())
}
