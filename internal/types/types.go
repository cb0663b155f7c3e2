// Package types defines the resolved types of the seam language.
//
// Resolved types are interned: a module holds exactly one instance per name
// and every AST wrapper that names the type points at that instance, so type
// identity is pointer identity.
package types

import "fmt"

// TypeKind represents the kind of a type in the seam type system
type TypeKind int

const (
	TypeKindVoid TypeKind = iota
	TypeKindBool
	TypeKindInt8
	TypeKindInt16
	TypeKindInt32
	TypeKindInt64
	TypeKindUint8
	TypeKindUint16
	TypeKindUint32
	TypeKindUint64
	TypeKindFloat32
	TypeKindFloat64
	TypeKindString

	// TypeKindAuto marks a slot whose type is inferred by a later pass.
	TypeKindAuto

	TypeKindAlias
	TypeKindClass
)

var kindNames = map[TypeKind]string{
	TypeKindVoid:    "void",
	TypeKindBool:    "bool",
	TypeKindInt8:    "int8",
	TypeKindInt16:   "int16",
	TypeKindInt32:   "int32",
	TypeKindInt64:   "int64",
	TypeKindUint8:   "uint8",
	TypeKindUint16:  "uint16",
	TypeKindUint32:  "uint32",
	TypeKindUint64:  "uint64",
	TypeKindFloat32: "float32",
	TypeKindFloat64: "float64",
	TypeKindString:  "string",
	TypeKindAuto:    "auto",
	TypeKindAlias:   "alias",
	TypeKindClass:   "class",
}

// String returns the string representation of a TypeKind
func (tk TypeKind) String() string {
	if name, ok := kindNames[tk]; ok {
		return name
	}
	return fmt.Sprintf("TypeKind(%d)", int(tk))
}

// IsNumeric reports whether values of this kind are numbers.
func (tk TypeKind) IsNumeric() bool {
	return tk >= TypeKindInt8 && tk <= TypeKindFloat64
}

// Type is a resolved type.
type Type interface {
	Kind() TypeKind
	String() string
}

// Basic is a builtin type.
type Basic struct {
	kind TypeKind
	name string
}

func (b *Basic) Kind() TypeKind { return b.kind }
func (b *Basic) String() string { return b.name }

// Builtin singletons, shared by every module.
var (
	Void = &Basic{TypeKindVoid, "void"}
	Bool = &Basic{TypeKindBool, "bool"}
	I8   = &Basic{TypeKindInt8, "i8"}
	I16  = &Basic{TypeKindInt16, "i16"}
	I32  = &Basic{TypeKindInt32, "i32"}
	I64  = &Basic{TypeKindInt64, "i64"}
	U8   = &Basic{TypeKindUint8, "u8"}
	U16  = &Basic{TypeKindUint16, "u16"}
	U32  = &Basic{TypeKindUint32, "u32"}
	U64  = &Basic{TypeKindUint64, "u64"}
	F32  = &Basic{TypeKindFloat32, "f32"}
	F64  = &Basic{TypeKindFloat64, "f64"}
	Str  = &Basic{TypeKindString, "string"}
	Auto = &Basic{TypeKindAuto, "auto"}
)

// Builtins lists the builtin types in registration order.
var Builtins = []*Basic{Void, Bool, I8, I16, I32, I64, U8, U16, U32, U64, F32, F64, Str, Auto}

// Alias is a named alias of another type. Target is bound by the
// declaration pass once every name in the unit is known.
type Alias struct {
	Name   string
	Target Type
}

func (a *Alias) Kind() TypeKind { return TypeKindAlias }
func (a *Alias) String() string { return a.Name }

// Class is a user-defined class type.
type Class struct {
	Name    string
	Methods []string
}

func (c *Class) Kind() TypeKind { return TypeKindClass }
func (c *Class) String() string { return c.Name }

// Underlying follows alias chains to the first non-alias type.
// It returns nil for an unbound alias.
func Underlying(t Type) Type {
	seen := 0
	for {
		a, ok := t.(*Alias)
		if !ok {
			return t
		}
		if a.Target == nil || seen > maxAliasDepth {
			return nil
		}
		t = a.Target
		seen++
	}
}

const maxAliasDepth = 64
