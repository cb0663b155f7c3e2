package ast

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"github.com/seam-lang/seam/internal/position"
	"github.com/seam-lang/seam/internal/types"
)

// TypeValue is the content of a TypeWrapper slot: either an *UnresolvedType
// produced by the parser or an interned types.Type installed by resolution.
type TypeValue interface {
	String() string
}

// UnresolvedType is a type reference that has only been named.
type UnresolvedType struct {
	Name string
}

func (u *UnresolvedType) String() string { return u.Name }

var autoType = &UnresolvedType{Name: types.Auto.String()}

// AutoType returns the shared placeholder for an omitted variable or
// function return type. A later inference pass decides what it stands for.
// The placeholder is read-only.
func AutoType() *UnresolvedType { return autoType }

// TypeWrapper is a node owning a replaceable type slot.
type TypeWrapper struct {
	Span  position.Span
	Value TypeValue
}

// NewTypeWrapper wraps an unresolved reference to name.
func NewTypeWrapper(span position.Span, name string) *TypeWrapper {
	return &TypeWrapper{Span: span, Value: &UnresolvedType{Name: name}}
}

func (w *TypeWrapper) GetSpan() position.Span { return w.Span }
func (w *TypeWrapper) Accept(v Visitor) error {
	_, err := visitTypeWrapper(v, w)
	return err
}

// Unresolved returns the slot's unresolved reference, if it still holds one.
func (w *TypeWrapper) Unresolved() (*UnresolvedType, bool) {
	u, ok := w.Value.(*UnresolvedType)
	return u, ok
}

// Resolved returns the interned type in the slot, if resolution has run.
func (w *TypeWrapper) Resolved() (types.Type, bool) {
	t, ok := w.Value.(types.Type)
	return t, ok
}

// IsAuto reports whether the slot names the auto type, resolved or not.
func (w *TypeWrapper) IsAuto() bool {
	if u, ok := w.Unresolved(); ok {
		return u.Name == types.Auto.String()
	}
	t, ok := w.Resolved()
	return ok && t.Kind() == types.TypeKindAuto
}

// NumberValue is the content of a NumberWrapper slot.
type NumberValue interface {
	String() string
}

// UnresolvedNumber is a numeric literal kept as its source text.
type UnresolvedNumber struct {
	Raw string
}

func (n *UnresolvedNumber) String() string { return n.Raw }

// IsFloat reports whether the literal has a fractional part.
func (n *UnresolvedNumber) IsFloat() bool {
	return strings.ContainsRune(n.Raw, '.')
}

// Int64 parses an integral literal, failing when it does not fit.
func (n *UnresolvedNumber) Int64() (int64, error) {
	if n.IsFloat() {
		return 0, fmt.Errorf("number %s is not integral", n.Raw)
	}
	u, err := strconv.ParseUint(n.Raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("number %s: %w", n.Raw, err)
	}
	v, err := safecast.Convert[int64](u)
	if err != nil {
		return 0, fmt.Errorf("number %s overflows int64: %w", n.Raw, err)
	}
	return v, nil
}

// Float64 parses the literal as a float.
func (n *UnresolvedNumber) Float64() (float64, error) {
	return strconv.ParseFloat(n.Raw, 64)
}

// NumberWrapper is an expression node owning a replaceable number slot.
type NumberWrapper struct {
	Span  position.Span
	Value NumberValue
}

// NewNumberWrapper wraps the raw text of a numeric literal.
func NewNumberWrapper(span position.Span, raw string) *NumberWrapper {
	return &NumberWrapper{Span: span, Value: &UnresolvedNumber{Raw: raw}}
}

func (w *NumberWrapper) GetSpan() position.Span { return w.Span }
func (w *NumberWrapper) expressionNode()        {}
func (w *NumberWrapper) Accept(v Visitor) error {
	_, err := visitNumberWrapper(v, w)
	return err
}

// Unresolved returns the slot's raw literal, if it still holds one.
func (w *NumberWrapper) Unresolved() (*UnresolvedNumber, bool) {
	n, ok := w.Value.(*UnresolvedNumber)
	return n, ok
}
