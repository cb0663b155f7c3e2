// Package errors provides standardized compile errors for seam.
//
// Syntax and semantic errors describe problems in the user's program.
// Internal errors describe defects in the compiler itself (an earlier pass let
// something through that a later pass cannot handle) and are always rendered
// as "internal compiler error" so they are never mistaken for user errors.
package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"

	"github.com/seam-lang/seam/internal/position"
)

// ErrorCategory represents different categories of errors
type ErrorCategory string

const (
	CategorySyntax   ErrorCategory = "syntax"
	CategorySemantic ErrorCategory = "semantic"
	CategoryInternal ErrorCategory = "internal"
)

// Error codes.
const (
	CodeUnexpectedToken   = "E0001"
	CodeRestrictedContext = "E0002"
	CodeInvalidToken      = "E0003"
	CodeInvalidExpression = "E0004"
	CodeUnclosedBlock     = "E0005"

	CodeDuplicateType = "E0101"
	CodeUndefinedType = "E0102"
	CodeAliasCycle    = "E0103"

	CodeUnresolvedType = "ICE0001"
)

// CompileError provides a consistent error format for every compiler stage.
type CompileError struct {
	Category ErrorCategory
	Code     string
	Span     position.Span
	Message  string
	Caller   string // Go function that raised an internal error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	loc := e.Span.Start.String()
	if e.Category == CategoryInternal {
		return fmt.Sprintf("%s: internal compiler error[%s]: %s", loc, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s error[%s]: %s", loc, e.Category, e.Code, e.Message)
}

// Syntax creates a syntax error raised by the parser.
func Syntax(span position.Span, code, format string, args ...interface{}) *CompileError {
	return &CompileError{
		Category: CategorySyntax,
		Code:     code,
		Span:     span,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Semantic creates an error raised by a name-binding or declaration pass.
func Semantic(span position.Span, code, format string, args ...interface{}) *CompileError {
	return &CompileError{
		Category: CategorySemantic,
		Code:     code,
		Span:     span,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Internal creates an internal compiler error and records the calling
// function so the report can point at the pass that failed.
func Internal(span position.Span, code, format string, args ...interface{}) *CompileError {
	pc, _, _, ok := runtime.Caller(1)
	caller := "unknown"
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}

	return &CompileError{
		Category: CategoryInternal,
		Code:     code,
		Span:     span,
		Message:  fmt.Sprintf(format, args...),
		Caller:   caller,
	}
}

// As returns the CompileError wrapped in err, if any.
func As(err error) (*CompileError, bool) {
	var ce *CompileError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// CategoryOf returns the category of err, or "" when err is not a CompileError.
func CategoryOf(err error) ErrorCategory {
	if ce, ok := As(err); ok {
		return ce.Category
	}
	return ""
}

// IsInternal reports whether err is an internal compiler error.
func IsInternal(err error) bool {
	return CategoryOf(err) == CategoryInternal
}
