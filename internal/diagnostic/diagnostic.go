// Diagnostic rendering for seam compile errors.
// Turns a CompileError into a header line, the offending source line and a
// caret underline, plus notes for internal compiler errors.

package diagnostic

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	cerrors "github.com/seam-lang/seam/internal/errors"
	"github.com/seam-lang/seam/internal/position"
)

// DiagnosticLevel represents the severity level of a diagnostic message.
type DiagnosticLevel int

const (
	DiagnosticError DiagnosticLevel = iota
	DiagnosticInternal
)

func (dl DiagnosticLevel) String() string {
	switch dl {
	case DiagnosticError:
		return "error"
	case DiagnosticInternal:
		return "internal compiler error"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	Code    string
	Message string
	Label   string // "syntax error", "semantic error", ...
	Notes   []string
	Span    position.Span
	Level   DiagnosticLevel
	Located bool
}

// FromError converts err into a diagnostic. Errors that are not compile
// errors (I/O failures and the like) produce an unlocated diagnostic.
func FromError(err error) *Diagnostic {
	ce, ok := cerrors.As(err)
	if !ok {
		return &Diagnostic{Message: err.Error(), Label: "error", Level: DiagnosticError}
	}

	d := &Diagnostic{
		Code:    ce.Code,
		Message: ce.Message,
		Label:   string(ce.Category) + " error",
		Span:    ce.Span,
		Level:   DiagnosticError,
		Located: true,
	}
	if ce.Category == cerrors.CategoryInternal {
		d.Label = DiagnosticInternal.String()
		d.Level = DiagnosticInternal
		d.Notes = append(d.Notes, "this is a compiler bug, please report it")
		if ce.Caller != "" {
			d.Notes = append(d.Notes, "raised in "+ce.Caller)
		}
	}
	return d
}

// Renderer writes diagnostics, optionally with ANSI colors.
type Renderer struct {
	Color bool
}

func (r Renderer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Render writes err to w. When src holds the file the error points into,
// the offending line is shown with the error span underlined.
func (r Renderer) Render(w io.Writer, err error, src *position.SourceFile) error {
	d := FromError(err)

	labelColor := r.paint(color.FgRed, color.Bold)
	if d.Level == DiagnosticInternal {
		labelColor = r.paint(color.FgMagenta, color.Bold)
	}
	gutter := r.paint(color.FgBlue, color.Bold)

	var b strings.Builder
	if d.Located {
		b.WriteString(r.paint(color.Bold).Sprint(d.Span.Start.String()))
		b.WriteString(": ")
		b.WriteString(labelColor.Sprintf("%s[%s]", d.Label, d.Code))
	} else {
		b.WriteString(labelColor.Sprint(d.Label))
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	b.WriteByte('\n')

	width := 0
	if d.Located && d.Span.IsValid() && src != nil && src.Filename == d.Span.Start.Filename {
		if line, carets := src.Underline(d.Span); carets != "" {
			num := strconv.Itoa(d.Span.Start.Line)
			width = len(num)
			fmt.Fprintf(&b, "%s %s\n", gutter.Sprintf("%s |", num), line)
			fmt.Fprintf(&b, "%s %s\n", gutter.Sprintf("%*s |", width, ""), labelColor.Sprint(carets))
		}
	}

	for _, note := range d.Notes {
		fmt.Fprintf(&b, "%s note: %s\n", gutter.Sprintf("%*s =", width, ""), note)
	}

	_, werr := io.WriteString(w, b.String())
	return werr
}

// Format renders err without colors.
func Format(err error, src *position.SourceFile) string {
	var b strings.Builder
	_ = Renderer{}.Render(&b, err, src)
	return b.String()
}
