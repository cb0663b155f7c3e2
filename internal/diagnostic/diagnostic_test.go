package diagnostic

import (
	"bytes"
	"errors"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/seam-lang/seam/internal/cli"
	cerrors "github.com/seam-lang/seam/internal/errors"
	"github.com/seam-lang/seam/internal/parser"
	"github.com/seam-lang/seam/internal/position"
	"github.com/seam-lang/seam/internal/types"
)

func span(line, col, width int) position.Span {
	return position.Span{
		Start: position.Position{Filename: "test.seam", Line: line, Column: col, Offset: col - 1},
		End:   position.Position{Filename: "test.seam", Line: line, Column: col + width, Offset: col - 1 + width},
	}
}

func TestRenderSemanticError(t *testing.T) {
	src := position.NewSourceFile("test.seam", "fn f(p: Point) {}\n")
	err := cerrors.Semantic(span(1, 9, 5), cerrors.CodeUndefinedType, "undefined type %q", "Point")

	be.Equal(t, Format(err, src), `test.seam:1:9: semantic error[E0102]: undefined type "Point"
1 | fn f(p: Point) {}
  |         ^^^^^
`)
}

func TestRenderParserError(t *testing.T) {
	const input = "fn f(a: i32 {}"
	m, err := types.NewModule("test", "")
	be.Err(t, err, nil)
	_, err = parser.New(m, "test.seam", input).Parse()
	be.True(t, err != nil)

	got := Format(err, position.NewSourceFile("test.seam", input))
	be.Equal(t, got, "test.seam:1:13: syntax error[E0001]: expected ')', got '{'\n"+
		"1 | fn f(a: i32 {}\n"+
		"  |             ^\n")
}

func TestRenderInternalErrorAddsNotes(t *testing.T) {
	err := cerrors.Internal(span(12, 3, 2), cerrors.CodeUnresolvedType, "cannot resolve type %q", "xs")
	src := position.NewSourceFile("test.seam", strings.Repeat("\n", 11)+"  xs\n")

	got := Format(err, src)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	be.Equal(t, len(lines), 5)
	be.Equal(t, lines[0], `test.seam:12:3: internal compiler error[ICE0001]: cannot resolve type "xs"`)
	be.Equal(t, lines[1], "12 |   xs")
	be.Equal(t, lines[2], "   |   ^^")
	be.Equal(t, lines[3], "   = note: this is a compiler bug, please report it")
	be.True(t, strings.HasPrefix(lines[4], "   = note: raised in "))
	be.True(t, strings.Contains(lines[4], "TestRenderInternalErrorAddsNotes"))
}

func TestRenderWithoutSource(t *testing.T) {
	err := cerrors.Syntax(span(1, 1, 1), cerrors.CodeInvalidToken, "unterminated string literal")
	be.Equal(t, Format(err, nil), "test.seam:1:1: syntax error[E0003]: unterminated string literal\n")

	other := position.NewSourceFile("other.seam", "x")
	be.Equal(t, Format(err, other), "test.seam:1:1: syntax error[E0003]: unterminated string literal\n")
}

func TestRenderPlainError(t *testing.T) {
	be.Equal(t, Format(errors.New("open main.seam: no such file"), nil), "error: open main.seam: no such file\n")
}

func TestRenderColor(t *testing.T) {
	src := position.NewSourceFile("test.seam", "fn f(p: Point) {}")
	err := cerrors.Semantic(span(1, 9, 5), cerrors.CodeUndefinedType, "undefined type %q", "Point")

	var buf bytes.Buffer
	be.Err(t, Renderer{Color: true}.Render(&buf, err, src), nil)
	out := buf.String()
	be.True(t, strings.Contains(out, "\x1b["))
	be.True(t, strings.Contains(out, "undefined type \"Point\""))

	buf.Reset()
	be.Err(t, Renderer{Color: false}.Render(&buf, err, src), nil)
	be.True(t, !strings.Contains(buf.String(), "\x1b["))
}

func TestFromError(t *testing.T) {
	d := FromError(cerrors.Internal(span(1, 1, 1), cerrors.CodeUnresolvedType, "boom"))
	be.Equal(t, d.Level, DiagnosticInternal)
	be.Equal(t, d.Label, "internal compiler error")
	be.True(t, d.Located)

	d = FromError(cerrors.Syntax(span(1, 1, 1), cerrors.CodeUnexpectedToken, "boom"))
	be.Equal(t, d.Level, DiagnosticError)
	be.Equal(t, d.Label, "syntax error")
	be.Equal(t, len(d.Notes), 0)

	d = FromError(errors.New("boom"))
	be.True(t, !d.Located)
}

func TestUseColor(t *testing.T) {
	r, w, err := os.Pipe()
	be.Err(t, err, nil)
	defer r.Close()
	defer w.Close()

	be.True(t, UseColor(cli.ColorAlways, w))
	be.True(t, !UseColor(cli.ColorNever, w))
	be.True(t, !UseColor(cli.ColorAuto, w))
	be.True(t, !UseColor(cli.ColorAuto, nil))

	t.Setenv("NO_COLOR", "1")
	be.True(t, UseColor(cli.ColorAlways, w))
}

func TestRenderSkipsSnippetForInvalidSpan(t *testing.T) {
	src := position.NewSourceFile("test.seam", "fn f() {}")
	bad := position.Span{Start: position.Position{Filename: "test.seam"}, End: position.Position{Filename: "test.seam"}}
	err := cerrors.Syntax(bad, cerrors.CodeUnexpectedToken, "boom")

	be.Equal(t, Format(err, src), "test.seam:0:0: syntax error[E0001]: boom\n")
}

func TestSourcesAreGofmted(t *testing.T) {
	files, err := filepath.Glob("*.go")
	be.Err(t, err, nil)
	for _, name := range files {
		src, err := os.ReadFile(name)
		be.Err(t, err, nil)
		formatted, err := format.Source(src)
		be.Err(t, err, nil)
		be.Equal(t, string(formatted), string(src))
	}
}
