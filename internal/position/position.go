// Package position provides source position tracking for the seam compiler.
// Spans are the only carrier of diagnostic location: every AST node and every
// compile error holds one.
package position

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Position represents a single point in source code
type Position struct {
	Filename string // Source file name
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Offset   int    // 0-based byte offset in source
}

// IsValid returns true if the position is valid
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0 && p.Offset >= 0
}

// String returns a string representation of the position
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", filepath.Base(p.Filename), p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span represents a range of source code between two positions
type Span struct {
	Start Position // Starting position (inclusive)
	End   Position // Ending position (exclusive)
}

// Between returns the span starting at start and ending at end.
func Between(start, end Span) Span {
	return Span{Start: start.Start, End: end.End}
}

// IsValid returns true if the span is valid
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() &&
		s.Start.Filename == s.End.Filename &&
		s.Start.Offset <= s.End.Offset
}

// String returns a string representation of the span
func (s Span) String() string {
	if s.Start.Filename != "" {
		filename := filepath.Base(s.Start.Filename)
		if s.Start.Line == s.End.Line {
			return fmt.Sprintf("%s:%d:%d-%d", filename, s.Start.Line, s.Start.Column, s.End.Column)
		}
		return fmt.Sprintf("%s:%d:%d-%d:%d", filename, s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
	}

	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%d:%d-%d", s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

// SourceFile represents a source file with content and position tracking
type SourceFile struct {
	Filename string   // File path
	Content  string   // Source code content
	Lines    []string // Lines of source code for efficient access
}

// NewSourceFile creates a new source file from content
func NewSourceFile(filename, content string) *SourceFile {
	return &SourceFile{
		Filename: filename,
		Content:  content,
		Lines:    strings.Split(content, "\n"),
	}
}

// GetLine returns the specified line (1-based) or empty string if invalid
func (sf *SourceFile) GetLine(lineNum int) string {
	if lineNum < 1 || lineNum > len(sf.Lines) {
		return ""
	}
	return strings.TrimSuffix(sf.Lines[lineNum-1], "\r")
}

// Underline renders the first line of span followed by a caret line marking
// the covered columns. Spans reaching past the end of the line are clipped to
// it; empty spans get a single caret.
func (sf *SourceFile) Underline(span Span) (line, carets string) {
	line = sf.GetLine(span.Start.Line)
	if line == "" && span.Start.Line > len(sf.Lines) {
		return "", ""
	}

	startCol := span.Start.Column
	endCol := span.End.Column
	if span.End.Line != span.Start.Line {
		endCol = len(line) + 1
	}
	if endCol <= startCol {
		endCol = startCol + 1
	}

	var b strings.Builder
	for i := 1; i < startCol; i++ {
		if i <= len(line) && line[i-1] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteString(strings.Repeat("^", endCol-startCol))

	return line, b.String()
}
