// Package testcase extracts golden compiler test cases from Markdown.
//
// A test case starts at a heading "Test: NAME" and holds exactly one input
// fence (seam or seam-expr) followed by one or more assertion fences:
//
//	## Test: precedence
//	```seam-expr
//	a + b * c
//	```
//	```ast
//	(binary "+" ...)
//	```
package testcase

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// InputType represents the type of input code fence in a test case
type InputType string

const (
	InputTypeProgram InputType = "seam"
	InputTypeExpr    InputType = "seam-expr"
)

// AssertionType represents the type of assertion code fence in a test case
type AssertionType string

const (
	// AssertionTypeAST compares ast.Dump of the parsed tree.
	AssertionTypeAST AssertionType = "ast"
	// AssertionTypeResolved compares ast.Dump after type resolution.
	AssertionTypeResolved AssertionType = "resolved"
	// AssertionTypeError compares the rendered compile error.
	AssertionTypeError AssertionType = "error"
)

// Assertion represents a single assertion fence
type Assertion struct {
	Type    AssertionType
	Content string
	Line    int
}

// TestCase represents a complete test case extracted from Markdown
type TestCase struct {
	Name       string
	Input      string
	InputType  InputType
	Assertions []Assertion
}

// Load reads and extracts the test cases of one Markdown file.
func Load(path string) ([]TestCase, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cases, err := ExtractTestCases(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// ExtractTestCases parses a Markdown document and extracts all test cases
func ExtractTestCases(markdownContent string) ([]TestCase, error) {
	source := []byte(markdownContent)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var testCases []TestCase
	var current *TestCase

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			heading := extractTextFromNode(n, source)
			if !strings.HasPrefix(heading, "Test: ") {
				return ast.WalkContinue, nil
			}
			if current != nil {
				if err := validateTestCase(current); err != nil {
					return ast.WalkStop, err
				}
				testCases = append(testCases, *current)
			}
			current = &TestCase{Name: strings.TrimPrefix(heading, "Test: ")}

		case *ast.FencedCodeBlock:
			language := string(n.Language(source))
			content := strings.TrimRight(extractCodeBlockContent(n, source), "\n")
			line := getLineNumber(n, source)

			if current == nil {
				// plain code blocks are prose
				if language == "" {
					return ast.WalkContinue, nil
				}
				return ast.WalkStop, fmt.Errorf("line %d: %s fence found outside of test case", line, language)
			}

			switch {
			case isInputFence(language):
				if current.Input != "" {
					return ast.WalkStop, fmt.Errorf("line %d: multiple input fences found in test '%s'", line, current.Name)
				}
				current.Input = content
				current.InputType = InputType(language)
			case isAssertionFence(language):
				current.Assertions = append(current.Assertions, Assertion{
					Type:    AssertionType(language),
					Content: content,
					Line:    line,
				})
			default:
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence language '%s' in test '%s'", line, language, current.Name)
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking markdown AST: %w", err)
	}

	if current != nil {
		if err := validateTestCase(current); err != nil {
			return nil, err
		}
		testCases = append(testCases, *current)
	}
	return testCases, nil
}

func extractTextFromNode(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func extractCodeBlockContent(block *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}

func isInputFence(language string) bool {
	return language == string(InputTypeProgram) || language == string(InputTypeExpr)
}

func isAssertionFence(language string) bool {
	switch AssertionType(language) {
	case AssertionTypeAST, AssertionTypeResolved, AssertionTypeError:
		return true
	}
	return false
}

func validateTestCase(tc *TestCase) error {
	if tc.Input == "" {
		return fmt.Errorf("test '%s' has no input fence", tc.Name)
	}
	if len(tc.Assertions) == 0 {
		return fmt.Errorf("test '%s' has no assertion fences", tc.Name)
	}
	return nil
}

// getLineNumber returns the 1-based line of the node's first content line.
func getLineNumber(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}
	start := node.Lines().At(0).Start
	return bytes.Count(source[:min(start, len(source))], []byte("\n")) + 1
}
