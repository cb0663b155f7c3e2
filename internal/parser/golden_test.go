package parser

import (
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"

	"github.com/seam-lang/seam/internal/ast"
	"github.com/seam-lang/seam/internal/testcase"
)

func TestGoldenCases(t *testing.T) {
	files, err := filepath.Glob("testdata/*.md")
	be.Err(t, err, nil)
	be.True(t, len(files) > 0)

	for _, file := range files {
		cases, err := testcase.Load(file)
		be.Err(t, err, nil)

		for _, tc := range cases {
			t.Run(filepath.Base(file)+"/"+tc.Name, func(t *testing.T) {
				node, err := parseCase(t, tc)
				for _, a := range tc.Assertions {
					switch a.Type {
					case testcase.AssertionTypeAST:
						be.Err(t, err, nil)
						be.Equal(t, ast.Dump(node), a.Content)
					case testcase.AssertionTypeError:
						be.True(t, err != nil)
						be.Equal(t, err.Error(), a.Content)
					}
				}
			})
		}
	}
}

func parseCase(t *testing.T, tc testcase.TestCase) (ast.Node, error) {
	p := New(newTestModule(t), "test.seam", tc.Input)
	if tc.InputType == testcase.InputTypeExpr {
		return p.ParseExpression()
	}
	root, err := p.Parse()
	if err != nil {
		return nil, err
	}
	return root, nil
}
