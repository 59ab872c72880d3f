package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"v2sc/internal/ast"
)

func TestErrorReporter(t *testing.T) {
	source := `(Source description=(Description definitions=[
  (ModuleDef name="top" items=[
    (TaskCall name=(Identifier name="t"))
  ])
]))`

	reporter := NewErrorReporter("top.vast", source)

	node := &ast.TaskCall{Pos: ast.Position{Filename: "top.vast", Line: 3, Column: 5}, Lineno: 12}
	err := NewRenderError(UnsupportedNodeKind, node, "no default rendering")
	formatted := reporter.Format(err)

	assert.Contains(t, formatted, "error["+ErrorUnsupportedNodeKind+"]")
	assert.Contains(t, formatted, "unsupported node kind TaskCall")
	assert.Contains(t, formatted, "top.vast:3:5")
	assert.Contains(t, formatted, "(TaskCall name=")
	assert.Contains(t, formatted, "HDL source line 12")
}

func TestErrorReporterWithoutLocation(t *testing.T) {
	reporter := NewErrorReporter("top.vast", "")
	formatted := reporter.Format(fmt.Errorf("boom"))

	assert.Contains(t, formatted, "error")
	assert.Contains(t, formatted, "boom")
	assert.NotContains(t, formatted, "-->")
}

func TestRenderErrorIs(t *testing.T) {
	node := &ast.Identifier{Name: "x", Lineno: 9}
	err := fmt.Errorf("rendering module: %w", NewRenderError(NonConstantWidthExpression, node, "identifier %s is not a constant", "x"))

	assert.True(t, stderrors.Is(err, NonConstantWidthExpression))
	assert.False(t, stderrors.Is(err, UnsupportedNodeKind))

	var re *RenderError
	require.True(t, stderrors.As(err, &re))
	assert.Equal(t, "Identifier", re.NodeType)
	assert.Equal(t, 9, re.Line)
	assert.Equal(t, "line 9: non-constant width expression Identifier: identifier x is not a constant", re.Error())
}

func TestRenderErrorWrap(t *testing.T) {
	cause := fmt.Errorf("template: boom")
	err := NewRenderError(TemplateExecution, nil, "").Wrap(cause)

	assert.Equal(t, "template execution failed: template: boom", err.Error())
	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.Equal(t, ErrorTemplateExecution, err.CompilerError().Code)
}

func TestUnknownNodeKind(t *testing.T) {
	err := UnknownNodeKind("ModuleDeff", ast.Position{Line: 1, Column: 2}, []string{"ModuleDef", "Decl", "Wire"})

	assert.Equal(t, ErrorUnknownNodeKind, err.Code)
	require.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0], "did you mean 'ModuleDef'")
	assert.Equal(t, "1:2: unknown node kind 'ModuleDeff'", err.Error())
}

func TestUnknownAttributeListsAvailable(t *testing.T) {
	err := UnknownAttribute("Sens", "edge", ast.Position{}, []string{"sig", "type"})

	assert.Equal(t, ErrorInvalidAttribute, err.Code)
	require.Len(t, err.Suggestions, 1)
	assert.Equal(t, "available attributes: sig, type", err.Suggestions[0])
}

func TestGetErrorDescription(t *testing.T) {
	codes := []string{
		ErrorUnsupportedNodeKind, ErrorNonConstantWidth, ErrorNegativeWidth,
		ErrorMissingTemplateAsset, ErrorTemplateExecution, ErrorNestingTooDeep,
		ErrorTreeSyntax, ErrorUnknownNodeKind, ErrorInvalidAttribute,
		ErrorIncludeNotFound, ErrorIncludeCycle, ErrorUndefinedMacro,
		ErrorInvalidConfig, ErrorFileNotFound,
	}
	for _, code := range codes {
		assert.NotEqual(t, "Unknown error", GetErrorDescription(code), code)
	}
	assert.Equal(t, "Unknown error", GetErrorDescription("E9999"))
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("wire", "wire"))
	assert.Equal(t, 1, levenshteinDistance("wire", "wires"))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
	assert.Equal(t, 4, levenshteinDistance("", "abcd"))
}
