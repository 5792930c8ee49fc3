package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/parser"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

const pySample = `import os
from pathlib import Path

def combine(a, b=2):
    """Join two values."""
    if a and b:
        return a + b
    return [x for x in range(a)]

class Greeter(Base):
    """Says hello."""

    @property
    def name(self):
        return self._name
`

func parsePython(t *testing.T) *domain.Outcome {
	t.Helper()
	out := parser.NewPythonParser().Parse([]byte(pySample), "sample.py")
	require.Empty(t, out.ParseErrors)
	return out
}

func TestPythonParser_FunctionExtraction(t *testing.T) {
	out := parsePython(t)

	functions := out.Functions()
	require.Len(t, functions, 1)
	fn := functions[0]
	assert.Equal(t, "combine", fn.Name)
	assert.Equal(t, 4, fn.StartLine)
	assert.Equal(t, 8, fn.EndLine)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	assert.Equal(t, "Join two values.", fn.Docstring)
	assert.Equal(t, false, fn.Metadata["is_async"])
	// 1 base + if + and + list comprehension
	assert.Equal(t, 4, fn.Complexity)
}

func TestPythonParser_ClassWithBasesAndDocstring(t *testing.T) {
	out := parsePython(t)

	classes := out.Classes()
	require.Len(t, classes, 1)
	cls := classes[0]
	assert.Equal(t, "Greeter", cls.Name)
	assert.Equal(t, 10, cls.StartLine)
	assert.Equal(t, 15, cls.EndLine)
	assert.Equal(t, []string{"Base"}, cls.Metadata["bases"])
	assert.Equal(t, "Says hello.", cls.Docstring)
}

func TestPythonParser_DecoratedMethodScopedToClass(t *testing.T) {
	out := parsePython(t)

	methods := out.Methods()
	require.Len(t, methods, 1)
	m := methods[0]
	assert.Equal(t, "name", m.Name)
	assert.Equal(t, "Greeter", m.Metadata["class"])
	assert.Equal(t, []string{"property"}, m.Decorators)
	assert.Equal(t, []string{"self"}, m.Params)
	assert.Equal(t, 14, m.StartLine)
}

func TestPythonParser_ImportsDottedForm(t *testing.T) {
	out := parsePython(t)

	assert.Equal(t, []string{"os", "pathlib.Path"}, out.Imports)
}

func TestPythonParser_FromImportVariants(t *testing.T) {
	src := "from a.b import c, d\nfrom . import helpers\nfrom os.path import *\n"
	out := parser.NewPythonParser().Parse([]byte(src), "imports.py")

	assert.Equal(t, []string{"a.b.c", "a.b.d", "helpers", "os.path.*"}, out.Imports)
}

func TestPythonParser_AsyncFunctionFlagged(t *testing.T) {
	src := "async def fetch(url):\n    return url\n"
	out := parser.NewPythonParser().Parse([]byte(src), "fetch.py")

	functions := out.Functions()
	require.Len(t, functions, 1)
	assert.Equal(t, true, functions[0].Metadata["is_async"])
}

func TestPythonParser_KeywordOnlyParamsExcluded(t *testing.T) {
	src := "def configure(host, port, *args, timeout=5):\n    return host\n"
	out := parser.NewPythonParser().Parse([]byte(src), "cfg.py")

	functions := out.Functions()
	require.Len(t, functions, 1)
	assert.Equal(t, []string{"host", "port"}, functions[0].Params)
}

func TestPythonParser_LineAccounting(t *testing.T) {
	out := parsePython(t)

	assert.Equal(t, 16, out.TotalLines)
	assert.Equal(t, 12, out.CodeLines)
	assert.Equal(t, 0, out.CommentLines)
	assert.Equal(t, 4, out.BlankLines)
}

func TestPythonParser_SyntaxErrorDetected(t *testing.T) {
	out := parser.NewPythonParser().Parse([]byte("def broken(:\n"), "broken.py")

	require.NotEmpty(t, out.ParseErrors)
	assert.Contains(t, out.ParseErrors[0], "syntax error")
}
