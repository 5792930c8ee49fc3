package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/parser"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

const goSample = `package sample

import (
	"fmt"
	"strings"
)

// Greeter holds a template.
type Greeter struct {
	template string
}

// Renderer renders something.
type Renderer interface {
	Render() string
}

var defaultTemplate = "hi %s"

// Greet formats a greeting for name.
func (g *Greeter) Greet(name string) string {
	if name == "" || g.template == "" {
		return ""
	}
	return fmt.Sprintf(g.template, strings.TrimSpace(name))
}

func pick(values []string, allow bool) string {
	for _, v := range values {
		switch v {
		case "a":
			return v
		case "b":
			return v
		default:
			continue
		}
	}
	if allow {
		return "fallback"
	}
	return ""
}
`

func parseGo(t *testing.T) *domain.Outcome {
	t.Helper()
	out := parser.NewGoParser().Parse([]byte(goSample), "sample.go")
	require.Empty(t, out.ParseErrors)
	return out
}

func TestGoParser_ExtractsTypesAsClasses(t *testing.T) {
	out := parseGo(t)

	classes := out.Classes()
	require.Len(t, classes, 2)
	assert.Equal(t, "Greeter", classes[0].Name)
	assert.Equal(t, "struct", classes[0].Metadata["kind"])
	assert.Equal(t, "Greeter holds a template.", classes[0].Docstring)
	assert.Equal(t, "Renderer", classes[1].Name)
	assert.Equal(t, "interface", classes[1].Metadata["kind"])
}

func TestGoParser_MethodsCarryReceiver(t *testing.T) {
	out := parseGo(t)

	methods := out.Methods()
	require.Len(t, methods, 1)
	m := methods[0]
	assert.Equal(t, "Greet", m.Name)
	assert.Equal(t, "*Greeter", m.Metadata["receiver"])
	assert.Equal(t, []string{"name"}, m.Params)
	// 1 base + if + ||
	assert.Equal(t, 3, m.Complexity)
	assert.Equal(t, "Greet formats a greeting for name.", m.Docstring)
}

func TestGoParser_FunctionComplexityCountsBranches(t *testing.T) {
	out := parseGo(t)

	functions := out.Functions()
	require.Len(t, functions, 1)
	fn := functions[0]
	assert.Equal(t, "pick", fn.Name)
	assert.Equal(t, []string{"values", "allow"}, fn.Params)
	// 1 base + for + 2 non-default cases + if; default clause not counted
	assert.Equal(t, 5, fn.Complexity)
}

func TestGoParser_TopLevelVarsAndImports(t *testing.T) {
	out := parseGo(t)

	assert.Equal(t, []string{"fmt", "strings"}, out.Imports)

	vars := out.NodesOfKind(domain.KindVariable)
	require.Len(t, vars, 1)
	assert.Equal(t, "defaultTemplate", vars[0].Name)
	assert.Equal(t, "var", vars[0].Metadata["declaration"])
}

func TestGoParser_LineAccounting(t *testing.T) {
	src := "package p\n\n// a comment\nfunc f() {}\n"
	out := parser.NewGoParser().Parse([]byte(src), "p.go")

	assert.Equal(t, 5, out.TotalLines)
	assert.Equal(t, 2, out.CodeLines)
	assert.Equal(t, 1, out.CommentLines)
	assert.Equal(t, 2, out.BlankLines)
}

func TestGoParser_SyntaxErrorReported(t *testing.T) {
	out := parser.NewGoParser().Parse([]byte("package p\nfunc broken( {\n"), "broken.go")

	require.NotEmpty(t, out.ParseErrors)
	assert.Contains(t, out.ParseErrors[0], "syntax error")
}

func TestGoParser_MissingFile(t *testing.T) {
	out := parser.NewGoParser().ParseFile("testdata/does-not-exist.go")

	require.NotEmpty(t, out.ParseErrors)
	assert.Contains(t, out.ParseErrors[0], "reading file")
}
