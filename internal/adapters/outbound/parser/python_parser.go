package parser

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// PythonParser implements domain.SourceParser on the tree-sitter Python
// grammar.
type PythonParser struct {
	lang *sitter.Language
}

func NewPythonParser() *PythonParser {
	return &PythonParser{lang: python.GetLanguage()}
}

func (p *PythonParser) Language() string     { return "python" }
func (p *PythonParser) Extensions() []string { return []string{".py"} }

func (p *PythonParser) ParseFile(filePath string) *domain.Outcome {
	src, err := os.ReadFile(filePath)
	if err != nil {
		return &domain.Outcome{
			FilePath:    filePath,
			Language:    p.Language(),
			ParseErrors: []string{fmt.Sprintf("reading file: %v", err)},
		}
	}
	return p.Parse(src, filePath)
}

func (p *PythonParser) Parse(src []byte, filePath string) *domain.Outcome {
	out := &domain.Outcome{FilePath: filePath, Language: p.Language()}
	countLines(src, "#", "", "").apply(out)

	ts := sitter.NewParser()
	ts.SetLanguage(p.lang)
	tree, err := ts.ParseCtx(context.Background(), nil, src)
	if err != nil {
		out.ParseErrors = append(out.ParseErrors, fmt.Sprintf("parse error: %v", err))
		return out
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		out.ParseErrors = append(out.ParseErrors, "syntax error detected")
	}
	p.walk(root, src, "", out)
	return out
}

// walk extracts definitions and imports. The class parameter carries the
// enclosing class name so functions inside a class body become methods.
func (p *PythonParser) walk(node *sitter.Node, src []byte, class string, out *domain.Outcome) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "function_definition":
			out.Nodes = append(out.Nodes, p.functionNode(child, src, class, nil))
			p.walk(child, src, class, out)
		case "class_definition":
			name := p.classNode(child, src, nil, out)
			p.walk(child, src, name, out)
		case "decorated_definition":
			p.decoratedNode(child, src, class, out)
		case "import_statement":
			p.plainImports(child, src, out)
		case "import_from_statement":
			p.fromImports(child, src, out)
		default:
			p.walk(child, src, class, out)
		}
	}
}

func (p *PythonParser) functionNode(node *sitter.Node, src []byte, class string, decorators []string) domain.Node {
	kind := domain.KindFunction
	metadata := map[string]any{
		"is_async": node.Child(0) != nil && node.Child(0).Type() == "async",
	}
	if class != "" {
		kind = domain.KindMethod
		metadata["class"] = class
	}

	return domain.Node{
		Kind:       kind,
		Name:       fieldContent(node, "name", src),
		StartLine:  int(node.StartPoint().Row) + 1,
		EndLine:    int(node.EndPoint().Row) + 1,
		Complexity: p.complexity(node),
		Params:     p.params(node, src),
		Decorators: decorators,
		Docstring:  bodyDocstring(node, src),
		Metadata:   metadata,
	}
}

// classNode appends the class and returns its name for method scoping.
func (p *PythonParser) classNode(node *sitter.Node, src []byte, decorators []string, out *domain.Outcome) string {
	name := fieldContent(node, "name", src)

	var bases []string
	if supers := node.ChildByFieldName("superclasses"); supers != nil {
		for i := 0; i < int(supers.NamedChildCount()); i++ {
			bases = append(bases, supers.NamedChild(i).Content(src))
		}
	}

	out.Nodes = append(out.Nodes, domain.Node{
		Kind:       domain.KindClass,
		Name:       name,
		StartLine:  int(node.StartPoint().Row) + 1,
		EndLine:    int(node.EndPoint().Row) + 1,
		Decorators: decorators,
		Docstring:  bodyDocstring(node, src),
		Metadata:   map[string]any{"bases": bases},
	})
	return name
}

func (p *PythonParser) decoratedNode(node *sitter.Node, src []byte, class string, out *domain.Outcome) {
	var decorators []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if d := node.NamedChild(i); d.Type() == "decorator" {
			decorators = append(decorators, decoratorName(d.Content(src)))
		}
	}

	def := node.ChildByFieldName("definition")
	if def == nil {
		return
	}
	switch def.Type() {
	case "function_definition":
		out.Nodes = append(out.Nodes, p.functionNode(def, src, class, decorators))
		p.walk(def, src, class, out)
	case "class_definition":
		name := p.classNode(def, src, decorators, out)
		p.walk(def, src, name, out)
	}
}

// complexity follows McCabe counting: 1 plus branches, loops, exception
// handlers, boolean operators, and comprehensions. elif clauses count like
// nested ifs.
func (p *PythonParser) complexity(node *sitter.Node) int {
	complexity := 1
	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			switch child.Type() {
			case "if_statement", "elif_clause", "while_statement", "for_statement",
				"except_clause", "boolean_operator",
				"list_comprehension", "dictionary_comprehension", "set_comprehension", "generator_expression":
				complexity++
			}
			visit(child)
		}
	}
	visit(node)
	return complexity
}

// params collects positional parameter names, including self and cls.
// Keyword-only parameters after * or *args are excluded.
func (p *PythonParser) params(node *sitter.Node, src []byte) []string {
	paramsNode := node.ChildByFieldName("parameters")
	if paramsNode == nil {
		return nil
	}

	var params []string
	for i := 0; i < int(paramsNode.NamedChildCount()); i++ {
		child := paramsNode.NamedChild(i)
		switch child.Type() {
		case "identifier":
			params = append(params, child.Content(src))
		case "typed_parameter":
			if id := firstNamedOfType(child, "identifier"); id != nil {
				params = append(params, id.Content(src))
			}
		case "default_parameter", "typed_default_parameter":
			if name := child.ChildByFieldName("name"); name != nil {
				params = append(params, name.Content(src))
			}
		case "list_splat_pattern", "keyword_separator":
			return params
		}
	}
	return params
}

func (p *PythonParser) plainImports(node *sitter.Node, src []byte, out *domain.Outcome) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "dotted_name":
			out.Imports = append(out.Imports, child.Content(src))
		case "aliased_import":
			if name := child.ChildByFieldName("name"); name != nil {
				out.Imports = append(out.Imports, name.Content(src))
			}
		}
	}
}

// fromImports records "from m import x" as "m.x", matching the dotted form
// plain imports produce.
func (p *PythonParser) fromImports(node *sitter.Node, src []byte, out *domain.Outcome) {
	moduleNode := node.ChildByFieldName("module_name")
	module := ""
	if moduleNode != nil {
		module = strings.TrimLeft(moduleNode.Content(src), ".")
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if moduleNode != nil && child.StartByte() == moduleNode.StartByte() {
			continue
		}

		name := ""
		switch child.Type() {
		case "dotted_name":
			name = child.Content(src)
		case "aliased_import":
			if n := child.ChildByFieldName("name"); n != nil {
				name = n.Content(src)
			}
		case "wildcard_import":
			name = "*"
		}
		if name == "" {
			continue
		}
		if module != "" {
			name = module + "." + name
		}
		out.Imports = append(out.Imports, name)
	}
}

// bodyDocstring returns the leading string literal of a definition body.
func bodyDocstring(node *sitter.Node, src []byte) string {
	body := node.ChildByFieldName("body")
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}
	first := body.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}
	str := first.NamedChild(0)
	if str.Type() != "string" {
		return ""
	}
	return stripStringQuotes(str.Content(src))
}

func stripStringQuotes(s string) string {
	for _, q := range []string{`"""`, `'''`, `"`, `'`} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) && len(s) >= 2*len(q) {
			return strings.TrimSpace(s[len(q) : len(s)-len(q)])
		}
	}
	return s
}

// decoratorName reduces "@app.route(...)" to "app.route".
func decoratorName(text string) string {
	name := strings.TrimPrefix(strings.TrimSpace(text), "@")
	if i := strings.Index(name, "("); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

func firstNamedOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == nodeType {
			return child
		}
	}
	return nil
}

func fieldContent(node *sitter.Node, field string, src []byte) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return child.Content(src)
}
