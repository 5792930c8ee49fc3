package parser

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// JavaScriptParser implements domain.SourceParser on the tree-sitter
// JavaScript grammar. The TypeScript variant reuses it with the TypeScript
// grammar, which shares the node types this parser touches.
type JavaScriptParser struct {
	lang     *sitter.Language
	language string
	label    string
	exts     []string
}

func NewJavaScriptParser() *JavaScriptParser {
	return &JavaScriptParser{
		lang:     javascript.GetLanguage(),
		language: "javascript",
		label:    "JavaScript",
		exts:     []string{".js", ".jsx"},
	}
}

func NewTypeScriptParser() *JavaScriptParser {
	return &JavaScriptParser{
		lang:     typescript.GetLanguage(),
		language: "typescript",
		label:    "TypeScript",
		exts:     []string{".ts", ".tsx"},
	}
}

func (p *JavaScriptParser) Language() string     { return p.language }
func (p *JavaScriptParser) Extensions() []string { return p.exts }

func (p *JavaScriptParser) ParseFile(filePath string) *domain.Outcome {
	src, err := os.ReadFile(filePath)
	if err != nil {
		return &domain.Outcome{
			FilePath:    filePath,
			Language:    p.language,
			ParseErrors: []string{fmt.Sprintf("reading file: %v", err)},
		}
	}
	return p.Parse(src, filePath)
}

func (p *JavaScriptParser) Parse(src []byte, filePath string) *domain.Outcome {
	out := &domain.Outcome{FilePath: filePath, Language: p.language}
	countLines(src, "//", "/*", "*/").apply(out)

	ts := sitter.NewParser()
	ts.SetLanguage(p.lang)
	tree, err := ts.ParseCtx(context.Background(), nil, src)
	if err != nil {
		out.ParseErrors = append(out.ParseErrors, fmt.Sprintf("parse error: %v", err))
		return out
	}
	defer tree.Close()

	root := tree.RootNode()
	// Extraction still proceeds on a broken tree; tree-sitter recovers
	// around the error nodes.
	if root.HasError() {
		out.ParseErrors = append(out.ParseErrors, fmt.Sprintf("%s syntax error detected", p.label))
	}

	p.collectImports(root, src, out)
	p.extract(root, src, out)
	return out
}

func (p *JavaScriptParser) collectImports(node *sitter.Node, src []byte, out *domain.Outcome) {
	switch node.Type() {
	case "import_statement":
		out.Imports = append(out.Imports, strings.TrimSpace(node.Content(src)))
	case "call_expression":
		if p.isRequireCall(node, src) {
			out.Imports = append(out.Imports, strings.TrimSpace(node.Content(src)))
		}
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		p.collectImports(node.NamedChild(i), src, out)
	}
}

func (p *JavaScriptParser) isRequireCall(node *sitter.Node, src []byte) bool {
	fn := node.ChildByFieldName("function")
	if fn == nil || fn.Type() != "identifier" || fn.Content(src) != "require" {
		return false
	}
	args := node.ChildByFieldName("arguments")
	return args != nil && args.NamedChildCount() > 0 && args.NamedChild(0).Type() == "string"
}

func (p *JavaScriptParser) extract(node *sitter.Node, src []byte, out *domain.Outcome) {
	switch node.Type() {
	case "function_declaration":
		p.addFunction(node, src, out)
	case "method_definition":
		p.addMethod(node, src, out)
	case "class_declaration":
		p.addClass(node, src, out)
	case "variable_declarator":
		p.addVariable(node, src, out)
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		p.extract(node.NamedChild(i), src, out)
	}
}

func (p *JavaScriptParser) addFunction(node *sitter.Node, src []byte, out *domain.Outcome) {
	name := firstNamedOfType(node, "identifier")
	if name == nil {
		return
	}
	out.Nodes = append(out.Nodes, domain.Node{
		Kind:       domain.KindFunction,
		Name:       name.Content(src),
		StartLine:  int(name.StartPoint().Row) + 1,
		EndLine:    int(node.EndPoint().Row) + 1,
		Complexity: p.complexity(node),
		Params:     p.params(node, src),
	})
}

func (p *JavaScriptParser) addMethod(node *sitter.Node, src []byte, out *domain.Outcome) {
	var name *sitter.Node
	for _, t := range []string{"property_identifier", "identifier", "string"} {
		if name = firstNamedOfType(node, t); name != nil {
			break
		}
	}
	if name == nil {
		return
	}
	out.Nodes = append(out.Nodes, domain.Node{
		Kind:       domain.KindMethod,
		Name:       name.Content(src),
		StartLine:  int(name.StartPoint().Row) + 1,
		EndLine:    int(node.EndPoint().Row) + 1,
		Complexity: p.complexity(node),
		Params:     p.params(node, src),
	})
}

func (p *JavaScriptParser) addClass(node *sitter.Node, src []byte, out *domain.Outcome) {
	var name *sitter.Node
	for _, t := range []string{"identifier", "type_identifier"} {
		if name = firstNamedOfType(node, t); name != nil {
			break
		}
	}
	if name == nil {
		return
	}
	out.Nodes = append(out.Nodes, domain.Node{
		Kind:      domain.KindClass,
		Name:      name.Content(src),
		StartLine: int(name.StartPoint().Row) + 1,
		EndLine:   int(node.EndPoint().Row) + 1,
	})
}

func (p *JavaScriptParser) addVariable(node *sitter.Node, src []byte, out *domain.Outcome) {
	name := node.ChildByFieldName("name")
	if name == nil || name.Type() != "identifier" {
		return
	}
	out.Nodes = append(out.Nodes, domain.Node{
		Kind:      domain.KindVariable,
		Name:      name.Content(src),
		StartLine: int(name.StartPoint().Row) + 1,
		EndLine:   int(name.EndPoint().Row) + 1,
	})
}

// complexity counts control-flow constructs: if, loops, switch, catch, and
// ternaries.
func (p *JavaScriptParser) complexity(node *sitter.Node) int {
	complexity := 1
	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			switch child.Type() {
			case "if_statement", "for_statement", "for_in_statement", "while_statement",
				"do_statement", "switch_statement", "catch_clause", "ternary_expression":
				complexity++
			}
			visit(child)
		}
	}
	visit(node)
	return complexity
}

func (p *JavaScriptParser) params(node *sitter.Node, src []byte) []string {
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
		case "assignment_pattern":
			if left := child.ChildByFieldName("left"); left != nil && left.Type() == "identifier" {
				params = append(params, left.Content(src))
			}
		case "required_parameter", "optional_parameter":
			if id := firstNamedOfType(child, "identifier"); id != nil {
				params = append(params, id.Content(src))
			}
		}
	}
	return params
}
