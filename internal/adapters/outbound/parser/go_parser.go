package parser

import (
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"os"
	"strings"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// GoParser implements domain.SourceParser using go/ast.
type GoParser struct{}

func NewGoParser() *GoParser {
	return &GoParser{}
}

func (p *GoParser) Language() string     { return "go" }
func (p *GoParser) Extensions() []string { return []string{".go"} }

func (p *GoParser) ParseFile(filePath string) *domain.Outcome {
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

func (p *GoParser) Parse(src []byte, filePath string) *domain.Outcome {
	out := &domain.Outcome{FilePath: filePath, Language: p.Language()}
	countLines(src, "//", "/*", "*/").apply(out)

	fset := token.NewFileSet()
	file, err := goparser.ParseFile(fset, filePath, src, goparser.ParseComments)
	if err != nil {
		out.ParseErrors = append(out.ParseErrors, fmt.Sprintf("syntax error: %v", err))
	}
	if file == nil {
		return out
	}

	for _, imp := range file.Imports {
		out.Imports = append(out.Imports, strings.Trim(imp.Path.Value, `"`))
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			p.genDeclNodes(fset, d, out)
		case *ast.FuncDecl:
			out.Nodes = append(out.Nodes, p.funcNode(fset, d))
		}
	}
	return out
}

// genDeclNodes maps struct and interface declarations to class nodes and
// top-level var/const declarations to variable nodes.
func (p *GoParser) genDeclNodes(fset *token.FileSet, d *ast.GenDecl, out *domain.Outcome) {
	for _, spec := range d.Specs {
		switch s := spec.(type) {
		case *ast.TypeSpec:
			var typeKind string
			switch s.Type.(type) {
			case *ast.StructType:
				typeKind = "struct"
			case *ast.InterfaceType:
				typeKind = "interface"
			default:
				continue
			}
			out.Nodes = append(out.Nodes, domain.Node{
				Kind:      domain.KindClass,
				Name:      s.Name.Name,
				StartLine: fset.Position(s.Pos()).Line,
				EndLine:   fset.Position(s.End()).Line,
				Docstring: docText(s.Doc, d.Doc),
				Metadata:  map[string]any{"kind": typeKind},
			})
		case *ast.ValueSpec:
			for _, name := range s.Names {
				if name.Name == "_" {
					continue
				}
				out.Nodes = append(out.Nodes, domain.Node{
					Kind:      domain.KindVariable,
					Name:      name.Name,
					StartLine: fset.Position(name.Pos()).Line,
					EndLine:   fset.Position(name.End()).Line,
					Metadata:  map[string]any{"declaration": strings.ToLower(d.Tok.String())},
				})
			}
		}
	}
}

func (p *GoParser) funcNode(fset *token.FileSet, d *ast.FuncDecl) domain.Node {
	kind := domain.KindFunction
	var metadata map[string]any
	if d.Recv != nil && len(d.Recv.List) > 0 {
		kind = domain.KindMethod
		metadata = map[string]any{"receiver": receiverType(d.Recv.List[0].Type)}
	}

	var params []string
	if d.Type.Params != nil {
		for _, field := range d.Type.Params.List {
			for _, name := range field.Names {
				params = append(params, name.Name)
			}
		}
	}

	return domain.Node{
		Kind:       kind,
		Name:       d.Name.Name,
		StartLine:  fset.Position(d.Pos()).Line,
		EndLine:    fset.Position(d.End()).Line,
		Complexity: goComplexity(d),
		Params:     params,
		Docstring:  docText(d.Doc, nil),
		Metadata:   metadata,
	}
}

// goComplexity counts McCabe branch points: 1 plus every if, loop,
// non-default case, and short-circuit boolean operator.
func goComplexity(fn *ast.FuncDecl) int {
	complexity := 1
	ast.Inspect(fn, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt:
			complexity++
		case *ast.CaseClause:
			if node.List != nil {
				complexity++
			}
		case *ast.CommClause:
			if node.Comm != nil {
				complexity++
			}
		case *ast.BinaryExpr:
			if node.Op == token.LAND || node.Op == token.LOR {
				complexity++
			}
		}
		return true
	})
	return complexity
}

// docText prefers a node's own doc comment over the enclosing
// declaration's.
func docText(own, enclosing *ast.CommentGroup) string {
	if own != nil {
		return strings.TrimSpace(own.Text())
	}
	if enclosing != nil {
		return strings.TrimSpace(enclosing.Text())
	}
	return ""
}

func receiverType(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return "*" + receiverType(t.X)
	case *ast.Ident:
		return t.Name
	case *ast.IndexExpr:
		return receiverType(t.X)
	default:
		return ""
	}
}
