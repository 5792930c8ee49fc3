package domain

// NodeKind identifies the semantic kind of a parsed code unit.
type NodeKind string

const (
	KindFunction NodeKind = "function"
	KindClass    NodeKind = "class"
	KindMethod   NodeKind = "method"
	KindVariable NodeKind = "variable"
	KindImport   NodeKind = "import"
	KindModule   NodeKind = "module"
)

// Node is one semantic code unit extracted by a parser adapter.
type Node struct {
	Kind       NodeKind       `json:"kind"`
	Name       string         `json:"name"`
	StartLine  int            `json:"line_start"`
	EndLine    int            `json:"line_end"`
	Complexity int            `json:"complexity,omitempty"`
	Params     []string       `json:"params,omitempty"`
	Decorators []string       `json:"decorators,omitempty"`
	Docstring  string         `json:"docstring,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Lines returns the inclusive line span of the node.
func (n Node) Lines() int {
	return n.EndLine - n.StartLine + 1
}

// Outcome is the normalized representation of one parsed file or source
// snippet, consumed read-only by the rule engine.
type Outcome struct {
	FilePath     string   `json:"file_path"`
	Language     string   `json:"language"`
	Nodes        []Node   `json:"nodes"`
	Imports      []string `json:"imports,omitempty"`
	TotalLines   int      `json:"total_lines"`
	CodeLines    int      `json:"code_lines"`
	CommentLines int      `json:"comment_lines"`
	BlankLines   int      `json:"blank_lines"`
	ParseErrors  []string `json:"parse_errors,omitempty"`
}

// NodesOfKind returns the nodes matching kind, in source order.
func (o *Outcome) NodesOfKind(kind NodeKind) []Node {
	var nodes []Node
	for _, n := range o.Nodes {
		if n.Kind == kind {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func (o *Outcome) Functions() []Node { return o.NodesOfKind(KindFunction) }
func (o *Outcome) Classes() []Node   { return o.NodesOfKind(KindClass) }
func (o *Outcome) Methods() []Node   { return o.NodesOfKind(KindMethod) }
