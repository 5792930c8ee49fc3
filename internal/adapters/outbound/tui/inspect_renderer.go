package tui

import (
	"fmt"
	"strings"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// RenderOutcome renders a parsed file's structure: line accounting, imports,
// and the extracted node outline.
func RenderOutcome(out *domain.Outcome) string {
	var b strings.Builder

	title := headerStyle.Render(out.FilePath)
	subtitle := dimStyle.Render(out.Language)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	for _, perr := range out.ParseErrors {
		fmt.Fprintf(&b, "  %s %s\n", errorTagStyle.Render("parse"), dimStyle.Render(perr))
	}
	if len(out.ParseErrors) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "  %s %d total, %d code, %d comments, %d blank\n",
		titleStyle.Render("Lines"),
		out.TotalLines, out.CodeLines, out.CommentLines, out.BlankLines,
	)
	b.WriteString("\n")

	if len(out.Imports) > 0 {
		fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("Imports"), dimStyle.Render(fmt.Sprintf("(%d)", len(out.Imports))))
		for _, imp := range out.Imports {
			fmt.Fprintf(&b, "    %s\n", dimStyle.Render(imp))
		}
		b.WriteString("\n")
	}

	if len(out.Nodes) == 0 {
		b.WriteString("  " + dimStyle.Render("No declarations found.") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("Structure"), dimStyle.Render(fmt.Sprintf("(%d nodes)", len(out.Nodes))))
	for _, node := range out.Nodes {
		renderNode(&b, node)
	}
	return b.String()
}

func renderNode(b *strings.Builder, node domain.Node) {
	indent := "    "
	if node.Kind == domain.KindMethod {
		indent = "      "
	}

	label := string(node.Kind)
	span := faintStyle.Render(fmt.Sprintf("lines %d-%d", node.StartLine, node.EndLine))

	detail := node.Name
	if node.Kind == domain.KindFunction || node.Kind == domain.KindMethod {
		detail = fmt.Sprintf("%s(%s)", node.Name, strings.Join(node.Params, ", "))
	}

	fmt.Fprintf(b, "%s%s %s  %s", indent, kindTag(label), detail, span)
	if node.Complexity > 1 {
		fmt.Fprintf(b, "  %s", complexityBadge(node.Complexity))
	}
	b.WriteString("\n")

	if node.Docstring != "" {
		fmt.Fprintf(b, "%s  %s\n", indent, hintStyle.Render(firstLine(node.Docstring)))
	}
}

func kindTag(kind string) string {
	switch kind {
	case "class":
		return infoTagStyle.Render(padRight(kind, 8))
	case "method":
		return dimStyle.Render(padRight(kind, 8))
	case "variable":
		return faintStyle.Render(padRight(kind, 8))
	}
	return titleStyle.Render(padRight(kind, 8))
}

func complexityBadge(complexity int) string {
	text := fmt.Sprintf("cx %d", complexity)
	switch {
	case complexity > 10:
		return failStyle.Render(text)
	case complexity > 5:
		return warnStyle.Render(text)
	}
	return dimStyle.Render(text)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
