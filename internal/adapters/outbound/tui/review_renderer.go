package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain/review"
)

// RenderModels renders the models installed in the local runtime.
func RenderModels(models []review.ModelInfo) string {
	var b strings.Builder

	title := headerStyle.Render("installed models")
	subtitle := dimStyle.Render(fmt.Sprintf("%d available", len(models)))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	if len(models) == 0 {
		b.WriteString("  " + dimStyle.Render("No models installed. Pull one with `ollama pull "+review.DefaultModel+"`.") + "\n")
		return b.String()
	}

	for _, m := range models {
		tag := faintStyle.Render("     ")
		if m.CodeTuned {
			tag = infoTagStyle.Render("code ")
		}
		fmt.Fprintf(&b, "  %s %s %s\n", tag, padRight(m.Name, 28), dimStyle.Render(m.Size))
	}
	return b.String()
}

// RenderAnalysis renders a model review of one file, with token usage and
// timing in the footer.
func RenderAnalysis(path string, analysis *review.Analysis) string {
	var b strings.Builder

	title := headerStyle.Render(path)
	subtitle := dimStyle.Render(analysis.Model)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	for _, line := range strings.Split(strings.TrimRight(analysis.Content, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n  " + separatorLine + "\n")
	footer := fmt.Sprintf("%d tokens", analysis.TotalTokens)
	if analysis.Duration > 0 {
		footer += " in " + analysis.Duration.Round(time.Millisecond).String()
	}
	b.WriteString("  " + faintStyle.Render(footer) + "\n")
	return b.String()
}
