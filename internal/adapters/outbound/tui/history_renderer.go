package tui

import (
	"fmt"
	"strings"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// RenderHistory renders recorded lint runs oldest-first, with a trend marker
// against the previous run's violation total.
func RenderHistory(entries []domain.RunEntry) string {
	var b strings.Builder

	title := headerStyle.Render("bricklint history")
	subtitle := dimStyle.Render(fmt.Sprintf("%d recorded %s", len(entries), pluralize("run", len(entries))))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString("  " + dimStyle.Render("No runs recorded yet.") + "\n")
		return b.String()
	}

	for i, e := range entries {
		commit := e.CommitHash
		if commit == "" {
			commit = "-"
		}

		trend := dimStyle.Render("·")
		if i > 0 {
			prev := entries[i-1].TotalViolations
			switch {
			case e.TotalViolations < prev:
				trend = passStyle.Render("↓")
			case e.TotalViolations > prev:
				trend = failStyle.Render("↑")
			}
		}

		fmt.Fprintf(&b, "  %s %s  %s  %s\n",
			trend,
			dimStyle.Render(padRight(e.Timestamp, 20)),
			faintStyle.Render(padRight(commit, 12)),
			fmt.Sprintf("%d files, %s, %s",
				e.TotalFiles,
				errorText(e.TotalErrors),
				warnText(e.TotalWarnings),
			),
		)
	}
	return b.String()
}

func errorText(n int) string {
	text := fmt.Sprintf("%d %s", n, pluralize("error", n))
	if n > 0 {
		return errorTagStyle.Render(text)
	}
	return dimStyle.Render(text)
}

func warnText(n int) string {
	text := fmt.Sprintf("%d %s", n, pluralize("warning", n))
	if n > 0 {
		return warnTagStyle.Render(text)
	}
	return dimStyle.Render(text)
}
