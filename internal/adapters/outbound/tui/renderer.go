// Package tui renders reports and listings for terminal output.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	offTagStyle   = lipgloss.NewStyle().Foreground(faint)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	hintStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders a lint report: per-file findings followed by an
// aggregate summary. When previous is non-nil a trend line against that
// run's totals is appended.
func RenderReport(report *domain.LintReport, previous *domain.RunEntry) string {
	var b strings.Builder

	title := headerStyle.Render("bricklint")
	subtitle := dimStyle.Render("configurable code analysis")
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	for _, result := range report.Results {
		if !result.HasIssues() {
			continue
		}
		renderFileResult(&b, result)
	}

	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")
	renderSummary(&b, report.Summary())

	if previous != nil {
		renderTrend(&b, report.TotalViolations(), previous)
	}
	return b.String()
}

func renderTrend(b *strings.Builder, current int, previous *domain.RunEntry) {
	delta := current - previous.TotalViolations
	var line string
	switch {
	case delta < 0:
		line = passStyle.Render(fmt.Sprintf("↓ %d fewer than last run", -delta))
	case delta > 0:
		line = failStyle.Render(fmt.Sprintf("↑ %d more than last run", delta))
	default:
		line = dimStyle.Render("no change since last run")
	}
	fmt.Fprintf(b, "  %s %s\n", line, faintStyle.Render("("+previous.Timestamp+")"))
}

func renderFileResult(b *strings.Builder, result *domain.LintResult) {
	b.WriteString("  " + titleStyle.Render(result.FilePath) + "\n")

	for _, perr := range result.ParseErrors {
		fmt.Fprintf(b, "    %s %s\n", errorTagStyle.Render("parse"), dimStyle.Render(perr))
	}

	for _, v := range result.Violations {
		line := fmt.Sprintf("%4d", v.StartLine)
		fmt.Fprintf(b, "    %s  %s  %s  %s\n",
			dimStyle.Render(line),
			severityTag(v.Severity),
			v.Message,
			faintStyle.Render(v.RuleID),
		)
		if v.Suggestion != "" {
			fmt.Fprintf(b, "          %s\n", hintStyle.Render(v.Suggestion))
		}
	}
	b.WriteString("\n")
}

func renderSummary(b *strings.Builder, s domain.ReportSummary) {
	if s.TotalViolations == 0 {
		fmt.Fprintf(b, "  %s %s\n",
			passStyle.Render("✓"),
			fmt.Sprintf("%d files checked, no issues found", s.TotalFiles),
		)
		return
	}

	counts := []string{}
	if s.TotalErrors > 0 {
		counts = append(counts, errorTagStyle.Render(fmt.Sprintf("%d %s", s.TotalErrors, pluralize("error", s.TotalErrors))))
	}
	if s.TotalWarnings > 0 {
		counts = append(counts, warnTagStyle.Render(fmt.Sprintf("%d %s", s.TotalWarnings, pluralize("warning", s.TotalWarnings))))
	}

	fmt.Fprintf(b, "  %s  %s\n",
		titleStyle.Render(fmt.Sprintf("%d %s", s.TotalViolations, pluralize("problem", s.TotalViolations))),
		strings.Join(counts, "  "),
	)
	fmt.Fprintf(b, "  %s\n",
		dimStyle.Render(fmt.Sprintf("%d of %d files affected", s.FilesWithIssues, s.TotalFiles)),
	)
}

func severityTag(s domain.Severity) string {
	switch s {
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	case domain.SeverityWarn:
		return warnTagStyle.Render("warn ")
	case domain.SeverityOff:
		return offTagStyle.Render("off  ")
	}
	return infoTagStyle.Render("info ")
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
