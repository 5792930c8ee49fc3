package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain/rules"
)

// RenderRules renders the rule catalog grouped by category. The effective map
// gives the severity each rule currently resolves to; rules absent from the
// map render as off.
func RenderRules(descs []rules.Descriptor, effective map[string]domain.Severity) string {
	var b strings.Builder

	title := headerStyle.Render("bricklint rules")
	subtitle := dimStyle.Render(fmt.Sprintf("%d registered", len(descs)))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	var categories []string
	byCategory := map[string][]rules.Descriptor{}
	for _, d := range descs {
		if _, seen := byCategory[d.Category]; !seen {
			categories = append(categories, d.Category)
		}
		byCategory[d.Category] = append(byCategory[d.Category], d)
	}

	for _, cat := range categories {
		b.WriteString("  " + titleStyle.Render(cat) + "\n")
		for _, d := range byCategory[cat] {
			severity, enabled := effective[d.ID]
			tag := offTagStyle.Render("off  ")
			if enabled {
				tag = severityTag(severity)
			}
			fmt.Fprintf(&b, "    %s  %s %s\n", tag, padRight(d.ID, 34), dimStyle.Render(d.Description))
			if opts := renderOptions(d.DefaultOptions); opts != "" {
				fmt.Fprintf(&b, "           %s\n", faintStyle.Render("defaults: "+opts))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderOptions(options map[string]any) string {
	if len(options) == 0 {
		return ""
	}
	data, err := json.Marshal(options)
	if err != nil {
		return ""
	}
	return string(data)
}
