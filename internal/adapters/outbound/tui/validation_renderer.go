package tui

import (
	"fmt"
	"strings"
)

// RenderValidation renders the outcome of checking a config file.
func RenderValidation(path string, errors, warnings []string) string {
	var b strings.Builder

	title := headerStyle.Render("config check")
	subtitle := dimStyle.Render(path)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	for _, e := range errors {
		fmt.Fprintf(&b, "  %s %s\n", errorTagStyle.Render("error"), e)
	}
	for _, w := range warnings {
		fmt.Fprintf(&b, "  %s %s\n", warnTagStyle.Render("warn "), w)
	}
	if len(errors)+len(warnings) > 0 {
		b.WriteString("\n")
	}

	if len(errors) == 0 {
		suffix := ""
		if len(warnings) > 0 {
			suffix = fmt.Sprintf(" (%d %s)", len(warnings), pluralize("warning", len(warnings)))
		}
		fmt.Fprintf(&b, "  %s config is valid%s\n", passStyle.Render("✓"), suffix)
		return b.String()
	}

	fmt.Fprintf(&b, "  %s %d %s found\n", failStyle.Render("✗"), len(errors), pluralize("error", len(errors)))
	return b.String()
}
