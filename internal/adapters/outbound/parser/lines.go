package parser

import (
	"strings"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// lineStats is the per-file line accounting shared by every parser.
type lineStats struct {
	total   int
	code    int
	comment int
	blank   int
}

// countLines classifies lines using the language's comment markers. Block
// comment tracking is line-based: any line containing the opening marker
// counts as a comment line, and mixed code-and-comment lines count as
// comments.
func countLines(src []byte, lineComment, blockOpen, blockClose string) lineStats {
	lines := strings.Split(string(src), "\n")
	stats := lineStats{total: len(lines)}

	inBlock := false
	for _, line := range lines {
		stripped := strings.TrimSpace(line)

		if inBlock {
			stats.comment++
			if strings.Contains(stripped, blockClose) {
				inBlock = false
			}
			continue
		}
		if blockOpen != "" {
			if open := strings.Index(stripped, blockOpen); open >= 0 {
				stats.comment++
				if !strings.Contains(stripped[open+len(blockOpen):], blockClose) {
					inBlock = true
				}
				continue
			}
		}

		switch {
		case stripped == "":
			stats.blank++
		case lineComment != "" && strings.HasPrefix(stripped, lineComment):
			stats.comment++
		default:
			stats.code++
		}
	}
	return stats
}

func (s lineStats) apply(out *domain.Outcome) {
	out.TotalLines = s.total
	out.CodeLines = s.code
	out.CommentLines = s.comment
	out.BlankLines = s.blank
}
