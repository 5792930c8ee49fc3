package baseline

import (
	"errors"
	"math"
	"regexp"
	"sort"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

// Profile captures the observed distribution of lintable metrics across a
// codebase. It is the evidence base for suggesting thresholds that flag the
// worst tail of an existing project instead of drowning it in warnings.
// FunctionStyle is the naming style most observed functions already follow,
// snake_case on a tie.
type Profile struct {
	Files         int          `json:"files"`
	Functions     int          `json:"functions"`
	Classes       int          `json:"classes"`
	Languages     []string     `json:"languages"`
	FunctionStyle string       `json:"function_style"`
	Metrics       MetricsBlock `json:"metrics"`
}

// MetricsBlock groups one distribution per tunable rule threshold.
type MetricsBlock struct {
	Complexity       Distribution `json:"complexity"`
	FunctionLines    Distribution `json:"function_lines"`
	Params           Distribution `json:"params"`
	FileLines        Distribution `json:"file_lines"`
	ClassesPerFile   Distribution `json:"classes_per_file"`
	FunctionsPerFile Distribution `json:"functions_per_file"`
}

// Distribution holds summary statistics for one metric.
type Distribution struct {
	Count int     `json:"count"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
	Mean  float64 `json:"mean"`
	P50   int     `json:"p50"`
	P90   int     `json:"p90"`
	P95   int     `json:"p95"`
}

// Collect builds a profile from parsed outcomes. It returns an error when no
// outcomes are provided, since an empty sample suggests nothing.
func Collect(outcomes []*domain.Outcome) (*Profile, error) {
	if len(outcomes) == 0 {
		return nil, errors.New("no outcomes provided")
	}

	p := &Profile{Files: len(outcomes)}
	var (
		complexity    []int
		functionLines []int
		params        []int
		fileLines     []int
		classesPer    []int
		functionsPer  []int
		languages     = map[string]bool{}
		snakeVotes    = 0
		camelVotes    = 0
	)

	for _, out := range outcomes {
		if out.Language != "" {
			languages[out.Language] = true
		}
		fileLines = append(fileLines, out.TotalLines)
		classesPer = append(classesPer, len(out.Classes()))
		functionsPer = append(functionsPer, len(out.Functions()))
		p.Classes += len(out.Classes())

		for _, node := range out.Nodes {
			if node.Kind != domain.KindFunction && node.Kind != domain.KindMethod {
				continue
			}
			p.Functions++
			complexity = append(complexity, node.Complexity)
			functionLines = append(functionLines, node.Lines())
			params = append(params, countedParams(node.Params))

			if dunderName.MatchString(node.Name) {
				continue
			}
			switch {
			case snakePattern.MatchString(node.Name):
				snakeVotes++
			case camelPattern.MatchString(node.Name):
				camelVotes++
			}
		}
	}

	p.FunctionStyle = "snake_case"
	if camelVotes > snakeVotes {
		p.FunctionStyle = "camelCase"
	}

	for lang := range languages {
		p.Languages = append(p.Languages, lang)
	}
	sort.Strings(p.Languages)

	p.Metrics = MetricsBlock{
		Complexity:       summarize(complexity),
		FunctionLines:    summarize(functionLines),
		Params:           summarize(params),
		FileLines:        summarize(fileLines),
		ClassesPerFile:   summarize(classesPer),
		FunctionsPerFile: summarize(functionsPer),
	}
	return p, nil
}

// Floors below which suggestions never tighten, matching the strict preset.
// A ten-file sample should not produce a config harsher than strict.
const (
	floorComplexity       = 8
	floorFunctionLines    = 30
	floorParams           = 4
	floorFileLines        = 300
	floorClassesPerFile   = 3
	floorFunctionsPerFile = 10
)

// SuggestConfig derives a starting configuration from the profile: the
// recommended preset with each threshold lifted to the codebase's 90th
// percentile, so roughly the worst tenth of the existing code is flagged.
// Naming style for functions follows the dominant observed style.
func (p *Profile) SuggestConfig() *domain.Config {
	cfg := &domain.Config{
		Extends: domain.StringList{domain.PresetRecommended},
		Rules: map[string]domain.Setting{
			"complexity/max-complexity": {
				Severity: domain.SeverityWarn,
				Options:  map[string]any{"max": suggested(p.Metrics.Complexity, floorComplexity)},
			},
			"complexity/max-function-lines": {
				Severity: domain.SeverityWarn,
				Options:  map[string]any{"max": suggested(p.Metrics.FunctionLines, floorFunctionLines)},
			},
			"complexity/max-params": {
				Severity: domain.SeverityWarn,
				Options:  map[string]any{"max": suggested(p.Metrics.Params, floorParams)},
			},
			"structure/max-file-lines": {
				Severity: domain.SeverityWarn,
				Options:  map[string]any{"max": suggested(p.Metrics.FileLines, floorFileLines)},
			},
			"structure/max-classes-per-file": {
				Severity: domain.SeverityWarn,
				Options:  map[string]any{"max": suggested(p.Metrics.ClassesPerFile, floorClassesPerFile)},
			},
			"structure/max-functions-per-file": {
				Severity: domain.SeverityWarn,
				Options:  map[string]any{"max": suggested(p.Metrics.FunctionsPerFile, floorFunctionsPerFile)},
			},
			"naming/function-naming": {
				Severity: domain.SeverityWarn,
				Options:  map[string]any{"style": p.FunctionStyle},
			},
		},
	}
	return cfg
}

var (
	// snakePattern requires an underscore so single lowercase words do not
	// vote for either style.
	snakePattern = regexp.MustCompile(`^[a-z_][a-z0-9]*(_[a-z0-9]+)+_?$`)
	camelPattern = regexp.MustCompile(`^[a-z][a-z0-9]*([A-Z][a-zA-Z0-9]*)+$`)
	dunderName   = regexp.MustCompile(`^__.*__$`)
)

// suggested lifts a threshold to the metric's 90th percentile, never below
// the strict-preset floor.
func suggested(d Distribution, floor int) int {
	if d.Count == 0 || d.P90 < floor {
		return floor
	}
	return d.P90
}

// summarize computes nearest-rank percentiles over a copy of values.
func summarize(values []int) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)

	sum := 0
	for _, v := range sorted {
		sum += v
	}

	return Distribution{
		Count: len(sorted),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
		Mean:  float64(sum) / float64(len(sorted)),
		P50:   percentile(sorted, 50),
		P90:   percentile(sorted, 90),
		P95:   percentile(sorted, 95),
	}
}

// percentile returns the nearest-rank percentile of a sorted slice.
func percentile(sorted []int, p float64) int {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(math.Ceil(p / 100 * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

func countedParams(params []string) int {
	n := 0
	for _, p := range params {
		if p == "self" || p == "cls" {
			continue
		}
		n++
	}
	return n
}
