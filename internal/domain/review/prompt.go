package review

import (
	"fmt"
	"strings"
	"text/template"
)

// Context carries everything a prompt template can reference. Empty summary
// fields render as "(none)" so templates never show blank sections.
type Context struct {
	Code              string
	FilePath          string
	Language          string
	TotalLines        int
	CodeLines         int
	StructureSummary  string
	LintSummary       string
	ComplexitySummary string
	Imports           string
}

// BuildPrompt renders the template for the given analysis type.
func BuildPrompt(t AnalysisType, pc Context) (string, error) {
	tmpl, ok := promptTemplates[t]
	if !ok {
		return "", fmt.Errorf("no prompt template for analysis type %q", t)
	}

	if pc.FilePath == "" {
		pc.FilePath = "(unknown)"
	}
	for _, field := range []*string{&pc.StructureSummary, &pc.LintSummary, &pc.ComplexitySummary, &pc.Imports} {
		if *field == "" {
			*field = "(none)"
		}
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, pc); err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", t, err)
	}
	return b.String(), nil
}

const fence = "```"

var promptTemplates = map[AnalysisType]*template.Template{
	TypeCodeReview: template.Must(template.New(string(TypeCodeReview)).Parse(`You are an experienced code reviewer. Review the code below and suggest improvements.

## File
- Path: {{.FilePath}}
- Language: {{.Language}}
- Total lines: {{.TotalLines}}
- Code lines: {{.CodeLines}}

## Code
` + fence + `{{.Language}}
{{.Code}}
` + fence + `

## Parsed structure
{{.StructureSummary}}

## Lint findings
{{.LintSummary}}

Review these areas:
1. Code quality: readability, maintainability, naming
2. Potential bugs: edge cases, error handling, failure modes
3. Best practices: language idioms and design patterns
4. Improvements: concrete changes, with code examples

Answer with specific code examples.`)),

	TypeComplexity: template.Must(template.New(string(TypeComplexity)).Parse(`You are a code simplification expert. Analyze the complexity of the code below.

## File
- Path: {{.FilePath}}
- Language: {{.Language}}

## High-complexity functions
{{.ComplexitySummary}}

## Code
` + fence + `{{.Language}}
{{.Code}}
` + fence + `

Explain:
1. Where the complexity comes from (nesting, branching, loops)
2. What problems it causes
3. Concrete simplification steps, with code examples`)),

	TypeSecurity: template.Must(template.New(string(TypeSecurity)).Parse(`You are a security auditor. Analyze the code below for vulnerabilities.

## File
- Path: {{.FilePath}}
- Language: {{.Language}}

## Code
` + fence + `{{.Language}}
{{.Code}}
` + fence + `

## Imported modules
{{.Imports}}

Check for:
1. Injection: SQL injection, command injection, XSS
2. Secrets: hardcoded passwords or leaked keys
3. Input validation: untrusted input reaching sensitive operations
4. Permissions: unsafe file operations or privilege escalation
5. Dependencies: imported libraries with known weaknesses

For every finding give a risk level (high/medium/low), its location, and a fix.`)),

	TypePerformance: template.Must(template.New(string(TypePerformance)).Parse(`You are a performance engineer. Analyze the code below for bottlenecks.

## File
- Path: {{.FilePath}}
- Language: {{.Language}}

## Code
` + fence + `{{.Language}}
{{.Code}}
` + fence + `

## Parsed structure
{{.StructureSummary}}

Analyze:
1. Time complexity: any O(n^2) or worse operations
2. Space: unnecessary copies or allocations
3. I/O: inefficient file or network access
4. Loops: candidates for batching or parallelism
5. Caching: repeated computation worth memoizing

Give a concrete optimized version for each problem found.`)),

	TypeRefactor: template.Must(template.New(string(TypeRefactor)).Parse(`You are a refactoring expert. Propose a refactoring plan for the code below.

## File
- Path: {{.FilePath}}
- Language: {{.Language}}

## Code
` + fence + `{{.Language}}
{{.Code}}
` + fence + `

## Known problems
{{.LintSummary}}

Propose:
1. Design patterns that would fit
2. How to split overlong functions
3. Whether class responsibilities should be split or merged
4. Duplicated code worth extracting
5. API shape improvements

Show before/after code for each proposal.`)),

	TypeExplain: template.Must(template.New(string(TypeExplain)).Parse(`Explain what the code below does and how it works.

## File
- Path: {{.FilePath}}
- Language: {{.Language}}

## Code
` + fence + `{{.Language}}
{{.Code}}
` + fence + `

Cover:
1. Purpose: what the code is for
2. Flow: the order things happen in
3. Key logic: the core algorithm or business rules
4. Inputs and outputs: parameters and return values
5. Dependencies: how it relates to other modules

Write for a reader new to this codebase.`)),

	TypeDocstring: template.Must(template.New(string(TypeDocstring)).Parse(`Generate documentation comments for the code below.

## File
- Language: {{.Language}}

## Code
` + fence + `{{.Language}}
{{.Code}}
` + fence + `

Write a {{.Language}}-idiomatic doc comment for every function and class covering:
1. What it does
2. Parameters, with types and meaning
3. Return values
4. Errors or exceptions it can raise
5. A usage example where it helps

Output the complete code with the documentation added.`)),
}
