package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/tui"
	"github.com/koucxz/a-brick-code-analyzer/internal/application"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
)

func newLintCmd() *cobra.Command {
	var (
		configPath  string
		preset      string
		extensions  []string
		ignore      []string
		recursive   bool
		jsonOutput  bool
		ciMode      bool
		maxWarnings int
		noHistory   bool
	)

	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Lint files and directories with the configured rules",
		Long:  "Lint the given files and directories (default: current directory). Configuration is discovered from the target directory unless --config or --preset overrides it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := newLintService().Run(cmd.Context(), args, application.LintOptions{
				ConfigPath:  configPath,
				Preset:      preset,
				Extensions:  extensions,
				Ignore:      ignore,
				Recursive:   recursive,
				SkipHistory: noHistory,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := renderJSON(cmd, run.Report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(run.Report, run.Previous))
			}

			return exitStatus(run.Report, ciMode, maxWarnings)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file to use instead of discovery")
	cmd.Flags().StringVar(&preset, "preset", "", "Preset to use instead of any config file (recommended, strict, minimal)")
	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "File extensions to lint (default: all supported)")
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "Glob patterns to skip, merged with the config's ignorePatterns")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", true, "Descend into subdirectories")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: fail on any violation or parse error")
	cmd.Flags().IntVar(&maxWarnings, "max-warnings", -1, "Fail when warnings exceed this count (-1 disables)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the run or update the report snapshot")

	return cmd
}

// exitStatus decides whether a rendered report still fails the command:
// errors always do, warnings only past --max-warnings, and in CI mode any
// issue at all, parse errors included.
func exitStatus(report *domain.LintReport, ciMode bool, maxWarnings int) error {
	summary := report.Summary()
	if summary.TotalErrors > 0 {
		return fmt.Errorf("%d error(s)", summary.TotalErrors)
	}
	if maxWarnings >= 0 && summary.TotalWarnings > maxWarnings {
		return fmt.Errorf("%d warning(s) exceed the --max-warnings limit of %d", summary.TotalWarnings, maxWarnings)
	}
	if ciMode {
		parseFailures := 0
		for _, result := range report.Results {
			parseFailures += len(result.ParseErrors)
		}
		if summary.TotalViolations > 0 || parseFailures > 0 {
			return fmt.Errorf("%d violation(s) and %d parse error(s)", summary.TotalViolations, parseFailures)
		}
	}
	return nil
}
