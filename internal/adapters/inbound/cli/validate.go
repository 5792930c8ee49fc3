package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/tui"
)

func newValidateCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate [config]",
		Short: "Check a config file without linting anything",
		Long:  "Validate the given config file, or the one discovered from the current directory. Reports unknown rules, bad option types, unresolvable presets and malformed ignore patterns.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			report, err := newSetupService().Validate(".", path)
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation(report.Path, report.Errors, report.Warnings))
			}

			if !report.Valid {
				return fmt.Errorf("%d config error(s) in %s", len(report.Errors), report.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
