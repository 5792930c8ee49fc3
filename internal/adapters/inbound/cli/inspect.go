package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/tui"
)

func newInspectCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the parsed structure of a single file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := newLintService().Inspect(args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, outcome)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderOutcome(outcome))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
