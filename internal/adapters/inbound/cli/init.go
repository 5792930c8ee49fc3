package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/koucxz/a-brick-code-analyzer/internal/application"
)

func newInitCmd() *cobra.Command {
	var (
		force bool
		auto  bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter config file",
		Long:  "Write a .bricklintrc.yaml into the given directory (default: current directory). With --auto the codebase is profiled first and thresholds are suggested from what the code actually does.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			result, err := newSetupService().Init(root, application.InitOptions{Force: force, Auto: auto})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created %s\n", result.Path)
			if len(result.Languages) > 0 {
				fmt.Fprintf(out, "Detected languages: %s\n", strings.Join(result.Languages, ", "))
			}
			if result.Profile != nil {
				fmt.Fprintf(out, "Profiled %d files, %d functions; dominant naming style: %s\n",
					result.Profile.Files, result.Profile.Functions, result.Profile.FunctionStyle)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.Flags().BoolVar(&auto, "auto", false, "Profile the codebase and suggest thresholds")

	return cmd
}
