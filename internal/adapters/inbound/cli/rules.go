package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/config"
	"github.com/koucxz/a-brick-code-analyzer/internal/adapters/outbound/tui"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain"
	"github.com/koucxz/a-brick-code-analyzer/internal/domain/rules"
)

func newRulesCmd() *cobra.Command {
	var (
		configPath string
		preset     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List registered rules and their effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := rules.NewEngine(rules.DefaultRegistry())
			if err != nil {
				return err
			}

			configs := config.New()
			switch {
			case preset != "":
				if err := engine.UsePreset(preset); err != nil {
					return err
				}
			case configPath != "":
				cfg, err := configs.Load(configPath)
				if err != nil {
					return err
				}
				if err := engine.ApplyConfig(cfg); err != nil {
					return err
				}
			default:
				cfg, _, err := configs.Discover(".")
				if err != nil {
					return err
				}
				if err := engine.ApplyConfig(cfg); err != nil {
					return err
				}
			}

			enabled := engine.EnabledRules()
			effective := make(map[string]domain.Severity, len(enabled))
			for _, rule := range enabled {
				effective[rule.ID()] = rule.Severity()
			}

			if jsonOutput {
				return renderJSON(cmd, ruleListings(engine, effective))
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(engine.Descriptors(), effective))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file to use instead of discovery")
	cmd.Flags().StringVar(&preset, "preset", "", "Preset to resolve instead of any config file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

type ruleListing struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Severity    string         `json:"severity"`
	Options     map[string]any `json:"options,omitempty"`
}

func ruleListings(engine *rules.Engine, effective map[string]domain.Severity) []ruleListing {
	descs := engine.Descriptors()
	listings := make([]ruleListing, 0, len(descs))
	for _, desc := range descs {
		listing := ruleListing{
			ID:          desc.ID,
			Name:        desc.Name,
			Category:    desc.Category,
			Description: desc.Description,
			Severity:    domain.SeverityOff.String(),
		}
		if sev, ok := effective[desc.ID]; ok {
			listing.Severity = sev.String()
			if rule, ok := engine.Rule(desc.ID); ok {
				listing.Options = rule.Options()
			}
		}
		listings = append(listings, listing)
	}
	return listings
}
