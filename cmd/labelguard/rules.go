package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhitford/labelguard/internal/catalog"
	"github.com/mwhitford/labelguard/internal/format"
	"github.com/mwhitford/labelguard/internal/model"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the compliance rules for a category and jurisdiction",
		Long: `List the catalog rules that apply to one product category in one
jurisdiction, in the order they appear in reports.

Examples:
  labelguard rules --category Toys --jurisdiction USA
  labelguard rules --category Cosmetics --jurisdiction Germany`,
		RunE: runRules,
	}

	cmd.Flags().String("category", "", "product category (Toys, \"Baby Products\", Cosmetics)")
	cmd.Flags().String("jurisdiction", "", "jurisdiction (USA, UK, Germany)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("jurisdiction")

	return cmd
}

func runRules(cmd *cobra.Command, _ []string) error {
	cat := catalog.New()

	rules, err := cat.RulesFor(
		model.Category(mustString(cmd, "category")),
		model.Jurisdiction(mustString(cmd, "jurisdiction")),
	)
	if err != nil {
		return err
	}

	styles := format.NewStyles()
	fmt.Fprintln(cmd.OutOrStdout(), styles.Subtitle.Render(fmt.Sprintf("Rule catalog %s: %d rules", catalog.Version, len(rules))))

	for _, rule := range rules {
		style := styles.Recommendation
		switch rule.Severity {
		case model.SeverityCritical:
			style = styles.Critical
		case model.SeverityWarning:
			style = styles.Warning
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n",
			style.Render(fmt.Sprintf("%-14s", rule.Severity)),
			styles.Subtle.Render(fmt.Sprintf("%-26s", rule.ID)),
			rule.Description)
	}

	return nil
}
