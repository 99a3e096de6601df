package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhitford/labelguard/internal/engine"
	"github.com/mwhitford/labelguard/internal/format"
)

func scansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scans",
		Short: "Browse persisted compliance scans",
	}

	cmd.AddCommand(scansListCmd())
	cmd.AddCommand(scansShowCmd())

	return cmd
}

func scansListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent scans, newest first",
		RunE:  runScansList,
	}

	cmd.Flags().Int("limit", 20, "maximum number of scans to list")

	return cmd
}

func runScansList(cmd *cobra.Command, _ []string) error {
	store, err := initStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	limit, _ := cmd.Flags().GetInt("limit")
	scans, err := store.ListScans(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if len(scans) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No scans recorded yet.")
		return nil
	}

	styles := format.NewStyles()
	for _, scan := range scans {
		style := styles.Success
		switch engine.RiskLevel(scan.RiskLevel) {
		case engine.RiskMedium:
			style = styles.Warning
		case engine.RiskHigh:
			style = styles.Critical
		}

		issues := 0
		if scan.Report != nil {
			issues = scan.Report.Issues.Total()
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s %s (%d issues)\n",
			styles.Subtle.Render(scan.CreatedAt.Format("2006-01-02 15:04")),
			scan.ID,
			style.Render(fmt.Sprintf("%3d", scan.Score)),
			scan.Category,
			issues)
	}

	return nil
}

func scansShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <scan-id>",
		Short: "Show the full report for one scan",
		Args:  cobra.ExactArgs(1),
		RunE:  runScansShow,
	}
}

func runScansShow(cmd *cobra.Command, args []string) error {
	store, err := initStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	scan, err := store.GetScan(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	formatter := format.NewCLIFormatter()
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReport(scan.Report, engine.RiskLevel(scan.RiskLevel)))
	return nil
}
