package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mwhitford/labelguard/internal/engine"
	"github.com/mwhitford/labelguard/internal/format"
	"github.com/mwhitford/labelguard/internal/model"
	"github.com/mwhitford/labelguard/internal/service"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Run a compliance check on label text",
		Long: `Check extracted label text against the rule catalog for a product
category and one or more target jurisdictions.

The label text is read from the given file, or from stdin when the file is
"-". With --dir, every .txt file in the directory is checked and a summary is
printed instead of full reports.

Examples:
  # Check a single label for the US market
  labelguard check label.txt --category Toys --jurisdictions USA

  # Check against several markets and persist the result
  labelguard check label.txt --category Cosmetics --jurisdictions USA,UK,Germany --save

  # Batch-check a directory of extracted labels
  labelguard check --dir ./labels --category "Baby Products" --jurisdictions UK`,
		RunE: runCheck,
	}

	cmd.Flags().String("category", "", "product category (Toys, \"Baby Products\", Cosmetics)")
	cmd.Flags().StringSlice("jurisdictions", []string{"USA"}, "target jurisdictions")
	cmd.Flags().String("dir", "", "check every .txt file in this directory")
	cmd.Flags().Bool("save", false, "persist results to the scan store")
	cmd.Flags().Bool("json", false, "emit the raw report as JSON")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	category := model.Category(mustString(cmd, "category"))
	if !category.Valid() {
		return fmt.Errorf("unknown category %q (one of Toys, \"Baby Products\", Cosmetics)", category)
	}

	jurisdictionFlags, _ := cmd.Flags().GetStringSlice("jurisdictions")
	jurisdictions, err := parseJurisdictions(jurisdictionFlags)
	if err != nil {
		return err
	}

	eng, _ := initEngine()

	var store service.ScanStore
	if save, _ := cmd.Flags().GetBool("save"); save {
		store, err = initStorage()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
	}

	if dir := mustString(cmd, "dir"); dir != "" {
		return runCheckDir(cmd, eng, store, dir, category, jurisdictions)
	}

	if len(args) != 1 {
		return fmt.Errorf("expected exactly one label file (or \"-\" for stdin)")
	}

	text, err := readLabelText(args[0])
	if err != nil {
		return err
	}

	report, err := eng.Check(model.CheckRequest{
		Text:          text,
		Category:      category,
		Jurisdictions: jurisdictions,
	})
	if err != nil {
		return err
	}

	if store != nil {
		if err := saveScan(cmd, store, eng, report, text, category, jurisdictions); err != nil {
			return err
		}
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(report)
	}

	formatter := format.NewCLIFormatter()
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReport(report, eng.Risk(report.ComplianceScore)))
	return nil
}

// runCheckDir batch-checks every .txt file under dir and prints a per-file
// summary line ordered by score, worst first.
func runCheckDir(cmd *cobra.Command, eng *engine.Engine, store service.ScanStore, dir string, category model.Category, jurisdictions []model.Jurisdiction) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .txt files found in %s", dir)
	}
	sort.Strings(paths)

	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Checking labels..."),
	)

	type result struct {
		report *model.ComplianceReport
		path   string
	}

	results := make([]result, 0, len(paths))
	for _, path := range paths {
		text, err := readLabelText(path)
		if err != nil {
			return err
		}

		report, err := eng.Check(model.CheckRequest{
			Text:          text,
			Category:      category,
			Jurisdictions: jurisdictions,
		})
		if err != nil {
			return err
		}

		if store != nil {
			if err := saveScan(cmd, store, eng, report, text, category, jurisdictions); err != nil {
				return err
			}
		}

		results = append(results, result{path: path, report: report})
		_ = bar.Add(1)
	}
	fmt.Fprintln(cmd.ErrOrStderr())

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].report.ComplianceScore < results[j].report.ComplianceScore
	})

	styles := format.NewStyles()
	for _, r := range results {
		risk := eng.Risk(r.report.ComplianceScore)
		style := styles.Success
		switch risk {
		case engine.RiskMedium:
			style = styles.Warning
		case engine.RiskHigh:
			style = styles.Critical
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%d issues) %s\n",
			style.Render(fmt.Sprintf("%3d", r.report.ComplianceScore)),
			filepath.Base(r.path),
			r.report.Issues.Total(),
			styles.Subtle.Render(string(risk)))
	}

	return nil
}

func saveScan(cmd *cobra.Command, store service.ScanStore, eng *engine.Engine, report *model.ComplianceReport, text string, category model.Category, jurisdictions []model.Jurisdiction) error {
	scan := &model.ScanRecord{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		Category:      category,
		Jurisdictions: jurisdictions,
		Text:          text,
		Score:         report.ComplianceScore,
		RiskLevel:     string(eng.Risk(report.ComplianceScore)),
		Report:        report,
	}

	if err := store.SaveScan(cmd.Context(), scan); err != nil {
		return fmt.Errorf("failed to save scan: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Saved scan %s\n", scan.ID)
	return nil
}

// readLabelText reads a label file, or stdin when path is "-".
func readLabelText(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied label file
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
