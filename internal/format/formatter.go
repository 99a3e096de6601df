package format

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitford/labelguard/internal/engine"
	"github.com/mwhitford/labelguard/internal/model"
)

// CLIFormatter renders compliance reports for terminal display.
type CLIFormatter struct {
	styles *Styles
}

// NewCLIFormatter creates a new CLI formatter with default styles.
func NewCLIFormatter() *CLIFormatter {
	return &CLIFormatter{
		styles: NewStyles(),
	}
}

// FormatReport renders the full report: header, score gauge, issue sections
// by severity, recommendations, and the extracted-info box.
func (f *CLIFormatter) FormatReport(report *model.ComplianceReport, risk engine.RiskLevel) string {
	if report == nil {
		return f.styles.Critical.Render("No report available")
	}

	sections := []string{
		f.styles.Title.Render(report.ProductName),
		f.formatScore(report.ComplianceScore, risk),
	}

	if issues := f.formatIssues(report.Issues); issues != "" {
		sections = append(sections, issues)
	} else {
		sections = append(sections, f.styles.Success.Render("✓ No compliance issues found"))
	}

	if len(report.Recommendations) > 0 {
		sections = append(sections, f.formatRecommendations(report.Recommendations))
	}

	sections = append(sections, f.formatExtractedInfo(report.ExtractedInfo))

	return strings.Join(sections, "\n\n")
}

func (f *CLIFormatter) formatScore(score int, risk engine.RiskLevel) string {
	var style = f.styles.Success
	switch risk {
	case engine.RiskMedium:
		style = f.styles.Warning
	case engine.RiskHigh:
		style = f.styles.Critical
	}

	gauge := f.renderGauge(score)
	label := style.Render(fmt.Sprintf("%d/100 (%s risk)", score, risk))
	return fmt.Sprintf("%s %s %s", f.styles.Normal.Render("Compliance score:"), gauge, label)
}

// renderGauge draws a 20-cell score bar.
func (f *CLIFormatter) renderGauge(score int) string {
	const width = 20
	filled := score * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return f.styles.Subtle.Render(bar)
}

func (f *CLIFormatter) formatIssues(issues model.IssueBuckets) string {
	var sections []string

	if len(issues.Critical) > 0 {
		sections = append(sections, f.formatIssueSection("Critical", issues.Critical, f.styles.Critical))
	}
	if len(issues.Warning) > 0 {
		sections = append(sections, f.formatIssueSection("Warnings", issues.Warning, f.styles.Warning))
	}
	if len(issues.Recommendation) > 0 {
		sections = append(sections, f.formatIssueSection("Recommendations", issues.Recommendation, f.styles.Recommendation))
	}

	return strings.Join(sections, "\n\n")
}

func (f *CLIFormatter) formatIssueSection(title string, issues []string, style lipgloss.Style) string {
	lines := []string{style.Render(fmt.Sprintf("%s (%d)", title, len(issues)))}
	for _, issue := range issues {
		lines = append(lines, "  • "+issue)
	}
	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatRecommendations(recommendations []string) string {
	lines := []string{f.styles.Subtitle.Render("Suggested fixes")}
	for i, rec := range recommendations {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, rec))
	}
	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatExtractedInfo(info model.ExtractedInfo) string {
	var lines []string

	addLine := func(name, value string) {
		lines = append(lines, fmt.Sprintf("%s %s", f.styles.Subtle.Render(name+":"), value))
	}

	if len(info.Ingredients) > 0 {
		addLine("Ingredients", strings.Join(info.Ingredients, ", "))
	}
	if len(info.Warnings) > 0 {
		addLine("Warnings", strings.Join(info.Warnings, "; "))
	}
	if len(info.Certifications) > 0 {
		addLine("Certifications", strings.Join(info.Certifications, ", "))
	}
	if info.BatchNumber != nil {
		addLine("Batch", *info.BatchNumber)
	}
	if info.Weight != nil {
		addLine("Net quantity", fmt.Sprintf("%g %s", info.Weight.Value, info.Weight.Unit))
	}
	if info.Manufacturer != nil {
		addLine("Manufacturer", *info.Manufacturer)
	}

	if len(lines) == 0 {
		return f.styles.Subtle.Render("No structured label information detected")
	}

	return f.styles.Box.Render(strings.Join(lines, "\n"))
}
