// Package extract pulls structured fields out of free-form label text:
// ingredients, warnings, certifications, batch number, weight, manufacturer
// and a best-effort product name. Every extraction is optional; a field that
// cannot be found is left nil and never blocks the other fields.
package extract

import (
	"regexp"
	"strings"

	"github.com/mwhitford/labelguard/internal/model"
	"github.com/mwhitford/labelguard/internal/textmatch"
)

// Result is the outcome of one extraction pass.
type Result struct {
	ProductName string
	Info        model.ExtractedInfo
}

var (
	ingredientsRe  = regexp.MustCompile(`(?i)ingredients?\s*[:\-]\s*([^\n.]+)`)
	warningRe      = regexp.MustCompile(`(?i)(?:warning|caution|achtung|warnung)\s*[:\-!]\s*([^\n]+)`)
	manufacturerRe = regexp.MustCompile(`(?i)(?:manufactured by|manufacturer|made by|distributed by|hergestellt von)\s*[:\-]?\s*([^\n,;]+)`)

	// companySuffixRe is the fallback when no explicit manufacturer label is
	// present: one to four capitalized words ending in a corporate suffix.
	companySuffixRe = regexp.MustCompile(`\b((?:[A-Z][A-Za-z0-9&.']*\s+){1,4}(?:Inc\.?|Ltd\.?|LLC|GmbH|Corp\.?|Co\.|S\.A\.|B\.V\.))`)

	// labelLineRe recognizes lines that are field declarations rather than a
	// product name.
	labelLineRe = regexp.MustCompile(`(?i)^(?:ingredients?|warning|caution|batch|lot|net\s+weight|manufactured|manufacturer|made|distributed|contents?)\b`)
)

// Extract runs every field extractor over the text. Fields that cannot be
// found are left at their zero value; Extract never fails.
func Extract(text string) Result {
	var res Result

	res.ProductName = extractProductName(text)
	res.Info.Ingredients = extractIngredients(text)
	res.Info.Warnings = extractWarnings(text)

	if marks := textmatch.FindCertificationMarks(text); len(marks) > 0 {
		res.Info.Certifications = marks
	}

	if batch, ok := textmatch.ExtractBatchNumber(text); ok {
		res.Info.BatchNumber = &batch
	}

	if w, ok := textmatch.ExtractWeight(text); ok {
		res.Info.Weight = &model.Weight{Value: w.Value, Unit: w.Unit}
	}

	if m := extractManufacturer(text); m != "" {
		res.Info.Manufacturer = &m
	}

	return res
}

// extractProductName takes the first short, non-declaration line of the label.
func extractProductName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > 80 || labelLineRe.MatchString(line) {
			return ""
		}
		return line
	}
	return ""
}

func extractIngredients(text string) []string {
	m := ingredientsRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	var ingredients []string
	for _, part := range strings.Split(m[1], ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			ingredients = append(ingredients, part)
		}
	}
	return ingredients
}

func extractWarnings(text string) []string {
	var warnings []string
	for _, m := range warningRe.FindAllStringSubmatch(text, -1) {
		warning := strings.TrimSpace(strings.TrimRight(m[1], ". "))
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}
	return warnings
}

func extractManufacturer(text string) string {
	if m := manufacturerRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(strings.TrimRight(m[1], ". "))
	}
	if m := companySuffixRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
