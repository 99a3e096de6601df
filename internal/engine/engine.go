package engine

import (
	"fmt"
	"log/slog"

	"github.com/mwhitford/labelguard/internal/catalog"
	"github.com/mwhitford/labelguard/internal/common"
	"github.com/mwhitford/labelguard/internal/extract"
	"github.com/mwhitford/labelguard/internal/model"
)

// Score penalties per failed rule and risk-band floors. The exact values are
// a product decision; they are defined once here and applied consistently.
const (
	DefaultCriticalPenalty       = 15
	DefaultWarningPenalty        = 7
	DefaultRecommendationPenalty = 2

	DefaultLowRiskFloor    = 80
	DefaultMediumRiskFloor = 60
)

// Config holds the scoring knobs for the engine.
type Config struct {
	CriticalPenalty       int
	WarningPenalty        int
	RecommendationPenalty int
	LowRiskFloor          int
	MediumRiskFloor       int
}

// DefaultConfig returns the default scoring configuration.
func DefaultConfig() Config {
	return Config{
		CriticalPenalty:       DefaultCriticalPenalty,
		WarningPenalty:        DefaultWarningPenalty,
		RecommendationPenalty: DefaultRecommendationPenalty,
		LowRiskFloor:          DefaultLowRiskFloor,
		MediumRiskFloor:       DefaultMediumRiskFloor,
	}
}

// RiskLevel classifies a compliance score for display emphasis.
type RiskLevel string

// Risk levels derived from the compliance score.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Engine orchestrates one compliance check: rule resolution, evaluation,
// scoring and report construction. It holds only read-only state and is safe
// for concurrent use.
type Engine struct {
	catalog   *catalog.Catalog
	evaluator Evaluator
	config    Config
}

// New creates an engine with the default scoring configuration.
func New(cat *catalog.Catalog) *Engine {
	return NewWithConfig(cat, DefaultConfig())
}

// NewWithConfig creates an engine with a custom scoring configuration.
func NewWithConfig(cat *catalog.Catalog, config Config) *Engine {
	return &Engine{
		catalog: cat,
		config:  config,
	}
}

// Evaluation is the intermediate result of a check: one verdict per distinct
// rule in catalog order, the clamped score, and the extraction pass.
type Evaluation struct {
	Extracted extract.Result
	Rules     []model.Rule
	Verdicts  []model.Verdict
	Score     int
}

// PerformCheck validates the request, evaluates every applicable rule once
// and computes the score. Rules shared between the requested jurisdictions
// are evaluated a single time so no rule is double-counted.
func (e *Engine) PerformCheck(req model.CheckRequest) (*Evaluation, error) {
	if !req.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownCategory, req.Category)
	}
	if len(req.Jurisdictions) == 0 {
		return nil, common.ErrNoJurisdictions
	}

	rules, err := e.resolveRules(req.Category, req.Jurisdictions)
	if err != nil {
		return nil, err
	}

	extracted := extract.Extract(req.Text)

	verdicts := make([]model.Verdict, 0, len(rules))
	for _, rule := range rules {
		verdicts = append(verdicts, e.evaluator.Evaluate(rule, req.Text, req.Category, extracted.Info))
	}

	score := e.score(verdicts)

	slog.Debug("compliance check evaluated",
		"category", req.Category,
		"jurisdictions", req.Jurisdictions,
		"rules", len(rules),
		"score", score)

	return &Evaluation{
		Rules:     rules,
		Verdicts:  verdicts,
		Extracted: extracted,
		Score:     score,
	}, nil
}

// resolveRules unions the rule sets of every requested jurisdiction,
// deduplicating by rule ID with first occurrence winning. Order follows the
// jurisdiction list, catalog order within each jurisdiction.
func (e *Engine) resolveRules(category model.Category, jurisdictions []model.Jurisdiction) ([]model.Rule, error) {
	seen := make(map[string]struct{})

	var rules []model.Rule
	for _, jurisdiction := range jurisdictions {
		jurisdictionSet, err := e.catalog.RulesFor(category, jurisdiction)
		if err != nil {
			return nil, err
		}
		for _, rule := range jurisdictionSet {
			if _, dup := seen[rule.ID]; dup {
				continue
			}
			seen[rule.ID] = struct{}{}
			rules = append(rules, rule)
		}
	}
	return rules, nil
}

// score starts at 100 and subtracts a fixed penalty per failed verdict by
// severity, clamped to [0,100].
func (e *Engine) score(verdicts []model.Verdict) int {
	score := 100
	for _, v := range verdicts {
		if v.Passed {
			continue
		}
		switch v.Severity {
		case model.SeverityCritical:
			score -= e.config.CriticalPenalty
		case model.SeverityWarning:
			score -= e.config.WarningPenalty
		case model.SeverityRecommendation:
			score -= e.config.RecommendationPenalty
		}
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// GenerateReport builds the caller-facing report from an evaluation: failed
// verdicts bucketed by severity in rule order, recommendations deduplicated
// preserving first occurrence, and the extraction pass attached verbatim.
func (e *Engine) GenerateReport(eval *Evaluation) *model.ComplianceReport {
	report := &model.ComplianceReport{
		ProductName:     eval.Extracted.ProductName,
		ComplianceScore: eval.Score,
		ExtractedInfo:   eval.Extracted.Info,
	}
	if report.ProductName == "" {
		report.ProductName = model.DefaultProductName
	}

	seenRecommendations := make(map[string]struct{})

	for i, v := range eval.Verdicts {
		if v.Passed {
			continue
		}
		rule := eval.Rules[i]

		issue := fmt.Sprintf("%s: %s", rule.Description, v.Message)
		switch v.Severity {
		case model.SeverityCritical:
			report.Issues.Critical = append(report.Issues.Critical, issue)
		case model.SeverityWarning:
			report.Issues.Warning = append(report.Issues.Warning, issue)
		case model.SeverityRecommendation:
			report.Issues.Recommendation = append(report.Issues.Recommendation, issue)
		}

		if rule.Recommendation == "" {
			continue
		}
		if _, dup := seenRecommendations[rule.Recommendation]; dup {
			continue
		}
		seenRecommendations[rule.Recommendation] = struct{}{}
		report.Recommendations = append(report.Recommendations, rule.Recommendation)
	}

	return report
}

// Check runs a full compliance check and returns the final report.
func (e *Engine) Check(req model.CheckRequest) (*model.ComplianceReport, error) {
	eval, err := e.PerformCheck(req)
	if err != nil {
		return nil, err
	}
	return e.GenerateReport(eval), nil
}

// Risk classifies a score using the engine's configured band floors.
func (e *Engine) Risk(score int) RiskLevel {
	switch {
	case score >= e.config.LowRiskFloor:
		return RiskLow
	case score >= e.config.MediumRiskFloor:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// RiskFor classifies a score using the default band floors. It is a pure
// function of the score.
func RiskFor(score int) RiskLevel {
	switch {
	case score >= DefaultLowRiskFloor:
		return RiskLow
	case score >= DefaultMediumRiskFloor:
		return RiskMedium
	default:
		return RiskHigh
	}
}
