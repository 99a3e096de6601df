package server

import (
	"time"

	"github.com/mwhitford/labelguard/internal/model"
)

// CheckRequest is the POST /api/v1/check body.
type CheckRequest struct {
	Text          string   `json:"text"`
	Category      string   `json:"category"`
	Jurisdictions []string `json:"jurisdictions"`
}

func (r CheckRequest) toModel() model.CheckRequest {
	jurisdictions := make([]model.Jurisdiction, len(r.Jurisdictions))
	for i, j := range r.Jurisdictions {
		jurisdictions[i] = model.Jurisdiction(j)
	}
	return model.CheckRequest{
		Text:          r.Text,
		Category:      model.Category(r.Category),
		Jurisdictions: jurisdictions,
	}
}

// CheckResponse wraps a compliance report with its derived risk level and,
// when persistence is enabled, the stored scan ID.
type CheckResponse struct {
	Report    *model.ComplianceReport `json:"report"`
	ScanID    string                  `json:"scan_id,omitempty"`
	RiskLevel string                  `json:"risk_level"`
}

// RuleSummary is one catalog rule in a listing.
type RuleSummary struct {
	ID          string `json:"id"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// RulesResponse is the GET /api/v1/rules body.
type RulesResponse struct {
	CatalogVersion string        `json:"catalog_version"`
	Rules          []RuleSummary `json:"rules"`
}

// ScanSummary is one persisted scan in a listing; the input text is omitted.
type ScanSummary struct {
	CreatedAt     time.Time `json:"created_at"`
	ID            string    `json:"id"`
	Category      string    `json:"category"`
	RiskLevel     string    `json:"risk_level"`
	Jurisdictions []string  `json:"jurisdictions"`
	Score         int       `json:"score"`
	Issues        int       `json:"issues"`
}

// ScansResponse is the GET /api/v1/scans body.
type ScansResponse struct {
	Scans []ScanSummary `json:"scans"`
}

func toScanSummaries(scans []*model.ScanRecord) []ScanSummary {
	summaries := make([]ScanSummary, 0, len(scans))
	for _, scan := range scans {
		summary := ScanSummary{
			ID:        scan.ID,
			CreatedAt: scan.CreatedAt,
			Category:  string(scan.Category),
			RiskLevel: scan.RiskLevel,
			Score:     scan.Score,
		}
		for _, j := range scan.Jurisdictions {
			summary.Jurisdictions = append(summary.Jurisdictions, string(j))
		}
		if scan.Report != nil {
			summary.Issues = scan.Report.Issues.Total()
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
