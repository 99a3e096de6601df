package model

// DefaultProductName is used when no product name could be extracted.
const DefaultProductName = "Unknown Product"

// Verdict is the outcome of evaluating one rule against one label. Verdicts
// are created once per rule per check and never mutated.
type Verdict struct {
	RuleID   string   `json:"rule_id"`
	Message  string   `json:"message"`
	Evidence string   `json:"evidence,omitempty"`
	Severity Severity `json:"severity"`
	Passed   bool     `json:"passed"`
}

// Weight is a net quantity extracted from label text, unit normalized to one
// of g, kg, ml, l, oz, lb.
type Weight struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// ExtractedInfo holds best-effort structured fields pulled from label text.
// Every field is optional; absence is nil, never an error.
type ExtractedInfo struct {
	BatchNumber    *string  `json:"batchNumber"`
	Weight         *Weight  `json:"weight"`
	Manufacturer   *string  `json:"manufacturer"`
	Ingredients    []string `json:"ingredients"`
	Warnings       []string `json:"warnings"`
	Certifications []string `json:"certifications"`
}

// IssueBuckets groups failed-rule descriptions by severity. Each failed rule
// appears in exactly one bucket, in catalog order.
type IssueBuckets struct {
	Critical       []string `json:"Critical"`
	Warning        []string `json:"Warning"`
	Recommendation []string `json:"Recommendation"`
}

// Total returns the number of issues across all buckets.
func (b IssueBuckets) Total() int {
	return len(b.Critical) + len(b.Warning) + len(b.Recommendation)
}

// ComplianceReport is the aggregate output of one compliance check. It is
// created fresh per request and never mutated after construction.
type ComplianceReport struct {
	ProductName     string        `json:"productName"`
	Issues          IssueBuckets  `json:"issues"`
	Recommendations []string      `json:"recommendations"`
	ExtractedInfo   ExtractedInfo `json:"extractedInfo"`
	ComplianceScore int           `json:"complianceScore"`
}

// CheckRequest is the input to one compliance check: normalized label text
// plus the product category and target jurisdictions.
type CheckRequest struct {
	Text          string         `json:"text"`
	Category      Category       `json:"category"`
	Jurisdictions []Jurisdiction `json:"jurisdictions"`
}
