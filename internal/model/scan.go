package model

import "time"

// ScanRecord is a persisted compliance check: the input that was checked plus
// the report it produced. The caller supplies ID and CreatedAt so that the
// engine itself stays free of clocks and randomness.
type ScanRecord struct {
	CreatedAt     time.Time         `json:"created_at"`
	Report        *ComplianceReport `json:"report"`
	ID            string            `json:"id"`
	Text          string            `json:"text"`
	RiskLevel     string            `json:"risk_level"`
	Category      Category          `json:"category"`
	Jurisdictions []Jurisdiction    `json:"jurisdictions"`
	Score         int               `json:"score"`
}
