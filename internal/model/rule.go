// Package model defines the core data structures for the labelguard application.
package model

// Category identifies a regulated product category.
type Category string

// Product categories supported by the rule catalog.
const (
	CategoryToys      Category = "Toys"
	CategoryBaby      Category = "Baby Products"
	CategoryCosmetics Category = "Cosmetics"
)

// Categories lists every supported category in catalog order.
func Categories() []Category {
	return []Category{CategoryToys, CategoryBaby, CategoryCosmetics}
}

// Valid reports whether the category is one of the supported values.
func (c Category) Valid() bool {
	switch c {
	case CategoryToys, CategoryBaby, CategoryCosmetics:
		return true
	}
	return false
}

// Jurisdiction identifies a regulatory region with its own rule subset.
type Jurisdiction string

// Target jurisdictions supported by the rule catalog.
const (
	JurisdictionUSA     Jurisdiction = "USA"
	JurisdictionUK      Jurisdiction = "UK"
	JurisdictionGermany Jurisdiction = "Germany"
)

// Jurisdictions lists every supported jurisdiction in catalog order.
func Jurisdictions() []Jurisdiction {
	return []Jurisdiction{JurisdictionUSA, JurisdictionUK, JurisdictionGermany}
}

// Valid reports whether the jurisdiction is one of the supported values.
func (j Jurisdiction) Valid() bool {
	switch j {
	case JurisdictionUSA, JurisdictionUK, JurisdictionGermany:
		return true
	}
	return false
}

// Severity ranks a rule's impact on the compliance score.
type Severity string

// Severity levels, highest impact first.
const (
	SeverityCritical       Severity = "Critical"
	SeverityWarning        Severity = "Warning"
	SeverityRecommendation Severity = "Recommendation"
)

// DetectionKind selects the evaluation strategy for a rule.
type DetectionKind string

// The closed set of detection strategies.
const (
	// DetectPhrasePresence passes when any required phrase appears in the text.
	DetectPhrasePresence DetectionKind = "phrase_presence"
	// DetectPhraseAbsence passes when none of the forbidden phrases appear.
	DetectPhraseAbsence DetectionKind = "phrase_absence"
	// DetectCertification passes when a recognized certification mark appears
	// as a whole token.
	DetectCertification DetectionKind = "certification"
	// DetectNumericField passes when a structured field (weight, batch number)
	// was extracted from the text.
	DetectNumericField DetectionKind = "numeric_field"
	// DetectConditional wraps another detection that only applies when a
	// trigger condition holds; when the condition does not hold the rule
	// passes trivially.
	DetectConditional DetectionKind = "conditional"
)

// NumericField names a structured field required by a DetectNumericField rule.
type NumericField string

// Structured fields a rule can require.
const (
	FieldWeight      NumericField = "weight"
	FieldBatchNumber NumericField = "batch_number"
)

// Condition gates a conditional detection. All set fields must hold for the
// wrapped detection to apply.
type Condition struct {
	// Category restricts the rule to one category. Catalog scoping already
	// guarantees this for category-specific rule sets; it exists for shared
	// rules with category-dependent sub-requirements.
	Category Category
	// AnyPhrase restricts the rule to labels mentioning one of these phrases.
	AnyPhrase []string
}

// Detection specifies how a rule is tested against label text. Exactly the
// fields relevant to Kind are set; the evaluator switches exhaustively on Kind.
type Detection struct {
	Then      *Detection
	Kind      DetectionKind
	Field     NumericField
	Phrases   []string
	Marks     []string
	Condition Condition
}

// Rule is a single immutable compliance requirement. Rules are loaded into the
// catalog at startup and never mutated afterwards.
type Rule struct {
	// ID is a stable, globally unique identifier. Rules shared across
	// jurisdictions keep the same ID so the engine can deduplicate them.
	ID string
	// Category is empty for rules that apply to every category.
	Category Category
	// Jurisdiction is empty for rules that apply in every jurisdiction.
	Jurisdiction   Jurisdiction
	Severity       Severity
	Description    string
	Recommendation string
	Detection      Detection
}
