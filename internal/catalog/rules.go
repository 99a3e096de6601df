package catalog

import "github.com/mwhitford/labelguard/internal/model"

// commonRules apply in every jurisdiction. They keep the same ID in every
// resolved set so the engine evaluates them once per check even when multiple
// jurisdictions are targeted.
var commonRules = []model.Rule{
	{
		ID:             "common.manufacturer",
		Severity:       model.SeverityCritical,
		Description:    "Manufacturer identification",
		Recommendation: "Add the manufacturer's name and contact details, e.g. \"Manufacturer: Acme Toys Ltd, 1 Example Street\".",
		Detection: model.Detection{
			Kind: model.DetectPhrasePresence,
			Phrases: []string{
				"manufacturer", "manufactured by", "made by", "distributed by",
				"hergestellt von", "inc.", "ltd", "llc", "gmbh",
			},
		},
	},
	{
		ID:             "common.batch",
		Severity:       model.SeverityWarning,
		Description:    "Batch or lot traceability",
		Recommendation: "Add a batch or lot number, e.g. \"Batch: A1234\", so individual production runs can be traced and recalled.",
		Detection: model.Detection{
			Kind:  model.DetectNumericField,
			Field: model.FieldBatchNumber,
		},
	},
	{
		ID:             "common.netquantity",
		Severity:       model.SeverityWarning,
		Description:    "Net quantity declaration",
		Recommendation: "Declare the net quantity with a unit, e.g. \"Net Weight: 250g\" or \"500ml\".",
		Detection: model.Detection{
			Kind:  model.DetectNumericField,
			Field: model.FieldWeight,
		},
	},
	{
		ID:             "common.origin",
		Severity:       model.SeverityRecommendation,
		Description:    "Country of origin",
		Recommendation: "State the country of origin, e.g. \"Made in Germany\".",
		Detection: model.Detection{
			Kind: model.DetectPhrasePresence,
			Phrases: []string{
				"made in", "country of origin", "produced in", "hergestellt in",
			},
		},
	},
}

// jurisdictionRules carry region-specific requirements. A rule with a
// non-empty Category only joins that category's resolved set.
var jurisdictionRules = map[model.Jurisdiction][]model.Rule{
	model.JurisdictionUSA: {
		{
			ID:             "usa.toys.astm",
			Category:       model.CategoryToys,
			Severity:       model.SeverityCritical,
			Description:    "ASTM F963 / CPSIA toy safety certification",
			Recommendation: "Certify the toy to ASTM F963 and reference the standard (or CPSIA compliance) on the label.",
			Detection: model.Detection{
				Kind:  model.DetectCertification,
				Marks: []string{"ASTM F963", "CPSIA"},
			},
		},
		{
			ID:             "usa.baby.cpsia",
			Category:       model.CategoryBaby,
			Severity:       model.SeverityCritical,
			Description:    "CPSIA children's product certification",
			Recommendation: "Reference CPSIA compliance on the label; children's products sold in the US require third-party testing.",
			Detection: model.Detection{
				Kind:  model.DetectCertification,
				Marks: []string{"CPSIA", "ASTM F963"},
			},
		},
		{
			ID:             "usa.cosmetics.externaluse",
			Category:       model.CategoryCosmetics,
			Severity:       model.SeverityWarning,
			Description:    "FDA external-use directive",
			Recommendation: "Add the \"For external use only\" directive required by FDA cosmetic labeling rules.",
			Detection: model.Detection{
				Kind:    model.DetectPhrasePresence,
				Phrases: []string{"for external use only", "external use only"},
			},
		},
		{
			ID:             "usa.prop65",
			Severity:       model.SeverityRecommendation,
			Description:    "California Proposition 65 warning",
			Recommendation: "If the product is sold in California, consider a Proposition 65 exposure warning.",
			Detection: model.Detection{
				Kind: model.DetectPhrasePresence,
				Phrases: []string{
					"prop 65", "proposition 65", "this product can expose you",
				},
			},
		},
	},
	model.JurisdictionUK: {
		{
			ID:             "uk.toys.ukca",
			Category:       model.CategoryToys,
			Severity:       model.SeverityCritical,
			Description:    "UKCA conformity marking",
			Recommendation: "Apply the UKCA mark; CE alone no longer satisfies Great Britain toy safety rules.",
			Detection: model.Detection{
				Kind:  model.DetectCertification,
				Marks: []string{"UKCA"},
			},
		},
		{
			ID:             "uk.baby.ukca",
			Category:       model.CategoryBaby,
			Severity:       model.SeverityCritical,
			Description:    "UKCA conformity marking",
			Recommendation: "Apply the UKCA mark; CE alone no longer satisfies Great Britain product safety rules.",
			Detection: model.Detection{
				Kind:  model.DetectCertification,
				Marks: []string{"UKCA"},
			},
		},
		{
			ID:             "uk.responsibleperson",
			Severity:       model.SeverityWarning,
			Description:    "UK responsible person identification",
			Recommendation: "Name a UK-based responsible person with a UK address on the label.",
			Detection: model.Detection{
				Kind: model.DetectPhrasePresence,
				Phrases: []string{
					"responsible person", "united kingdom", "uk address",
				},
			},
		},
	},
	model.JurisdictionGermany: {
		{
			ID:             "germany.toys.ce",
			Category:       model.CategoryToys,
			Severity:       model.SeverityCritical,
			Description:    "CE conformity marking",
			Recommendation: "Apply the CE mark; toys may not be sold in the EU without it.",
			Detection: model.Detection{
				Kind:  model.DetectCertification,
				Marks: []string{"CE"},
			},
		},
		{
			ID:             "germany.baby.ce",
			Category:       model.CategoryBaby,
			Severity:       model.SeverityCritical,
			Description:    "CE conformity marking",
			Recommendation: "Apply the CE mark required for baby products sold in the EU.",
			Detection: model.Detection{
				Kind:  model.DetectCertification,
				Marks: []string{"CE"},
			},
		},
		{
			ID:             "germany.language",
			Severity:       model.SeverityWarning,
			Description:    "German-language safety information",
			Recommendation: "Provide safety warnings in German (e.g. \"Achtung\", \"Warnhinweise\") for products sold in Germany.",
			Detection: model.Detection{
				Kind: model.DetectPhrasePresence,
				Phrases: []string{
					"achtung", "warnung", "warnhinweis", "sicherheitshinweise",
				},
			},
		},
		{
			ID:             "germany.responsibleperson",
			Severity:       model.SeverityWarning,
			Description:    "EU responsible person identification",
			Recommendation: "Name an EU-based responsible person with an EU address on the label.",
			Detection: model.Detection{
				Kind: model.DetectPhrasePresence,
				Phrases: []string{
					"responsible person", "verantwortliche person", "eu address",
				},
			},
		},
		{
			ID:             "germany.cosmetics.expiry",
			Category:       model.CategoryCosmetics,
			Severity:       model.SeverityWarning,
			Description:    "Durability or period-after-opening marking",
			Recommendation: "Add a \"best before\" date or a period-after-opening (PAO) symbol such as \"12M\".",
			Detection: model.Detection{
				Kind: model.DetectPhrasePresence,
				Phrases: []string{
					"best before", "expiry", "exp.", "use by",
					"period after opening", "pao", "mindestens haltbar bis",
					"6m", "12m", "24m", "36m",
				},
			},
		},
	},
}

// categoryRules apply in every jurisdiction for one category.
var categoryRules = map[model.Category][]model.Rule{
	model.CategoryToys: {
		{
			ID:             "toys.choking",
			Category:       model.CategoryToys,
			Severity:       model.SeverityCritical,
			Description:    "Choking hazard warning",
			Recommendation: "Add a choking hazard warning, e.g. \"WARNING: Choking hazard - small parts. Not for children under 3 years.\"",
			Detection: model.Detection{
				Kind: model.DetectPhrasePresence,
				Phrases: []string{
					"choking hazard", "small parts",
					"not suitable for children under 3",
					"not for children under 3",
				},
			},
		},
		{
			ID:             "toys.agegrade",
			Category:       model.CategoryToys,
			Severity:       model.SeverityWarning,
			Description:    "Age grading",
			Recommendation: "State the intended age range, e.g. \"Ages 3+\" or \"36 months and up\".",
			Detection: model.Detection{
				Kind: model.DetectPhrasePresence,
				Phrases: []string{
					"years", "months", "ages", "age 3", "3+", "jahren", "monate",
				},
			},
		},
		{
			ID:             "toys.supervision",
			Category:       model.CategoryToys,
			Severity:       model.SeverityRecommendation,
			Description:    "Adult supervision recommendation",
			Recommendation: "Recommend adult supervision where appropriate, e.g. \"Use under direct adult supervision\".",
			Detection: model.Detection{
				Kind: model.DetectPhrasePresence,
				Phrases: []string{
					"adult supervision", "under supervision", "aufsicht",
				},
			},
		},
	},
	model.CategoryBaby: {
		{
			ID:             "baby.supervision",
			Category:       model.CategoryBaby,
			Severity:       model.SeverityCritical,
			Description:    "Adult supervision notice",
			Recommendation: "Add a supervision notice, e.g. \"Never leave the child unattended\".",
			Detection: model.Detection{
				Kind: model.DetectPhrasePresence,
				Phrases: []string{
					"adult supervision", "never leave", "unattended", "aufsicht",
				},
			},
		},
		{
			ID:             "baby.assembly",
			Category:       model.CategoryBaby,
			Severity:       model.SeverityWarning,
			Description:    "Assembly instructions notice",
			Recommendation: "Products requiring assembly must direct the user to the instructions, e.g. \"Adult assembly required - follow the enclosed instructions\".",
			Detection: model.Detection{
				Kind: model.DetectConditional,
				Condition: model.Condition{
					AnyPhrase: []string{"assembly", "assemble"},
				},
				Then: &model.Detection{
					Kind: model.DetectPhrasePresence,
					Phrases: []string{
						"instructions", "instruction manual", "anleitung",
					},
				},
			},
		},
		{
			ID:             "baby.agelimit",
			Category:       model.CategoryBaby,
			Severity:       model.SeverityWarning,
			Description:    "Age or weight limit declaration",
			Recommendation: "Declare the intended age range and maximum weight, e.g. \"0-36 months, max 15kg\".",
			Detection: model.Detection{
				Kind: model.DetectPhrasePresence,
				Phrases: []string{
					"months", "max", "maximum weight", "weight limit", "monate",
				},
			},
		},
	},
	model.CategoryCosmetics: {
		{
			ID:             "cosmetics.inci",
			Category:       model.CategoryCosmetics,
			Severity:       model.SeverityCritical,
			Description:    "INCI ingredient listing",
			Recommendation: "List all ingredients in descending order using INCI names, introduced by \"Ingredients:\".",
			Detection: model.Detection{
				Kind: model.DetectPhrasePresence,
				Phrases: []string{
					"ingredients:", "ingredients :", "inci",
				},
			},
		},
		{
			ID:             "cosmetics.claims",
			Category:       model.CategoryCosmetics,
			Severity:       model.SeverityWarning,
			Description:    "No medicinal claims",
			Recommendation: "Remove medicinal claims; cosmetics may not claim to cure, heal or prevent disease.",
			Detection: model.Detection{
				Kind: model.DetectPhraseAbsence,
				Phrases: []string{
					"cures", "heals", "prevents disease", "treats disease",
					"medical grade", "clinically proven to cure",
				},
			},
		},
		{
			ID:             "cosmetics.warnings",
			Category:       model.CategoryCosmetics,
			Severity:       model.SeverityRecommendation,
			Description:    "Usage warnings",
			Recommendation: "Add usage warnings where appropriate, e.g. \"Avoid contact with eyes\".",
			Detection: model.Detection{
				Kind: model.DetectPhrasePresence,
				Phrases: []string{
					"warning", "caution", "avoid contact with eyes", "achtung",
				},
			},
		},
	},
}
