package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwhitford/labelguard/internal/model"
)

func TestEvaluator_PhrasePresence(t *testing.T) {
	rule := model.Rule{
		ID:       "test.phrase",
		Severity: model.SeverityWarning,
		Detection: model.Detection{
			Kind:    model.DetectPhrasePresence,
			Phrases: []string{"choking hazard"},
		},
	}

	var ev Evaluator

	verdict := ev.Evaluate(rule, "WARNING: Choking hazard", model.CategoryToys, model.ExtractedInfo{})
	assert.True(t, verdict.Passed)
	assert.Equal(t, "test.phrase", verdict.RuleID)
	assert.Equal(t, model.SeverityWarning, verdict.Severity)
	assert.Equal(t, "choking hazard", verdict.Evidence)

	verdict = ev.Evaluate(rule, "a plain label", model.CategoryToys, model.ExtractedInfo{})
	assert.False(t, verdict.Passed)
	assert.Empty(t, verdict.Evidence)
	assert.Equal(t, "required phrase not found", verdict.Message)
}

func TestEvaluator_PhraseAbsence(t *testing.T) {
	rule := model.Rule{
		ID:       "test.absence",
		Severity: model.SeverityWarning,
		Detection: model.Detection{
			Kind:    model.DetectPhraseAbsence,
			Phrases: []string{"cures", "heals"},
		},
	}

	var ev Evaluator

	verdict := ev.Evaluate(rule, "gentle moisturizer", model.CategoryCosmetics, model.ExtractedInfo{})
	assert.True(t, verdict.Passed)

	verdict = ev.Evaluate(rule, "this cream heals eczema", model.CategoryCosmetics, model.ExtractedInfo{})
	assert.False(t, verdict.Passed)
	assert.Equal(t, "heals", verdict.Evidence)
}

func TestEvaluator_Certification(t *testing.T) {
	rule := model.Rule{
		ID:       "test.cert",
		Severity: model.SeverityCritical,
		Detection: model.Detection{
			Kind:  model.DetectCertification,
			Marks: []string{"UKCA"},
		},
	}

	var ev Evaluator

	verdict := ev.Evaluate(rule, "UKCA Marking", model.CategoryBaby, model.ExtractedInfo{})
	assert.True(t, verdict.Passed)
	assert.Equal(t, "UKCA", verdict.Evidence)

	verdict = ev.Evaluate(rule, "no marks here", model.CategoryBaby, model.ExtractedInfo{})
	assert.False(t, verdict.Passed)
	assert.Contains(t, verdict.Message, "UKCA")
}

func TestEvaluator_NumericField(t *testing.T) {
	weightRule := model.Rule{
		ID:        "test.weight",
		Severity:  model.SeverityWarning,
		Detection: model.Detection{Kind: model.DetectNumericField, Field: model.FieldWeight},
	}
	batchRule := model.Rule{
		ID:        "test.batch",
		Severity:  model.SeverityWarning,
		Detection: model.Detection{Kind: model.DetectNumericField, Field: model.FieldBatchNumber},
	}

	var ev Evaluator
	batch := "A123"
	info := model.ExtractedInfo{
		Weight:      &model.Weight{Value: 15, Unit: "kg"},
		BatchNumber: &batch,
	}

	assert.True(t, ev.Evaluate(weightRule, "max 15kg", model.CategoryBaby, info).Passed)
	assert.True(t, ev.Evaluate(batchRule, "Batch: A123", model.CategoryBaby, info).Passed)

	assert.False(t, ev.Evaluate(weightRule, "text", model.CategoryBaby, model.ExtractedInfo{}).Passed)
	assert.False(t, ev.Evaluate(batchRule, "text", model.CategoryBaby, model.ExtractedInfo{}).Passed)
}

func TestEvaluator_Conditional(t *testing.T) {
	rule := model.Rule{
		ID:       "test.conditional",
		Severity: model.SeverityWarning,
		Detection: model.Detection{
			Kind: model.DetectConditional,
			Condition: model.Condition{
				AnyPhrase: []string{"assembly"},
			},
			Then: &model.Detection{
				Kind:    model.DetectPhrasePresence,
				Phrases: []string{"instructions"},
			},
		},
	}

	var ev Evaluator

	// Condition not triggered: the rule does not apply and passes.
	verdict := ev.Evaluate(rule, "a ready-to-use product", model.CategoryBaby, model.ExtractedInfo{})
	assert.True(t, verdict.Passed)
	assert.Equal(t, "not applicable", verdict.Message)

	// Condition triggered, requirement met.
	verdict = ev.Evaluate(rule, "Adult assembly required, follow the instructions", model.CategoryBaby, model.ExtractedInfo{})
	assert.True(t, verdict.Passed)

	// Condition triggered, requirement missing.
	verdict = ev.Evaluate(rule, "some assembly required", model.CategoryBaby, model.ExtractedInfo{})
	assert.False(t, verdict.Passed)
}

func TestEvaluator_ConditionalCategoryGate(t *testing.T) {
	rule := model.Rule{
		ID:       "test.categorygate",
		Severity: model.SeverityWarning,
		Detection: model.Detection{
			Kind:      model.DetectConditional,
			Condition: model.Condition{Category: model.CategoryToys},
			Then: &model.Detection{
				Kind:    model.DetectPhrasePresence,
				Phrases: []string{"choking hazard"},
			},
		},
	}

	var ev Evaluator

	assert.True(t, ev.Evaluate(rule, "a cream", model.CategoryCosmetics, model.ExtractedInfo{}).Passed)
	assert.False(t, ev.Evaluate(rule, "a toy", model.CategoryToys, model.ExtractedInfo{}).Passed)
}

func TestEvaluator_EmptyTextFailsCritical(t *testing.T) {
	rule := model.Rule{
		ID:       "test.recommendation",
		Severity: model.SeverityRecommendation,
		Detection: model.Detection{
			Kind:    model.DetectPhrasePresence,
			Phrases: []string{"made in"},
		},
	}

	var ev Evaluator

	for _, text := range []string{"", "   ", "\n\t"} {
		verdict := ev.Evaluate(rule, text, model.CategoryToys, model.ExtractedInfo{})
		assert.False(t, verdict.Passed)
		// Unreadable labels escalate every rule to Critical.
		assert.Equal(t, model.SeverityCritical, verdict.Severity)
		assert.Equal(t, insufficientTextMessage, verdict.Message)
	}
}

func TestEvaluator_UnknownKindFailsClosed(t *testing.T) {
	rule := model.Rule{
		ID:        "test.unknown",
		Severity:  model.SeverityWarning,
		Detection: model.Detection{Kind: "bogus"},
	}

	var ev Evaluator
	verdict := ev.Evaluate(rule, "some text", model.CategoryToys, model.ExtractedInfo{})
	assert.False(t, verdict.Passed)
}
