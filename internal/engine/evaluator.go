// Package engine implements the compliance-rule evaluation engine: it applies
// the catalog's rules to extracted label text and aggregates the verdicts into
// a scored report.
package engine

import (
	"fmt"
	"strings"

	"github.com/mwhitford/labelguard/internal/model"
	"github.com/mwhitford/labelguard/internal/textmatch"
)

// insufficientTextMessage is the verdict message for labels whose text is
// empty or whitespace-only. Such labels fail every rule at Critical severity;
// an unreadable label is itself a compliance failure, not a system error.
const insufficientTextMessage = "insufficient label text"

// Evaluator applies one rule at a time against label text and the structured
// fields already extracted from it. It is stateless and safe for concurrent
// use.
type Evaluator struct{}

// Evaluate produces the verdict for a single rule. It always terminates with
// a verdict; malformed input degrades to a failed verdict, never an error.
func (Evaluator) Evaluate(rule model.Rule, text string, category model.Category, info model.ExtractedInfo) model.Verdict {
	if strings.TrimSpace(text) == "" {
		return model.Verdict{
			RuleID:   rule.ID,
			Passed:   false,
			Severity: model.SeverityCritical,
			Message:  insufficientTextMessage,
		}
	}

	verdict := evaluateDetection(rule.Detection, text, category, info)
	verdict.RuleID = rule.ID
	verdict.Severity = rule.Severity
	return verdict
}

// evaluateDetection dispatches on the detection strategy. The switch is
// exhaustive over model.DetectionKind; an unknown kind fails closed.
func evaluateDetection(d model.Detection, text string, category model.Category, info model.ExtractedInfo) model.Verdict {
	switch d.Kind {
	case model.DetectPhrasePresence:
		snippet, found := textmatch.ContainsAny(text, d.Phrases)
		if found {
			return model.Verdict{Passed: true, Evidence: snippet, Message: fmt.Sprintf("found %q", snippet)}
		}
		return model.Verdict{Passed: false, Message: "required phrase not found"}

	case model.DetectPhraseAbsence:
		snippet, found := textmatch.ContainsAny(text, d.Phrases)
		if found {
			return model.Verdict{Passed: false, Evidence: snippet, Message: fmt.Sprintf("forbidden phrase %q present", snippet)}
		}
		return model.Verdict{Passed: true, Message: "no forbidden phrases present"}

	case model.DetectCertification:
		mark, found := textmatch.ContainsCertificationMark(text, d.Marks)
		if found {
			return model.Verdict{Passed: true, Evidence: mark, Message: fmt.Sprintf("certification mark %s present", mark)}
		}
		return model.Verdict{Passed: false, Message: fmt.Sprintf("no recognized certification mark (%s)", strings.Join(d.Marks, ", "))}

	case model.DetectNumericField:
		return evaluateNumericField(d.Field, info)

	case model.DetectConditional:
		if !conditionHolds(d.Condition, text, category) {
			return model.Verdict{Passed: true, Message: "not applicable"}
		}
		if d.Then == nil {
			return model.Verdict{Passed: false, Message: "misconfigured conditional rule"}
		}
		return evaluateDetection(*d.Then, text, category, info)
	}

	return model.Verdict{Passed: false, Message: fmt.Sprintf("unknown detection strategy %q", d.Kind)}
}

func evaluateNumericField(field model.NumericField, info model.ExtractedInfo) model.Verdict {
	switch field {
	case model.FieldWeight:
		if info.Weight != nil {
			return model.Verdict{
				Passed:   true,
				Evidence: fmt.Sprintf("%g %s", info.Weight.Value, info.Weight.Unit),
				Message:  "net quantity declared",
			}
		}
		return model.Verdict{Passed: false, Message: "no net quantity declaration found"}

	case model.FieldBatchNumber:
		if info.BatchNumber != nil {
			return model.Verdict{
				Passed:   true,
				Evidence: *info.BatchNumber,
				Message:  "batch or lot number declared",
			}
		}
		return model.Verdict{Passed: false, Message: "no batch or lot number found"}
	}

	return model.Verdict{Passed: false, Message: fmt.Sprintf("unknown numeric field %q", field)}
}

// conditionHolds reports whether a conditional rule applies to this label.
func conditionHolds(cond model.Condition, text string, category model.Category) bool {
	if cond.Category != "" && cond.Category != category {
		return false
	}
	if len(cond.AnyPhrase) > 0 {
		if _, found := textmatch.ContainsAny(text, cond.AnyPhrase); !found {
			return false
		}
	}
	return true
}
