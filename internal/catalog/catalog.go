// Package catalog is the static registry of compliance rules, keyed by
// product category and jurisdiction. The catalog is built once at startup and
// read-only afterwards, so it is safe to share across concurrent checks.
package catalog

import (
	"fmt"

	"github.com/mwhitford/labelguard/internal/common"
	"github.com/mwhitford/labelguard/internal/model"
)

// Version identifies the rule set revision baked into this build.
const Version = "2026.08"

// Catalog resolves the applicable rules for a (category, jurisdiction) pair.
type Catalog struct {
	byID     map[string]model.Rule
	resolved map[model.Category]map[model.Jurisdiction][]model.Rule
}

// New builds the catalog from the compiled-in rule tables. Every registered
// (category, jurisdiction) pair resolves to a non-empty, deterministically
// ordered rule list; New panics if the tables violate that invariant, since
// that is a programming error in the tables themselves.
func New() *Catalog {
	c := &Catalog{
		byID:     make(map[string]model.Rule),
		resolved: make(map[model.Category]map[model.Jurisdiction][]model.Rule),
	}

	for _, category := range model.Categories() {
		c.resolved[category] = make(map[model.Jurisdiction][]model.Rule)
		for _, jurisdiction := range model.Jurisdictions() {
			rules := resolve(category, jurisdiction)
			if len(rules) == 0 {
				panic(fmt.Sprintf("catalog: no rules for %s/%s", category, jurisdiction))
			}
			c.resolved[category][jurisdiction] = rules

			for _, rule := range rules {
				if existing, ok := c.byID[rule.ID]; ok && existing.Description != rule.Description {
					panic(fmt.Sprintf("catalog: rule ID %s reused with different content", rule.ID))
				}
				c.byID[rule.ID] = rule
			}
		}
	}

	return c
}

// resolve assembles the ordered rule list for one pair: common rules first,
// then jurisdiction-specific, then category-specific. The order carries no
// scoring weight; it only fixes report ordering.
func resolve(category model.Category, jurisdiction model.Jurisdiction) []model.Rule {
	var rules []model.Rule
	for _, rule := range commonRules {
		if appliesTo(rule, category) {
			rules = append(rules, rule)
		}
	}
	for _, rule := range jurisdictionRules[jurisdiction] {
		if appliesTo(rule, category) {
			rules = append(rules, rule)
		}
	}
	rules = append(rules, categoryRules[category]...)
	return rules
}

func appliesTo(rule model.Rule, category model.Category) bool {
	return rule.Category == "" || rule.Category == category
}

// RulesFor returns the ordered rule list for a (category, jurisdiction) pair.
func (c *Catalog) RulesFor(category model.Category, jurisdiction model.Jurisdiction) ([]model.Rule, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownCategory, category)
	}
	if !jurisdiction.Valid() {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownJurisdiction, jurisdiction)
	}
	return c.resolved[category][jurisdiction], nil
}

// Rule looks up a rule by its stable ID.
func (c *Catalog) Rule(id string) (model.Rule, bool) {
	rule, ok := c.byID[id]
	return rule, ok
}
