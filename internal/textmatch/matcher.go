// Package textmatch provides the low-level text predicates used by rule
// detection: phrase presence, certification mark detection, and numeric field
// extraction. All functions are pure and safe for concurrent use.
package textmatch

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Fold normalizes text for matching: lowercased, with every dash variant
// (hyphen, en dash, em dash, minus) mapped to a plain hyphen.
func Fold(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '‐', '‑', '‒', '–', '—', '−':
			return '-'
		}
		return unicode.ToLower(r)
	}, text)
}

// ContainsAny reports whether any of the phrases appears in the text,
// case-insensitively and tolerating dash variants. It returns the matched
// snippet (in folded form), or "" when nothing matched.
func ContainsAny(text string, phrases []string) (string, bool) {
	folded := Fold(text)
	for _, phrase := range phrases {
		if phrase == "" {
			continue
		}
		fp := Fold(phrase)
		if idx := strings.Index(folded, fp); idx >= 0 {
			return folded[idx : idx+len(fp)], true
		}
	}
	return "", false
}

// ContainsCertificationMark looks for any of the known certification marks
// as a whole token: the characters immediately before and after the match
// must not be alphanumeric, so "CE" never matches inside "CERTAIN".
// It returns the first mark found, in mark-list order.
func ContainsCertificationMark(text string, marks []string) (string, bool) {
	folded := Fold(text)
	for _, mark := range marks {
		if mark == "" {
			continue
		}
		if containsToken(folded, Fold(mark)) {
			return mark, true
		}
	}
	return "", false
}

// containsToken reports whether needle occurs in haystack bounded by
// non-alphanumeric characters on both sides.
func containsToken(haystack, needle string) bool {
	start := 0
	for {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(needle)
		if boundaryBefore(haystack, idx) && boundaryAfter(haystack, end) {
			return true
		}
		start = idx + 1
	}
}

func boundaryBefore(s string, idx int) bool {
	if idx == 0 {
		return true
	}
	return !isAlphanumeric(s[idx-1])
}

func boundaryAfter(s string, idx int) bool {
	if idx >= len(s) {
		return true
	}
	return !isAlphanumeric(s[idx])
}

func isAlphanumeric(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// weightRe matches quantity declarations like "250g", "Net Weight: 250 g",
// "15kg", "1.5 l", "8 oz". The unit alternatives are ordered longest-first so
// "lbs" wins over "lb" and "milliliters" over "ml".
var weightRe = regexp.MustCompile(`(?i)\b(\d+(?:[.,]\d+)?)\s*(kilograms?|milliliters?|millilitres?|liters?|litres?|grams?|ounces?|pounds?|kgs?|ml|lbs?|oz|g|l)\b`)

// canonicalUnits maps recognized unit spellings to the canonical set
// {g, kg, ml, l, oz, lb}.
var canonicalUnits = map[string]string{
	"g": "g", "gram": "g", "grams": "g",
	"kg": "kg", "kgs": "kg", "kilogram": "kg", "kilograms": "kg",
	"ml": "ml", "milliliter": "ml", "milliliters": "ml", "millilitre": "ml", "millilitres": "ml",
	"l": "l", "liter": "l", "liters": "l", "litre": "l", "litres": "l",
	"oz": "oz", "ounce": "oz", "ounces": "oz",
	"lb": "lb", "lbs": "lb", "pound": "lb", "pounds": "lb",
}

// WeightMatch is a numeric quantity with its canonical unit and the snippet
// it was parsed from.
type WeightMatch struct {
	Unit    string
	Snippet string
	Value   float64
}

// ExtractWeight finds the first weight or volume declaration in the text.
func ExtractWeight(text string) (WeightMatch, bool) {
	m := weightRe.FindStringSubmatch(text)
	if m == nil {
		return WeightMatch{}, false
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return WeightMatch{}, false
	}

	unit, ok := canonicalUnits[strings.ToLower(m[2])]
	if !ok {
		return WeightMatch{}, false
	}

	return WeightMatch{Value: value, Unit: unit, Snippet: m[0]}, true
}

// batchRe matches batch and lot declarations like "Batch: A123", "LOT NO.
// 44-B7" or "Batch#X99". The captured token is alphanumeric with interior
// hyphens or slashes.
var batchRe = regexp.MustCompile(`(?i)\b(?:batch|lot)(?:\s*(?:no|nr|number))?\.?\s*[:#]?\s*([A-Za-z0-9][A-Za-z0-9\-/]*)`)

// batchStopWords are captures that indicate the label text talked about
// batches without actually declaring one.
var batchStopWords = map[string]struct{}{
	"number": {}, "no": {}, "nr": {}, "code": {}, "of": {}, "and": {}, "the": {},
}

// ExtractBatchNumber finds the first batch or lot number declaration.
func ExtractBatchNumber(text string) (string, bool) {
	m := batchRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	if _, stop := batchStopWords[strings.ToLower(m[1])]; stop {
		return "", false
	}
	return m[1], true
}
