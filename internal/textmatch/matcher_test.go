package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsAny(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantSnippet string
		phrases     []string
		wantFound   bool
	}{
		{
			name:        "exact match",
			text:        "WARNING: Choking hazard - small parts.",
			phrases:     []string{"choking hazard"},
			wantSnippet: "choking hazard",
			wantFound:   true,
		},
		{
			name:        "case insensitive",
			text:        "CHOKING HAZARD",
			phrases:     []string{"Choking Hazard"},
			wantSnippet: "choking hazard",
			wantFound:   true,
		},
		{
			name:        "en dash treated as hyphen",
			text:        "Suitable for 0–36 months",
			phrases:     []string{"0-36 months"},
			wantSnippet: "0-36 months",
			wantFound:   true,
		},
		{
			name:      "no match",
			text:      "A plain label",
			phrases:   []string{"choking hazard", "small parts"},
			wantFound: false,
		},
		{
			name:        "second phrase matches",
			text:        "Contains small parts.",
			phrases:     []string{"choking hazard", "small parts"},
			wantSnippet: "small parts",
			wantFound:   true,
		},
		{
			name:      "empty phrase list",
			text:      "anything",
			phrases:   nil,
			wantFound: false,
		},
		{
			name:      "empty phrase skipped",
			text:      "anything",
			phrases:   []string{""},
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snippet, found := ContainsAny(tt.text, tt.phrases)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantSnippet, snippet)
			} else {
				assert.Empty(t, snippet)
			}
		})
	}
}

func TestContainsCertificationMark(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantMark  string
		marks     []string
		wantFound bool
	}{
		{
			name:      "whole token match",
			text:      "CE certified product",
			marks:     []string{"CE"},
			wantMark:  "CE",
			wantFound: true,
		},
		{
			name:      "not a substring of another word",
			text:      "a CERTAIN product",
			marks:     []string{"CE"},
			wantFound: false,
		},
		{
			name:      "mark followed by word",
			text:      "UKCA Marking applied",
			marks:     []string{"UKCA"},
			wantMark:  "UKCA",
			wantFound: true,
		},
		{
			name:      "multi token mark",
			text:      "Tested to ASTM F963-17.",
			marks:     []string{"ASTM F963"},
			wantMark:  "ASTM F963",
			wantFound: true,
		},
		{
			name:      "lowercase text",
			text:      "conforms to ukca requirements",
			marks:     []string{"UKCA"},
			wantMark:  "UKCA",
			wantFound: true,
		},
		{
			name:      "first mark in list order wins",
			text:      "CE and UKCA",
			marks:     []string{"UKCA", "CE"},
			wantMark:  "UKCA",
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mark, found := ContainsCertificationMark(tt.text, tt.marks)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantMark, mark)
		})
	}
}

func TestExtractWeight(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantUnit  string
		wantValue float64
		wantFound bool
	}{
		{name: "compact grams", text: "250g", wantValue: 250, wantUnit: "g", wantFound: true},
		{name: "labeled net weight", text: "Net Weight: 250 g", wantValue: 250, wantUnit: "g", wantFound: true},
		{name: "kilograms", text: "0-36 months, max 15kg", wantValue: 15, wantUnit: "kg", wantFound: true},
		{name: "decimal litres", text: "Contents: 1.5 litres", wantValue: 1.5, wantUnit: "l", wantFound: true},
		{name: "comma decimal", text: "1,5 kg", wantValue: 1.5, wantUnit: "kg", wantFound: true},
		{name: "ounces spelled out", text: "8 ounces of product", wantValue: 8, wantUnit: "oz", wantFound: true},
		{name: "pounds abbreviated", text: "max 30 lbs", wantValue: 30, wantUnit: "lb", wantFound: true},
		{name: "millilitres", text: "500ml", wantValue: 500, wantUnit: "ml", wantFound: true},
		{name: "no weight", text: "no quantity here", wantFound: false},
		{name: "bare number", text: "made of 100 pieces", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractWeight(tt.text)
			require.Equal(t, tt.wantFound, found)
			if found {
				assert.Equal(t, tt.wantValue, got.Value)
				assert.Equal(t, tt.wantUnit, got.Unit)
				assert.NotEmpty(t, got.Snippet)
			}
		})
	}
}

func TestExtractBatchNumber(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      string
		wantFound bool
	}{
		{name: "batch with colon", text: "Batch: A1234", want: "A1234", wantFound: true},
		{name: "lot number", text: "LOT NO. 44-B7", want: "44-B7", wantFound: true},
		{name: "batch with hash", text: "Batch#X99", want: "X99", wantFound: true},
		{name: "lowercase lot", text: "lot 2024/08", want: "2024/08", wantFound: true},
		{name: "lot as a plain word", text: "a lot of fun", wantFound: false},
		{name: "no declaration", text: "nothing to see", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractBatchNumber(tt.text)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindCertificationMarks(t *testing.T) {
	marks := FindCertificationMarks("UKCA and CE marked, tested to ASTM F963")
	assert.Equal(t, []string{"CE", "UKCA", "ASTM F963"}, marks)

	assert.Nil(t, FindCertificationMarks("uncertified product"))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "0-36 months", Fold("0–36 MONTHS"))
	assert.Equal(t, "non-toxic", Fold("Non—Toxic"))
}
