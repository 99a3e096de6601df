package textmatch

// KnownCertificationMarks is the fixed vocabulary of certification tokens
// recognized anywhere in label text, in display order.
var KnownCertificationMarks = []string{
	"CE",
	"UKCA",
	"ASTM F963",
	"EN 71",
	"CPSIA",
	"ISO 8124",
	"FDA",
	"GS",
	"TUV",
}

// FindCertificationMarks returns every known certification mark present in
// the text as a whole token, in vocabulary order.
func FindCertificationMarks(text string) []string {
	folded := Fold(text)

	var found []string
	for _, mark := range KnownCertificationMarks {
		if containsToken(folded, Fold(mark)) {
			found = append(found, mark)
		}
	}
	return found
}
