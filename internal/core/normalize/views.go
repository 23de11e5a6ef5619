package normalize

import "unicode"

// Views holds the projections of one utterance the engine needs
type Views struct {
	Base    string // Normalize output; fuzzy rules match on this
	Keyword string // Base without apostrophes and punctuation; phrases are scanned on this
	Entity  string // Lower output; entities are extracted from this so names keep their accents
}

// BuildViews normalizes raw and derives the keyword projection
func (n *Normalizer) BuildViews(raw string) Views {
	base := n.Normalize(raw)
	return Views{Base: base, Keyword: KeywordForm(base), Entity: n.Lower(raw)}
}

// KeywordForm drops apostrophes so "don't" reads "dont", and turns any other
// punctuation into a space. Letters, digits and spaces pass through
func KeywordForm(s string) string {
	if s == "" {
		return s
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r == '\'' || r == '’' || r == '`':
			continue
		case unicode.IsLetter(r), unicode.IsDigit(r):
			out = append(out, r)
		default:
			out = append(out, ' ')
		}
	}
	return collapseSpaces(string(out))
}
