// Package normalize turns raw transcripts into the form the intent engine matches on.
// Pipeline order
// 1 Sanitize controls and invalid UTF-8
// 2 NFKD so accents split into base letter plus combining mark
// 3 Case folding
// 4 Remove combining marks and format runes (ZWJ, ZWNJ, BOM)
// 5 Width fold fullwidth to ASCII, recompose with NFC
// 6 Collapse every whitespace run to one space and trim
//
// Digits and letters are never substituted so seat numbers and OTPs survive.
// Lower is the gentler form entities are read from: case and spacing change, accents stay
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is safe for concurrent use; transformer chains are pooled
type Normalizer struct{}

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
			norm.NFC,
		)
	},
}

var lowerPool = sync.Pool{
	New: func() any { return transform.Chain(cases.Lower(language.Und), norm.NFC) },
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the normalized form of s
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ns = strings.ToLower(s)
	}
	return collapseSpaces(ns)
}

// collapseSpaces converts whitespace runs, line breaks included, to a single space and trims
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Lower lower-cases s and collapses whitespace, keeping every letter as written
// ("José García" reads "josé garcía")
func (n *Normalizer) Lower(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := lowerPool.Get().(transform.Transformer)
	ls, _, err := transform.String(tr, s)
	tr.Reset()
	lowerPool.Put(tr)
	if err != nil {
		ls = strings.ToLower(s)
	}
	return collapseSpaces(ls)
}
