package intent

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"voicebooking/internal/core/catalogue"
)

var (
	nameRE       = regexp.MustCompile(`^[a-z]{2,}\s+[a-z]{2,}`)
	seatRE       = regexp.MustCompile(`(?i)(\d{1,2})\s*([a-c])`)
	otpRE        = regexp.MustCompile(`\b\d{6}\b`)
	frontRE      = regexp.MustCompile(`front|forward`)
	backRE       = regexp.MustCompile(`back|rear`)
	wheelchairRE = regexp.MustCompile(`wheelchair|mobility`)
	visualRE     = regexp.MustCompile(`blind|visual|sight`)
	hearingRE    = regexp.MustCompile(`deaf|hearing`)
)

// extractor pulls entities out of normalized input
type extractor struct {
	numberWords  map[string]string
	commandWords []string
}

func newExtractor(p *catalogue.Pack) extractor {
	return extractor{numberWords: p.NumberWords, commandWords: p.CommandWords}
}

// extract runs every entity pattern over in. Later assignments win, so
// "window or aisle" yields aisle and "front or back" yields back
func (x extractor) extract(in string, ctx Context) Entities {
	var e Entities

	if ctx == ContextPassengerInfo {
		if m := nameRE.FindString(in); m != "" {
			e.Name = CapitalizeName(m)
		} else if utf8.RuneCountInString(in) > 2 && !x.isCommand(in) {
			e.Name = CapitalizeName(in)
		}
	}

	e.SeatNumber = NormalizeSeat(in)

	if strings.Contains(in, "window") {
		e.SeatPreference = "window"
	}
	if strings.Contains(in, "aisle") {
		e.SeatPreference = "aisle"
	}
	if strings.Contains(in, "middle") {
		e.SeatPreference = "middle"
	}

	if frontRE.MatchString(in) {
		e.RowPreference = "front"
	}
	if backRE.MatchString(in) {
		e.RowPreference = "back"
	}

	if m := otpRE.FindString(in); m != "" {
		e.OTP = m
	} else if ctx == ContextPayment {
		e.OTP = x.spokenOTP(in)
	}

	if wheelchairRE.MatchString(in) {
		e.Assistance = "wheelchair"
	}
	if visualRE.MatchString(in) {
		e.Assistance = "visual"
	}
	if hearingRE.MatchString(in) {
		e.Assistance = "hearing"
	}
	return e
}

// isCommand reports whether in contains any command word
func (x extractor) isCommand(in string) bool {
	for _, w := range x.commandWords {
		if strings.Contains(in, w) {
			return true
		}
	}
	return false
}

// spokenOTP decodes "one two three four five six" style input. Words outside the
// number table are skipped; anything but exactly six digits yields ""
func (x extractor) spokenOTP(in string) string {
	var b strings.Builder
	for _, w := range strings.Fields(strings.ToLower(in)) {
		if d, ok := x.numberWords[w]; ok {
			b.WriteString(d)
		}
	}
	if b.Len() != 6 {
		return ""
	}
	return b.String()
}

// NormalizeSeat returns the first seat mention in s as row digits plus an
// upper-case letter, e.g. "12 a" -> "12A". Empty when there is none
func NormalizeSeat(s string) string {
	m := seatRE.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1] + strings.ToUpper(m[2])
}

// CapitalizeName upper-cases the first letter of each word and lower-cases the rest.
// Whitespace runs collapse to one space
func CapitalizeName(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
