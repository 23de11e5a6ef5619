package intent

import (
	"regexp"
	"strings"
)

// Rule names reported in Result.Rule
const (
	RuleContextName = "context-name"
	RuleContextSeat = "context-seat"
	RuleContextOTP  = "context-otp"
	RuleKeyword     = "keyword"
	RuleFuzzyWindow = "fuzzy-window"
	RuleFuzzyAisle  = "fuzzy-aisle"
	RuleFuzzyFront  = "fuzzy-front"
)

// utterance is what a rule sees
type utterance struct {
	base     string // normalized input
	keyword  string // keyword view of base
	ctx      Context
	entities Entities
}

type verdict struct {
	intent     Intent
	confidence float64
	rule       string
}

// rule is one classification step. A firm rule that matches ends classification;
// a soft rule replaces the current best only with a strictly higher confidence
type rule struct {
	name  string
	firm  bool
	match func(u *utterance) (Intent, float64, bool)
}

// contextRule fires in ctx when has reports the slot present
func contextRule(name string, ctx Context, has func(Entities) bool, in Intent) rule {
	return rule{name: name, firm: true, match: func(u *utterance) (Intent, float64, bool) {
		if u.ctx == ctx && has(u.entities) {
			return in, 0.95, true
		}
		return "", 0, false
	}}
}

// fuzzyRule fires in seat-selection when re matches the normalized input
func fuzzyRule(name string, re *regexp.Regexp, in Intent, conf float64) rule {
	return rule{name: name, match: func(u *utterance) (Intent, float64, bool) {
		if u.ctx == ContextSeatSelection && re.MatchString(u.base) {
			return in, conf, true
		}
		return "", 0, false
	}}
}

// classify walks rules in order starting from UNKNOWN at confidence 0
func classify(rules []rule, u *utterance) verdict {
	best := verdict{intent: Unknown}
	for _, r := range rules {
		in, conf, ok := r.match(u)
		if !ok {
			continue
		}
		if r.firm {
			return verdict{intent: in, confidence: conf, rule: r.name}
		}
		if conf > best.confidence {
			best = verdict{intent: in, confidence: conf, rule: r.name}
		}
	}
	return best
}

func (e *Engine) buildRules() []rule {
	return []rule{
		contextRule(RuleContextName, ContextPassengerInfo, func(en Entities) bool { return en.Name != "" }, ProvideName),
		contextRule(RuleContextSeat, ContextSeatSelection, func(en Entities) bool { return en.SeatNumber != "" }, SelectSeat),
		contextRule(RuleContextOTP, ContextPayment, func(en Entities) bool { return en.OTP != "" }, EnterOTP),
		{name: RuleKeyword, match: e.keywordScan},
		fuzzyRule(RuleFuzzyWindow, regexp.MustCompile(`window|near.*window|by.*window`), WindowSeat, 0.9),
		fuzzyRule(RuleFuzzyAisle, regexp.MustCompile(`aisle|near.*aisle|by.*aisle`), AisleSeat, 0.9),
		fuzzyRule(RuleFuzzyFront, regexp.MustCompile(`front|forward|front.*row`), FrontRow, 0.85),
	}
}

// keywordScan scores every catalogue phrase contained in the keyword view. Pattern ids
// follow catalogue order, so walking them in order with a strict comparison keeps the
// earliest intent on ties
func (e *Engine) keywordScan(u *utterance) (Intent, float64, bool) {
	if u.keyword == "" {
		return "", 0, false
	}
	seen := make([]bool, len(e.phrases))
	e.index.contained(u.keyword, seen)

	best, score := -1, 0.0
	for id, hit := range seen {
		if !hit {
			continue
		}
		if s := MatchScore(u.keyword, e.phrases[id].text); s > score {
			best, score = id, s
		}
	}
	if best < 0 {
		return "", 0, false
	}
	return e.phrases[best].intent, score, true
}

// MatchScore rates how well phrase matches input: 1 on equality, 0.8 when input
// contains phrase, otherwise the share of overlapping words over the longer word list.
// keywordScan only hands it phrases the input contains, so the overlap branch serves
// direct callers and never decides a classification
func MatchScore(input, phrase string) float64 {
	if input == phrase {
		return 1.0
	}
	if strings.Contains(input, phrase) {
		return 0.8
	}
	in, ph := strings.Fields(input), strings.Fields(phrase)
	if len(in) == 0 || len(ph) == 0 {
		return 0
	}
	words := make(map[string]struct{}, len(ph))
	for _, w := range ph {
		words[w] = struct{}{}
	}
	overlap := 0
	for _, w := range in {
		if _, ok := words[w]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(max(len(in), len(ph)))
}
