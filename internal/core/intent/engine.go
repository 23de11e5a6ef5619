// Package intent classifies booking utterances. Process extracts entities, runs an
// ordered rule list (context overrides, keyword scan, seat fuzzy fallback) and renders
// the catalogue response and action for the winning intent.
//
// An Engine holds only read-only tables after New and is safe for concurrent use
package intent

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"voicebooking/internal/core/catalogue"
	"voicebooking/internal/core/normalize"
	ptime "voicebooking/internal/platform/time"
)

type phrase struct {
	text   string // keyword view
	intent Intent
}

// Engine is the intent and slot-filling engine
type Engine struct {
	pack    *catalogue.Pack
	norm    *normalize.Normalizer
	ext     extractor
	index   *phraseIndex
	phrases []phrase
	rules   []rule
	clock   ptime.Clock
}

// Option configures an Engine
type Option func(*Engine)

// WithClock sets the clock used to stamp conversation turns
func WithClock(c ptime.Clock) Option { return func(e *Engine) { e.clock = c } }

// intents the rules name directly; a pack without them cannot drive the engine
var required = []Intent{ProvideName, SelectSeat, EnterOTP, WindowSeat, AisleSeat, FrontRow}

// New compiles an engine over p
func New(p *catalogue.Pack, opts ...Option) (*Engine, error) {
	if p == nil {
		return nil, fmt.Errorf("intent: nil catalogue")
	}
	for _, in := range required {
		if _, ok := p.Lookup(string(in)); !ok {
			return nil, fmt.Errorf("intent: catalogue lacks %s", in)
		}
	}
	e := &Engine{
		pack:  p,
		norm:  normalize.New(),
		ext:   newExtractor(p),
		index: newPhraseIndex(),
	}
	for _, it := range p.Intents {
		for _, ph := range it.Phrases {
			kw := normalize.KeywordForm(e.norm.Normalize(ph))
			if kw == "" {
				continue
			}
			e.index.add(kw, len(e.phrases))
			e.phrases = append(e.phrases, phrase{text: kw, intent: Intent(it.Name)})
		}
	}
	e.index.build()
	e.rules = e.buildRules()
	for _, o := range opts {
		o(e)
	}
	e.clock = ptime.OrSystem(e.clock)
	return e, nil
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns an engine over the embedded catalogue, built on first use
func Default() *Engine {
	defaultOnce.Do(func() {
		e, err := New(catalogue.MustLoad())
		if err != nil {
			panic(err)
		}
		defaultEngine = e
	})
	return defaultEngine
}

// Catalogue exposes the pack the engine was built from
func (e *Engine) Catalogue() *catalogue.Pack { return e.pack }

// Process classifies input spoken in ctx. An empty context means general
func (e *Engine) Process(input string, ctx Context) Result {
	if ctx == "" {
		ctx = ContextGeneral
	}
	views := e.norm.BuildViews(input)
	if strings.TrimSpace(views.Base) == "" {
		return Result{
			Intent:   Unknown,
			Response: e.pack.Empty,
			Action:   Action{Type: ActionNone},
		}
	}

	u := &utterance{
		base:     views.Base,
		keyword:  views.Keyword,
		ctx:      ctx,
		entities: e.ext.extract(views.Entity, ctx),
	}
	v := classify(e.rules, u)
	entities, response, action := e.respond(v, u.entities, ctx)
	return Result{
		Intent:     v.intent,
		Entities:   entities,
		Confidence: v.confidence,
		Response:   response,
		Action:     action,
		Rule:       v.rule,
	}
}

// Converse processes input in the context of the last turn (general for an empty
// history) and returns the result with a new history that ends in this turn.
// history itself is never modified
func (e *Engine) Converse(input string, history []Turn) (Result, []Turn) {
	return e.ConverseIn(input, "", history)
}

// ConverseIn is Converse with an explicit context; an empty ctx falls back to the last turn's
func (e *Engine) ConverseIn(input string, ctx Context, history []Turn) (Result, []Turn) {
	if ctx == "" {
		ctx = ContextGeneral
		if n := len(history); n > 0 && history[n-1].Context != "" {
			ctx = history[n-1].Context
		}
	}
	res := e.Process(input, ctx)
	turn := Turn{Input: input, Context: ctx, Result: res, Timestamp: e.clock()}
	return res, append(slices.Clip(history), turn)
}
