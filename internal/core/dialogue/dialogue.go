// Package dialogue drives the hands-free listening loop:
//
//	idle -> listening -> processing -> speaking -> listening | idle
//
// A listen timeout counts a retry and re-arms listening after RestartDelay until
// MaxRetries is exceeded; after speaking, persistent mode re-arms listening the same way.
// All transitions go through one mutex and are reported to the observer in order
package dialogue

import (
	"sync"
	"time"
)

// State of the loop
type State string

// Loop states
const (
	Idle       State = "idle"
	Listening  State = "listening"
	Processing State = "processing"
	Speaking   State = "speaking"
)

// Transition reasons
const (
	ReasonStart      = "start"
	ReasonHeard      = "heard"
	ReasonRespond    = "respond"
	ReasonDone       = "done"
	ReasonTimeout    = "timeout"
	ReasonRetry      = "retry"
	ReasonMaxRetries = "max_retries"
	ReasonResume     = "resume"
	ReasonCancel     = "cancel"
)

// Transition is reported for every state change
type Transition struct {
	From    State
	To      State
	Reason  string
	Retries int
}

// Timer is the part of *time.Timer the loop uses
type Timer interface{ Stop() bool }

// AfterFunc schedules f after d
type AfterFunc func(d time.Duration, f func()) Timer

// Config tunes the loop
type Config struct {
	ListenTimeout time.Duration // no utterance within this counts a retry
	RestartDelay  time.Duration // pause before listening again
	MaxRetries    int           // consecutive timeouts tolerated
	Persistent    bool          // keep listening after each response
}

// DefaultConfig mirrors a browser speech session: 10s silence, 300ms restart, 3 retries
func DefaultConfig() Config {
	return Config{ListenTimeout: 10 * time.Second, RestartDelay: 300 * time.Millisecond, MaxRetries: 3, Persistent: true}
}

// Option configures a Loop
type Option func(*Loop)

// WithObserver receives every transition. It runs outside the loop lock and may call back in
func WithObserver(fn func(Transition)) Option { return func(l *Loop) { l.observer = fn } }

// WithAfterFunc replaces time.AfterFunc, mainly for tests
func WithAfterFunc(fn AfterFunc) Option { return func(l *Loop) { l.after = fn } }

// Loop is the listening state machine. Safe for concurrent use
type Loop struct {
	cfg      Config
	observer func(Transition)
	after    AfterFunc

	mu      sync.Mutex
	state   State
	retries int
	timer   Timer
	gen     uint64 // bumped whenever the pending timer is replaced or dropped
}

// New builds an idle loop
func New(cfg Config, opts ...Option) *Loop {
	l := &Loop{cfg: cfg, state: Idle}
	for _, o := range opts {
		o(l)
	}
	if l.after == nil {
		l.after = func(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
	}
	if l.cfg.MaxRetries < 0 {
		l.cfg.MaxRetries = 0
	}
	return l
}

// State reports the current state
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Retries reports consecutive listen timeouts since the last utterance
func (l *Loop) Retries() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.retries
}

// Start begins listening from idle. It reports false in any other state
func (l *Loop) Start() bool {
	return l.step(func(out *[]Transition) bool {
		if l.state != Idle {
			return false
		}
		l.retries = 0
		l.listen(ReasonStart, out)
		return true
	})
}

// Heard accepts an utterance while listening and moves to processing
func (l *Loop) Heard() bool {
	return l.step(func(out *[]Transition) bool {
		if l.state != Listening {
			return false
		}
		l.dropTimer()
		l.retries = 0
		l.move(Processing, ReasonHeard, out)
		return true
	})
}

// Respond moves from processing to speaking once the reply is ready
func (l *Loop) Respond() bool {
	return l.step(func(out *[]Transition) bool {
		if l.state != Processing {
			return false
		}
		l.move(Speaking, ReasonRespond, out)
		return true
	})
}

// DoneSpeaking ends the reply. Persistent loops listen again after RestartDelay,
// others go idle
func (l *Loop) DoneSpeaking() bool {
	return l.step(func(out *[]Transition) bool {
		if l.state != Speaking {
			return false
		}
		l.move(Idle, ReasonDone, out)
		if l.cfg.Persistent {
			l.schedule(l.cfg.RestartDelay, ReasonResume)
		}
		return true
	})
}

// Cancel stops everything and returns to idle
func (l *Loop) Cancel() {
	l.step(func(out *[]Transition) bool {
		l.dropTimer()
		l.retries = 0
		if l.state != Idle {
			l.move(Idle, ReasonCancel, out)
		}
		return true
	})
}

// step runs fn under the lock and reports the collected transitions afterwards
func (l *Loop) step(fn func(out *[]Transition) bool) bool {
	var out []Transition
	l.mu.Lock()
	ok := fn(&out)
	l.mu.Unlock()
	l.report(out)
	return ok
}

func (l *Loop) report(out []Transition) {
	if l.observer == nil {
		return
	}
	for _, tr := range out {
		l.observer(tr)
	}
}

// move must be called with mu held
func (l *Loop) move(to State, reason string, out *[]Transition) {
	*out = append(*out, Transition{From: l.state, To: to, Reason: reason, Retries: l.retries})
	l.state = to
}

// listen enters listening and arms the timeout; mu held
func (l *Loop) listen(reason string, out *[]Transition) {
	l.move(Listening, reason, out)
	if l.cfg.ListenTimeout <= 0 {
		return
	}
	l.dropTimer()
	gen := l.gen
	l.timer = l.after(l.cfg.ListenTimeout, func() { l.onTimeout(gen) })
}

// schedule re-enters listening after d unless superseded; mu held
func (l *Loop) schedule(d time.Duration, reason string) {
	l.dropTimer()
	gen := l.gen
	l.timer = l.after(d, func() { l.onRestart(gen, reason) })
}

func (l *Loop) dropTimer() {
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.gen++
}

func (l *Loop) onTimeout(gen uint64) {
	l.step(func(out *[]Transition) bool {
		if gen != l.gen || l.state != Listening {
			return false
		}
		l.timer = nil
		l.retries++
		if l.retries > l.cfg.MaxRetries {
			l.move(Idle, ReasonMaxRetries, out)
			l.retries = 0
			l.gen++
			return true
		}
		l.move(Idle, ReasonTimeout, out)
		l.schedule(l.cfg.RestartDelay, ReasonRetry)
		return true
	})
}

func (l *Loop) onRestart(gen uint64, reason string) {
	l.step(func(out *[]Transition) bool {
		if gen != l.gen || l.state != Idle {
			return false
		}
		l.timer = nil
		l.listen(reason, out)
		return true
	})
}
