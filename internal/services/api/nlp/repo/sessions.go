// Package repo keeps conversation histories in a TTL cache
package repo

import (
	"slices"
	"sync"
	"time"

	"voicebooking/internal/core/intent"

	"github.com/patrickmn/go-cache"
)

// Sessions maps session ids to bounded turn histories. Entries expire after the
// idle TTL; every write refreshes it
type Sessions struct {
	mu       sync.Mutex
	c        *cache.Cache
	maxTurns int
	onOpen   func()
	onClose  func()
}

// Options tune Sessions
type Options struct {
	TTL      time.Duration // idle lifetime, 30m when zero
	MaxTurns int           // history bound, 50 when zero
	OnOpen   func()        // called when a session is created
	OnClose  func()        // called when a session expires or is dropped
}

// NewSessions builds the cache; the janitor sweeps at half the TTL
func NewSessions(o Options) *Sessions {
	if o.TTL <= 0 {
		o.TTL = 30 * time.Minute
	}
	if o.MaxTurns <= 0 {
		o.MaxTurns = 50
	}
	s := &Sessions{
		c:        cache.New(o.TTL, o.TTL/2),
		maxTurns: o.MaxTurns,
		onOpen:   o.OnOpen,
		onClose:  o.OnClose,
	}
	if s.onClose != nil {
		s.c.OnEvicted(func(string, any) { s.onClose() })
	}
	return s
}

// Update runs fn over the session's history and stores what it returns, trimmed to
// the newest MaxTurns. Updates are serialized
func (s *Sessions) Update(id string, fn func(history []intent.Turn) []intent.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var history []intent.Turn
	v, found := s.c.Get(id)
	if found {
		history = v.([]intent.Turn)
	}
	next := fn(history)
	if n := len(next); n > s.maxTurns {
		next = slices.Clone(next[n-s.maxTurns:])
	}
	if !found {
		// an expired entry the janitor has not swept yet still owes its close callback
		s.c.Delete(id)
	}
	s.c.SetDefault(id, next)
	if !found && s.onOpen != nil {
		s.onOpen()
	}
}

// Get returns a copy of the session's history
func (s *Sessions) Get(id string) ([]intent.Turn, bool) {
	v, ok := s.c.Get(id)
	if !ok {
		return nil, false
	}
	return slices.Clone(v.([]intent.Turn)), true
}

// Delete drops a session and reports whether it existed
func (s *Sessions) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.c.Get(id); !ok {
		return false
	}
	s.c.Delete(id)
	return true
}

// Len counts live sessions, including expired ones not yet swept
func (s *Sessions) Len() int { return s.c.ItemCount() }
