// Package service runs the intent engine over per-session conversation histories
package service

import (
	"context"
	"strings"

	"voicebooking/internal/core/intent"
	perr "voicebooking/internal/platform/errors"
	"voicebooking/internal/platform/logger"
	"voicebooking/internal/platform/metrics"
	pstr "voicebooking/internal/platform/strings"
	"voicebooking/internal/services/api/nlp/domain"
	"voicebooking/internal/services/api/nlp/repo"

	"github.com/google/uuid"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Svc implements the service port
type Svc struct {
	engine   *intent.Engine
	sessions *repo.Sessions
	met      *metrics.Metrics
	newID    func() string
}

// Options control service behavior
type Options struct {
	Metrics *metrics.Metrics
	NewID   func() string // session id source, uuid v4 when nil
}

// New constructs the service
func New(engine *intent.Engine, sessions *repo.Sessions, opt Options) *Svc {
	if engine == nil {
		panic("nlp.Service requires a non nil Engine")
	}
	if sessions == nil {
		panic("nlp.Service requires a non nil session store")
	}
	if opt.NewID == nil {
		opt.NewID = uuid.NewString
	}
	return &Svc{
		engine:   engine,
		sessions: sessions,
		met:      metrics.OrNop(opt.Metrics),
		newID:    opt.NewID,
	}
}

// Process classifies in.Text within its session and records the turn
func (s *Svc) Process(ctx context.Context, in domain.ProcessInput) (domain.ProcessOutput, error) {
	id := strings.TrimSpace(in.SessionID)
	if id == "" {
		id = s.newID()
	}

	var (
		res  intent.Result
		used intent.Context
	)
	s.sessions.Update(id, func(history []intent.Turn) []intent.Turn {
		r, next := s.engine.ConverseIn(in.Text, intent.Context(strings.TrimSpace(in.Context)), history)
		res, used = r, next[len(next)-1].Context
		return next
	})

	s.met.RecordIntent(ctx, string(res.Intent), string(used))
	logger.C(ctx).Debug().Str("session_id", id).Str("context", string(used)).
		Str("input", pstr.Truncate(in.Text, 80)).Str("intent", string(res.Intent)).Float64("confidence", res.Confidence).Msg("utterance processed")
	return domain.ProcessOutput{Success: true, SessionID: id, Result: res}, nil
}

// Session returns the history of id
func (s *Svc) Session(_ context.Context, id string) (domain.Session, error) {
	turns, ok := s.sessions.Get(id)
	if !ok {
		return domain.Session{}, perr.NotFoundf("Session not found")
	}
	return domain.Session{Success: true, SessionID: id, Turns: turns}, nil
}

// Reset drops id; resetting an unknown session is not an error
func (s *Svc) Reset(ctx context.Context, id string) error {
	if s.sessions.Delete(strings.TrimSpace(id)) {
		logger.C(ctx).Debug().Str("session_id", id).Msg("session reset")
	}
	return nil
}

// Status summarizes the catalogue the engine runs on
func (s *Svc) Status(context.Context) domain.Status {
	p := s.engine.Catalogue()
	return domain.Status{
		Success:        true,
		Version:        p.Version,
		Intents:        p.Names(),
		Contexts:       p.Contexts(),
		ActiveSessions: s.sessions.Len(),
	}
}
