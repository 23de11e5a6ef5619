// Package http provides http transport for the conversational engine
package http

import (
	stdhttp "net/http"

	"voicebooking/internal/modkit/httpkit"
	"voicebooking/internal/services/api/nlp/domain"
	svc "voicebooking/internal/services/api/nlp/service"
)

// Register mounts the nlp routes
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostLoose[domain.ProcessInput](r, "/process", h.process)
	httpkit.Get(r, "/sessions/{sessionId}", h.session)
	httpkit.PostJSON[domain.ResetInput](r, "/reset", h.reset)
	httpkit.Get(r, "/status", h.status)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /nlp/process Nlp process
// @Summary Classify an utterance within a conversation session
// @Tags nlp
// @Accept json
// @Produce json
// @Param payload body domain.ProcessInput true "Utterance"
// @Success 200 {object} domain.ProcessOutput "ok"
// @Failure 429 {object} pnet.Failure "rate limited"
// @Router /nlp/process [post]
func (h *handlers) process(r *stdhttp.Request, in domain.ProcessInput) (any, error) {
	return h.svc.Process(r.Context(), in)
}

// swagger:route GET /nlp/sessions/{sessionId} Nlp session
// @Summary Conversation history
// @Tags nlp
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} domain.Session "ok"
// @Failure 404 {object} pnet.Failure "unknown or expired session"
// @Router /nlp/sessions/{sessionId} [get]
func (h *handlers) session(r *stdhttp.Request) (any, error) {
	return h.svc.Session(r.Context(), httpkit.Param(r, "sessionId"))
}

// swagger:route POST /nlp/reset Nlp reset
// @Summary Drop a conversation session
// @Tags nlp
// @Accept json
// @Produce json
// @Param payload body domain.ResetInput true "Session"
// @Success 200 {object} domain.ResetOutput "ok"
// @Router /nlp/reset [post]
func (h *handlers) reset(r *stdhttp.Request, in domain.ResetInput) (any, error) {
	if err := h.svc.Reset(r.Context(), in.SessionID); err != nil {
		return nil, err
	}
	return domain.ResetOutput{Success: true, Message: "Conversation reset"}, nil
}

// swagger:route GET /nlp/status Nlp status
// @Summary Catalogue summary and live session count
// @Tags nlp
// @Produce json
// @Success 200 {object} domain.Status "ok"
// @Router /nlp/status [get]
func (h *handlers) status(r *stdhttp.Request) (any, error) {
	return h.svc.Status(r.Context()), nil
}
