// Package domain holds nlp session DTOs and the service contract
package domain

import (
	"context"

	"voicebooking/internal/core/intent"
)

// ProcessInput is one utterance. Without a session id a new session is opened;
// without a context the session's last context is used
type ProcessInput struct {
	Text      string `json:"text"                validate:"max=500" example:"window seat in the front"`
	Context   string `json:"context,omitempty"   validate:"omitempty,max=40" example:"seat-selection"`
	SessionID string `json:"sessionId,omitempty" validate:"omitempty,max=64"`
}

// ProcessOutput is the process response body
type ProcessOutput struct {
	Success   bool          `json:"success"`
	SessionID string        `json:"sessionId"`
	Result    intent.Result `json:"result"`
}

// Session is a session's history, oldest turn first
type Session struct {
	Success   bool          `json:"success"`
	SessionID string        `json:"sessionId"`
	Turns     []intent.Turn `json:"turns"`
}

// ResetInput drops a session
type ResetInput struct {
	SessionID string `json:"sessionId" validate:"required,max=64"`
}

// ResetOutput is the reset response body
type ResetOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message" example:"Conversation reset"`
}

// Status summarizes the loaded catalogue
type Status struct {
	Success        bool     `json:"success"`
	Version        int      `json:"version"`
	Intents        []string `json:"intents"`
	Contexts       []string `json:"contexts"`
	ActiveSessions int      `json:"activeSessions"`
}

// ServicePort is the interface implemented by the nlp service
type ServicePort interface {
	Process(ctx context.Context, in ProcessInput) (ProcessOutput, error)
	Session(ctx context.Context, id string) (Session, error)
	Reset(ctx context.Context, id string) error
	Status(ctx context.Context) Status
}
