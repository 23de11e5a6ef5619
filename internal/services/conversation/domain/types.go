// Package domain holds the booking conversation state and the store ports it drives
package domain

import (
	"context"
	"slices"

	"voicebooking/internal/core/intent"
	bdom "voicebooking/internal/services/api/booking/domain"
	pdom "voicebooking/internal/services/api/payment/domain"
)

// Step is where the caller is in the booking flow
type Step string

// Booking flow steps. Every step but Confirmed is also an engine context
const (
	StepGeneral           Step = Step(intent.ContextGeneral)
	StepPassengerInfo     Step = Step(intent.ContextPassengerInfo)
	StepSeatSelection     Step = Step(intent.ContextSeatSelection)
	StepSpecialAssistance Step = Step(intent.ContextSpecialAssistance)
	StepPayment           Step = Step(intent.ContextPayment)
	StepConfirmed         Step = "confirmed"
)

// Context is the engine context utterances in this step are classified in
func (s Step) Context() intent.Context {
	if s == StepConfirmed || s == "" {
		return intent.ContextGeneral
	}
	return intent.Context(s)
}

// Draft is the booking being assembled
type Draft struct {
	Name        string   `json:"name,omitempty"`
	Seat        string   `json:"seat,omitempty"`
	PendingSeat string   `json:"pendingSeat,omitempty"` // recommended, awaiting a yes
	Assistance  []string `json:"assistance,omitempty"`

	BookingID     string  `json:"bookingId,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	OrderID       string  `json:"orderId,omitempty"`
	OTP           string  `json:"-"`
	TransactionID string  `json:"transactionId,omitempty"`
}

// Clone returns a copy that shares no memory with d
func (d Draft) Clone() Draft {
	d.Assistance = slices.Clone(d.Assistance)
	return d
}

// Reply is what the assistant says back for one utterance
type Reply struct {
	Say    string        `json:"say"`
	Step   Step          `json:"step"`
	Intent intent.Intent `json:"intent"`
	Action intent.Action `json:"action"`
	Done   bool          `json:"done"` // booking paid and confirmed
}

// Bookings is the part of the booking module the conversation needs
type Bookings interface {
	Create(ctx context.Context, in bdom.CreateInput) (bdom.Booking, error)
}

// Payments is the part of the payment module the conversation needs
type Payments interface {
	CreateOrder(ctx context.Context, in pdom.CreateOrderInput) (pdom.Order, error)
	VerifyOTP(ctx context.Context, in pdom.VerifyInput) (pdom.Verified, error)
}
