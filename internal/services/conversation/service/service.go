// Package service runs a spoken booking conversation: each utterance goes through the
// intent engine and the resulting action is carried out against the booking and
// payment stores
package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"voicebooking/internal/core/intent"
	perr "voicebooking/internal/platform/errors"
	"voicebooking/internal/platform/logger"
	bdom "voicebooking/internal/services/api/booking/domain"
	pdom "voicebooking/internal/services/api/payment/domain"
	"voicebooking/internal/services/conversation/domain"
)

// Prompts spoken by the conversation itself rather than the catalogue
const (
	sayWelcome       = "Welcome to Voice Airline Booking. "
	saySeatConfirmed = "Seat confirmed. Now, let us know if you need any special assistance."
	sayAssistSaved   = "Special assistance preferences saved. Proceeding to payment."
	sayNeedName      = "I still need your name. Please say your full name."
	sayNeedSeat      = "Please choose a seat first. You can say a seat number like 12A."
	sayNoOrder       = `There is no payment waiting for an OTP. Say "Confirm payment" to get one.`
	sayAlreadyDone   = "Your booking is already confirmed. Say 'Start booking' to book another flight."
	sayCancelCheck   = `Your booking is still open. Say "cancel" on its own to cancel it.`
	sayFailed        = "Something went wrong."
	sayGoodbye       = "Thank you for booking with us! Have a great flight! Goodbye."
)

// Options tune a Conversation
type Options struct {
	MaxTurns int // engine history kept, 50 when zero
}

// Conversation is one caller's booking dialogue. Safe for concurrent use;
// utterances are handled one at a time
type Conversation struct {
	engine   *intent.Engine
	bookings domain.Bookings
	payments domain.Payments
	maxTurns int
	log      *logger.Logger

	mu      sync.Mutex
	step    domain.Step
	draft   domain.Draft
	history []intent.Turn
	last    string
}

// New starts a conversation in the general step
func New(engine *intent.Engine, bookings domain.Bookings, payments domain.Payments, opt Options) *Conversation {
	if engine == nil {
		panic("conversation requires a non nil intent engine")
	}
	if bookings == nil || payments == nil {
		panic("conversation requires booking and payment ports")
	}
	if opt.MaxTurns <= 0 {
		opt.MaxTurns = 50
	}
	return &Conversation{
		engine:   engine,
		bookings: bookings,
		payments: payments,
		maxTurns: opt.MaxTurns,
		log:      logger.Named("conversation"),
		step:     domain.StepGeneral,
	}
}

// Welcome is the opening prompt
func (c *Conversation) Welcome() domain.Reply {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = sayWelcome + c.engine.Catalogue().HelpFor("welcome")
	return domain.Reply{Say: c.last, Step: c.step, Action: intent.Action{Type: intent.ActionNone}}
}

// Step reports the current step
func (c *Conversation) Step() domain.Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Draft returns a copy of the booking assembled so far
func (c *Conversation) Draft() domain.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

// Handle processes one utterance and returns what to say back
func (c *Conversation) Handle(ctx context.Context, utterance string) domain.Reply {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, hist := c.engine.ConverseIn(utterance, c.step.Context(), c.history)
	if len(hist) > c.maxTurns {
		hist = slices.Clone(hist[len(hist)-c.maxTurns:])
	}
	c.history = hist

	var say string
	if res.Intent == intent.Repeat && c.last != "" {
		say = c.last
	} else {
		say = c.act(ctx, res)
		c.last = say
	}
	c.log.Debug().
		Str("intent", string(res.Intent)).
		Str("action", string(res.Action.Type)).
		Str("step", string(c.step)).
		Msg("conversation turn")

	return domain.Reply{
		Say:    say,
		Step:   c.step,
		Intent: res.Intent,
		Action: res.Action,
		Done:   c.step == domain.StepConfirmed,
	}
}

// act applies the engine verdict to the draft and returns the spoken reply; mu held
func (c *Conversation) act(ctx context.Context, res intent.Result) string {
	switch res.Action.Type {
	case intent.ActionSetName:
		return c.setName(res)
	case intent.ActionSetSeat:
		return c.setSeat(res)
	case intent.ActionAddAssistance:
		c.addAssistance(res.Action.Value)
		return res.Response
	case intent.ActionNavigate:
		return c.navigate(res)
	case intent.ActionProceedPayment:
		return c.proceedPayment(ctx)
	case intent.ActionVerifyOTP:
		return c.verify(ctx, res)
	}

	switch res.Intent {
	case intent.ConfirmBooking:
		return c.confirm(res)
	case intent.CancelBooking:
		if c.draft.PendingSeat != "" {
			c.draft.PendingSeat = ""
			return "Okay. " + c.help(domain.StepSeatSelection)
		}
		if c.step == domain.StepConfirmed {
			return res.Response
		}
		// a cancel word buried in a longer phrase must not wipe the draft
		if res.Confidence < 1 && c.step != domain.StepGeneral {
			return sayCancelCheck + " " + c.help(c.step)
		}
		c.reset()
	}
	return res.Response
}

func (c *Conversation) setName(res intent.Result) string {
	name := strings.TrimSpace(res.Action.Value)
	if name == "" {
		return res.Response
	}
	if c.step == domain.StepConfirmed {
		c.reset()
	}
	c.draft.Name = name
	c.step = domain.StepSeatSelection
	return res.Response
}

func (c *Conversation) setSeat(res intent.Result) string {
	seat := strings.TrimSpace(res.Action.Value)
	if seat == "" {
		return res.Response
	}
	if c.step == domain.StepConfirmed {
		return sayAlreadyDone
	}
	if c.draft.Name == "" {
		c.step = domain.StepPassengerInfo
		return sayNeedName
	}
	// only a seat the caller named is taken at once; recommendations wait for a yes
	if res.Entities.SeatNumber == "" {
		c.draft.PendingSeat = seat
		c.step = domain.StepSeatSelection
		return res.Response
	}
	c.takeSeat(seat)
	return res.Response + " " + saySeatConfirmed
}

func (c *Conversation) takeSeat(seat string) {
	c.draft.Seat = seat
	c.draft.PendingSeat = ""
	c.step = domain.StepSpecialAssistance
}

func (c *Conversation) addAssistance(kind string) {
	kind = strings.TrimSpace(kind)
	if kind == "" || slices.Contains(c.draft.Assistance, kind) {
		return
	}
	c.draft.Assistance = append(c.draft.Assistance, kind)
}

func (c *Conversation) confirm(res intent.Result) string {
	switch {
	case c.draft.PendingSeat != "":
		seat := c.draft.PendingSeat
		c.takeSeat(seat)
		return fmt.Sprintf("Seat %s selected. %s", seat, saySeatConfirmed)
	case c.step == domain.StepSpecialAssistance:
		c.step = domain.StepPayment
		return sayAssistSaved + " " + c.help(domain.StepPayment)
	}
	return res.Response
}

func (c *Conversation) navigate(res intent.Result) string {
	switch res.Action.Target {
	case "/":
		c.reset()
	case "/passenger-info":
		if c.step == domain.StepConfirmed {
			c.reset()
		}
		c.step = domain.StepPassengerInfo
	case "/seat-selection":
		c.step = domain.StepSeatSelection
	case "/payment":
		if msg, ok := c.readyToPay(); !ok {
			return msg
		}
		c.step = domain.StepPayment
		return res.Response + " " + c.help(domain.StepPayment)
	}
	return res.Response
}

// readyToPay reports whether the draft can be paid for, or the clarifying prompt; mu held
func (c *Conversation) readyToPay() (string, bool) {
	switch {
	case c.step == domain.StepConfirmed:
		return sayAlreadyDone, false
	case c.draft.Name == "":
		c.step = domain.StepPassengerInfo
		return sayNeedName, false
	case c.draft.Seat == "":
		c.step = domain.StepSeatSelection
		return sayNeedSeat, false
	}
	return "", true
}

func (c *Conversation) proceedPayment(ctx context.Context) string {
	if msg, ok := c.readyToPay(); !ok {
		return msg
	}
	c.step = domain.StepPayment
	if c.draft.OrderID != "" {
		return c.announceOTP("An OTP was already sent.")
	}

	if c.draft.BookingID == "" {
		b, err := c.bookings.Create(ctx, bdom.CreateInput{
			PassengerName:     c.draft.Name,
			SeatNumber:        c.draft.Seat,
			SpecialAssistance: slices.Clone(c.draft.Assistance),
		})
		if err != nil {
			return c.failed("create booking", err)
		}
		c.draft.BookingID = b.BookingID
		c.draft.Amount = b.Price
	}

	o, err := c.payments.CreateOrder(ctx, pdom.CreateOrderInput{BookingID: c.draft.BookingID, Amount: c.draft.Amount})
	if err != nil {
		return c.failed("create order", err)
	}
	c.draft.OrderID = o.OrderID
	c.draft.OTP = o.OTP
	return c.announceOTP(fmt.Sprintf("Booking %s created. OTP has been sent.", c.draft.BookingID))
}

func (c *Conversation) announceOTP(lead string) string {
	return fmt.Sprintf("%s For testing purposes, the OTP is %s. Please say the OTP to complete payment.", lead, c.draft.OTP)
}

func (c *Conversation) verify(ctx context.Context, res intent.Result) string {
	otp := strings.TrimSpace(res.Action.Value)
	if otp == "" {
		return res.Response
	}
	if c.step == domain.StepConfirmed {
		return sayAlreadyDone
	}
	if c.draft.OrderID == "" {
		return sayNoOrder
	}

	v, err := c.payments.VerifyOTP(ctx, pdom.VerifyInput{OrderID: c.draft.OrderID, OTP: otp})
	switch {
	case err == nil:
	case errors.Is(err, pdom.ErrAlreadyVerified):
		c.step = domain.StepConfirmed
		return sayAlreadyDone
	case errors.Is(err, pdom.ErrExpired):
		c.draft.OrderID, c.draft.OTP = "", ""
		return perr.WireFrom(err).Message + ` Say "Confirm payment" for a new OTP.`
	case errors.Is(err, pdom.ErrInvalidOTP):
		return perr.WireFrom(err).Message
	default:
		return c.failed("verify otp", err)
	}

	c.draft.TransactionID = v.TransactionID
	c.step = domain.StepConfirmed
	return fmt.Sprintf("Payment successful! Your booking is confirmed. Your booking reference is %s. %s",
		c.draft.BookingID, sayGoodbye)
}

// failed turns a store error into a spoken retry prompt
func (c *Conversation) failed(op string, err error) string {
	c.log.Warn().Err(err).Str("op", op).Msg("conversation store call failed")
	msg := sayFailed
	if e, ok := perr.As(err); ok && e.Message() != "" {
		msg = e.Message()
	}
	return msg + " Please try again."
}

func (c *Conversation) help(s domain.Step) string {
	return c.engine.Catalogue().HelpFor(string(s.Context()))
}

// reset drops the draft and returns to the general step; mu held
func (c *Conversation) reset() {
	c.draft = domain.Draft{}
	c.step = domain.StepGeneral
	c.history = nil
}
