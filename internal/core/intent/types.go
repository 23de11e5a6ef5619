package intent

import "time"

// Context is the conversation step the utterance was spoken in.
// Unrecognized tags are carried through and get the general help text
type Context string

// Known contexts
const (
	ContextGeneral           Context = "general"
	ContextPassengerInfo     Context = "passenger-info"
	ContextSeatSelection     Context = "seat-selection"
	ContextSpecialAssistance Context = "special-assistance"
	ContextPayment           Context = "payment"
)

// Intent names the user's goal. The closed set lives in the catalogue; the
// constants below are the ones the engine and its consumers refer to directly
type Intent string

// Intents referenced by code
const (
	Unknown         Intent = "UNKNOWN"
	Greeting        Intent = "GREETING"
	StartBooking    Intent = "START_BOOKING"
	ConfirmBooking  Intent = "CONFIRM_BOOKING"
	CancelBooking   Intent = "CANCEL_BOOKING"
	ProvideName     Intent = "PROVIDE_NAME"
	ChangeName      Intent = "CHANGE_NAME"
	SelectSeat      Intent = "SELECT_SEAT"
	WindowSeat      Intent = "WINDOW_SEAT"
	AisleSeat       Intent = "AISLE_SEAT"
	MiddleSeat      Intent = "MIDDLE_SEAT"
	FrontRow        Intent = "FRONT_ROW"
	BackRow         Intent = "BACK_ROW"
	NeedWheelchair  Intent = "NEED_WHEELCHAIR"
	NeedVisualAid   Intent = "NEED_VISUAL_AID"
	NeedHearingAid  Intent = "NEED_HEARING_AID"
	NoAssistance    Intent = "NO_ASSISTANCE"
	ConfirmPayment  Intent = "CONFIRM_PAYMENT"
	ChangePayMethod Intent = "CHANGE_PAYMENT_METHOD"
	EnterOTP        Intent = "ENTER_OTP"
	Help            Intent = "HELP"
	Repeat          Intent = "REPEAT"
	Restart         Intent = "RESTART"
)

// Entities are the slots pulled out of one utterance; empty means not detected
type Entities struct {
	Name           string `json:"name,omitempty"`
	SeatNumber     string `json:"seatNumber,omitempty"`
	SeatPreference string `json:"seatPreference,omitempty"` // window | aisle | middle
	RowPreference  string `json:"rowPreference,omitempty"`  // front | back
	OTP            string `json:"otp,omitempty"`
	Assistance     string `json:"assistance,omitempty"` // wheelchair | visual | hearing
}

// ActionType is the side effect a consumer should perform
type ActionType string

// Action types
const (
	ActionNavigate       ActionType = "NAVIGATE"
	ActionSetName        ActionType = "SET_NAME"
	ActionSetSeat        ActionType = "SET_SEAT"
	ActionProceedPayment ActionType = "PROCEED_PAYMENT"
	ActionVerifyOTP      ActionType = "VERIFY_OTP"
	ActionAddAssistance  ActionType = "ADD_ASSISTANCE"
	ActionShowHelp       ActionType = "SHOW_HELP"
	ActionNone           ActionType = "NONE"
)

// Action tells the caller what to do next
type Action struct {
	Type   ActionType `json:"type"`
	Target string     `json:"target,omitempty"`
	Value  string     `json:"value,omitempty"`
}

// Result is the engine's answer for one utterance
type Result struct {
	Intent     Intent   `json:"intent"`
	Entities   Entities `json:"entities"`
	Confidence float64  `json:"confidence"`
	Response   string   `json:"response"`
	Action     Action   `json:"action"`
	Rule       string   `json:"rule,omitempty"` // classification rule that fired
}

// Turn is one processed utterance in a conversation history
type Turn struct {
	Input     string    `json:"input"`
	Context   Context   `json:"context"`
	Result    Result    `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}
