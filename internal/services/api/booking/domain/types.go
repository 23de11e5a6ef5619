// Package domain holds booking types independent of transport or storage
package domain

import "time"

// Status is the booking lifecycle state
type Status string

const (
	// StatusPending is set on creation
	StatusPending Status = "pending"

	// StatusConfirmed is set once the payment OTP is verified
	StatusConfirmed Status = "confirmed"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool { return s == StatusPending || s == StatusConfirmed }

// Defaults applied to fields a create request leaves empty
const (
	DefaultFlight      = "AI101"
	DefaultDeparture   = "New Delhi (DEL)"
	DefaultDestination = "Mumbai (BOM)"
	DefaultPrice       = 5999
	DateLayout         = "2006-01-02"
)

// Booking is one reservation
type Booking struct {
	BookingID         string     `json:"bookingId"         example:"BK1000"`
	PassengerName     string     `json:"passengerName"     example:"John Smith"`
	SeatNumber        string     `json:"seatNumber"        example:"12A"`
	SpecialAssistance []string   `json:"specialAssistance"`
	FlightNumber      string     `json:"flightNumber"      example:"AI101"`
	Departure         string     `json:"departure"         example:"New Delhi (DEL)"`
	Destination       string     `json:"destination"       example:"Mumbai (BOM)"`
	Date              string     `json:"date"              example:"2024-05-01"`
	Price             float64    `json:"price"             example:"5999"`
	Status            Status     `json:"status"            example:"pending"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}
