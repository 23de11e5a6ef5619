// Package domain holds payment order types and errors
package domain

import (
	"time"

	perr "voicebooking/internal/platform/errors"
)

// Status is the order lifecycle state
type Status string

const (
	// StatusPending is set on creation
	StatusPending Status = "pending"

	// StatusCompleted is set once the OTP is verified
	StatusCompleted Status = "completed"
)

// DefaultMethod is used when a create request names no payment method
const DefaultMethod = "credit_card"

// Order is a mock payment order. OTPVerified is a one way latch
type Order struct {
	OrderID       string     `json:"orderId"       example:"ORD5000"`
	BookingID     string     `json:"bookingId"     example:"BK1000"`
	Amount        float64    `json:"amount"        example:"5999"`
	PaymentMethod string     `json:"paymentMethod" example:"credit_card"`
	OTP           string     `json:"-"`
	OTPVerified   bool       `json:"otpVerified"`
	Status        Status     `json:"status"        example:"pending"`
	CreatedAt     time.Time  `json:"createdAt"`
	ExpiresAt     time.Time  `json:"expiresAt"`
	VerifiedAt    *time.Time `json:"verifiedAt,omitempty"`
}

// Verification outcomes, checked in this order
var (
	ErrExpired         = perr.New(perr.ErrorCodeExpired, "OTP has expired. Please request a new one.")
	ErrAlreadyVerified = perr.New(perr.ErrorCodeAlreadyVerified, "Payment already completed")
	ErrInvalidOTP      = perr.New(perr.ErrorCodeInvalidOTP, "Invalid OTP. Please try again.")
)
