package domain

// CreateOrderInput opens an order for a booking
type CreateOrderInput struct {
	BookingID     string  `json:"bookingId"               validate:"omitempty,max=40" example:"BK1000"`
	Amount        float64 `json:"amount"                  example:"5999"`
	PaymentMethod string  `json:"paymentMethod,omitempty" validate:"omitempty,max=40" example:"credit_card"`
}

// VerifyInput submits the OTP for an order
type VerifyInput struct {
	OrderID string `json:"orderId" validate:"omitempty,max=40" example:"ORD5000"`
	OTP     string `json:"otp"     validate:"omitempty,max=40" example:"123456"`
}

// Verified is the service result of a successful verification
type Verified struct {
	OrderID       string `json:"orderId"`
	BookingID     string `json:"bookingId"`
	TransactionID string `json:"transactionId" example:"TXN1714550400000"`
}

// OrderCreated is the create response body. MockOTP stands in for the SMS a real gateway would send
type OrderCreated struct {
	Success bool    `json:"success"`
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
	Message string  `json:"message" example:"Payment order created. OTP sent successfully."`
	MockOTP string  `json:"mockOTP" example:"123456"`
}

// OTPVerified is the verify response body
type OTPVerified struct {
	Success       bool   `json:"success"`
	OrderID       string `json:"orderId"`
	BookingID     string `json:"bookingId"`
	Message       string `json:"message" example:"Payment completed successfully"`
	TransactionID string `json:"transactionId"`
}
