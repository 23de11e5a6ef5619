package domain

// CreateInput is the create request. Only PassengerName and SeatNumber are required;
// the service reports them missing so the message matches what clients already show
type CreateInput struct {
	PassengerName     string   `json:"passengerName"     validate:"omitempty,max=120" example:"John Smith"`
	SeatNumber        string   `json:"seatNumber"        validate:"omitempty,max=4"   example:"12A"`
	SpecialAssistance []string `json:"specialAssistance" validate:"omitempty,dive,max=40"`
	FlightNumber      string   `json:"flightNumber,omitempty"`
	Departure         string   `json:"departure,omitempty"`
	Destination       string   `json:"destination,omitempty"`
	Date              string   `json:"date,omitempty"    validate:"omitempty,datetime=2006-01-02" example:"2024-05-01"`
	Price             float64  `json:"price,omitempty"   validate:"gte=0" example:"5999"`
}

// Created is the create response body
type Created struct {
	Success bool    `json:"success"`
	Booking Booking `json:"booking"`
	Message string  `json:"message" example:"Booking created successfully"`
}

// Found is the single booking response body
type Found struct {
	Success bool    `json:"success"`
	Booking Booking `json:"booking"`
}

// List is the list response body
type List struct {
	Success  bool      `json:"success"`
	Count    int       `json:"count"`
	Bookings []Booking `json:"bookings"`
}
