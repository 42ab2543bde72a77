package models

import "time"

// Traveller holds one passenger's details from the contact form.
type Traveller struct {
	Title       string `json:"title" bson:"title"`
	FullName    string `json:"fullName" bson:"fullName"`
	Age         int    `json:"age" bson:"age"`
	Nationality string `json:"nationality" bson:"nationality"`
}

// ContactDetails is the traveller-details submission collected after the
// wizard completes.
type ContactDetails struct {
	Travellers  []Traveller `json:"travellers"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	CouponCode  string      `json:"couponCode,omitempty"`
	TermsAgreed bool        `json:"termsAgreed"`
}

// Booking is the stored record of a confirmed submission.
type Booking struct {
	Reference     string          `json:"reference" bson:"reference"`
	Ferries       []SelectedFerry `json:"ferries" bson:"ferries"`
	Travellers    []Traveller     `json:"travellers" bson:"travellers"`
	Email         string          `json:"email" bson:"email"`
	Phone         string          `json:"phone" bson:"phone"`
	CouponCode    string          `json:"couponCode,omitempty" bson:"couponCode,omitempty"`
	CouponApplied bool            `json:"couponApplied" bson:"couponApplied"`
	TotalFare     float64         `json:"totalFare" bson:"totalFare"`
	CreatedAt     time.Time       `json:"createdAt" bson:"createdAt"`
}

// ConfirmationPayload is the asynq task body for a booking-confirmation
// notification.
type ConfirmationPayload struct {
	Reference string   `json:"reference"`
	Email     string   `json:"email"`
	Ships     []string `json:"ships"`
	TotalFare float64  `json:"totalFare"`
}
