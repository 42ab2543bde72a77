// File: services/contact/contact.go
package contact

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"trabby/models"
	"trabby/utils"
)

// CouponDiscount10 is the only coupon the site honours: a flat 10% discount.
const CouponDiscount10 = "DISCOUNT10"

// Service validates traveller-details submissions and prices them.
type Service interface {
	ValidateDetails(details models.ContactDetails, seats int) error
	TotalFare(ferries []models.SelectedFerry, travellers int) float64
	ApplyCoupon(total float64, code string) (float64, bool, error)
}

// DefaultContactService implements Service.
type DefaultContactService struct{}

// ValidateDetails checks the traveller-details form once, at the boundary.
// seats is the traveller count the booking payload paid for; when positive,
// the form must carry exactly that many travellers.
func (s *DefaultContactService) ValidateDetails(details models.ContactDetails, seats int) error {
	if len(details.Travellers) == 0 {
		return ErrNoTravellers
	}
	if seats > 0 && len(details.Travellers) != seats {
		return NewContactError(CodeTravellerMismatch,
			fmt.Sprintf("expected %d travellers, got %d", seats, len(details.Travellers)))
	}

	for i, t := range details.Travellers {
		if strings.TrimSpace(t.Title) == "" {
			return travellerError(i, "title is required")
		}
		if len(strings.TrimSpace(t.FullName)) < 3 {
			return travellerError(i, "full name must be at least 3 characters")
		}
		if t.Age < 1 || t.Age > 120 {
			return travellerError(i, "age must be between 1 and 120")
		}
		if strings.TrimSpace(t.Nationality) == "" {
			return travellerError(i, "nationality is required")
		}
	}

	if _, err := mail.ParseAddress(details.Email); err != nil {
		return ErrInvalidEmail
	}
	if countDigits(details.Phone) < 10 {
		return ErrInvalidPhone
	}
	if !details.TermsAgreed {
		return ErrTermsNotAgreed
	}
	return nil
}

// TotalFare prices a completed selection: every traveller pays the committed
// per-pax fare on every leg.
func (s *DefaultContactService) TotalFare(ferries []models.SelectedFerry, travellers int) float64 {
	var perHead float64
	for _, item := range ferries {
		perHead += item.Price
	}
	return utils.RoundFare(perHead * float64(travellers))
}

// ApplyCoupon applies the discount code to the total. It reports whether the
// coupon took effect; an unknown code is an error and leaves the total as is.
func (s *DefaultContactService) ApplyCoupon(total float64, code string) (float64, bool, error) {
	if code == "" {
		return total, false, nil
	}
	if code != CouponDiscount10 {
		return total, false, ErrInvalidCoupon
	}
	return utils.RoundFare(total * 0.9), true, nil
}

func travellerError(index int, msg string) error {
	return NewContactError(CodeInvalidTraveller, fmt.Sprintf("traveller %d: %s", index+1, msg))
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
