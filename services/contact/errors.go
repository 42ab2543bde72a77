package contact

import "fmt"

// Error codes for contact-form failures.
const (
	CodeNoTravellers      = "noTravellers"
	CodeTravellerMismatch = "travellerCountMismatch"
	CodeInvalidTraveller  = "invalidTraveller"
	CodeInvalidEmail      = "invalidEmail"
	CodeInvalidPhone      = "invalidPhone"
	CodeTermsNotAgreed    = "termsNotAgreed"
	CodeInvalidCoupon     = "invalidCoupon"
)

type ContactError struct {
	Code    string
	Message string
}

func (e *ContactError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewContactError(code, msg string) error {
	return &ContactError{
		Code:    code,
		Message: msg,
	}
}

var (
	ErrNoTravellers   = &ContactError{Code: CodeNoTravellers, Message: "at least one traveller is required"}
	ErrInvalidEmail   = &ContactError{Code: CodeInvalidEmail, Message: "invalid email address"}
	ErrInvalidPhone   = &ContactError{Code: CodeInvalidPhone, Message: "phone number must have at least 10 digits"}
	ErrTermsNotAgreed = &ContactError{Code: CodeTermsNotAgreed, Message: "terms and conditions must be accepted"}
	ErrInvalidCoupon  = &ContactError{Code: CodeInvalidCoupon, Message: "invalid coupon code"}
)
