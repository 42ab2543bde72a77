package wizard

import (
	"errors"
	"fmt"
)

// Error codes for wizard flow failures.
const (
	CodeInvalidSearchParameters = "invalidSearchParameters"
	CodeSessionNotFound         = "sessionNotFound"
	CodeOfferingNotFound        = "offeringNotFound"
	CodeCategoryNotFound        = "categoryNotFound"
	CodeIncompleteSelections    = "incompleteSelections"
	CodeNoAdults                = "noAdults"
)

type WizardError struct {
	Code    string
	Message string
}

func (e *WizardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewWizardError(code, msg string) error {
	return &WizardError{
		Code:    code,
		Message: msg,
	}
}

var (
	// ErrInvalidSearchParams means zero usable legs survived parsing. The
	// state is terminal; the traveller has to restart the search.
	ErrInvalidSearchParams = &WizardError{Code: CodeInvalidSearchParameters, Message: "no valid journey sections in search parameters"}

	// ErrSessionNotFound covers both unknown ids and expired sessions.
	ErrSessionNotFound = &WizardError{Code: CodeSessionNotFound, Message: "wizard session not found or expired"}

	// ErrIncompleteSelections blocks assembly while any leg slot is empty.
	ErrIncompleteSelections = &WizardError{Code: CodeIncompleteSelections, Message: "some ferry selections are missing"}

	// ErrNoAdults blocks assembly: at least one adult traveller is
	// mandatory regardless of child count.
	ErrNoAdults = &WizardError{Code: CodeNoAdults, Message: "at least one adult is required"}
)

// ErrorCode extracts the wizard error code, or "" for foreign errors.
func ErrorCode(err error) string {
	var werr *WizardError
	if errors.As(err, &werr) {
		return werr.Code
	}
	return ""
}
