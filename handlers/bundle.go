package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	// Wizard endpoints.
	InitiateWizard gin.HandlerFunc
	GetWizard      gin.HandlerFunc
	SelectCategory gin.HandlerFunc
	AdvanceWizard  gin.HandlerFunc
	RetreatWizard  gin.HandlerFunc
	ConfirmWizard  gin.HandlerFunc
	CancelWizard   gin.HandlerFunc

	// Contact / thank-you endpoints.
	ShowContactDetails  gin.HandlerFunc
	StoreContactDetails gin.HandlerFunc
	StoreThankYou       gin.HandlerFunc

	// Booking lookup endpoints.
	GetBookingByReference gin.HandlerFunc
	ListBookingsByEmail   gin.HandlerFunc

	// Catalog endpoints.
	ListFerries gin.HandlerFunc
}
