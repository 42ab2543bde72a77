package routes

import (
	"trabby/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterWizardRoutes registers all endpoints for the selection wizard and
// stored-booking lookups.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	wizardGroup := r.Group("/api/booking")
	{
		wizardGroup.POST("/wizard", hb.InitiateWizard)                       // Phase 1: start from search params
		wizardGroup.GET("/wizard/:sessionID", hb.GetWizard)                  // Current step + offerings
		wizardGroup.POST("/wizard/:sessionID/select", hb.SelectCategory)     // Phase 2: resolve a leg
		wizardGroup.POST("/wizard/:sessionID/advance", hb.AdvanceWizard)     // Forward transition
		wizardGroup.POST("/wizard/:sessionID/back", hb.RetreatWizard)        // Backward transition
		wizardGroup.POST("/wizard/:sessionID/confirm", hb.ConfirmWizard)     // Phase 3: assemble payload
		wizardGroup.DELETE("/wizard/:sessionID", hb.CancelWizard)            // Abandon session
	}

	bookings := r.Group("/api/bookings")
	{
		bookings.GET("/:reference", hb.GetBookingByReference)
		bookings.GET("/email/:email", hb.ListBookingsByEmail)
	}
}
