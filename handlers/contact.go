package handlers

import (
	"net/http"

	"trabby/models"
	"trabby/services/contact"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler serves the contact-details stage between the wizard and the
// traveller form.
type ContactHandler struct {
	Contact contact.Service
	Logger  *zap.Logger
}

func NewContactHandler(svc contact.Service, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Contact: svc, Logger: logger}
}

// ShowContactDetails relays whatever the previous stage attached, verbatim,
// as searchParams.
func (h *ContactHandler) ShowContactDetails(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"searchParams": c.Request.URL.Query()})
}

// StoreContactDetails receives the assembled booking payload, re-checks the
// completion rules server-side, and relays it to the traveller form along
// with the base fare it implies.
func (h *ContactHandler) StoreContactDetails(c *gin.Context) {
	var payload models.BookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if len(payload.SelectedFerries) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "no ferry selections provided"})
		return
	}
	if payload.Adults < 1 {
		c.JSON(http.StatusConflict, gin.H{"error": "at least one adult is required"})
		return
	}

	travellers := payload.Adults + payload.Children
	total := h.Contact.TotalFare(payload.SelectedFerries, travellers)

	c.JSON(http.StatusOK, gin.H{
		"searchParams": gin.H{
			"ferries":  payload.SelectedFerries,
			"adults":   payload.Adults,
			"children": payload.Children,
		},
		"totalFare": total,
	})
}
