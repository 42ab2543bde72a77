package handlers

import (
	"net/http"

	bookingRepo "trabby/database/repository/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves stored booking lookups.
type BookingHandler struct {
	Repo bookingRepo.BookingRepository
}

func NewBookingHandler(repo bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Repo: repo}
}

func (h *BookingHandler) GetBookingByReference(c *gin.Context) {
	reference := c.Param("reference")
	booking, err := h.Repo.GetByReference(reference)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

func (h *BookingHandler) ListBookingsByEmail(c *gin.Context) {
	email := c.Param("email")
	bookings, err := h.Repo.ListByEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
