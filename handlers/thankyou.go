package handlers

import (
	"errors"
	"net/http"
	"time"

	bookingRepo "trabby/database/repository/booking"
	"trabby/models"
	"trabby/services/contact"
	"trabby/services/tasks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ThankYouHandler finalizes a booking: validates the traveller-details
// submission, prices it, stores the record, and queues the confirmation.
type ThankYouHandler struct {
	Contact   contact.Service
	Repo      bookingRepo.BookingRepository
	Scheduler tasks.ConfirmationEnqueuer
	Logger    *zap.Logger
}

func NewThankYouHandler(svc contact.Service, repo bookingRepo.BookingRepository, scheduler tasks.ConfirmationEnqueuer, logger *zap.Logger) *ThankYouHandler {
	return &ThankYouHandler{Contact: svc, Repo: repo, Scheduler: scheduler, Logger: logger}
}

// StoreThankYou accepts the traveller form's submission: the details nested
// under "data" plus the selected ferries carried forward from the payload.
// Absent fields default to their zero values ([], "", false).
func (h *ThankYouHandler) StoreThankYou(c *gin.Context) {
	var input struct {
		Data    models.ContactDetails  `json:"data"`
		Ferries []models.SelectedFerry `json:"ferries"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	h.Logger.Info("Incoming booking submission",
		zap.Int("travellers", len(input.Data.Travellers)),
		zap.Int("ferries", len(input.Ferries)),
	)

	if len(input.Ferries) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "no ferry selections provided"})
		return
	}

	seats := len(input.Data.Travellers)
	if err := h.Contact.ValidateDetails(input.Data, seats); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid traveller details", "details": err.Error()})
		return
	}

	total := h.Contact.TotalFare(input.Ferries, seats)
	applied := false
	if input.Data.CouponCode != "" {
		discounted, ok, err := h.Contact.ApplyCoupon(total, input.Data.CouponCode)
		if err != nil {
			if !errors.Is(err, contact.ErrInvalidCoupon) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "coupon check failed", "details": err.Error()})
				return
			}
			// An unknown code does not block the booking; the traveller
			// pays the undiscounted fare.
			h.Logger.Warn("Invalid coupon code on submission", zap.String("code", input.Data.CouponCode))
		} else {
			total, applied = discounted, ok
		}
	}

	booking := models.Booking{
		Reference:     uuid.New().String(),
		Ferries:       input.Ferries,
		Travellers:    input.Data.Travellers,
		Email:         input.Data.Email,
		Phone:         input.Data.Phone,
		CouponCode:    input.Data.CouponCode,
		CouponApplied: applied,
		TotalFare:     total,
		CreatedAt:     time.Now(),
	}
	if err := h.Repo.Create(&booking); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store booking", "details": err.Error()})
		return
	}

	if err := h.Scheduler.Schedule(booking); err != nil {
		// The booking is stored; a lost confirmation is not fatal.
		h.Logger.Warn("Failed to enqueue booking confirmation",
			zap.String("reference", booking.Reference), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"searchParams": gin.H{
			"travellers":  input.Data.Travellers,
			"email":       input.Data.Email,
			"phone":       input.Data.Phone,
			"couponCode":  input.Data.CouponCode,
			"termsAgreed": input.Data.TermsAgreed,
			"ferries":     input.Ferries,
		},
		"booking": booking,
	})
}
